package ai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/xXxDanya2007xXx/speech-coach/internal/domain/entities"
	"github.com/xXxDanya2007xXx/speech-coach/internal/infrastructure/cache"
	pkgai "github.com/xXxDanya2007xXx/speech-coach/pkg/ai"
	"github.com/xXxDanya2007xXx/speech-coach/pkg/config"
)

func testLLMConfig(baseURL string) *config.Config {
	return &config.Config{
		LLM: config.LLMConfig{
			GroqAPIKey:    "test-key",
			BaseURL:       baseURL,
			Model:         "test-model",
			Timeout:       5 * time.Second,
			MaxAttempts:   1,
			RetryInterval: time.Millisecond,
		},
		Cache: config.CacheConfig{
			VerdictTTL: time.Hour,
		},
	}
}

func newTestService(baseURL string, store cache.Store) *Service {
	cfg := testLLMConfig(baseURL)
	return NewService(pkgai.NewGroqClient(&cfg.LLM), store, cfg, nil)
}

// chatServer answers every chat completion with the given content.
func chatServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":` + content + `}}]}`))
	}))
}

func sampleFillers() []entities.FillerWord {
	return []entities.FillerWord{
		{
			CanonicalForm: "ну",
			ExactText:     "ну",
			Timestamp:     1.0,
			Duration:      0.2,
			ContextBefore: []string{"и"},
			ContextAfter:  []string{"мы", "начали"},
		},
		{
			CanonicalForm: "э-э",
			ExactText:     "эээ",
			Timestamp:     3.0,
			Duration:      0.4,
		},
	}
}

func TestClassifyFillersAppliesVerdicts(t *testing.T) {
	srv := chatServer(t, `"[{\"index\": 0, \"is_filler\": true, \"confidence\": 0.9, \"reason\": \"хезитация\", \"suggestion\": \"пауза\"}]"`)
	defer srv.Close()

	svc := newTestService(srv.URL, cache.NewMemoryStore())
	fillers := svc.ClassifyFillers(context.Background(), sampleFillers(), "ru")

	if fillers[0].IsContextFiller == nil || !*fillers[0].IsContextFiller {
		t.Errorf("ambiguous filler verdict not applied: %+v", fillers[0])
	}
	if fillers[0].ContextScore != 0.9 || fillers[0].ContextReason != "хезитация" {
		t.Errorf("verdict fields: %+v", fillers[0])
	}
	if fillers[1].IsContextFiller != nil {
		t.Errorf("unambiguous filler must pass through untouched: %+v", fillers[1])
	}
}

func TestClassifyFillersUsesCache(t *testing.T) {
	srv := chatServer(t, `"[{\"index\": 0, \"is_filler\": true, \"confidence\": 0.8, \"reason\": \"cached\", \"suggestion\": \"\"}]"`)
	store := cache.NewMemoryStore()

	svc := newTestService(srv.URL, store)
	svc.ClassifyFillers(context.Background(), sampleFillers(), "ru")

	// Same occurrence again with the model gone: the verdict must come
	// from the store.
	srv.Close()
	svc = newTestService(srv.URL, store)
	fillers := svc.ClassifyFillers(context.Background(), sampleFillers(), "ru")

	if fillers[0].IsContextFiller == nil || !*fillers[0].IsContextFiller {
		t.Errorf("cached verdict not applied: %+v", fillers[0])
	}
	if fillers[0].ContextReason != "cached" {
		t.Errorf("ContextReason = %q, want %q", fillers[0].ContextReason, "cached")
	}
}

func TestClassifyFillersFallbackOnModelFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := newTestService(srv.URL, cache.NewMemoryStore())
	fillers := svc.ClassifyFillers(context.Background(), sampleFillers(), "ru")

	if fillers[0].IsContextFiller == nil {
		t.Fatal("fallback verdict missing")
	}
	if *fillers[0].IsContextFiller {
		t.Error("fallback must be conservative, got is_filler=true")
	}
	if fillers[0].ContextReason != "default" || fillers[0].ContextScore != 0 {
		t.Errorf("fallback fields: %+v", fillers[0])
	}
}

func TestClassifyFillersSkipsWhenNothingAmbiguous(t *testing.T) {
	// No server at all: the call must never reach the model.
	svc := newTestService("http://127.0.0.1:0", cache.NewMemoryStore())
	fillers := svc.ClassifyFillers(context.Background(), []entities.FillerWord{
		{CanonicalForm: "э-э", ExactText: "эээ"},
	}, "ru")

	if fillers[0].IsContextFiller != nil {
		t.Errorf("unambiguous filler got a verdict: %+v", fillers[0])
	}
}

func TestGenerateFeedback(t *testing.T) {
	srv := chatServer(t, `"Отличный темп, поработайте над паузами."`)
	defer srv.Close()

	svc := newTestService(srv.URL, nil)
	result := &entities.AnalysisResult{
		Pace:   entities.PaceStats{WordsPerMinute: 140, Classification: "comfortable"},
		Rhythm: entities.RhythmStats{PhraseCount: 5, AvgWordsPerPhrase: 10},
	}

	narrative, err := svc.GenerateFeedback(context.Background(), result)
	if err != nil {
		t.Fatalf("GenerateFeedback: %v", err)
	}
	if narrative != "Отличный темп, поработайте над паузами." {
		t.Errorf("narrative = %q", narrative)
	}
}

func TestGenerateFeedbackUnconfigured(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")
	cfg := testLLMConfig("")
	cfg.LLM.GroqAPIKey = ""
	svc := NewService(pkgai.NewGroqClient(&cfg.LLM), nil, cfg, nil)

	if _, err := svc.GenerateFeedback(context.Background(), &entities.AnalysisResult{}); err == nil {
		t.Fatal("expected an error without an API key")
	}
}
