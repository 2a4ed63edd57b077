package ai

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/xXxDanya2007xXx/speech-coach/internal/domain/entities"
	"github.com/xXxDanya2007xXx/speech-coach/internal/engine"
	"github.com/xXxDanya2007xXx/speech-coach/internal/infrastructure/cache"
	pkgai "github.com/xXxDanya2007xXx/speech-coach/pkg/ai"
	"github.com/xXxDanya2007xXx/speech-coach/pkg/config"
)

// Service applies contextual judgment to ambiguous filler candidates
// and generates narrative feedback. Both paths degrade gracefully:
// when the model is unreachable the analysis stays usable, ambiguous
// candidates just keep a conservative verdict.
type Service struct {
	llm           *pkgai.GroqClient
	store         cache.Store
	verdictTTL    time.Duration
	maxAttempts   int
	retryInterval time.Duration
	logger        *zap.Logger
}

func NewService(llm *pkgai.GroqClient, store cache.Store, cfg *config.Config, logger *zap.Logger) *Service {
	return &Service{
		llm:           llm,
		store:         store,
		verdictTTL:    cfg.Cache.VerdictTTL,
		maxAttempts:   cfg.LLM.MaxAttempts,
		retryInterval: cfg.LLM.RetryInterval,
		logger:        logger,
	}
}

// fallbackVerdict keeps an ambiguous occurrence out of filler counts
// when no contextual judgment could be obtained.
func fallbackVerdict(index int) Verdict {
	return Verdict{Index: index, IsFiller: false, Confidence: 0, Reason: "default", Suggestion: ""}
}

// verdictCacheKey identifies one occurrence by its canonical form,
// exact text and surrounding context.
func verdictCacheKey(f entities.FillerWord) string {
	h := sha256.Sum256([]byte(strings.Join([]string{
		f.CanonicalForm, f.ExactText,
		strings.Join(f.ContextBefore, " "), strings.Join(f.ContextAfter, " "),
	}, "|")))
	return "verdict:" + hex.EncodeToString(h[:])
}

// ClassifyFillers resolves ambiguous candidates in place. Unambiguous
// fillers pass through untouched. Cached verdicts are reused; the rest
// go to the model in a single batched request.
func (s *Service) ClassifyFillers(ctx context.Context, fillers []entities.FillerWord, language string) []entities.FillerWord {
	var pendingIdx []int
	for i := range fillers {
		if !engine.IsAmbiguousFiller(fillers[i].CanonicalForm) {
			continue
		}

		if s.store != nil {
			if raw, ok, err := s.store.Get(ctx, verdictCacheKey(fillers[i])); err == nil && ok {
				var v Verdict
				if json.Unmarshal([]byte(raw), &v) == nil {
					applyVerdict(&fillers[i], v)
					continue
				}
			}
		}
		pendingIdx = append(pendingIdx, i)
	}

	if len(pendingIdx) == 0 {
		return fillers
	}

	verdicts, err := s.requestVerdicts(ctx, fillers, pendingIdx, language)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("contextual filler judgment unavailable, using conservative fallback",
				zap.Int("candidates", len(pendingIdx)), zap.Error(err))
		}
		for batchIdx, i := range pendingIdx {
			applyVerdict(&fillers[i], fallbackVerdict(batchIdx))
		}
		return fillers
	}

	byIndex := make(map[int]Verdict, len(verdicts))
	for _, v := range verdicts {
		byIndex[v.Index] = v
	}

	for batchIdx, i := range pendingIdx {
		v, ok := byIndex[batchIdx]
		if !ok {
			v = fallbackVerdict(batchIdx)
		}
		applyVerdict(&fillers[i], v)

		if s.store != nil && ok {
			if raw, err := json.Marshal(v); err == nil {
				_ = s.store.Set(ctx, verdictCacheKey(fillers[i]), string(raw), s.verdictTTL)
			}
		}
	}
	return fillers
}

func applyVerdict(f *entities.FillerWord, v Verdict) {
	isFiller := v.IsFiller
	f.IsContextFiller = &isFiller
	f.ContextScore = v.Confidence
	f.ContextReason = v.Reason
	f.Suggestion = v.Suggestion
}

func (s *Service) requestVerdicts(ctx context.Context, fillers []entities.FillerWord, pendingIdx []int, language string) ([]Verdict, error) {
	if s.llm == nil || !s.llm.Configured() {
		return nil, fmt.Errorf("llm client not configured")
	}

	var b strings.Builder
	for batchIdx, i := range pendingIdx {
		f := fillers[i]
		fmt.Fprintf(&b, "%d. слово: %q, контекст: \"... %s [%s] %s ...\"\n",
			batchIdx, f.CanonicalForm,
			strings.Join(f.ContextBefore, " "), f.ExactText, strings.Join(f.ContextAfter, " "))
	}

	system := "Ты лингвист-эксперт по анализу устной речи. Для каждого вхождения определи, " +
		"употреблено ли слово как слово-паразит или несёт смысловую нагрузку. " +
		"Ответь строго JSON-массивом объектов вида " +
		`{"index": int, "is_filler": bool, "confidence": float, "reason": string, "suggestion": string}` +
		" без пояснений вне JSON."
	user := fmt.Sprintf("Язык записи: %s. Вхождения:\n%s", language, b.String())

	var verdicts []Verdict
	operation := func() error {
		content, err := s.llm.Chat(ctx, system, user)
		if err != nil {
			return err
		}
		parsed, err := ParseVerdicts(content)
		if err != nil {
			return err
		}
		verdicts = parsed
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = s.retryInterval
	attempts := uint64(s.maxAttempts)
	if attempts == 0 {
		attempts = 1
	}
	if err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(bo, attempts-1), ctx)); err != nil {
		return nil, err
	}
	return verdicts, nil
}

// GenerateFeedback produces a short narrative summary of the analysis.
// The narrative is optional; callers treat an error as "no narrative".
func (s *Service) GenerateFeedback(ctx context.Context, result *entities.AnalysisResult) (string, error) {
	if s.llm == nil || !s.llm.Configured() {
		return "", fmt.Errorf("llm client not configured")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Темп: %.1f слов/мин (%s). Фраз: %d, средняя длина %.1f слов. ",
		result.Pace.WordsPerMinute, result.Pace.Classification,
		result.Rhythm.PhraseCount, result.Rhythm.AvgWordsPerPhrase)
	fmt.Fprintf(&b, "Пауз: %d, слов-паразитов: %d, подозрительных моментов: %d.",
		len(result.Pauses), len(result.Fillers), len(result.SuspiciousMoments))

	system := "Ты тренер по публичным выступлениям. На основе метрик составь короткий " +
		"(3-5 предложений) дружелюбный отзыв о выступлении на русском языке. " +
		"Отметь сильные стороны и одну-две зоны роста. Без списков и заголовков."

	var narrative string
	operation := func() error {
		content, err := s.llm.Chat(ctx, system, b.String())
		if err != nil {
			return err
		}
		narrative = strings.TrimSpace(content)
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = s.retryInterval
	attempts := uint64(s.maxAttempts)
	if attempts == 0 {
		attempts = 1
	}
	if err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(bo, attempts-1), ctx)); err != nil {
		return "", err
	}
	return narrative, nil
}
