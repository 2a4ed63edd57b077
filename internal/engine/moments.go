package engine

import (
	"fmt"
	"math"
	"strings"

	"github.com/xXxDanya2007xXx/speech-coach/internal/domain/entities"
)

const (
	fastSpeechWPM      = 200.0
	slowSpeechWPM      = 80.0
	incoherenceMin     = 0.7
	complexWordMinLen  = 8
	hesitationPauseMax = 1.0
	hesitationPairGap  = 2.0
	backToBackGap      = 1.0
)

// detectMoments assembles suspicious moments in a fixed order: filler
// clusters, excessive pauses, pace outliers per phrase, incoherent
// phrases, then hesitation patterns. IDs are sequential across the
// whole pass.
func (e *Engine) detectMoments(
	words []entities.WordTiming,
	pauses []entities.ValidatedPause,
	phrases []entities.Phrase,
	fillers []entities.FillerWord,
) []entities.SuspiciousMoment {
	var moments []entities.SuspiciousMoment
	nextID := 1
	add := func(m entities.SuspiciousMoment) {
		m.ID = nextID
		nextID++
		moments = append(moments, m)
	}

	for _, cluster := range e.fillerClusters(fillers) {
		severity := entities.SeverityMedium
		if len(cluster) >= 5 {
			severity = entities.SeverityCritical
		} else if len(cluster) > 3 {
			severity = entities.SeverityHigh
		}
		add(entities.SuspiciousMoment{
			Timestamp:   cluster[0].Timestamp,
			Type:        entities.MomentFillerCluster,
			Severity:    severity,
			Description: fmt.Sprintf("%d filler words in quick succession", len(cluster)),
			Evidence: map[string]float64{
				"filler_count": float64(len(cluster)),
				"span":         cluster[len(cluster)-1].Timestamp - cluster[0].Timestamp,
			},
		})
	}

	for _, p := range pauses {
		if !p.IsExcessive {
			continue
		}
		add(entities.SuspiciousMoment{
			Timestamp:   p.Start,
			Type:        entities.MomentExcessivePause,
			Severity:    entities.SeverityMedium,
			Description: fmt.Sprintf("%.1fs pause", p.Duration),
			Evidence:    map[string]float64{"duration": p.Duration},
		})
	}

	for _, ph := range phrases {
		wpm := phraseWPM(ph)
		if wpm > fastSpeechWPM {
			add(entities.SuspiciousMoment{
				Timestamp:   ph.Start,
				Type:        entities.MomentFastSpeech,
				Severity:    entities.SeverityMedium,
				Description: fmt.Sprintf("very fast phrase at %.0f wpm", wpm),
				Evidence:    map[string]float64{"wpm": wpm},
			})
		} else if wpm > 0 && wpm < slowSpeechWPM {
			add(entities.SuspiciousMoment{
				Timestamp:   ph.Start,
				Type:        entities.MomentSlowSpeech,
				Severity:    entities.SeverityMedium,
				Description: fmt.Sprintf("very slow phrase at %.0f wpm", wpm),
				Evidence:    map[string]float64{"wpm": wpm},
			})
		}
	}

	for _, ph := range phrases {
		score := phraseComplexity(ph, fillers)
		if score <= incoherenceMin {
			continue
		}
		add(entities.SuspiciousMoment{
			Timestamp:   ph.Start,
			Type:        entities.MomentIncoherence,
			Severity:    entities.SeverityMedium,
			Description: "overloaded phrase, hard to follow",
			Evidence: map[string]float64{
				"complexity": score,
				"clarity":    phraseClarity(ph),
			},
		})
	}

	for _, w := range words {
		if !isHesitationWord(w.Text) {
			continue
		}
		add(entities.SuspiciousMoment{
			Timestamp:   w.Start,
			Type:        entities.MomentHesitation,
			Severity:    entities.SeverityMedium,
			Description: fmt.Sprintf("hesitation sound %q", w.Text),
			Evidence:    map[string]float64{"confidence": 0.8},
		})
	}

	for i := 0; i+1 < len(pauses); i++ {
		p1, p2 := pauses[i], pauses[i+1]
		if p1.Duration >= hesitationPauseMax || p2.Duration >= hesitationPauseMax {
			continue
		}
		if math.Abs(p2.Start-p1.End) >= hesitationPairGap {
			continue
		}
		if wordsBetween(words, p1.End, p2.Start) > 1 {
			continue
		}
		add(entities.SuspiciousMoment{
			Timestamp:   p1.Start,
			Type:        entities.MomentHesitation,
			Severity:    entities.SeverityMedium,
			Description: "stuttering pause pattern",
			Evidence:    map[string]float64{"confidence": 0.6},
		})
	}

	for i := 0; i+1 < len(fillers); i++ {
		gap := fillers[i+1].Timestamp - (fillers[i].Timestamp + fillers[i].Duration)
		if gap >= backToBackGap {
			continue
		}
		add(entities.SuspiciousMoment{
			Timestamp:   fillers[i].Timestamp,
			Type:        entities.MomentHesitation,
			Severity:    entities.SeverityHigh,
			Description: fmt.Sprintf("back-to-back fillers %q and %q", fillers[i].CanonicalForm, fillers[i+1].CanonicalForm),
			Evidence:    map[string]float64{"confidence": 0.8},
		})
	}

	return moments
}

// fillerClusters groups consecutive fillers whose gaps stay below the
// configured cluster gap; only groups of two or more count.
func (e *Engine) fillerClusters(fillers []entities.FillerWord) [][]entities.FillerWord {
	var clusters [][]entities.FillerWord
	var cur []entities.FillerWord
	flush := func() {
		if len(cur) >= 2 {
			clusters = append(clusters, cur)
		}
		cur = nil
	}
	for _, f := range fillers {
		if len(cur) > 0 && f.Timestamp-cur[len(cur)-1].Timestamp >= e.cfg.FillerClusterGap {
			flush()
		}
		cur = append(cur, f)
	}
	flush()
	return clusters
}

// phraseComplexity scores how overloaded a phrase is: raw length,
// share of long or hyphenated words, and filler density, capped at 1.
func phraseComplexity(ph entities.Phrase, fillers []entities.FillerWord) float64 {
	words := splitWords(ph.Text)
	score := 0.0
	switch {
	case len(words) > 20:
		score += 0.4
	case len(words) > 15:
		score += 0.3
	case len(words) > 10:
		score += 0.2
	}

	if len(words) > 0 {
		complexCount := 0
		for _, w := range strings.Fields(ph.Text) {
			if len([]rune(w)) > complexWordMinLen || strings.Contains(w, "-") {
				complexCount++
			}
		}
		ratio := float64(complexCount) / float64(len(words))
		score += math.Min(ratio*0.4, 0.4)
	}

	fillerCount := 0
	for _, f := range fillers {
		if f.Timestamp >= ph.Start && f.Timestamp < ph.End {
			fillerCount++
		}
	}
	score += math.Min(float64(fillerCount)*0.1, 0.2)

	return math.Min(score, 1.0)
}

// phraseClarity estimates how easy a phrase is to perceive: moderate
// pausing and moderate word length raise it, extremes lower it.
func phraseClarity(ph entities.Phrase) float64 {
	score := 0.5

	if ph.PauseCount > 0 {
		if ph.AvgPauseDuration >= 0.3 && ph.AvgPauseDuration <= 1.0 {
			score += 0.3
		} else if ph.AvgPauseDuration > 1.0 {
			score -= 0.2
		}
	}

	words := strings.Fields(ph.Text)
	if len(words) > 0 {
		var totalLen int
		for _, w := range words {
			totalLen += len([]rune(w))
		}
		avgLen := float64(totalLen) / float64(len(words))
		if avgLen < 6 {
			score += 0.1
		} else if avgLen > 8 {
			score -= 0.1
		}
	}

	return math.Max(0, math.Min(score, 1.0))
}

func wordsBetween(words []entities.WordTiming, start, end float64) int {
	n := 0
	for _, w := range words {
		if w.Start >= start && w.End <= end {
			n++
		}
	}
	return n
}
