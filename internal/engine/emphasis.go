package engine

import (
	"fmt"
	"math"
	"strings"

	"github.com/xXxDanya2007xXx/speech-coach/internal/domain/entities"
)

// emphasisVocabulary maps intensifier words to a base weight used when
// they are spoken with stretched duration.
var emphasisVocabulary = map[string]float64{
	"очень": 0.6, "важно": 0.8, "критично": 0.8, "серьезно": 0.7,
	"особенно": 0.7, "прежде": 0.7, "всего": 0.7, "именно": 0.7,
	"как": 0.6, "раз": 0.6, "так": 0.6, "вот": 0.6,
}

const emphasisPauseBefore = 0.8

// detectEmphasis runs several independent checks over word timings.
// A word may produce more than one event when it matches more than one
// check.
func detectEmphasis(words []entities.WordTiming) []entities.EmphasisEvent {
	if len(words) == 0 {
		return nil
	}

	durations := make([]float64, len(words))
	for i, w := range words {
		durations[i] = w.Duration()
	}
	avg, std := meanStd(durations)

	var events []entities.EmphasisEvent
	for i, w := range words {
		dur := durations[i]
		lower := strings.ToLower(w.Text)

		if avg > 0 && dur > avg+std {
			intensity := math.Min(dur/0.5, 1.0)
			if std > 0 {
				intensity = math.Min((dur-avg)/(std*2), 1.0)
			}
			events = append(events, entities.EmphasisEvent{
				Timestamp:   w.Start,
				Word:        w.Text,
				Type:        entities.EmphasisDuration,
				Intensity:   intensity,
				Description: fmt.Sprintf("word %q held noticeably longer than average", w.Text),
			})
		}

		if i > 0 && lower == strings.ToLower(words[i-1].Text) {
			events = append(events, entities.EmphasisEvent{
				Timestamp:   w.Start,
				Word:        w.Text,
				Type:        entities.EmphasisRepetition,
				Intensity:   0.8,
				Description: fmt.Sprintf("immediate repetition of %q", w.Text),
			})
		}

		if weight, ok := emphasisVocabulary[lower]; ok && avg > 0 && weight > 0 {
			events = append(events, entities.EmphasisEvent{
				Timestamp:   w.Start,
				Word:        w.Text,
				Type:        entities.EmphasisContent,
				Intensity:   math.Min(0.5+(dur/avg)*0.3, 1.0),
				Description: fmt.Sprintf("intensifier %q", w.Text),
			})
		}

		if i > 0 {
			if gap := w.Start - words[i-1].End; gap > emphasisPauseBefore {
				events = append(events, entities.EmphasisEvent{
					Timestamp:   w.Start,
					Word:        w.Text,
					Type:        entities.EmphasisPause,
					Intensity:   math.Min(gap/2, 1.0),
					Description: fmt.Sprintf("%.1fs pause before %q", gap, w.Text),
				})
			}
		}

		if i > 0 && i < len(words)-1 && avg > 0 {
			rel := dur / avg
			if math.Abs(rel-1) > 0.5 {
				typ := entities.EmphasisDuration
				if rel < 0.7 {
					typ = entities.EmphasisSpeed
				}
				events = append(events, entities.EmphasisEvent{
					Timestamp:   w.Start,
					Word:        w.Text,
					Type:        typ,
					Intensity:   math.Min(math.Abs(rel-1), 1.0),
					Description: fmt.Sprintf("tempo change on %q", w.Text),
				})
			}
		}
	}
	return events
}
