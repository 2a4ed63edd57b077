package engine

import (
	"fmt"

	"github.com/xXxDanya2007xXx/speech-coach/internal/domain/entities"
)

const (
	adviceSeverityInfo       = "info"
	adviceSeveritySuggestion = "suggestion"
	adviceSeverityWarning    = "warning"
)

// buildAdvice produces four fixed coaching recommendations: speaking
// rate, filler words, pauses and phrase structure. Every run yields all
// four, severity reflects how far the speaker is from comfortable
// ranges.
func (e *Engine) buildAdvice(
	pace entities.PaceStats,
	fillers []entities.FillerWord,
	pauses []entities.ValidatedPause,
	rhythm entities.RhythmStats,
) []entities.Advice {
	return []entities.Advice{
		e.speechRateAdvice(pace),
		e.fillerAdvice(len(fillers), pace.TotalWords),
		pauseAdvice(pauses),
		phrasingAdvice(rhythm),
	}
}

func (e *Engine) speechRateAdvice(pace entities.PaceStats) entities.Advice {
	a := entities.Advice{Category: "speech_rate", Title: "Темп речи"}
	switch {
	case pace.TotalWords == 0 || pace.WordsPerMinute == 0:
		a.Severity = adviceSeverityInfo
		a.Observation = "Автоматический анализ темпа речи затруднён: объём распознанного текста или длительность фрагмента слишком малы."
		a.Recommendation = "Запишите более продолжительный фрагмент с отчётливой речью для получения корректной оценки темпа."
	case pace.WordsPerMinute < e.cfg.MinComfortWPM:
		a.Severity = adviceSeveritySuggestion
		a.Observation = fmt.Sprintf(
			"Оценённый темп речи составляет примерно %.1f слов в минуту, что ниже типичного диапазона публичных выступлений (%.0f–%.0f слов в минуту).",
			pace.WordsPerMinute, e.cfg.MinComfortWPM, e.cfg.MaxComfortWPM)
		a.Recommendation = "Если цель — более динамичная подача материала, имеет смысл немного ускорить речь, сократив избыточные паузы и используя более короткие формулировки."
	case pace.WordsPerMinute > e.cfg.MaxComfortWPM:
		a.Severity = adviceSeveritySuggestion
		a.Observation = fmt.Sprintf(
			"Оценённый темп речи составляет примерно %.1f слов в минуту, что выше типичного диапазона публичных выступлений (%.0f–%.0f слов в минуту).",
			pace.WordsPerMinute, e.cfg.MinComfortWPM, e.cfg.MaxComfortWPM)
		a.Recommendation = "Рекомендуется слегка замедлить подачу, делая более заметные логические паузы и подчёркивая ключевые фразы, чтобы слушателям было проще следить за мыслью."
	default:
		a.Severity = adviceSeverityInfo
		a.Observation = fmt.Sprintf(
			"Оценённый темп речи составляет примерно %.1f слов в минуту, что находится в пределах типичного диапазона публичных выступлений.",
			pace.WordsPerMinute)
		a.Recommendation = "Сохраняйте выбранный темп и при необходимости варьируйте его для подчёркивания ключевых смысловых блоков."
	}
	return a
}

func (e *Engine) fillerAdvice(fillerTotal, wordsTotal int) entities.Advice {
	a := entities.Advice{Category: "filler_words", Title: "Слова-паразиты"}

	per100 := 0.0
	if wordsTotal > 0 {
		per100 = float64(fillerTotal) / float64(wordsTotal) * 100
	}

	switch {
	case fillerTotal == 0:
		a.Severity = adviceSeverityInfo
		a.Observation = "В распознанном фрагменте не обнаружено типичных слов-паразитов на русском или английском языках."
		a.Recommendation = "Сохраняйте текущий уровень контроля речи: отсутствие слов-паразитов создаёт впечатление уверенного и подготовленного выступления."
	case per100 <= 3:
		a.Severity = adviceSeverityInfo
		a.Observation = fmt.Sprintf("Слова-паразиты присутствуют, но их доля невелика — порядка %.1f на каждые 100 слов.", per100)
		a.Recommendation = "Такой уровень слов-паразитов обычно не мешает восприятию. При желании можно дополнительно снизить их количество за счёт осознанных пауз и более точных формулировок."
	case per100 <= 8:
		a.Severity = adviceSeveritySuggestion
		a.Observation = fmt.Sprintf("Доля слов-паразитов составляет примерно %.1f на каждые 100 слов, что может слегка утяжелять восприятие речи.", per100)
		a.Recommendation = "Рекомендуется обратить внимание на наиболее часто повторяющиеся конструкции (например, 'как бы', 'типа', 'you know', 'like') и осознанно заменять их короткими паузами или нейтральными связками."
	default:
		a.Severity = adviceSeverityWarning
		a.Observation = fmt.Sprintf("Доля слов-паразитов составляет примерно %.1f на каждые 100 слов. Это достаточно высокий показатель, который заметно снижает чёткость речи.", per100)
		a.Recommendation = "Рекомендуется специально потренировать фрагменты выступления без слов-паразитов, используя записи и самопроверку. Полезно делать сознательные паузы вместо автоматических вставок ('ну', 'типа', 'как бы', 'uh', 'um' и т.п.)."
	}
	return a
}

func pauseAdvice(pauses []entities.ValidatedPause) entities.Advice {
	a := entities.Advice{Category: "pauses", Title: "Паузы в речи"}

	if len(pauses) == 0 {
		a.Severity = adviceSeverityInfo
		a.Observation = "В записи практически отсутствуют выделенные паузы между фрагментами речи."
		a.Recommendation = "Иногда полезно сознательно использовать короткие паузы для выделения ключевых мыслей и структурирования повествования."
		return a
	}

	var longCount int
	var maxDur, total float64
	for _, p := range pauses {
		total += p.Duration
		if p.Duration > maxDur {
			maxDur = p.Duration
		}
		if p.IsExcessive {
			longCount++
		}
	}
	avg := total / float64(len(pauses))
	longFraction := float64(longCount) / float64(len(pauses))

	if longCount > 0 && longFraction > 0.3 {
		a.Severity = adviceSeveritySuggestion
		a.Observation = fmt.Sprintf("В речи обнаружены длинные паузы (до %.1f секунд), и их доля среди всех пауз достаточно велика.", maxDur)
		a.Recommendation = "Рекомендуется заранее продумывать переходы между блоками выступления, чтобы заполнять длинные паузы чёткими вводными фразами или кратким резюме предыдущей части."
	} else {
		a.Severity = adviceSeverityInfo
		a.Observation = fmt.Sprintf("В речи присутствуют паузы (средняя длительность около %.1f секунд), их использование выглядит естественным.", avg)
		a.Recommendation = "Сохраняйте подобный баланс: паузы помогают аудитории обрабатывать информацию и воспринимать структуру выступления."
	}
	return a
}

func phrasingAdvice(rhythm entities.RhythmStats) entities.Advice {
	a := entities.Advice{Category: "phrasing", Title: "Структура фраз"}

	if rhythm.PhraseCount <= 1 {
		a.Severity = adviceSeverityInfo
		a.Observation = "Автоматический анализ структуры фраз затруднён: в записи выделен один непрерывный фрагмент речи без явных пауз между смысловыми блоками."
		a.Recommendation = "Для более чёткой структуры выступления имеет смысл сознательно использовать паузы между завершёнными мыслями и логическими частями."
		return a
	}

	a.Observation = fmt.Sprintf("Средняя длина фразы составляет около %.1f слов (~%.1f секунд). ",
		rhythm.AvgWordsPerPhrase, rhythm.AvgPhraseDuration)

	switch rhythm.LengthClass {
	case "short_phrases":
		a.Severity = adviceSeveritySuggestion
		a.Observation += "Фразы в основном короткие, структура может восприниматься несколько фрагментированной."
		a.Recommendation = "При необходимости можно объединять близкие по смыслу предложения в более цельные фразы, чтобы улучшить связность повествования."
	case "long_phrases":
		a.Severity = adviceSeveritySuggestion
		a.Observation += "Фразы в среднем достаточно длинные, что может усложнять восприятие сложных участков текста на слух."
		a.Recommendation = "Рекомендуется разбивать особо длинные фразы на более короткие смысловые единицы, добавляя паузы и явные логические связки."
	default:
		a.Severity = adviceSeverityInfo
		a.Observation += "Длина фраз выглядит сбалансированной для устного выступления."
		a.Recommendation = "Сохраняйте подобную структуру: чередование фраз средней длины делает речь более предсказуемой и удобной для восприятия."
	}

	switch rhythm.RhythmVariation {
	case "uniform":
		a.Observation += " Длительность фраз и пауз относительно равномерна, ритм выступления стабилен."
	case "moderately_variable":
		a.Observation += " Вариативность длительности фраз и пауз умеренная, что поддерживает внимание аудитории."
	case "highly_variable":
		a.Observation += " Длительность фраз и пауз заметно варьируется, ритм выступления может восприниматься неравномерным."
	}
	return a
}
