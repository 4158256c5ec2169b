package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"newsroom-cms/models"
)

// ReadingWindows are time-of-day offsets from midnight that decide which
// reading-time tag is in season.
type ReadingWindows struct {
	MorningStart time.Duration
	MiddayStart  time.Duration
	MiddayEnd    time.Duration
	EveningStart time.Duration
}

func DefaultReadingWindows() ReadingWindows {
	return ReadingWindows{
		MorningStart: 11 * time.Hour,
		MiddayStart:  11 * time.Hour,
		MiddayEnd:    16 * time.Hour,
		EveningStart: 16 * time.Hour,
	}
}

// ParseReadingWindows builds windows from HH:MM or HH:MM:SS strings.
func ParseReadingWindows(morningStart, middayStart, middayEnd, eveningStart string) (ReadingWindows, error) {
	var w ReadingWindows
	var err error
	if w.MorningStart, err = parseTimeOfDay(morningStart); err != nil {
		return w, err
	}
	if w.MiddayStart, err = parseTimeOfDay(middayStart); err != nil {
		return w, err
	}
	if w.MiddayEnd, err = parseTimeOfDay(middayEnd); err != nil {
		return w, err
	}
	if w.EveningStart, err = parseTimeOfDay(eveningStart); err != nil {
		return w, err
	}
	if w.MiddayEnd < w.MiddayStart {
		return w, fmt.Errorf("midday window ends (%s) before it starts (%s)", middayEnd, middayStart)
	}
	return w, nil
}

func parseTimeOfDay(value string) (time.Duration, error) {
	layout := "15:04:05"
	if strings.Count(value, ":") == 1 {
		layout = "15:04"
	}
	t, err := time.Parse(layout, value)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", value, err)
	}
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second, nil
}

func timeOfDay(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond())
}

// ReadingScore rates how well an article's reading time fits now.
func ReadingScore(readingTime models.ReadingTime, now time.Time, w ReadingWindows) float64 {
	tod := timeOfDay(now)
	switch readingTime {
	case models.ReadingMorning:
		if tod < w.MorningStart {
			return 1
		}
		return 0
	case models.ReadingMidday:
		if tod >= w.MiddayStart && tod < w.MiddayEnd {
			return 1
		}
		return 0
	case models.ReadingEvening:
		if tod >= w.EveningStart {
			return 1
		}
		return 0
	default:
		return 0.5
	}
}

type rankedArticle struct {
	article models.Article
	reading float64
	decay   float64
}

// RankForFrontpage orders head revisions for display: best reading fit
// first, then by age shrunk by importance, then by id. Articles that are
// not yet published are dropped.
func RankForFrontpage(candidates []models.Article, now time.Time, w ReadingWindows) []models.Article {
	ranked := make([]rankedArticle, 0, len(candidates))
	for _, a := range candidates {
		if a.PublishedAt == nil || a.PublishedAt.After(now) {
			continue
		}
		importance := a.Importance
		if importance < models.MinImportance {
			importance = models.MinImportance
		}
		age := now.Sub(*a.PublishedAt).Seconds()
		ranked = append(ranked, rankedArticle{
			article: a,
			reading: ReadingScore(a.ReadingTime, now, w),
			decay:   age * (1 / float64(importance)),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].reading != ranked[j].reading {
			return ranked[i].reading > ranked[j].reading
		}
		if ranked[i].decay != ranked[j].decay {
			return ranked[i].decay < ranked[j].decay
		}
		return ranked[i].article.ID < ranked[j].article.ID
	})

	result := make([]models.Article, 0, len(ranked))
	for _, r := range ranked {
		result = append(result, r.article)
	}
	return result
}
