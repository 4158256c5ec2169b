package services

import (
	"testing"
	"time"

	"newsroom-cms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, minute int) time.Time {
	return time.Date(2024, 3, 14, hour, minute, 0, 0, time.UTC)
}

func publishedArticle(id uint, importance int, reading models.ReadingTime, publishedAt time.Time) models.Article {
	a := models.Article{Importance: importance, ReadingTime: reading, PublishedAt: &publishedAt}
	a.ID = id
	return a
}

func ids(articles []models.Article) []uint {
	out := make([]uint, 0, len(articles))
	for _, a := range articles {
		out = append(out, a.ID)
	}
	return out
}

func TestReadingScore(t *testing.T) {
	w := DefaultReadingWindows()

	tests := []struct {
		name    string
		reading models.ReadingTime
		now     time.Time
		want    float64
	}{
		{"anytime in the morning", models.ReadingAnytime, at(10, 30), 0.5},
		{"anytime at night", models.ReadingAnytime, at(23, 0), 0.5},
		{"morning before cutoff", models.ReadingMorning, at(10, 30), 1},
		{"morning at cutoff", models.ReadingMorning, at(11, 0), 0},
		{"midday before window", models.ReadingMidday, at(10, 30), 0},
		{"midday at start", models.ReadingMidday, at(11, 0), 1},
		{"midday at end", models.ReadingMidday, at(16, 0), 0},
		{"evening before start", models.ReadingEvening, at(10, 30), 0},
		{"evening at start", models.ReadingEvening, at(16, 0), 1},
		{"unknown falls back to anytime", models.ReadingTime(""), at(12, 0), 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReadingScore(tt.reading, tt.now, w))
		})
	}
}

func TestRankForFrontpage_ImportanceShrinksAge(t *testing.T) {
	now := at(12, 0)
	a := publishedArticle(1, 5, models.ReadingAnytime, now.Add(-3600*time.Second))
	b := publishedArticle(2, 1, models.ReadingAnytime, now.Add(-60*time.Second))

	ranked := RankForFrontpage([]models.Article{a, b}, now, DefaultReadingWindows())

	assert.Equal(t, []uint{2, 1}, ids(ranked))
}

func TestRankForFrontpage_TimeWindowWins(t *testing.T) {
	now := at(10, 30)
	published := now.Add(-time.Hour)
	candidates := []models.Article{
		publishedArticle(1, 1, models.ReadingAnytime, published),
		publishedArticle(2, 1, models.ReadingEvening, published),
		publishedArticle(3, 1, models.ReadingMidday, published),
		publishedArticle(4, 1, models.ReadingMorning, published),
	}

	ranked := RankForFrontpage(candidates, now, DefaultReadingWindows())

	assert.Equal(t, []uint{4, 1, 2, 3}, ids(ranked))
}

func TestRankForFrontpage_ExcludesUnpublished(t *testing.T) {
	now := at(12, 0)
	draft := models.Article{Importance: 1}
	draft.ID = 1
	scheduled := publishedArticle(2, 5, models.ReadingAnytime, now.Add(time.Minute))
	live := publishedArticle(3, 1, models.ReadingAnytime, now.Add(-time.Minute))
	justNow := publishedArticle(4, 1, models.ReadingAnytime, now)

	ranked := RankForFrontpage([]models.Article{draft, scheduled, live, justNow}, now, DefaultReadingWindows())

	assert.Equal(t, []uint{4, 3}, ids(ranked))
}

func TestRankForFrontpage_TiesBreakOnID(t *testing.T) {
	now := at(12, 0)
	published := now.Add(-10 * time.Minute)
	candidates := []models.Article{
		publishedArticle(9, 2, models.ReadingAnytime, published),
		publishedArticle(3, 2, models.ReadingAnytime, published),
		publishedArticle(5, 2, models.ReadingAnytime, published),
	}

	ranked := RankForFrontpage(candidates, now, DefaultReadingWindows())

	assert.Equal(t, []uint{3, 5, 9}, ids(ranked))
}

func TestRankForFrontpage_ZeroImportanceCountsAsOne(t *testing.T) {
	now := at(12, 0)
	zero := publishedArticle(1, 0, models.ReadingAnytime, now.Add(-100*time.Second))
	two := publishedArticle(2, 2, models.ReadingAnytime, now.Add(-150*time.Second))

	ranked := RankForFrontpage([]models.Article{zero, two}, now, DefaultReadingWindows())

	assert.Equal(t, []uint{2, 1}, ids(ranked))
}

func TestRankForFrontpage_Empty(t *testing.T) {
	assert.Empty(t, RankForFrontpage(nil, at(12, 0), DefaultReadingWindows()))
}

func TestParseReadingWindows(t *testing.T) {
	w, err := ParseReadingWindows("10:00", "11:30", "15:45:30", "18:00:00")
	require.NoError(t, err)
	assert.Equal(t, 10*time.Hour, w.MorningStart)
	assert.Equal(t, 11*time.Hour+30*time.Minute, w.MiddayStart)
	assert.Equal(t, 15*time.Hour+45*time.Minute+30*time.Second, w.MiddayEnd)
	assert.Equal(t, 18*time.Hour, w.EveningStart)

	_, err = ParseReadingWindows("10:00", "nope", "16:00", "16:00")
	assert.Error(t, err)

	_, err = ParseReadingWindows("10:00", "16:00", "11:00", "16:00")
	assert.Error(t, err)
}
