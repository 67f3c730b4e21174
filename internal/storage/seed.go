package storage

import (
	"time"

	"github.com/mkobaru/yotei/internal/model"
)

// Seed builds the fixed first-run example events as a pure function of
// now, so an empty store always yields the same shape of data.
func Seed(now time.Time) []model.Event {
	day := func(offset, hour, min int) time.Time {
		d := now.AddDate(0, 0, offset)
		return time.Date(d.Year(), d.Month(), d.Day(), hour, min, 0, 0, now.Location())
	}
	return []model.Event{
		{
			ID:          "seed-1",
			Title:       "ランチミーティング",
			Timestamp:   day(0, 12, 0),
			Description: "チームと打ち合わせ",
			ColorTag:    "blue",
		},
		{
			ID:        "seed-2",
			Title:     "歯医者",
			Timestamp: day(1, 10, 0),
			ColorTag:  "green",
		},
		{
			ID:          "seed-3",
			Title:       "友達と夕食",
			Timestamp:   day(3, 19, 0),
			Description: "駅前のイタリアン",
			ColorTag:    "orange",
		},
		{
			ID:        "seed-4",
			Title:     "ジム",
			Timestamp: day(7, 9, 0),
			ColorTag:  "red",
		},
	}
}
