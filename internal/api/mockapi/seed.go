package mockapi

import (
	"math/rand"
	"time"

	"vitalog/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
)

// seedDemoData fills every seeded user with a trailing week of generated
// water, sleep and activity records plus a few custom items. Intended for
// the CLI demo and the development server, not for tests that assert exact
// collection contents.
func (c *Client) seedDemoData() {
	gofakeit.Seed(time.Now().UnixNano())

	c.db.mu.Lock()
	defer c.db.mu.Unlock()

	intensities := []string{models.IntensityLow, models.IntensityModerate, models.IntensityHigh}

	for _, user := range c.db.users {
		uid := user.ID
		for daysBack := 0; daysBack < 7; daysBack++ {
			day := time.Now().AddDate(0, 0, -daysBack)

			for i := 0; i < gofakeit.Number(2, 5); i++ {
				c.db.water[uid] = append(c.db.water[uid], models.WaterRecord{
					ID:       uuid.NewString(),
					Datetime: demoTimestamp(day),
					AmountMl: float64(gofakeit.Number(150, 500)),
				})
			}

			c.db.sleep[uid] = append(c.db.sleep[uid], models.SleepRecord{
				ID:       uuid.NewString(),
				Datetime: demoTimestamp(day),
				Hours:    float64(gofakeit.Number(50, 90)) / 10,
			})

			for i := 0; i < gofakeit.Number(0, 2); i++ {
				c.db.activity[uid] = append(c.db.activity[uid], models.ActivityRecord{
					ID:        uuid.NewString(),
					Datetime:  demoTimestamp(day),
					Minutes:   float64(gofakeit.Number(15, 90)),
					Intensity: intensities[rand.Intn(len(intensities))],
				})
			}
		}
	}

	for _, cat := range c.db.categories {
		for i := 0; i < gofakeit.Number(1, 4); i++ {
			c.db.customItems[cat.ID] = append(c.db.customItems[cat.ID], models.CustomItem{
				ID:         uuid.NewString(),
				CategoryID: cat.ID,
				Datetime:   demoTimestamp(time.Now().AddDate(0, 0, -gofakeit.Number(0, 6))),
				Note:       gofakeit.Sentence(4),
			})
		}
	}
}

// demoTimestamp renders a random clock time on the given day in the
// canonical record layout.
func demoTimestamp(day time.Time) string {
	at := time.Date(day.Year(), day.Month(), day.Day(),
		gofakeit.Number(6, 22), gofakeit.Number(0, 59), 0, 0, day.Location())
	return at.Format("2006-01-02T15:04")
}
