package data

import (
	"math"
	"math/rand"
	"time"
)

// Category set names used by the built-in charts.
const (
	CategoriesPie = "pie"
	CategoriesBar = "bar"
)

// Sample sizes of the seeded analytics series.
const (
	HourlyPoints = 24
	DailyPoints  = 365
)

// Retention of the seeded series: a point is pruned once it is older than
// the longest range that reads it.
const (
	HourlyRetention = HourlyPoints * time.Hour
	DailyRetention  = DailyPoints * 24 * time.Hour
)

// SeedAnalytics fills s with the demo hiring analytics: 24 hourly points,
// a year of daily points, and the pie and bar category sets. Series are
// timestamped backwards from now. rng supplies the noise so tests can pass
// a fixed source.
func SeedAnalytics(s *Store, now time.Time, rng *rand.Rand) {
	hourTimes := make([]time.Time, HourlyPoints)
	hourValues := make([]float64, HourlyPoints)
	for i := range hourValues {
		hourTimes[i] = now.Add(-time.Duration(HourlyPoints-1-i) * time.Hour)
		hourValues[i] = HourlyValue(i, rng.Float64())
	}

	dayTimes := make([]time.Time, DailyPoints)
	dayValues := make([]float64, DailyPoints)
	for i := range dayValues {
		dayTimes[i] = now.AddDate(0, 0, -(DailyPoints - 1 - i))
		dayValues[i] = 70 + math.Sin(float64(i)/15)*50 + rng.Float64()*20
	}

	s.SetMaxPoints(SeriesHourly, HourlyPoints)
	s.SetMaxPoints(SeriesDaily, DailyPoints)
	s.SetRetention(SeriesHourly, HourlyRetention)
	s.SetRetention(SeriesDaily, DailyRetention)
	s.AddPoints(SeriesHourly, hourTimes, hourValues)
	s.AddPoints(SeriesDaily, dayTimes, dayValues)

	s.SetCategories(CategoriesPie, []Category{
		{"Frontend", 40}, {"Backend", 25}, {"AI/ML", 20}, {"UI/UX", 15},
	})
	s.SetCategories(CategoriesBar, []Category{
		{"React", 90}, {"Vue", 60}, {"Angular", 45}, {"Svelte", 30},
	})
}

// HourlyValue is the demand curve of the hourly series at step i with noise
// in [0, 1).
func HourlyValue(i int, noise float64) float64 {
	return 50 + math.Sin(float64(i)/3)*30 + noise*10
}
