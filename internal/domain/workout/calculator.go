package workout

import (
	"errors"

	"fitclass-server/internal/domain/class"
)

var ErrUnsupportedCombination = errors.New("unsupported category/intensity combination")

// Metrics holds the totals for one attendee over a full class.
type Metrics struct {
	Calories float64
	Watts    float64
}

type rates struct {
	caloriesPerMin float64
	wattsPerMin    float64
}

// Per-minute rates for every supported (category, intensity) pair.
var rateTable = map[class.Category]map[class.Intensity]rates{
	class.CategoryYoga: {
		class.IntensityEasy:   {caloriesPerMin: 4, wattsPerMin: 30},
		class.IntensityMedium: {caloriesPerMin: 6, wattsPerMin: 50},
		class.IntensityHard:   {caloriesPerMin: 8, wattsPerMin: 70},
	},
	class.CategoryPilates: {
		class.IntensityEasy:   {caloriesPerMin: 5, wattsPerMin: 40},
		class.IntensityMedium: {caloriesPerMin: 7, wattsPerMin: 60},
		class.IntensityHard:   {caloriesPerMin: 9, wattsPerMin: 80},
	},
	class.CategoryCrossfit: {
		class.IntensityEasy:   {caloriesPerMin: 8, wattsPerMin: 70},
		class.IntensityMedium: {caloriesPerMin: 10, wattsPerMin: 90},
		class.IntensityHard:   {caloriesPerMin: 12, wattsPerMin: 110},
	},
	class.CategorySpinning: {
		class.IntensityEasy:   {caloriesPerMin: 6, wattsPerMin: 50},
		class.IntensityMedium: {caloriesPerMin: 9, wattsPerMin: 80},
		class.IntensityHard:   {caloriesPerMin: 11, wattsPerMin: 100},
	},
}

// Calculator maps (category, intensity, duration) to workout totals. It is
// a pure lookup with no side effects.
type Calculator struct{}

func NewCalculator() *Calculator {
	return &Calculator{}
}

func (c *Calculator) Calculate(category class.Category, intensity class.Intensity, durationMin int) (Metrics, error) {
	byIntensity, ok := rateTable[category]
	if !ok {
		return Metrics{}, ErrUnsupportedCombination
	}
	r, ok := byIntensity[intensity]
	if !ok {
		return Metrics{}, ErrUnsupportedCombination
	}
	minutes := float64(durationMin)
	return Metrics{
		Calories: r.caloriesPerMin * minutes,
		Watts:    r.wattsPerMin * minutes,
	}, nil
}
