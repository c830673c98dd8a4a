package kpi

// Trend constants returned by the comparator.
const (
	TrendUp   = "up"
	TrendDown = "down"
	TrendFlat = "flat"
)

// Dead-zone thresholds around zero: deltas smaller than these are
// reported as "flat" so rounding noise never shows up as a trend.
const (
	thresholdWasteG     = 5.0  // grams per meal
	thresholdCO2Kg      = 0.05 // kilograms per meal
	thresholdVegetarian = 2.0  // percentage points
)

// Delta is the result of comparing one site's KPIs across two periods.
// Trend flags carry raw-sign semantics: "up" means the current value is
// higher than the previous one, regardless of whether higher is better.
type Delta struct {
	SiteID         string `json:"site_id"`
	CurrentPeriod  string `json:"current_period"`
	PreviousPeriod string `json:"previous_period"`

	Current  Record `json:"current"`
	Previous Record `json:"previous"`

	DeltaFoodWastePerMealG      float64 `json:"delta_food_waste_per_meal_g"`
	DeltaCO2PerMealKg           float64 `json:"delta_co2_per_meal_kg"`
	DeltaVegetarianSharePercent float64 `json:"delta_vegetarian_share_percent"`

	WasteTrend      string `json:"waste_trend"`
	CO2Trend        string `json:"co2_trend"`
	VegetarianTrend string `json:"vegetarian_trend"`
}

// Compare generates the KPI records for both periods and derives the
// deltas and trend flags between them.
//
// Like Generate, Compare is pure. Comparing a period against itself
// yields all-zero deltas and all-flat trends.
func Compare(siteID, currentPeriod, previousPeriod string) Delta {
	current := Generate(siteID, currentPeriod)
	previous := Generate(siteID, previousPeriod)

	deltaWaste := round1(current.FoodWastePerMealG - previous.FoodWastePerMealG)
	deltaCO2 := round2(current.CO2PerMealKg - previous.CO2PerMealKg)
	deltaVeg := round1(current.VegetarianSharePercent - previous.VegetarianSharePercent)

	return Delta{
		SiteID:         siteID,
		CurrentPeriod:  currentPeriod,
		PreviousPeriod: previousPeriod,

		Current:  current,
		Previous: previous,

		DeltaFoodWastePerMealG:      deltaWaste,
		DeltaCO2PerMealKg:           deltaCO2,
		DeltaVegetarianSharePercent: deltaVeg,

		WasteTrend:      trend(deltaWaste, thresholdWasteG),
		CO2Trend:        trend(deltaCO2, thresholdCO2Kg),
		VegetarianTrend: trend(deltaVeg, thresholdVegetarian),
	}
}

// trend classifies a delta against a dead-zone threshold.
func trend(delta, threshold float64) string {
	switch {
	case delta > threshold:
		return TrendUp
	case delta < -threshold:
		return TrendDown
	default:
		return TrendFlat
	}
}
