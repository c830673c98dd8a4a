package kpi

import (
	"crypto/sha256"
	"encoding/binary"
	"math"
)

// Sampling ranges for the generated metrics.
// They are fixed constants: changing any of them changes every
// generated record, so treat them as part of the wire contract.
const (
	minMealsServed = 500.0
	maxMealsServed = 5000.0

	minFoodWasteKg = 50.0
	maxFoodWasteKg = 600.0

	minCO2PerMealKg = 0.3
	maxCO2PerMealKg = 2.5

	minVegetarianPct = 10.0
	maxVegetarianPct = 70.0
)

// Per-field seed offsets. Each primary metric is sampled from its own
// offset of the base seed so the fields vary independently.
const (
	offsetFoodWaste  = 1
	offsetCO2PerMeal = 2
	offsetVegetarian = 3
)

// Record is the full set of sustainability metrics for one site and period.
// It is a value object: constructed per call, never stored.
type Record struct {
	SiteID string `json:"site_id"`
	Period string `json:"period"`

	// MealsServed is the number of meals served during the period.
	MealsServed int `json:"meals_served"`

	// FoodWasteKg is the total mass of food wasted, in kilograms (1 decimal).
	FoodWasteKg float64 `json:"food_waste_kg"`

	// FoodWastePerMealG is FoodWasteKg spread over MealsServed, in grams
	// per meal (1 decimal). Derived.
	FoodWastePerMealG float64 `json:"food_waste_per_meal_g"`

	// CO2PerMealKg is the carbon footprint per meal, in kilograms (2 decimals).
	CO2PerMealKg float64 `json:"co2_per_meal_kg"`

	// VegetarianSharePercent is the share of vegetarian meals, 0–100 (1 decimal).
	VegetarianSharePercent float64 `json:"vegetarian_share_percent"`

	// TotalCO2Kg is CO2PerMealKg * MealsServed, in kilograms (1 decimal). Derived.
	TotalCO2Kg float64 `json:"total_co2_kg"`
}

// Generate produces the KPI record for the given site and period.
//
// The function is pure: the same (siteID, period) pair yields a
// byte-for-byte identical record on every call, in every process, on
// every platform. There is no randomness — each field is sampled from a
// SHA-256 digest of the inputs, so distinct inputs yield visibly
// different but still plausible values.
//
// siteID does not have to name a known site; the generator works for
// arbitrary identifiers. Input validation belongs to the caller.
func Generate(siteID, period string) Record {
	seed := seedFor(siteID, period)

	mealsServed := int(sample(seed, minMealsServed, maxMealsServed))
	foodWasteKg := round1(sample(seed+offsetFoodWaste, minFoodWasteKg, maxFoodWasteKg))

	// mealsServed is at least minMealsServed, so the division is safe.
	foodWastePerMealG := round1(foodWasteKg * 1000 / float64(mealsServed))

	co2PerMealKg := round2(sample(seed+offsetCO2PerMeal, minCO2PerMealKg, maxCO2PerMealKg))
	vegetarianPct := round1(sample(seed+offsetVegetarian, minVegetarianPct, maxVegetarianPct))
	totalCO2Kg := round1(co2PerMealKg * float64(mealsServed))

	return Record{
		SiteID:                 siteID,
		Period:                 period,
		MealsServed:            mealsServed,
		FoodWasteKg:            foodWasteKg,
		FoodWastePerMealG:      foodWastePerMealG,
		CO2PerMealKg:           co2PerMealKg,
		VegetarianSharePercent: vegetarianPct,
		TotalCO2Kg:             totalCO2Kg,
	}
}

// seedFor derives the base seed from the canonical "<siteID>:<period>" key.
// The first 32 bits of the SHA-256 digest are used: a stable,
// platform-independent encoding, never a language object hash.
func seedFor(siteID, period string) uint64 {
	sum := sha256.Sum256([]byte(siteID + ":" + period))
	return uint64(binary.BigEndian.Uint32(sum[:4]))
}

// sample maps a seed deterministically into [min, max) using the
// fractional part of a scaled sine. Not random in any statistical sense —
// just a fixed, well-spread function of the seed.
func sample(seed uint64, min, max float64) float64 {
	x := math.Sin(float64(seed)) * 10000
	frac := x - math.Floor(x)
	return min + (max-min)*frac
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
