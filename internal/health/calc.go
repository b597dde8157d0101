// Package health holds the pure derived-metric formulas: BMI, MET-based
// calorie estimates, and Harris-Benedict daily calorie targets.
package health

import "math"

// BMI categories, WHO thresholds.
const (
	CategoryUnderweight = "Underweight"
	CategoryNormal      = "Normal weight"
	CategoryOverweight  = "Overweight"
	CategoryObesityI    = "Obesity Class I"
	CategoryObesityII   = "Obesity Class II"
	CategoryObesityIII  = "Obesity Class III"
)

// metValues maps activity types to their MET (Metabolic Equivalent of Task)
// value. Unknown activity types fall back to "other".
var metValues = map[string]float64{
	"cardio":      8.0, // running/jogging
	"strength":    5.0, // weight training
	"flexibility": 2.5, // yoga/stretching
	"sports":      6.0, // basketball, soccer, etc.
	"other":       4.0,
}

// activityMultipliers maps activity level strings to their TDEE multiplier.
var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very-active": 1.9,
}

// ComputeBMI returns weight(kg) / height(m)^2 rounded to one decimal.
// Callers must validate heightCm > 0; a zero height divides by zero.
func ComputeBMI(weightKg, heightCm float64) float64 {
	heightM := heightCm / 100
	bmi := weightKg / (heightM * heightM)
	return math.Round(bmi*10) / 10
}

// BMICategory classifies a BMI value. Lower bounds are inclusive: 18.5 is
// already "Normal weight", 25 is already "Overweight", and so on.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return CategoryUnderweight
	case bmi < 25:
		return CategoryNormal
	case bmi < 30:
		return CategoryOverweight
	case bmi < 35:
		return CategoryObesityI
	case bmi < 40:
		return CategoryObesityII
	default:
		return CategoryObesityIII
	}
}

// CaloriesBurned estimates calories for an activity from its MET value:
// MET x weight(kg) x duration(hours), rounded to the nearest integer.
func CaloriesBurned(activityType string, durationMinutes int, weightKg float64) int {
	met, ok := metValues[activityType]
	if !ok {
		met = metValues["other"]
	}
	hours := float64(durationMinutes) / 60
	return int(math.Round(met * weightKg * hours))
}

// DailyCalorieTarget computes a daily calorie budget from the Harris-Benedict
// BMR, an activity multiplier, and a flat +-500 kcal adjustment for goal
// "gain" or "lose" ("maintain" is unadjusted). An unknown activityLevel is
// treated as sedentary. No lower clamp is applied; an aggressive deficit can
// produce a target below healthy minimums.
func DailyCalorieTarget(age int, gender string, weightKg, heightCm float64, activityLevel, goal string) int {
	var bmr float64
	if gender == "male" {
		bmr = 88.362 + 13.397*weightKg + 4.799*heightCm - 5.677*float64(age)
	} else {
		bmr = 447.593 + 9.247*weightKg + 3.098*heightCm - 4.330*float64(age)
	}

	mult, ok := activityMultipliers[activityLevel]
	if !ok {
		mult = activityMultipliers["sedentary"]
	}
	tdee := bmr * mult

	switch goal {
	case "lose":
		tdee -= 500
	case "gain":
		tdee += 500
	}
	return int(math.Round(tdee))
}
