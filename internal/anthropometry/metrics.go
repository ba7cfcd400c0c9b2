// Package anthropometry computes body-composition metrics from tape and
// scale measurements.
//
// Every function here is total: missing inputs (zero or NaN) and domain
// errors resolve to 0 instead of an error, so callers can render results
// without checking anything. A 0 result means "insufficient data".
package anthropometry

import "math"

const (
	// Visceral fat level bounds.
	MinVisceralFatLevel = 1
	MaxVisceralFatLevel = 59

	maleWHRBaseline   = 0.90
	femaleWHRBaseline = 0.85

	waterFraction   = 0.73
	proteinFraction = 0.20
)

// Inputs are the raw measurements. Weight in kg, lengths in cm, age in years.
type Inputs struct {
	Weight float64
	Height float64
	Waist  float64
	Hip    float64
	Neck   float64
	Age    int
	Gender Gender
}

// HealthMetrics is the derived profile. MuscleMass is lean body mass, a
// proxy and not a measured muscle mass. Fields are rounded independently and
// are not forced to add up.
type HealthMetrics struct {
	BMI              float64 `json:"bmi"`
	WHR              float64 `json:"whr"`
	BodyFat          float64 `json:"body_fat"`
	MuscleMass       float64 `json:"muscle_mass"`
	WaterMass        float64 `json:"water_mass"`
	WaterPct         float64 `json:"water_pct"`
	ProteinPct       float64 `json:"protein_pct"`
	BMR              int     `json:"bmr"`
	VisceralFatLevel int     `json:"visceral_fat_level"`
}

// BMI returns weight / height(m)^2 rounded to one decimal.
func BMI(weight, heightCm float64) float64 {
	if !present(weight) || !present(heightCm) {
		return 0
	}
	m := heightCm / 100
	return round(weight/(m*m), 1)
}

// WHR returns the waist-to-hip ratio rounded to two decimals.
func WHR(waist, hip float64) float64 {
	if !present(waist) || !present(hip) {
		return 0
	}
	return round(waist/hip, 2)
}

// BodyFatNavy estimates body fat percentage with the U.S. Navy
// circumference method. The result is floored at 0 and rounded to one
// decimal. The female branch needs the hip measurement.
func BodyFatNavy(waist, neck, heightCm, hip float64, gender Gender) float64 {
	if !present(waist) || !present(neck) || !present(heightCm) {
		return 0
	}
	if waist-neck <= 0 {
		return 0
	}

	var bf float64
	switch gender {
	case GenderMale:
		bf = 495/(1.0324-0.19077*math.Log10(waist-neck)+0.15456*math.Log10(heightCm)) - 450
	case GenderFemale:
		if !present(hip) {
			return 0
		}
		bf = 495/(1.29579-0.35004*math.Log10(waist+hip-neck)+0.22100*math.Log10(heightCm)) - 450
	default:
		return 0
	}

	if !finite(bf) {
		return 0
	}
	return round(math.Max(bf, 0), 1)
}

// BMRMifflin returns the Mifflin-St Jeor basal metabolic rate in kcal/day.
//
// The result is not floored: extreme inputs can produce a negative value and
// it is returned unchanged.
func BMRMifflin(weight, heightCm float64, age int, gender Gender) int {
	if !present(weight) || !present(heightCm) || age == 0 {
		return 0
	}
	base := 10*weight + 6.25*heightCm - 5*float64(age)
	switch gender {
	case GenderMale:
		base += 5
	case GenderFemale:
		base -= 161
	default:
		return 0
	}
	if !finite(base) {
		return 0
	}
	return int(math.Round(base))
}

// Calculate composes the primitive formulas and derives the lean-mass based
// estimates.
func Calculate(in Inputs) HealthMetrics {
	m := HealthMetrics{
		BMI:     BMI(in.Weight, in.Height),
		WHR:     WHR(in.Waist, in.Hip),
		BodyFat: BodyFatNavy(in.Waist, in.Neck, in.Height, in.Hip, in.Gender),
		BMR:     BMRMifflin(in.Weight, in.Height, in.Age, in.Gender),
	}

	weight := in.Weight
	if !finite(weight) {
		weight = 0
	}

	lbm := weight * (1 - m.BodyFat/100)
	m.MuscleMass = round(lbm, 1)
	m.WaterMass = round(lbm*waterFraction, 1)
	if weight > 0 {
		m.WaterPct = m.WaterMass / weight * 100
		m.ProteinPct = lbm * proteinFraction / weight * 100
	}

	m.VisceralFatLevel = VisceralFatLevel(m.WHR, in.Gender)
	return m
}

// VisceralFatLevel scores how far the WHR sits above the gender baseline.
// The result is always within [MinVisceralFatLevel, MaxVisceralFatLevel].
// Without a known gender there is no baseline and the level is the minimum.
func VisceralFatLevel(whr float64, gender Gender) int {
	if !gender.Valid() {
		return MinVisceralFatLevel
	}

	baseline := maleWHRBaseline
	if gender == GenderFemale {
		baseline = femaleWHRBaseline
	}

	level := MinVisceralFatLevel
	if finite(whr) && whr > baseline {
		// Clamp before converting so huge ratios cannot overflow int.
		excess := math.Min(math.Round((whr-baseline)*100), MaxVisceralFatLevel)
		level = 1 + int(excess)
	}

	if level < MinVisceralFatLevel {
		return MinVisceralFatLevel
	}
	if level > MaxVisceralFatLevel {
		return MaxVisceralFatLevel
	}
	return level
}

func present(v float64) bool {
	return v != 0 && !math.IsNaN(v)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func round(v float64, decimals int) float64 {
	if !finite(v) {
		return 0
	}
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
