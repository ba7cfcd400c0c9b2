package anthropometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBMI(t *testing.T) {
	tests := []struct {
		name   string
		weight float64
		height float64
		want   float64
	}{
		{name: "typical adult", weight: 70, height: 175, want: 22.9},
		{name: "zero weight", weight: 0, height: 175, want: 0},
		{name: "zero height", weight: 70, height: 0, want: 0},
		{name: "NaN weight", weight: math.NaN(), height: 175, want: 0},
		{name: "implausible values pass through", weight: 300, height: 100, want: 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BMI(tt.weight, tt.height))
		})
	}
}

func TestWHR(t *testing.T) {
	assert.Equal(t, 0.8, WHR(80, 100))
	assert.Equal(t, 0.0, WHR(0, 100))
	assert.Equal(t, 0.0, WHR(80, 0))
	assert.Equal(t, 0.87, WHR(87, 100))
	// No clamping on implausible ratios.
	assert.Equal(t, 3.0, WHR(300, 100))
}

func navyMale(waist, neck, height float64) float64 {
	return 495/(1.0324-0.19077*math.Log10(waist-neck)+0.15456*math.Log10(height)) - 450
}

func navyFemale(waist, neck, height, hip float64) float64 {
	return 495/(1.29579-0.35004*math.Log10(waist+hip-neck)+0.22100*math.Log10(height)) - 450
}

func TestBodyFatNavy(t *testing.T) {
	t.Run("male formula", func(t *testing.T) {
		got := BodyFatNavy(90, 40, 175, 0, GenderMale)
		assert.Equal(t, 19.2, got)
		assert.InDelta(t, navyMale(90, 40, 175), got, 0.05)
	})

	t.Run("female formula", func(t *testing.T) {
		got := BodyFatNavy(75, 33, 165, 100, GenderFemale)
		assert.Equal(t, 29.4, got)
		assert.InDelta(t, navyFemale(75, 33, 165, 100), got, 0.05)
	})

	t.Run("waist not larger than neck", func(t *testing.T) {
		assert.Equal(t, 0.0, BodyFatNavy(40, 45, 175, 0, GenderMale))
		assert.Equal(t, 0.0, BodyFatNavy(40, 40, 175, 0, GenderMale))
	})

	t.Run("female without hip", func(t *testing.T) {
		assert.Equal(t, 0.0, BodyFatNavy(75, 33, 165, 0, GenderFemale))
	})

	t.Run("missing height", func(t *testing.T) {
		assert.Equal(t, 0.0, BodyFatNavy(90, 40, 0, 0, GenderMale))
	})

	t.Run("negative regression result is floored", func(t *testing.T) {
		require.Less(t, navyMale(60, 59, 200), 0.0)
		assert.Equal(t, 0.0, BodyFatNavy(60, 59, 200, 0, GenderMale))
	})

	t.Run("log domain error resolves to zero", func(t *testing.T) {
		assert.Equal(t, 0.0, BodyFatNavy(90, 40, -175, 0, GenderMale))
		assert.Equal(t, 0.0, BodyFatNavy(50, 40, 165, -20, GenderFemale))
	})

	t.Run("unknown gender", func(t *testing.T) {
		assert.Equal(t, 0.0, BodyFatNavy(90, 40, 175, 100, Gender("")))
	})
}

func TestBMRMifflin(t *testing.T) {
	// 10*70 + 6.25*175 - 5*30 = 1643.75
	assert.Equal(t, 1649, BMRMifflin(70, 175, 30, GenderMale))
	assert.Equal(t, 1483, BMRMifflin(70, 175, 30, GenderFemale))

	assert.Equal(t, 0, BMRMifflin(0, 175, 30, GenderMale))
	assert.Equal(t, 0, BMRMifflin(70, 0, 30, GenderMale))
	assert.Equal(t, 0, BMRMifflin(70, 175, 0, GenderMale))

	// Not floored at zero.
	assert.Less(t, BMRMifflin(1, 10, 120, GenderFemale), 0)
}

func TestCalculate(t *testing.T) {
	in := Inputs{Weight: 80, Height: 180, Waist: 90, Hip: 100, Neck: 40, Age: 30, Gender: GenderMale}
	m := Calculate(in)

	assert.Equal(t, BMI(80, 180), m.BMI)
	assert.Equal(t, 0.9, m.WHR)
	assert.Equal(t, BodyFatNavy(90, 40, 180, 100, GenderMale), m.BodyFat)
	assert.Equal(t, BMRMifflin(80, 180, 30, GenderMale), m.BMR)

	lbm := in.Weight * (1 - m.BodyFat/100)
	assert.Equal(t, math.Round(lbm*10)/10, m.MuscleMass)
	assert.Equal(t, math.Round(lbm*0.73*10)/10, m.WaterMass)
	assert.Equal(t, m.WaterMass/in.Weight*100, m.WaterPct)
	assert.Equal(t, lbm*0.20/in.Weight*100, m.ProteinPct)

	// WHR equal to the male baseline does not exceed it.
	assert.Equal(t, 1, m.VisceralFatLevel)
}

func TestCalculate_MissingWeight(t *testing.T) {
	m := Calculate(Inputs{Height: 170, Waist: 80, Hip: 95, Neck: 35, Age: 40, Gender: GenderFemale})

	assert.Equal(t, 0.0, m.BMI)
	assert.Equal(t, 0, m.BMR)
	assert.Equal(t, 0.0, m.MuscleMass)
	assert.Equal(t, 0.0, m.WaterPct)
	assert.Equal(t, 0.0, m.ProteinPct)
	assert.Equal(t, 0.84, m.WHR)
	assert.Equal(t, 1, m.VisceralFatLevel)
}

func TestCalculate_UnknownGender(t *testing.T) {
	m := Calculate(Inputs{Weight: 80, Height: 180, Waist: 110, Hip: 100, Neck: 40, Age: 30})

	assert.Equal(t, 1.1, m.WHR)
	assert.Equal(t, 0.0, m.BodyFat)
	assert.Equal(t, 0, m.BMR)
	assert.Equal(t, MinVisceralFatLevel, m.VisceralFatLevel)
}

func TestVisceralFatLevel(t *testing.T) {
	tests := []struct {
		name   string
		whr    float64
		gender Gender
		want   int
	}{
		{name: "male below baseline", whr: 0.85, gender: GenderMale, want: 1},
		{name: "male above baseline", whr: 0.95, gender: GenderMale, want: 6},
		{name: "female above baseline", whr: 0.95, gender: GenderFemale, want: 11},
		{name: "missing whr", whr: 0, gender: GenderFemale, want: 1},
		{name: "extreme whr is clamped", whr: 5, gender: GenderMale, want: MaxVisceralFatLevel},
		{name: "infinite whr", whr: math.Inf(1), gender: GenderMale, want: 1},
		{name: "unknown gender has no baseline", whr: 1.2, gender: Gender("other"), want: MinVisceralFatLevel},
		{name: "empty gender has no baseline", whr: 1.2, gender: "", want: MinVisceralFatLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VisceralFatLevel(tt.whr, tt.gender))
		})
	}
}

// Every combination of awkward inputs must produce finite output and an
// in-range visceral level.
func TestCalculate_NeverProducesNonFiniteValues(t *testing.T) {
	values := []float64{0, -1, 0.001, 1, 40, 95, 180, 1e6, math.NaN(), math.Inf(1), math.Inf(-1)}
	genders := []Gender{GenderMale, GenderFemale, Gender("other")}

	for _, weight := range values {
		for _, height := range values {
			for _, waist := range values {
				for _, g := range genders {
					in := Inputs{Weight: weight, Height: height, Waist: waist, Hip: waist + 10, Neck: 38, Age: 45, Gender: g}
					m := Calculate(in)

					for name, v := range map[string]float64{
						"bmi": m.BMI, "whr": m.WHR, "body_fat": m.BodyFat, "muscle_mass": m.MuscleMass,
						"water_mass": m.WaterMass, "water_pct": m.WaterPct, "protein_pct": m.ProteinPct,
					} {
						if math.IsNaN(v) || math.IsInf(v, 0) {
							t.Fatalf("%s is not finite for %+v: %v", name, in, v)
						}
					}
					if m.BodyFat < 0 {
						t.Fatalf("body fat negative for %+v: %v", in, m.BodyFat)
					}
					if m.VisceralFatLevel < MinVisceralFatLevel || m.VisceralFatLevel > MaxVisceralFatLevel {
						t.Fatalf("visceral level out of range for %+v: %d", in, m.VisceralFatLevel)
					}
				}
			}
		}
	}
}

func TestCalculate_Deterministic(t *testing.T) {
	in := Inputs{Weight: 64.5, Height: 162, Waist: 78, Hip: 99, Neck: 32, Age: 51, Gender: GenderFemale}
	assert.Equal(t, Calculate(in), Calculate(in))
}
