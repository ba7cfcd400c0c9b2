package anthropometry

// BMICategory is the WHO adult BMI band.
type BMICategory string

const (
	BMIUnknown     BMICategory = "unknown"
	BMIUnderweight BMICategory = "underweight"
	BMINormal      BMICategory = "normal"
	BMIOverweight  BMICategory = "overweight"
	BMIObese       BMICategory = "obese"
)

// WHRRisk flags abdominal obesity against the same baselines used for the
// visceral fat level.
type WHRRisk string

const (
	WHRRiskUnknown  WHRRisk = "unknown"
	WHRRiskLow      WHRRisk = "low"
	WHRRiskElevated WHRRisk = "elevated"
)

// Classification holds display bands for a set of metrics.
type Classification struct {
	BMI BMICategory `json:"bmi_category"`
	WHR WHRRisk     `json:"whr_risk"`
}

// Classify maps metrics to display bands. Zero metrics classify as unknown.
func Classify(m HealthMetrics, gender Gender) Classification {
	return Classification{
		BMI: ClassifyBMI(m.BMI),
		WHR: ClassifyWHR(m.WHR, gender),
	}
}

func ClassifyBMI(bmi float64) BMICategory {
	switch {
	case !present(bmi) || bmi < 0:
		return BMIUnknown
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 25:
		return BMINormal
	case bmi < 30:
		return BMIOverweight
	default:
		return BMIObese
	}
}

func ClassifyWHR(whr float64, gender Gender) WHRRisk {
	if !present(whr) || whr < 0 || !gender.Valid() {
		return WHRRiskUnknown
	}
	baseline := maleWHRBaseline
	if gender == GenderFemale {
		baseline = femaleWHRBaseline
	}
	if whr > baseline {
		return WHRRiskElevated
	}
	return WHRRiskLow
}
