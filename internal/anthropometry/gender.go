package anthropometry

import "strings"

// Gender selects which regression branch the formulas use.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// genderLabels maps the labels the portal accepts on its forms to the
// normalized enum. Keys are lower-case and trimmed.
var genderLabels = map[string]Gender{
	"male":      GenderMale,
	"m":         GenderMale,
	"man":       GenderMale,
	"masculino": GenderMale,
	"hombre":    GenderMale,
	"varon":     GenderMale,
	"varón":     GenderMale,
	"female":    GenderFemale,
	"f":         GenderFemale,
	"woman":     GenderFemale,
	"femenino":  GenderFemale,
	"mujer":     GenderFemale,
}

// ParseGender normalizes a free-text gender label. It is the only place
// where localized labels are interpreted; everything downstream works with
// the Gender enum.
func ParseGender(label string) (Gender, bool) {
	g, ok := genderLabels[strings.ToLower(strings.TrimSpace(label))]
	return g, ok
}

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}
