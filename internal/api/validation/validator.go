package validation

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/anthropometry"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/schedule"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/pkg/problem"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Appointment time labels: "14:30", "02:30 PM", "09:00:00"
	validate.RegisterValidation("timelabel", func(fl validator.FieldLevel) bool {
		_, _, ok := schedule.ParseTimeLabel(fl.Field().String())
		return ok
	})

	validate.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(time.DateOnly, fl.Field().String())
		return err == nil
	})

	validate.RegisterValidation("gender", func(fl validator.FieldLevel) bool {
		_, ok := anthropometry.ParseGender(fl.Field().String())
		return ok
	})
}

// Validate validates a struct and returns field errors
func Validate(s interface{}) []problem.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrors []problem.FieldError
	for _, err := range err.(validator.ValidationErrors) {
		fieldErrors = append(fieldErrors, problem.FieldError{
			Field:   toSnakeCase(err.Field()),
			Message: getValidationMessage(err),
		})
	}
	return fieldErrors
}

func getValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + err.Param()
	case "max":
		return "must be at most " + err.Param()
	case "gte":
		return "must be greater than or equal to " + err.Param()
	case "lte":
		return "must be less than or equal to " + err.Param()
	case "oneof":
		return "must be one of: " + err.Param()
	case "timelabel":
		return "must be a time like 14:30 or 02:30 PM"
	case "isodate":
		return "must be a date in YYYY-MM-DD format"
	case "gender":
		return "must be a recognizable gender label (male or female)"
	default:
		return "is invalid"
	}
}

// toSnakeCase keeps acronym runs together: PatientID becomes patient_id.
func toSnakeCase(s string) string {
	var result []byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			prevLower := i > 0 && s[i-1] >= 'a' && s[i-1] <= 'z'
			nextLower := i+1 < len(s) && s[i+1] >= 'a' && s[i+1] <= 'z'
			prevUpper := i > 0 && s[i-1] >= 'A' && s[i-1] <= 'Z'
			if i > 0 && (prevLower || (prevUpper && nextLower)) {
				result = append(result, '_')
			}
			result = append(result, c+'a'-'A')
		} else {
			result = append(result, c)
		}
	}
	return string(result)
}
