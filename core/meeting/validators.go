package meeting

import (
	"github.com/go-playground/validator/v10"

	"github.com/edustack/studyhub/core"
)

var (
	typeTag  = "meetingtype"
	typeText = "invalid meeting type"
)

func init() {
	// register validators
	_ = core.Validate.RegisterValidation(typeTag, typeValidation)
	core.RegisterCustomTranslation(typeTag, typeText)
}

func typeValidation(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	for _, t := range AllTypes {
		if t == val {
			return true
		}
	}
	return false
}
