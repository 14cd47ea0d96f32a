package session

import (
	"github.com/go-playground/validator/v10"

	"github.com/edustack/studyhub/core"
)

var (
	roleTag  = "portalrole"
	roleText = "invalid role"
)

func init() {
	// register validators
	_ = core.Validate.RegisterValidation(roleTag, roleValidation)
	core.RegisterCustomTranslation(roleTag, roleText)
}

func roleValidation(fl validator.FieldLevel) bool {
	return ValidRole(fl.Field().String())
}
