package identitysvc

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"github.com/pmezard/go-difflib/difflib"
)

// password policy
const (
	pwdMinLen = 8
	pwdMaxSim = .7
)

var (
	errPwdTooShort   = errors.Errorf("password must contain at least %d characters", pwdMinLen)
	errPwdAllNumeric = errors.New("password cannot be entirely numeric")
	errPwdTooSimilar = errors.New("password cannot be similar to your email or name")
)

// checkPasswordPolicy enforces the sign-up password rules the hosted
// provider applies: minimum length, not all digits, not too close to the
// account's own attributes.
func checkPasswordPolicy(pwd string, attrs ...string) error {
	if len(pwd) < pwdMinLen {
		return errPwdTooShort
	}
	if isAllNumeric(pwd) {
		return errPwdAllNumeric
	}
	lowerPwd := strings.ToLower(pwd)
	for _, attr := range attrs {
		attr = strings.ToLower(strings.TrimSpace(attr))
		if attr == "" {
			continue
		}
		sim := difflib.NewMatcher(strings.Split(lowerPwd, ""), strings.Split(attr, "")).QuickRatio()
		if sim >= pwdMaxSim {
			return errPwdTooSimilar
		}
	}
	return nil
}

func isAllNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
