package validation

import "regexp"

var (
	loginPattern    = regexp.MustCompile(`^[a-zA-Z0-9]{3,30}$`)
	bossCodePattern = regexp.MustCompile(`^[a-zA-Z0-9]{1,30}$`)
)

// Password bounds are in bytes. bcrypt refuses anything longer than 72.
const (
	PasswordMinLength = 6
	PasswordMaxLength = 72
)

// ValidateLogin expects an already normalized username.
func ValidateLogin(login string) bool {
	return loginPattern.MatchString(login)
}

func ValidatePassword(password string) bool {
	return len(password) >= PasswordMinLength && len(password) <= PasswordMaxLength
}

func ValidateBossCode(code string) bool {
	return bossCodePattern.MatchString(code)
}
