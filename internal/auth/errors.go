package auth

import "fmt"

// GenericAuthMessage is shown for provider error codes outside the known set.
const GenericAuthMessage = "An error occurred. Please try again."

// ProviderError is an error returned by the identity provider, carrying the
// provider's error code.
type ProviderError struct {
	Code string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("identity provider error: %s", e.Code)
}

// userMessages maps the known provider error codes to user-facing messages.
var userMessages = map[string]string{
	"INVALID_EMAIL":               "Invalid email address.",
	"USER_DISABLED":               "This account has been disabled.",
	"EMAIL_NOT_FOUND":             "Invalid credentials. Please try again.",
	"INVALID_PASSWORD":            "Invalid credentials. Please try again.",
	"INVALID_LOGIN_CREDENTIALS":   "Invalid credentials. Please try again.",
	"TOO_MANY_ATTEMPTS_TRY_LATER": "Too many login attempts. Please try again later.",
	"EXPIRED_OOB_CODE":            "This reset link has expired. Please request a new one.",
	"INVALID_OOB_CODE":            "This reset link is invalid or has already been used.",
	"WEAK_PASSWORD":               "Password should be at least 6 characters.",
}

// UserMessage translates an error from the identity provider into the
// message shown on the form. Unknown codes and non-provider errors fall back
// to the generic message.
func UserMessage(err error) string {
	pe, ok := err.(*ProviderError)
	if !ok {
		return GenericAuthMessage
	}
	if msg, ok := userMessages[pe.Code]; ok {
		return msg
	}
	return GenericAuthMessage
}
