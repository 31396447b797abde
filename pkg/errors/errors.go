package vferrors

import "errors"

// Sentinel errors for the API. The message texts are part of the public
// response contract, so they are full sentences rather than the usual
// lowercase fragments.
var (
	ErrInvalidInput       = errors.New("Missing required fields.")
	ErrInvalidEmail       = errors.New("Invalid email address.")
	ErrUserExists         = errors.New("This user already exists. Please try logging in.")
	ErrUserNotFound       = errors.New("User does not exist. Please sign up first.")
	ErrWrongPassword      = errors.New("Incorrect password.")
	ErrNotDeliverable     = errors.New("Email address is not deliverable or does not exist.")
	ErrVerificationFailed = errors.New("Email verification failed. Please try again later.")
	ErrLogoNotAllowed     = errors.New("Logo generation is not available on the starter plan.")
	ErrQuotaExceeded      = errors.New("Monthly logo limit reached. Upgrade to elite for unlimited logos.")
	ErrMissingAPIKey      = errors.New("OpenAI API key is missing on the server.")
	ErrDatabase           = errors.New("Database error. Please try again.")
)

// ErrStore tags errors the database itself reported (constraint failures
// and the like), as opposed to transport failures reaching it.
var ErrStore = errors.New("store error")
