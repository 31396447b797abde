package services

import "regexp"

// emailPattern is shared by registration, login and contact intake.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func validEmail(email string) bool {
	return email != "" && emailPattern.MatchString(email)
}
