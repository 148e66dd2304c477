package domain

import "regexp"

// User is the authenticated app user. Invariant: IsLoggedIn implies
// PhoneNumber is a valid 10-digit Indian mobile number.
type User struct {
	PhoneNumber string `json:"phoneNumber"`
	IsLoggedIn  bool   `json:"isLoggedIn"`
}

// phonePattern matches Indian mobile numbers: exactly 10 digits, first
// digit 6-9.
var phonePattern = regexp.MustCompile(`^[6-9]\d{9}$`)

// IsValidPhoneNumber reports whether s is a valid Indian mobile number.
func IsValidPhoneNumber(s string) bool {
	return phonePattern.MatchString(s)
}
