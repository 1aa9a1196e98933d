package domain

import (
	"strings"
	"time"
)

// Gender values stored for a client. The API accepts them as the string
// enum {"0", "1"} and persists them as smallint.
const (
	GenderFemale int16 = 0
	GenderMale   int16 = 1
)

// Client represents a registered client of the inventory system.
// Clients double as API users: the phone number is the login identifier.
type Client struct {
	ID             int64      `json:"id"`
	FullName       string     `json:"full_name"`
	BirthDate      *time.Time `json:"birth_date,omitempty"`
	Gender         int16      `json:"gender"`
	Phone          string     `json:"phone"`
	Email          *string    `json:"email,omitempty"`
	HashedPassword string     `json:"-"` // never exposed in JSON
	CreatedAt      time.Time  `json:"-"`
	UpdatedAt      time.Time  `json:"-"`
}

// NormalizePhone strips the formatting characters callers commonly send
// ("+", spaces, dashes, parentheses) so only digits are validated and
// stored. Matches the normalization applied at login.
func NormalizePhone(phone string) string {
	replacer := strings.NewReplacer("+", "", " ", "", "-", "", "(", "", ")", "")
	return replacer.Replace(phone)
}
