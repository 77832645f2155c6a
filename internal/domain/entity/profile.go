package entity

import (
	"strings"
	"time"
	"unicode"
)

// UserProfile holds the personalization attributes for one user, resolved in
// bulk by the profile resolver. The dispatch engine only ever holds a
// read-only, request-scoped copy; the profile/billing subsystem owns the data.
type UserProfile struct {
	UserID       string          `json:"user_id"`
	Name         string          `json:"name"`
	Birthday     *time.Time      `json:"birthday"`
	Subscription BillingSnapshot `json:"subscription"`
}

// BillingSnapshot is the slice of billing state personalization depends on.
type BillingSnapshot struct {
	Status string `json:"status"`
	Plan   string `json:"plan"`
	IsPaid bool   `json:"is_paid"`
}

// FirstName returns the first whitespace-separated token of the profile name.
// Any Unicode whitespace splits, so a name stored with a newline or
// non-breaking space never leaks past the first token.
func (p *UserProfile) FirstName() string {
	tokens := strings.FieldsFunc(p.Name, unicode.IsSpace)
	if len(tokens) == 0 {
		return ""
	}

	return tokens[0]
}
