package impl

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"pulse/internal/domain/entity"
)

// ShouldPersonalize reports whether a resolved profile qualifies for a
// personalized rendering: an active paid subscription AND a birth date on
// file. Missing profile, unpaid plan, or absent birthday all fall back to the
// generic rendering without error.
func ShouldPersonalize(profile *entity.UserProfile) bool {
	if profile == nil {
		return false
	}

	return profile.Subscription.IsPaid && profile.Birthday != nil
}

// PersonalizeTitle returns the title unchanged. Titles are intentionally
// shared across subscribers so push collapse keys stay stable; the hook exists
// so per-user titles can be introduced without touching the engine.
func PersonalizeTitle(title string, _ *entity.UserProfile) string {
	return title
}

// PersonalizeBody prefixes the generic body with the subscriber's first name,
// lowercasing the original first letter so the sentence still reads naturally.
// A profile without a usable name yields the generic body unchanged.
func PersonalizeBody(body string, profile *entity.UserProfile) string {
	if profile == nil {
		return body
	}

	firstName := profile.FirstName()
	if firstName == "" || body == "" {
		return body
	}

	return firstName + ", " + lowerFirst(body)
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	b.WriteRune(unicode.ToLower(r))
	b.WriteString(s[size:])

	return b.String()
}
