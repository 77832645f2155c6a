// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// PushSubscription represents one delivery endpoint for one user on one device.
type PushSubscription struct {
	Endpoint               string                  `json:"endpoint"`                  // Channel-specific address, unique per device.
	Credentials            SubscriptionCredentials `json:"credentials"`               // Opaque keys needed to encrypt payloads for this endpoint.
	OwnerUserID            *string                 `json:"owner_user_id"`             // Nil for anonymous subscriptions, which are excluded from personalization.
	UserEmail              *string                 `json:"user_email"`                // Optional email used as a secondary delivery channel.
	Preferences            NotificationPreferences `json:"preferences"`               // Denormalized preference snapshot; may be stale.
	IsActive               bool                    `json:"is_active"`                 // Set false on permanent delivery failure.
	LastNotificationSentAt *time.Time              `json:"last_notification_sent_at"` // Advisory only; duplicate sends across triggers are tolerated.
}

// SubscriptionCredentials holds the Web Push encryption keys for an endpoint.
// For the FCM provider the endpoint itself is the device token and the keys are empty.
type SubscriptionCredentials struct {
	P256dh string `json:"p256dh"` // Public key for payload encryption.
	Auth   string `json:"auth"`   // Auth secret.
}

// NotificationPreferences is the typed preference blob stored alongside a
// subscription. Every personalization-relevant field is explicitly nullable so
// the personalization precondition is statically checkable.
type NotificationPreferences struct {
	MoonPhases        *bool `json:"moonPhases,omitempty"`
	MajorAspects      *bool `json:"majorAspects,omitempty"`
	PlanetaryTransits *bool `json:"planetaryTransits,omitempty"`
	Retrogrades       *bool `json:"retrogrades,omitempty"`
	Sabbats           *bool `json:"sabbats,omitempty"`
	Eclipses          *bool `json:"eclipses,omitempty"`

	// Cached profile snapshot, denormalized at opt-in time.
	Name     *string `json:"name,omitempty"`
	Birthday *string `json:"birthday,omitempty"` // ISO date string as stored by the client.
	Timezone *string `json:"timezone,omitempty"`
}

// Allows reports whether the subscription explicitly opted into the given
// preference flag. An absent or false flag excludes the subscription; only the
// empty flag targets everyone.
func (p NotificationPreferences) Allows(flag PreferenceFlag) bool {
	var v *bool
	switch flag {
	case PreferenceMoonPhases:
		v = p.MoonPhases
	case PreferenceMajorAspects:
		v = p.MajorAspects
	case PreferencePlanetaryTransits:
		v = p.PlanetaryTransits
	case PreferenceRetrogrades:
		v = p.Retrogrades
	case PreferenceSabbats:
		v = p.Sabbats
	case PreferenceEclipses:
		v = p.Eclipses
	default:
		return true
	}

	return v != nil && *v
}

// PreferenceFlag identifies one opt-in toggle in a subscription's preferences.
type PreferenceFlag string

// Preference flags known to the targeting query.
const (
	PreferenceAll               PreferenceFlag = ""
	PreferenceMoonPhases        PreferenceFlag = "moonPhases"
	PreferenceMajorAspects      PreferenceFlag = "majorAspects"
	PreferencePlanetaryTransits PreferenceFlag = "planetaryTransits"
	PreferenceRetrogrades       PreferenceFlag = "retrogrades"
	PreferenceSabbats           PreferenceFlag = "sabbats"
	PreferenceEclipses          PreferenceFlag = "eclipses"
)
