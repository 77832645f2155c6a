package entity

import (
	"fmt"
	"strings"

	"pulse/internal/errors"
)

// ErrInvalidEvent is returned when a notification event fails validation.
var ErrInvalidEvent = errors.New("invalid notification event")

// Known event type categories. Dispatch accepts unknown types too; these are
// the ones content rendering and preference targeting understand.
const (
	EventTypeMoon              = "moon"
	EventTypeMoonPhase         = "moon_phase"
	EventTypeAspect            = "aspect"
	EventTypeIngress           = "ingress"
	EventTypePlanetaryTransit  = "planetary_transit"
	EventTypePredictiveTransit = "predictive_transit"
	EventTypeRetrograde        = "retrograde"
	EventTypeSeasonal          = "seasonal"
	EventTypeSabbat            = "sabbat"
	EventTypeEclipse           = "eclipse"
)

// NotificationEvent describes what is being broadcast by one dispatch run.
// It is constructed fresh per invocation and never persisted; only its derived
// idempotency key is.
type NotificationEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing.
	Name      string `json:"name"`                 // Human label, e.g. "Full Moon".
	Type      string `json:"type"`                 // Category used for targeting and key derivation.
	Priority  int    `json:"priority"`             // Ordering hint for multi-event days.

	// Optional astronomical context used by the content builder.
	Planet  string `json:"planet,omitempty"`
	Sign    string `json:"sign,omitempty"`
	PlanetA string `json:"planet_a,omitempty"`
	PlanetB string `json:"planet_b,omitempty"`
	Aspect  string `json:"aspect,omitempty"`
	Energy  string `json:"energy,omitempty"`
}

// Validate rejects events missing the fields key derivation depends on.
func (e *NotificationEvent) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return errors.Wrap(ErrInvalidEvent, "event name is required")
	}
	if strings.TrimSpace(e.Type) == "" {
		return errors.Wrap(ErrInvalidEvent, "event type is required")
	}

	return nil
}

// Key derives the idempotency key for this event. The key is stable for a given
// event and collision-free across event types sharing a date: it is namespaced
// by type and disambiguated by name and priority.
func (e *NotificationEvent) Key() string {
	return fmt.Sprintf("%s-%s-%d", e.Type, e.Name, e.Priority)
}

// PreferenceFlag maps the event type to the subscription preference flag the
// targeting query filters on. Unknown types target all active subscriptions.
func (e *NotificationEvent) PreferenceFlag() PreferenceFlag {
	switch e.Type {
	case EventTypeMoon, EventTypeMoonPhase:
		return PreferenceMoonPhases
	case EventTypeAspect:
		return PreferenceMajorAspects
	case EventTypeIngress, EventTypePlanetaryTransit, EventTypePredictiveTransit:
		return PreferencePlanetaryTransits
	case EventTypeRetrograde:
		return PreferenceRetrogrades
	case EventTypeSeasonal, EventTypeSabbat:
		return PreferenceSabbats
	case EventTypeEclipse:
		return PreferenceEclipses
	default:
		return PreferenceAll
	}
}
