package impl

import (
	"fmt"
	"strings"
	"time"

	"pulse/internal/domain/entity"
)

// notificationContent is the generic rendering of one event, built once per
// run and shared across all subscribers. Per-subscriber personalization copies
// the payload rather than mutating it.
type notificationContent struct {
	Title string
	Body  string

	eventType string
	eventName string
	priority  int
	date      time.Time
}

// pushPayload is the wire shape consumed by the service worker on the client.
type pushPayload struct {
	Title   string          `json:"title"`
	Body    string          `json:"body"`
	Icon    string          `json:"icon"`
	Badge   string          `json:"badge"`
	Tag     string          `json:"tag"`
	Vibrate []int           `json:"vibrate"`
	Data    payloadData     `json:"data"`
	Actions []payloadAction `json:"actions"`
}

type payloadData struct {
	URL       string `json:"url"`
	Date      string `json:"date"`
	EventType string `json:"eventType"`
	EventName string `json:"eventName"`
	Priority  int    `json:"priority"`
}

type payloadAction struct {
	Action string `json:"action"`
	Title  string `json:"title"`
	Icon   string `json:"icon,omitempty"`
}

// payloadWith materializes the push payload for one subscriber with the given
// (possibly personalized) title and body.
func (c *notificationContent) payloadWith(title, body string) pushPayload {
	return pushPayload{
		Title:   title,
		Body:    body,
		Icon:    "/icons/icon-192x192.png",
		Badge:   "/icons/icon-72x72.png",
		Tag:     "cosmic-" + c.eventType,
		Vibrate: []int{200, 100, 200},
		Data: payloadData{
			URL:       "/",
			Date:      c.date.Format("2006-01-02"),
			EventType: c.eventType,
			EventName: c.eventName,
			Priority:  c.priority,
		},
		Actions: []payloadAction{
			{Action: "open", Title: "View Details"},
			{Action: "dismiss", Title: "Dismiss"},
		},
	}
}

func buildContent(event *entity.NotificationEvent, date time.Time) *notificationContent {
	return &notificationContent{
		Title:     buildTitle(event),
		Body:      buildBody(event),
		eventType: event.Type,
		eventName: event.Name,
		priority:  event.Priority,
		date:      date,
	}
}

// buildTitle renders the notification title for an event. Every branch falls
// back to the event name when the fields it wants are missing, so a sparse
// event never produces a placeholder artifact.
func buildTitle(event *entity.NotificationEvent) string {
	switch event.Type {
	case entity.EventTypeAspect:
		if event.PlanetA != "" && event.PlanetB != "" && event.Aspect != "" {
			return fmt.Sprintf("%s-%s %s", event.PlanetA, event.PlanetB, capitalize(event.Aspect))
		}
	case entity.EventTypeIngress, entity.EventTypePlanetaryTransit, entity.EventTypePredictiveTransit:
		if event.Planet != "" && event.Sign != "" {
			return fmt.Sprintf("%s Enters %s", event.Planet, event.Sign)
		}
	case entity.EventTypeRetrograde:
		if event.Planet != "" {
			return fmt.Sprintf("%s Retrograde Begins", event.Planet)
		}
	}

	return event.Name
}

var moonPhaseBodies = map[string]string{
	"new moon":      "Set intentions and plant seeds for new beginnings",
	"full moon":     "Culmination energy peaks, release what no longer serves",
	"first quarter": "Take decisive action on your intentions",
	"last quarter":  "Release and reflect before the next cycle",
}

var aspectBodies = map[string]string{
	"conjunction": "unite their energies for new beginnings",
	"opposition":  "create dynamic tension seeking balance",
	"trine":       "flow together in effortless harmony",
	"square":      "challenge you toward growth and action",
	"sextile":     "open supportive opportunities",
}

var retrogradeBodies = map[string]string{
	"mercury": "invites you to review communication and plans",
	"venus":   "turns reflection toward love and values",
	"mars":    "asks you to redirect drive and ambition",
	"jupiter": "calls for reassessing growth and beliefs",
	"saturn":  "revisits structures and commitments",
	"uranus":  "internalizes change and innovation",
	"neptune": "deepens dreams and intuition",
	"pluto":   "transforms from the inside out",
}

// buildBody renders the notification body. Specific copy is chosen from the
// event's fields when available; otherwise the event's own energy text or a
// generic line is used so the body is never empty.
func buildBody(event *entity.NotificationEvent) string {
	switch event.Type {
	case entity.EventTypeMoon, entity.EventTypeMoonPhase:
		if body := moonBody(event); body != "" {
			return body
		}
	case entity.EventTypeAspect:
		if event.PlanetA != "" && event.PlanetB != "" {
			if desc, ok := aspectBodies[strings.ToLower(event.Aspect)]; ok {
				return fmt.Sprintf("%s and %s %s", event.PlanetA, event.PlanetB, desc)
			}
		}
	case entity.EventTypeIngress, entity.EventTypePlanetaryTransit, entity.EventTypePredictiveTransit:
		if event.Planet != "" && event.Sign != "" {
			return fmt.Sprintf("%s shifts focus toward %s themes and energies", event.Planet, event.Sign)
		}
	case entity.EventTypeRetrograde:
		if desc, ok := retrogradeBodies[strings.ToLower(event.Planet)]; ok {
			body := fmt.Sprintf("%s %s", event.Planet, desc)
			if event.Sign != "" {
				body += " in " + event.Sign
			}

			return body
		}
	case entity.EventTypeSeasonal, entity.EventTypeSabbat:
		lower := strings.ToLower(event.Name)
		if strings.Contains(lower, "equinox") {
			return "Balance of light and dark marks a seasonal turning point"
		}
		if strings.Contains(lower, "solstice") {
			return "The sun reaches its turning point, honoring the season's peak"
		}
	}

	if event.Energy != "" {
		return event.Energy
	}

	return "Significant cosmic event occurring"
}

func moonBody(event *entity.NotificationEvent) string {
	lower := strings.ToLower(event.Name)
	for phase, desc := range moonPhaseBodies {
		if strings.Contains(lower, phase) {
			if event.Sign != "" {
				return fmt.Sprintf("Moon in %s: %s", event.Sign, lowerFirst(desc))
			}

			return desc
		}
	}

	return ""
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}
