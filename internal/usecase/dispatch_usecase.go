package usecase

import (
	"context"

	"pulse/internal/domain/entity"
)

// Skip reasons reported by a short-circuited run.
const (
	SkipReasonAlreadySent = "already_sent"
	SkipReasonQuietHours  = "quiet_hours"
)

// DispatchOutcome is the ephemeral per-subscriber result of one delivery
// attempt. Outcomes are aggregated into a run summary and not persisted beyond
// logs.
type DispatchOutcome struct {
	UserID           string `json:"user_id,omitempty"`
	Endpoint         string `json:"endpoint"`
	Success          bool   `json:"success"`
	Personalized     bool   `json:"personalized,omitempty"`
	PermanentFailure bool   `json:"permanent_failure,omitempty"`
	EmailSent        bool   `json:"email_sent,omitempty"`
	EmailFailed      bool   `json:"email_failed,omitempty"`
	Error            string `json:"error,omitempty"`
}

// DispatchCounts tallies one run for observability and alerting.
type DispatchCounts struct {
	PushSent         int `json:"push_sent"`
	PushFailed       int `json:"push_failed"`
	EmailsSent       int `json:"emails_sent"`
	EmailsFailed     int `json:"emails_failed"`
	TotalSubscribers int `json:"total_subscribers"`
}

// DispatchResult is the run summary exposed to the caller.
type DispatchResult struct {
	Success       bool              `json:"success"`
	Skipped       bool              `json:"skipped,omitempty"`
	SkippedReason string            `json:"skipped_reason,omitempty"`
	EventKey      string            `json:"event_key"`
	Counts        DispatchCounts    `json:"counts"`
	Details       []DispatchOutcome `json:"details,omitempty"`
}

// Summarize folds per-subscriber outcomes into run counts. It is a pure
// reduction: outcomes are commutative and the fold has no side effects.
func Summarize(totalSubscribers int, outcomes []DispatchOutcome) DispatchCounts {
	counts := DispatchCounts{TotalSubscribers: totalSubscribers}
	for _, o := range outcomes {
		if o.Success {
			counts.PushSent++
		} else {
			counts.PushFailed++
		}
		if o.EmailSent {
			counts.EmailsSent++
		}
		if o.EmailFailed {
			counts.EmailsFailed++
		}
	}

	return counts
}

// DispatchUsecase is the notification dispatch engine entry point. One call is
// one scheduled run: idempotency-guarded, batched, fanned out, aggregated.
type DispatchUsecase interface {
	// DispatchEvent runs the engine for one event. sentBy records which
	// scheduler path triggered the run ("daily", "4-hourly", "manual").
	DispatchEvent(ctx context.Context, event *entity.NotificationEvent, sentBy string) (*DispatchResult, error)
}
