// Package impl implements the dispatch engine behind the usecase interfaces.
package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"pulse/config"
	"pulse/internal/domain/entity"
	"pulse/internal/domain/repository"
	"pulse/internal/domain/service"
	"pulse/internal/errors"
	"pulse/internal/usecase"
)

type dispatchService struct {
	logger *slog.Logger

	subscriptionRepo repository.SubscriptionRepository
	profileRepo      repository.ProfileRepository
	sentEventRepo    repository.SentEventRepository

	pushSender  service.PushSender
	emailSender service.EmailSender // nil when the email channel is not configured

	concurrency   int
	sendTimeout   time.Duration
	quiet         quietWindow
	retentionDays int

	now func() time.Time
}

// NewDispatchService wires the dispatch engine. emailSender may be nil; the
// engine then runs push-only.
func NewDispatchService(
	logger *slog.Logger,
	cfg *config.Config,
	subscriptionRepo repository.SubscriptionRepository,
	profileRepo repository.ProfileRepository,
	sentEventRepo repository.SentEventRepository,
	pushSender service.PushSender,
	emailSender service.EmailSender,
) usecase.DispatchUsecase {
	return &dispatchService{
		logger:           logger,
		subscriptionRepo: subscriptionRepo,
		profileRepo:      profileRepo,
		sentEventRepo:    sentEventRepo,
		pushSender:       pushSender,
		emailSender:      emailSender,
		concurrency:      cfg.Dispatch.Concurrency,
		sendTimeout:      cfg.Dispatch.SendTimeout,
		quiet: quietWindow{
			startHour: cfg.Dispatch.QuietStartHour,
			endHour:   cfg.Dispatch.QuietEndHour,
		},
		retentionDays: cfg.Dispatch.LedgerRetentionDays,
		now:           time.Now,
	}
}

func (s *dispatchService) DispatchEvent(ctx context.Context, event *entity.NotificationEvent, sentBy string) (*usecase.DispatchResult, error) {
	if event == nil {
		return nil, errors.Wrap(entity.ErrInvalidEvent, "event is nil")
	}
	if err := event.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	runDate := now.Truncate(24 * time.Hour)
	eventKey := event.Key()

	logger := s.logger.With(
		slog.String("event_key", eventKey),
		slog.String("event_type", event.Type),
		slog.String("sent_by", sentBy),
	)
	if event.RequestID != "" {
		logger = logger.With(slog.String("request_id", event.RequestID))
	}

	// Prune expired ledger rows first; a failed prune never blocks the run.
	cutoff := runDate.AddDate(0, 0, -s.retentionDays)
	if err := s.sentEventRepo.DeleteOlderThan(ctx, cutoff); err != nil {
		logger.Warn("ledger prune failed", slog.Any("error", err))
	}

	alreadySent, err := s.sentEventRepo.Exists(ctx, runDate, eventKey)
	if err != nil {
		return nil, errors.Wrap(err, "check sent-event ledger")
	}
	if alreadySent {
		logger.Info("event already sent today, skipping")

		return &usecase.DispatchResult{
			Success:       true,
			Skipped:       true,
			SkippedReason: usecase.SkipReasonAlreadySent,
			EventKey:      eventKey,
		}, nil
	}

	if s.quiet.contains(now.Hour()) {
		logger.Info("inside quiet hours, skipping",
			slog.Int("hour_utc", now.Hour()),
			slog.Int("quiet_start", s.quiet.startHour),
			slog.Int("quiet_end", s.quiet.endHour))

		return &usecase.DispatchResult{
			Success:       true,
			Skipped:       true,
			SkippedReason: usecase.SkipReasonQuietHours,
			EventKey:      eventKey,
		}, nil
	}

	subs, err := s.subscriptionRepo.FindActiveForEvent(ctx, event.PreferenceFlag())
	if err != nil {
		return nil, errors.Wrap(err, "find active subscriptions")
	}
	if len(subs) == 0 {
		logger.Info("no active subscribers for event, nothing to send")

		// Nothing was delivered, so the ledger stays unmarked and a later
		// run with subscribers can still send today.
		return &usecase.DispatchResult{
			Success:  true,
			EventKey: eventKey,
			Counts:   usecase.DispatchCounts{},
		}, nil
	}

	profiles := s.resolveProfiles(ctx, logger, subs)
	content := buildContent(event, runDate)
	outcomes := s.fanOut(ctx, subs, profiles, content)

	counts := usecase.Summarize(len(subs), outcomes)
	result := &usecase.DispatchResult{
		Success:  counts.PushSent > 0 || counts.EmailsSent > 0,
		EventKey: eventKey,
		Counts:   counts,
		Details:  outcomes,
	}

	logger.Info("dispatch run completed",
		slog.Int("total_subscribers", counts.TotalSubscribers),
		slog.Int("push_sent", counts.PushSent),
		slog.Int("push_failed", counts.PushFailed),
		slog.Int("emails_sent", counts.EmailsSent),
		slog.Int("emails_failed", counts.EmailsFailed))

	if result.Success {
		record := &entity.SentEventRecord{
			Date:          runDate,
			EventKey:      eventKey,
			EventType:     event.Type,
			EventName:     event.Name,
			EventPriority: event.Priority,
			SentBy:        sentBy,
		}
		if err := s.sentEventRepo.InsertIfAbsent(ctx, record); err != nil {
			// Deliveries already happened; surface the gap loudly because
			// the next scheduled run may now send duplicates.
			logger.Error("failed to mark event as sent, duplicates possible on next run",
				slog.Any("error", err))
		}
	}

	return result, nil
}

// resolveProfiles batch-resolves personalization profiles for the identified
// subscribers. Resolver failures degrade the run to generic content instead of
// failing it.
func (s *dispatchService) resolveProfiles(ctx context.Context, logger *slog.Logger, subs []*entity.PushSubscription) map[string]*entity.UserProfile {
	userIDs := dedupOwnerIDs(subs)
	if len(userIDs) == 0 {
		return nil
	}

	profiles, err := s.profileRepo.BatchGetProfiles(ctx, userIDs)
	if err != nil {
		logger.Warn("profile resolution failed, sending generic content",
			slog.Int("user_ids", len(userIDs)),
			slog.Any("error", err))

		return nil
	}

	return profiles
}

// dedupOwnerIDs collects the distinct owner ids across subscriptions in first
// occurrence order. Anonymous subscriptions contribute nothing.
func dedupOwnerIDs(subs []*entity.PushSubscription) []string {
	seen := make(map[string]struct{}, len(subs))
	ids := make([]string, 0, len(subs))
	for _, sub := range subs {
		if sub.OwnerUserID == nil || *sub.OwnerUserID == "" {
			continue
		}
		if _, ok := seen[*sub.OwnerUserID]; ok {
			continue
		}
		seen[*sub.OwnerUserID] = struct{}{}
		ids = append(ids, *sub.OwnerUserID)
	}

	return ids
}

// fanOut delivers to every subscription with bounded concurrency. Individual
// failures are captured in the outcome slice and never abort the group.
func (s *dispatchService) fanOut(ctx context.Context, subs []*entity.PushSubscription, profiles map[string]*entity.UserProfile, content *notificationContent) []usecase.DispatchOutcome {
	outcomes := make([]usecase.DispatchOutcome, len(subs))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.concurrency)
	for i, sub := range subs {
		group.Go(func() error {
			outcomes[i] = s.deliverOne(groupCtx, sub, profiles, content)

			return nil
		})
	}
	// Workers always return nil; Wait only synchronizes completion.
	_ = group.Wait()

	return outcomes
}

func (s *dispatchService) deliverOne(ctx context.Context, sub *entity.PushSubscription, profiles map[string]*entity.UserProfile, content *notificationContent) usecase.DispatchOutcome {
	outcome := usecase.DispatchOutcome{Endpoint: sub.Endpoint}

	title, body := content.Title, content.Body
	if sub.OwnerUserID != nil {
		outcome.UserID = *sub.OwnerUserID
		if profile, ok := profiles[*sub.OwnerUserID]; ok && ShouldPersonalize(profile) {
			title = PersonalizeTitle(title, profile)
			body = PersonalizeBody(body, profile)
			outcome.Personalized = true
		}
	}

	payload, err := json.Marshal(content.payloadWith(title, body))
	if err != nil {
		outcome.Error = errors.Wrap(err, "marshal push payload").Error()

		return outcome
	}

	sendCtx, cancel := context.WithTimeout(ctx, s.sendTimeout)
	defer cancel()

	if err := s.pushSender.Send(sendCtx, sub, payload); err != nil {
		outcome.Error = err.Error()
		if service.IsPermanentFailure(err) {
			outcome.PermanentFailure = true
			if derr := s.subscriptionRepo.Deactivate(ctx, sub.Endpoint); derr != nil {
				s.logger.Warn("failed to deactivate dead subscription",
					slog.String("endpoint", sub.Endpoint),
					slog.Any("error", derr))
			}
		}

		return outcome
	}
	outcome.Success = true

	if err := s.subscriptionRepo.TouchLastNotificationSent(ctx, sub.Endpoint, s.now().UTC()); err != nil {
		s.logger.Warn("failed to record last notification time",
			slog.String("endpoint", sub.Endpoint),
			slog.Any("error", err))
	}

	s.deliverEmail(ctx, sub, title, body, &outcome)

	return outcome
}

// deliverEmail mirrors a successful push to the subscriber's email address
// when the channel is configured. Email failures never affect push outcomes.
func (s *dispatchService) deliverEmail(ctx context.Context, sub *entity.PushSubscription, title, body string, outcome *usecase.DispatchOutcome) {
	if s.emailSender == nil || sub.UserEmail == nil || *sub.UserEmail == "" {
		return
	}

	emailCtx, cancel := context.WithTimeout(ctx, s.sendTimeout)
	defer cancel()

	htmlBody := "<p>" + body + "</p>"
	if err := s.emailSender.Send(emailCtx, *sub.UserEmail, title, htmlBody, body); err != nil {
		outcome.EmailFailed = true
		s.logger.Warn("email delivery failed",
			slog.String("endpoint", sub.Endpoint),
			slog.Any("error", err))

		return
	}
	outcome.EmailSent = true
}
