package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"pulse/config"
	"pulse/internal/domain/entity"
	"pulse/internal/domain/service"
	mockRepo "pulse/internal/mocks/repository"
	mockSvc "pulse/internal/mocks/service"
	"pulse/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testRunTime = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

func createTestDispatchService(t *testing.T) (
	*dispatchService,
	*mockRepo.MockSubscriptionRepository,
	*mockRepo.MockProfileRepository,
	*mockRepo.MockSentEventRepository,
	*mockSvc.MockPushSender,
	*mockSvc.MockEmailSender,
) {
	subscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	sentEventRepo := mockRepo.NewMockSentEventRepository(t)
	pushSender := mockSvc.NewMockPushSender(t)
	emailSender := mockSvc.NewMockEmailSender(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{}
	cfg.Dispatch = config.DispatchConfig{
		Concurrency:         4,
		SendTimeout:         time.Second,
		QuietStartHour:      22,
		QuietEndHour:        8,
		LedgerRetentionDays: 7,
	}

	svc, ok := NewDispatchService(logger, cfg, subscriptionRepo, profileRepo, sentEventRepo, pushSender, emailSender).(*dispatchService)
	require.True(t, ok)
	svc.now = func() time.Time { return testRunTime }

	return svc, subscriptionRepo, profileRepo, sentEventRepo, pushSender, emailSender
}

func expectLedgerClear(sentEventRepo *mockRepo.MockSentEventRepository, eventKey string) {
	sentEventRepo.EXPECT().DeleteOlderThan(mock.Anything, mock.Anything).Return(nil)
	sentEventRepo.EXPECT().
		Exists(mock.Anything, testRunTime.Truncate(24*time.Hour), eventKey).
		Return(false, nil)
}

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func subscriptionFor(endpoint string, ownerID *string) *entity.PushSubscription {
	return &entity.PushSubscription{
		Endpoint: endpoint,
		Credentials: entity.SubscriptionCredentials{
			P256dh: "p256dh-" + endpoint,
			Auth:   "auth-" + endpoint,
		},
		OwnerUserID: ownerID,
		IsActive:    true,
	}
}

func fullMoonEvent() *entity.NotificationEvent {
	return &entity.NotificationEvent{Name: "Full Moon", Type: "moon", Priority: 1}
}

func TestDispatchService_AlreadySentToday_SkipsWithoutSideEffects(t *testing.T) {
	svc, _, _, sentEventRepo, _, _ := createTestDispatchService(t)
	event := fullMoonEvent()

	sentEventRepo.EXPECT().DeleteOlderThan(mock.Anything, mock.Anything).Return(nil)
	sentEventRepo.EXPECT().
		Exists(mock.Anything, testRunTime.Truncate(24*time.Hour), event.Key()).
		Return(true, nil)

	result, err := svc.DispatchEvent(context.Background(), event, "daily")

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.True(t, result.Skipped)
	assert.Equal(t, usecase.SkipReasonAlreadySent, result.SkippedReason)
	assert.Equal(t, event.Key(), result.EventKey)
	// No subscriber query, no resolver call, no sends: the mocks would fail
	// on any unexpected invocation.
}

func TestDispatchService_QuietHours_Skips(t *testing.T) {
	svc, _, _, sentEventRepo, _, _ := createTestDispatchService(t)
	svc.now = func() time.Time { return time.Date(2025, 3, 15, 23, 30, 0, 0, time.UTC) }
	event := fullMoonEvent()

	sentEventRepo.EXPECT().DeleteOlderThan(mock.Anything, mock.Anything).Return(nil)
	sentEventRepo.EXPECT().Exists(mock.Anything, mock.Anything, event.Key()).Return(false, nil)

	result, err := svc.DispatchEvent(context.Background(), event, "4-hourly")

	require.NoError(t, err)
	assert.True(t, result.Skipped)
	assert.Equal(t, usecase.SkipReasonQuietHours, result.SkippedReason)
}

func TestDispatchService_QuietHours_EarlyMorningWrapAround(t *testing.T) {
	svc, _, _, sentEventRepo, _, _ := createTestDispatchService(t)
	svc.now = func() time.Time { return time.Date(2025, 3, 15, 6, 0, 0, 0, time.UTC) }
	event := fullMoonEvent()

	sentEventRepo.EXPECT().DeleteOlderThan(mock.Anything, mock.Anything).Return(nil)
	sentEventRepo.EXPECT().Exists(mock.Anything, mock.Anything, event.Key()).Return(false, nil)

	result, err := svc.DispatchEvent(context.Background(), event, "4-hourly")

	require.NoError(t, err)
	assert.True(t, result.Skipped)
	assert.Equal(t, usecase.SkipReasonQuietHours, result.SkippedReason)
}

func TestDispatchService_NoSubscribers_LeavesLedgerUnmarked(t *testing.T) {
	svc, subscriptionRepo, _, sentEventRepo, _, _ := createTestDispatchService(t)
	event := fullMoonEvent()

	expectLedgerClear(sentEventRepo, event.Key())
	subscriptionRepo.EXPECT().
		FindActiveForEvent(mock.Anything, entity.PreferenceMoonPhases).
		Return(nil, nil)

	result, err := svc.DispatchEvent(context.Background(), event, "daily")

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.False(t, result.Skipped)
	assert.Equal(t, 0, result.Counts.TotalSubscribers)
	// InsertIfAbsent has no expectation: marking the ledger here would fail
	// the test, and a later run with subscribers must still be able to send.
}

func TestDispatchService_SharedOwner_ResolvedExactlyOnce(t *testing.T) {
	svc, subscriptionRepo, profileRepo, sentEventRepo, pushSender, _ := createTestDispatchService(t)
	event := fullMoonEvent()

	subs := []*entity.PushSubscription{
		subscriptionFor("https://push.example/a", strPtr("user-1")),
		subscriptionFor("https://push.example/b", strPtr("user-1")),
		subscriptionFor("https://push.example/c", strPtr("user-2")),
		subscriptionFor("https://push.example/d", nil),
	}

	expectLedgerClear(sentEventRepo, event.Key())
	subscriptionRepo.EXPECT().
		FindActiveForEvent(mock.Anything, entity.PreferenceMoonPhases).
		Return(subs, nil)
	profileRepo.EXPECT().
		BatchGetProfiles(mock.Anything, []string{"user-1", "user-2"}).
		Return(map[string]*entity.UserProfile{}, nil).
		Once()
	pushSender.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	subscriptionRepo.EXPECT().TouchLastNotificationSent(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	sentEventRepo.EXPECT().InsertIfAbsent(mock.Anything, mock.Anything).Return(nil)

	result, err := svc.DispatchEvent(context.Background(), event, "daily")

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 4, result.Counts.TotalSubscribers)
	assert.Equal(t, 4, result.Counts.PushSent)
	assert.Equal(t, 0, result.Counts.PushFailed)
}

func TestDispatchService_AnonymousOnly_ResolverNeverCalled(t *testing.T) {
	svc, subscriptionRepo, _, sentEventRepo, pushSender, _ := createTestDispatchService(t)
	event := fullMoonEvent()

	subs := []*entity.PushSubscription{
		subscriptionFor("https://push.example/a", nil),
		subscriptionFor("https://push.example/b", nil),
	}

	expectLedgerClear(sentEventRepo, event.Key())
	subscriptionRepo.EXPECT().
		FindActiveForEvent(mock.Anything, entity.PreferenceMoonPhases).
		Return(subs, nil)
	pushSender.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	subscriptionRepo.EXPECT().TouchLastNotificationSent(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	sentEventRepo.EXPECT().InsertIfAbsent(mock.Anything, mock.Anything).Return(nil)

	result, err := svc.DispatchEvent(context.Background(), event, "daily")

	require.NoError(t, err)
	assert.Equal(t, 2, result.Counts.PushSent)
	// BatchGetProfiles has no expectation: any call would fail the test.
}

func TestDispatchService_Personalization_PaidWithBirthdayOnly(t *testing.T) {
	svc, subscriptionRepo, profileRepo, sentEventRepo, pushSender, _ := createTestDispatchService(t)
	event := fullMoonEvent()

	subs := []*entity.PushSubscription{
		subscriptionFor("https://push.example/paid-bday", strPtr("user-paid-bday")),
		subscriptionFor("https://push.example/paid-only", strPtr("user-paid-only")),
		subscriptionFor("https://push.example/free-bday", strPtr("user-free-bday")),
		subscriptionFor("https://push.example/no-profile", strPtr("user-missing")),
	}
	birthday := timePtr(time.Date(1990, 6, 1, 0, 0, 0, 0, time.UTC))
	profiles := map[string]*entity.UserProfile{
		"user-paid-bday": {
			UserID:       "user-paid-bday",
			Name:         "Luna Lovegood",
			Birthday:     birthday,
			Subscription: entity.BillingSnapshot{Status: "active", Plan: "premium", IsPaid: true},
		},
		"user-paid-only": {
			UserID:       "user-paid-only",
			Name:         "Sol Invictus",
			Subscription: entity.BillingSnapshot{Status: "active", Plan: "premium", IsPaid: true},
		},
		"user-free-bday": {
			UserID:       "user-free-bday",
			Name:         "Stella Maris",
			Birthday:     birthday,
			Subscription: entity.BillingSnapshot{Status: "active", Plan: "free", IsPaid: false},
		},
	}

	var mu sync.Mutex
	payloads := make(map[string]string)

	expectLedgerClear(sentEventRepo, event.Key())
	subscriptionRepo.EXPECT().
		FindActiveForEvent(mock.Anything, entity.PreferenceMoonPhases).
		Return(subs, nil)
	profileRepo.EXPECT().BatchGetProfiles(mock.Anything, mock.Anything).Return(profiles, nil)
	pushSender.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, sub *entity.PushSubscription, payload []byte) {
			mu.Lock()
			payloads[sub.Endpoint] = string(payload)
			mu.Unlock()
		}).
		Return(nil)
	subscriptionRepo.EXPECT().TouchLastNotificationSent(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	sentEventRepo.EXPECT().InsertIfAbsent(mock.Anything, mock.Anything).Return(nil)

	result, err := svc.DispatchEvent(context.Background(), event, "daily")

	require.NoError(t, err)
	assert.Equal(t, 4, result.Counts.PushSent)

	personalized := 0
	for _, detail := range result.Details {
		if detail.Personalized {
			personalized++
			assert.Equal(t, "user-paid-bday", detail.UserID)
		}
	}
	assert.Equal(t, 1, personalized)

	assert.Contains(t, payloads["https://push.example/paid-bday"], "Luna, culmination energy peaks")
	assert.Contains(t, payloads["https://push.example/paid-only"], "Culmination energy peaks")
	assert.Contains(t, payloads["https://push.example/free-bday"], "Culmination energy peaks")
	assert.Contains(t, payloads["https://push.example/no-profile"], "Culmination energy peaks")
	for endpoint, payload := range payloads {
		assert.NotContains(t, payload, "undefined", "payload for %s has placeholder artifact", endpoint)
		assert.NotContains(t, payload, "<nil>", "payload for %s has placeholder artifact", endpoint)
	}
}

func TestDispatchService_ResolverFailure_DegradesToGeneric(t *testing.T) {
	svc, subscriptionRepo, profileRepo, sentEventRepo, pushSender, _ := createTestDispatchService(t)
	event := fullMoonEvent()

	subs := []*entity.PushSubscription{
		subscriptionFor("https://push.example/a", strPtr("user-1")),
	}

	expectLedgerClear(sentEventRepo, event.Key())
	subscriptionRepo.EXPECT().
		FindActiveForEvent(mock.Anything, entity.PreferenceMoonPhases).
		Return(subs, nil)
	profileRepo.EXPECT().BatchGetProfiles(mock.Anything, mock.Anything).Return(nil, errors.New("profile store down"))
	pushSender.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	subscriptionRepo.EXPECT().TouchLastNotificationSent(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	sentEventRepo.EXPECT().InsertIfAbsent(mock.Anything, mock.Anything).Return(nil)

	result, err := svc.DispatchEvent(context.Background(), event, "daily")

	require.NoError(t, err)
	assert.Equal(t, 1, result.Counts.PushSent)
	assert.False(t, result.Details[0].Personalized)
}

func TestDispatchService_FailureClassification(t *testing.T) {
	svc, subscriptionRepo, _, sentEventRepo, pushSender, _ := createTestDispatchService(t)
	event := fullMoonEvent()

	healthy := subscriptionFor("https://push.example/healthy", nil)
	dead := subscriptionFor("https://push.example/dead", nil)
	flaky := subscriptionFor("https://push.example/flaky", nil)

	expectLedgerClear(sentEventRepo, event.Key())
	subscriptionRepo.EXPECT().
		FindActiveForEvent(mock.Anything, entity.PreferenceMoonPhases).
		Return([]*entity.PushSubscription{healthy, dead, flaky}, nil)

	pushSender.EXPECT().Send(mock.Anything, healthy, mock.Anything).Return(nil)
	pushSender.EXPECT().Send(mock.Anything, dead, mock.Anything).
		Return(service.NewDeliveryError(410, "Gone"))
	pushSender.EXPECT().Send(mock.Anything, flaky, mock.Anything).
		Return(service.NewDeliveryError(503, "Service Unavailable"))

	// Only the permanently dead endpoint is deactivated.
	subscriptionRepo.EXPECT().Deactivate(mock.Anything, dead.Endpoint).Return(nil).Once()
	subscriptionRepo.EXPECT().TouchLastNotificationSent(mock.Anything, healthy.Endpoint, mock.Anything).Return(nil)
	sentEventRepo.EXPECT().InsertIfAbsent(mock.Anything, mock.Anything).Return(nil)

	result, err := svc.DispatchEvent(context.Background(), event, "daily")

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Counts.PushSent)
	assert.Equal(t, 2, result.Counts.PushFailed)

	for _, detail := range result.Details {
		switch detail.Endpoint {
		case dead.Endpoint:
			assert.True(t, detail.PermanentFailure)
		case flaky.Endpoint:
			assert.False(t, detail.PermanentFailure)
			assert.NotEmpty(t, detail.Error)
		}
	}
}

func TestDispatchService_AllSendsFail_LedgerUnmarked(t *testing.T) {
	svc, subscriptionRepo, _, sentEventRepo, pushSender, _ := createTestDispatchService(t)
	event := fullMoonEvent()

	subs := []*entity.PushSubscription{
		subscriptionFor("https://push.example/a", nil),
		subscriptionFor("https://push.example/b", nil),
	}

	expectLedgerClear(sentEventRepo, event.Key())
	subscriptionRepo.EXPECT().
		FindActiveForEvent(mock.Anything, entity.PreferenceMoonPhases).
		Return(subs, nil)
	pushSender.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).
		Return(service.NewDeliveryError(500, "Internal Server Error"))

	result, err := svc.DispatchEvent(context.Background(), event, "daily")

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, 2, result.Counts.PushFailed)
	// InsertIfAbsent has no expectation: the event stays eligible for the
	// next trigger because nothing reached any subscriber.
}

func TestDispatchService_MixedRun_CountsAddUp(t *testing.T) {
	svc, subscriptionRepo, profileRepo, sentEventRepo, pushSender, _ := createTestDispatchService(t)
	event := fullMoonEvent()

	subs := []*entity.PushSubscription{
		subscriptionFor("https://push.example/p1", strPtr("paid-1")),
		subscriptionFor("https://push.example/p2", strPtr("paid-2")),
		subscriptionFor("https://push.example/f1", strPtr("free-1")),
		subscriptionFor("https://push.example/anon", nil),
		subscriptionFor("https://push.example/ghost", strPtr("missing")),
	}
	birthday := timePtr(time.Date(1985, 11, 2, 0, 0, 0, 0, time.UTC))
	profiles := map[string]*entity.UserProfile{
		"paid-1": {UserID: "paid-1", Name: "Ada", Birthday: birthday, Subscription: entity.BillingSnapshot{IsPaid: true}},
		"paid-2": {UserID: "paid-2", Name: "Grace", Birthday: birthday, Subscription: entity.BillingSnapshot{IsPaid: true}},
		"free-1": {UserID: "free-1", Name: "Linus", Birthday: birthday, Subscription: entity.BillingSnapshot{IsPaid: false}},
	}

	expectLedgerClear(sentEventRepo, event.Key())
	subscriptionRepo.EXPECT().
		FindActiveForEvent(mock.Anything, entity.PreferenceMoonPhases).
		Return(subs, nil)
	profileRepo.EXPECT().BatchGetProfiles(mock.Anything, mock.Anything).Return(profiles, nil)
	pushSender.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	subscriptionRepo.EXPECT().TouchLastNotificationSent(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	sentEventRepo.EXPECT().InsertIfAbsent(mock.Anything, mock.Anything).Return(nil)

	result, err := svc.DispatchEvent(context.Background(), event, "daily")

	require.NoError(t, err)
	assert.Equal(t, 5, result.Counts.TotalSubscribers)
	assert.Equal(t, 5, result.Counts.PushSent)

	personalized := 0
	for _, detail := range result.Details {
		if detail.Personalized {
			personalized++
		}
	}
	assert.Equal(t, 2, personalized)
}

func TestDispatchService_MarksLedgerWithRunMetadata(t *testing.T) {
	svc, subscriptionRepo, _, sentEventRepo, pushSender, _ := createTestDispatchService(t)
	event := &entity.NotificationEvent{Name: "Mercury Retrograde", Type: "retrograde", Priority: 2, Planet: "Mercury"}

	expectLedgerClear(sentEventRepo, event.Key())
	subscriptionRepo.EXPECT().
		FindActiveForEvent(mock.Anything, entity.PreferenceRetrogrades).
		Return([]*entity.PushSubscription{subscriptionFor("https://push.example/a", nil)}, nil)
	pushSender.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	subscriptionRepo.EXPECT().TouchLastNotificationSent(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	sentEventRepo.EXPECT().InsertIfAbsent(mock.Anything, mock.Anything).
		Run(func(_ context.Context, record *entity.SentEventRecord) {
			assert.Equal(t, testRunTime.Truncate(24*time.Hour), record.Date)
			assert.Equal(t, "retrograde-Mercury Retrograde-2", record.EventKey)
			assert.Equal(t, "retrograde", record.EventType)
			assert.Equal(t, "manual", record.SentBy)
		}).
		Return(nil)

	_, err := svc.DispatchEvent(context.Background(), event, "manual")
	require.NoError(t, err)
}

func TestDispatchService_LedgerWriteFailure_StillReportsSuccess(t *testing.T) {
	svc, subscriptionRepo, _, sentEventRepo, pushSender, _ := createTestDispatchService(t)
	event := fullMoonEvent()

	expectLedgerClear(sentEventRepo, event.Key())
	subscriptionRepo.EXPECT().
		FindActiveForEvent(mock.Anything, entity.PreferenceMoonPhases).
		Return([]*entity.PushSubscription{subscriptionFor("https://push.example/a", nil)}, nil)
	pushSender.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	subscriptionRepo.EXPECT().TouchLastNotificationSent(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	sentEventRepo.EXPECT().InsertIfAbsent(mock.Anything, mock.Anything).Return(errors.New("ledger write failed"))

	result, err := svc.DispatchEvent(context.Background(), event, "daily")

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Counts.PushSent)
}

func TestDispatchService_EmailMirroredAfterSuccessfulPush(t *testing.T) {
	svc, subscriptionRepo, _, sentEventRepo, pushSender, emailSender := createTestDispatchService(t)
	event := fullMoonEvent()

	withEmail := subscriptionFor("https://push.example/a", nil)
	withEmail.UserEmail = strPtr("luna@example.com")
	withoutEmail := subscriptionFor("https://push.example/b", nil)

	expectLedgerClear(sentEventRepo, event.Key())
	subscriptionRepo.EXPECT().
		FindActiveForEvent(mock.Anything, entity.PreferenceMoonPhases).
		Return([]*entity.PushSubscription{withEmail, withoutEmail}, nil)
	pushSender.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	subscriptionRepo.EXPECT().TouchLastNotificationSent(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	emailSender.EXPECT().
		Send(mock.Anything, "luna@example.com", "Full Moon", mock.Anything, mock.Anything).
		Return(nil).
		Once()
	sentEventRepo.EXPECT().InsertIfAbsent(mock.Anything, mock.Anything).Return(nil)

	result, err := svc.DispatchEvent(context.Background(), event, "daily")

	require.NoError(t, err)
	assert.Equal(t, 2, result.Counts.PushSent)
	assert.Equal(t, 1, result.Counts.EmailsSent)
	assert.Equal(t, 0, result.Counts.EmailsFailed)
}

func TestDispatchService_FailedPushSkipsEmail(t *testing.T) {
	svc, subscriptionRepo, _, sentEventRepo, pushSender, _ := createTestDispatchService(t)
	event := fullMoonEvent()

	sub := subscriptionFor("https://push.example/a", nil)
	sub.UserEmail = strPtr("luna@example.com")

	expectLedgerClear(sentEventRepo, event.Key())
	subscriptionRepo.EXPECT().
		FindActiveForEvent(mock.Anything, entity.PreferenceMoonPhases).
		Return([]*entity.PushSubscription{sub}, nil)
	pushSender.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).
		Return(service.NewDeliveryError(429, "Too Many Requests"))

	result, err := svc.DispatchEvent(context.Background(), event, "daily")

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, 0, result.Counts.EmailsSent)
	// EmailSender has no expectation: the mirror only follows a delivered push.
}

func TestDispatchService_EmailFailureDoesNotAffectPushCounts(t *testing.T) {
	svc, subscriptionRepo, _, sentEventRepo, pushSender, emailSender := createTestDispatchService(t)
	event := fullMoonEvent()

	sub := subscriptionFor("https://push.example/a", nil)
	sub.UserEmail = strPtr("luna@example.com")

	expectLedgerClear(sentEventRepo, event.Key())
	subscriptionRepo.EXPECT().
		FindActiveForEvent(mock.Anything, entity.PreferenceMoonPhases).
		Return([]*entity.PushSubscription{sub}, nil)
	pushSender.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	subscriptionRepo.EXPECT().TouchLastNotificationSent(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	emailSender.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("smtp timeout"))
	sentEventRepo.EXPECT().InsertIfAbsent(mock.Anything, mock.Anything).Return(nil)

	result, err := svc.DispatchEvent(context.Background(), event, "daily")

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Counts.PushSent)
	assert.Equal(t, 1, result.Counts.EmailsFailed)
}

func TestDispatchService_InvalidEvent_Rejected(t *testing.T) {
	svc, _, _, _, _, _ := createTestDispatchService(t)

	_, err := svc.DispatchEvent(context.Background(), &entity.NotificationEvent{Type: "moon"}, "daily")
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrInvalidEvent)

	_, err = svc.DispatchEvent(context.Background(), nil, "daily")
	require.Error(t, err)
}

func TestDispatchService_LedgerCheckFailure_AbortsRun(t *testing.T) {
	svc, _, _, sentEventRepo, _, _ := createTestDispatchService(t)
	event := fullMoonEvent()

	sentEventRepo.EXPECT().DeleteOlderThan(mock.Anything, mock.Anything).Return(nil)
	sentEventRepo.EXPECT().Exists(mock.Anything, mock.Anything, event.Key()).
		Return(false, errors.New("connection refused"))

	_, err := svc.DispatchEvent(context.Background(), event, "daily")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "check sent-event ledger")
}

func TestDispatchService_SubscriptionQueryFailure_AbortsRun(t *testing.T) {
	svc, subscriptionRepo, _, sentEventRepo, _, _ := createTestDispatchService(t)
	event := fullMoonEvent()

	expectLedgerClear(sentEventRepo, event.Key())
	subscriptionRepo.EXPECT().
		FindActiveForEvent(mock.Anything, entity.PreferenceMoonPhases).
		Return(nil, errors.New("query timeout"))

	_, err := svc.DispatchEvent(context.Background(), event, "daily")
	require.Error(t, err)
}

func TestDispatchService_PruneFailure_DoesNotBlockRun(t *testing.T) {
	svc, subscriptionRepo, _, sentEventRepo, _, _ := createTestDispatchService(t)
	event := fullMoonEvent()

	sentEventRepo.EXPECT().DeleteOlderThan(mock.Anything, mock.Anything).Return(errors.New("lock timeout"))
	sentEventRepo.EXPECT().Exists(mock.Anything, mock.Anything, event.Key()).Return(false, nil)
	subscriptionRepo.EXPECT().
		FindActiveForEvent(mock.Anything, entity.PreferenceMoonPhases).
		Return(nil, nil)

	result, err := svc.DispatchEvent(context.Background(), event, "daily")

	require.NoError(t, err)
	assert.True(t, result.Success)
}

func TestDedupOwnerIDs_PreservesFirstOccurrenceOrder(t *testing.T) {
	subs := []*entity.PushSubscription{
		subscriptionFor("e1", strPtr("user-2")),
		subscriptionFor("e2", nil),
		subscriptionFor("e3", strPtr("user-1")),
		subscriptionFor("e4", strPtr("user-2")),
		subscriptionFor("e5", strPtr("")),
	}

	assert.Equal(t, []string{"user-2", "user-1"}, dedupOwnerIDs(subs))
	assert.Empty(t, dedupOwnerIDs(nil))
}

func TestQuietWindow(t *testing.T) {
	wrap := quietWindow{startHour: 22, endHour: 8}
	assert.True(t, wrap.contains(22))
	assert.True(t, wrap.contains(23))
	assert.True(t, wrap.contains(0))
	assert.True(t, wrap.contains(7))
	assert.False(t, wrap.contains(8))
	assert.False(t, wrap.contains(12))
	assert.False(t, wrap.contains(21))

	plain := quietWindow{startHour: 1, endHour: 5}
	assert.True(t, plain.contains(1))
	assert.True(t, plain.contains(4))
	assert.False(t, plain.contains(5))
	assert.False(t, plain.contains(0))

	empty := quietWindow{startHour: 3, endHour: 3}
	for hour := 0; hour < 24; hour++ {
		assert.False(t, empty.contains(hour))
	}
}

func TestPersonalization(t *testing.T) {
	birthday := timePtr(time.Date(1990, 6, 1, 0, 0, 0, 0, time.UTC))
	paid := &entity.UserProfile{Name: "Luna Lovegood", Birthday: birthday, Subscription: entity.BillingSnapshot{IsPaid: true}}

	assert.True(t, ShouldPersonalize(paid))
	assert.False(t, ShouldPersonalize(nil))
	assert.False(t, ShouldPersonalize(&entity.UserProfile{Name: "X", Subscription: entity.BillingSnapshot{IsPaid: true}}))
	assert.False(t, ShouldPersonalize(&entity.UserProfile{Name: "X", Birthday: birthday}))

	body := "Culmination energy peaks, release what no longer serves"
	assert.Equal(t, "Luna, culmination energy peaks, release what no longer serves", PersonalizeBody(body, paid))
	assert.Equal(t, body, PersonalizeBody(body, &entity.UserProfile{Name: "", Birthday: birthday, Subscription: entity.BillingSnapshot{IsPaid: true}}))
	assert.Equal(t, body, PersonalizeBody(body, nil))
	assert.Equal(t, "Full Moon", PersonalizeTitle("Full Moon", paid))

	if got := PersonalizeBody(body, paid); strings.Contains(got, "undefined") {
		t.Fatalf("personalized body contains placeholder artifact: %q", got)
	}
}
