package impl

import (
	"context"
	"io"
	"log/slog"
	"math"
	"strings"
	"testing"
	"time"

	"civicradar/config"
	"civicradar/internal/domain/entity"
	domainerrors "civicradar/internal/domain/errors"
	"civicradar/internal/domain/repository"
	"civicradar/internal/domain/service"
	"civicradar/internal/errors"
	"civicradar/internal/geo"
	mockRepo "civicradar/internal/mocks/repository"
	mockSvc "civicradar/internal/mocks/service"
	"civicradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dispatchFixture struct {
	svc              *dispatchService
	reportRepo       *mockRepo.MockReportRepository
	locationRepo     *mockRepo.MockLocationRepository
	subscriptionRepo *mockRepo.MockPushSubscriptionRepository
	dispatchLogRepo  *mockRepo.MockDispatchLogRepository
	sender           *mockSvc.MockPushSender
	publisher        *mockSvc.MockEventPublisher
}

func testConfig() *config.Config {
	return &config.Config{
		Dispatch: &config.DispatchConfig{
			DefaultRadiusMeters: 5000,
			MaxRadiusMeters:     50000,
			Concurrency:         4,
			DeliveryTimeout:     time.Second,
		},
		Composer: &config.ComposerConfig{
			AppURL: "https://civicradar.test/",
			Icon:   "/icons/icon-192.png",
		},
		Subscriptions: &config.SubscriptionsConfig{UnsubscribeDisablesProximity: true},
	}
}

func newDispatchFixture(t *testing.T, cfg *config.Config) *dispatchFixture {
	t.Helper()

	f := &dispatchFixture{
		reportRepo:       mockRepo.NewMockReportRepository(t),
		locationRepo:     mockRepo.NewMockLocationRepository(t),
		subscriptionRepo: mockRepo.NewMockPushSubscriptionRepository(t),
		dispatchLogRepo:  mockRepo.NewMockDispatchLogRepository(t),
		sender:           mockSvc.NewMockPushSender(t),
		publisher:        mockSvc.NewMockEventPublisher(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	f.svc = NewDispatchService(DispatchServiceParams{
		Config:           cfg,
		Logger:           logger,
		ReportRepo:       f.reportRepo,
		LocationRepo:     f.locationRepo,
		SubscriptionRepo: f.subscriptionRepo,
		DispatchLogRepo:  f.dispatchLogRepo,
		Sender:           f.sender,
		Publisher:        f.publisher,
		Composer:         NewNotificationComposer(cfg),
	}).(*dispatchService)

	return f
}

func kingstonReport() *entity.Report {
	return &entity.Report{
		ID:        uuid.New(),
		Title:     "Water main leak on Hope Road",
		Category:  "water",
		Latitude:  18.0179,
		Longitude: -76.8099,
	}
}

func trackedUser(lat, lon float64, notifications, proximity bool) *entity.TrackedUser {
	userID := uuid.New()

	return &entity.TrackedUser{
		Location: entity.UserLocation{UserID: userID, Latitude: lat, Longitude: lon},
		Preference: entity.NotificationPreference{
			UserID:                        userID,
			NotificationsEnabled:          notifications,
			ProximityNotificationsEnabled: proximity,
		},
	}
}

func subscriptionFor(userID uuid.UUID, endpoint string) *entity.PushSubscription {
	return &entity.PushSubscription{
		ID:         uuid.New(),
		UserID:     userID,
		Endpoint:   endpoint,
		PublicKey:  "p256dh",
		AuthSecret: "auth",
	}
}

func dispatchInput(report *entity.Report) *usecase.DispatchInput {
	return &usecase.DispatchInput{ExperienceID: report.ID.String()}
}

func (f *dispatchFixture) expectDispatchLog(report *entity.Report, recipients int, radius float64) {
	f.dispatchLogRepo.EXPECT().
		CreateDispatchLog(mock.Anything, mock.MatchedBy(func(entry *entity.DispatchLogEntry) bool {
			return entry.SourceExperienceID == report.ID &&
				entry.Type == entity.DispatchTypeProximity &&
				entry.RecipientsCount == recipients &&
				entry.RadiusMeters == radius
		})).
		Return(nil).Once()
}

func TestDispatchService_DispatchProximity_KingstonScenario(t *testing.T) {
	f := newDispatchFixture(t, testConfig())
	ctx := context.Background()

	report := kingstonReport()
	userA := trackedUser(18.02, -76.81, true, true)
	userB := trackedUser(19.5, -75.0, true, true)
	subA := subscriptionFor(userA.Location.UserID, "https://push.example/a")

	f.reportRepo.EXPECT().FindReportByID(ctx, report.ID).Return(report, nil)
	f.locationRepo.EXPECT().FindTrackedUsers(ctx).Return([]*entity.TrackedUser{userA, userB}, nil)
	f.subscriptionRepo.EXPECT().
		FindSubscriptionsByUsers(ctx, []uuid.UUID{userA.Location.UserID}).
		Return([]*entity.PushSubscription{subA}, nil)
	f.sender.EXPECT().
		Send(mock.Anything, subA, mock.MatchedBy(func(p *entity.NotificationPayload) bool {
			return p.Tag == "proximity-"+report.ID.String() &&
				p.Title == proximityTitle &&
				strings.HasPrefix(p.Body, report.Title+" · ")
		})).
		Return(nil).Once()
	f.expectDispatchLog(report, 1, 5000)

	result, err := f.svc.DispatchProximity(ctx, dispatchInput(report))

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Notified)
	assert.Equal(t, 1, result.TotalNearbyUsers)
	assert.Equal(t, 1, result.TotalSubscriptions)
	assert.Empty(t, result.Errors)
}

func TestDispatchService_DispatchProximity_NoNearbyUsers(t *testing.T) {
	f := newDispatchFixture(t, testConfig())
	ctx := context.Background()

	report := kingstonReport()
	far := trackedUser(19.5, -75.0, true, true)

	f.reportRepo.EXPECT().FindReportByID(ctx, report.ID).Return(report, nil)
	f.locationRepo.EXPECT().FindTrackedUsers(ctx).Return([]*entity.TrackedUser{far}, nil)
	f.expectDispatchLog(report, 0, 5000)

	result, err := f.svc.DispatchProximity(ctx, dispatchInput(report))

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 0, result.Notified)
	assert.Equal(t, 0, result.TotalNearbyUsers)
	assert.Empty(t, result.Errors)
}

func TestDispatchService_DispatchProximity_RespectsPreferences(t *testing.T) {
	f := newDispatchFixture(t, testConfig())
	ctx := context.Background()

	report := kingstonReport()
	globalOff := trackedUser(18.0180, -76.8100, false, true)
	proximityOff := trackedUser(18.0181, -76.8101, true, false)

	f.reportRepo.EXPECT().FindReportByID(ctx, report.ID).Return(report, nil)
	f.locationRepo.EXPECT().FindTrackedUsers(ctx).Return([]*entity.TrackedUser{globalOff, proximityOff}, nil)
	f.expectDispatchLog(report, 0, 5000)

	result, err := f.svc.DispatchProximity(ctx, dispatchInput(report))

	require.NoError(t, err)
	assert.Equal(t, 0, result.TotalNearbyUsers)
}

func TestDispatchService_DispatchProximity_CustomRadius(t *testing.T) {
	f := newDispatchFixture(t, testConfig())
	ctx := context.Background()

	report := kingstonReport()
	userA := trackedUser(18.02, -76.81, true, true)
	radius := 100.0

	f.reportRepo.EXPECT().FindReportByID(ctx, report.ID).Return(report, nil)
	f.locationRepo.EXPECT().FindTrackedUsers(ctx).Return([]*entity.TrackedUser{userA}, nil)
	f.expectDispatchLog(report, 0, radius)

	result, err := f.svc.DispatchProximity(ctx, &usecase.DispatchInput{ExperienceID: report.ID.String(), RadiusMeters: &radius})

	require.NoError(t, err)
	assert.Equal(t, 0, result.TotalNearbyUsers)
}

func TestDispatchService_DispatchProximity_AllPermanentFailuresAreRemoved(t *testing.T) {
	f := newDispatchFixture(t, testConfig())
	ctx := context.Background()

	report := kingstonReport()
	userA := trackedUser(18.02, -76.81, true, true)
	userB := trackedUser(18.019, -76.808, true, true)
	subA := subscriptionFor(userA.Location.UserID, "https://push.example/a")
	subB := subscriptionFor(userB.Location.UserID, "https://push.example/b")

	f.reportRepo.EXPECT().FindReportByID(ctx, report.ID).Return(report, nil)
	f.locationRepo.EXPECT().FindTrackedUsers(ctx).Return([]*entity.TrackedUser{userA, userB}, nil)
	f.subscriptionRepo.EXPECT().
		FindSubscriptionsByUsers(ctx, []uuid.UUID{userA.Location.UserID, userB.Location.UserID}).
		Return([]*entity.PushSubscription{subA, subB}, nil)
	f.sender.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).
		Return(&service.PermanentDeliveryError{StatusCode: 410, Err: errors.New("gone")}).Twice()
	f.subscriptionRepo.EXPECT().DeleteSubscriptionByID(mock.Anything, subA.ID).Return(nil).Once()
	f.subscriptionRepo.EXPECT().DeleteSubscriptionByID(mock.Anything, subB.ID).Return(nil).Once()
	f.expectDispatchLog(report, 0, 5000)

	result, err := f.svc.DispatchProximity(ctx, dispatchInput(report))

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 0, result.Notified)
	assert.Equal(t, 2, result.TotalNearbyUsers)
	assert.Equal(t, 2, result.TotalSubscriptions)
	assert.Len(t, result.Errors, 2)
}

func TestDispatchService_DispatchProximity_MixedOutcomesForOneUser(t *testing.T) {
	f := newDispatchFixture(t, testConfig())
	ctx := context.Background()

	report := kingstonReport()
	userA := trackedUser(18.02, -76.81, true, true)
	dead := subscriptionFor(userA.Location.UserID, "https://push.example/old-phone")
	alive := subscriptionFor(userA.Location.UserID, "https://push.example/laptop")

	f.reportRepo.EXPECT().FindReportByID(ctx, report.ID).Return(report, nil)
	f.locationRepo.EXPECT().FindTrackedUsers(ctx).Return([]*entity.TrackedUser{userA}, nil)
	f.subscriptionRepo.EXPECT().
		FindSubscriptionsByUsers(ctx, []uuid.UUID{userA.Location.UserID}).
		Return([]*entity.PushSubscription{dead, alive}, nil)
	f.sender.EXPECT().Send(mock.Anything, dead, mock.Anything).
		Return(&service.PermanentDeliveryError{StatusCode: 404, Err: errors.New("not found")}).Once()
	f.sender.EXPECT().Send(mock.Anything, alive, mock.Anything).Return(nil).Once()
	f.subscriptionRepo.EXPECT().DeleteSubscriptionByID(mock.Anything, dead.ID).Return(nil).Once()
	f.expectDispatchLog(report, 1, 5000)

	result, err := f.svc.DispatchProximity(ctx, dispatchInput(report))

	require.NoError(t, err)
	assert.Equal(t, 1, result.Notified)
	assert.Equal(t, 2, result.TotalSubscriptions)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], dead.ID.String())
}

func TestDispatchService_DispatchProximity_TransientFailureKeepsSubscription(t *testing.T) {
	f := newDispatchFixture(t, testConfig())
	ctx := context.Background()

	report := kingstonReport()
	userA := trackedUser(18.02, -76.81, true, true)
	subA := subscriptionFor(userA.Location.UserID, "https://push.example/a")

	f.reportRepo.EXPECT().FindReportByID(ctx, report.ID).Return(report, nil)
	f.locationRepo.EXPECT().FindTrackedUsers(ctx).Return([]*entity.TrackedUser{userA}, nil)
	f.subscriptionRepo.EXPECT().FindSubscriptionsByUsers(ctx, mock.Anything).Return([]*entity.PushSubscription{subA}, nil)
	f.sender.EXPECT().Send(mock.Anything, subA, mock.Anything).
		Return(&service.TransientDeliveryError{StatusCode: 503, Err: errors.New("unavailable")}).Once()
	f.expectDispatchLog(report, 0, 5000)

	result, err := f.svc.DispatchProximity(ctx, dispatchInput(report))

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 0, result.Notified)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], subA.ID.String())
	f.subscriptionRepo.AssertNotCalled(t, "DeleteSubscriptionByID", mock.Anything, mock.Anything)
}

func TestDispatchService_DispatchProximity_TimeoutIsTransient(t *testing.T) {
	cfg := testConfig()
	cfg.Dispatch.DeliveryTimeout = 20 * time.Millisecond
	f := newDispatchFixture(t, cfg)
	ctx := context.Background()

	report := kingstonReport()
	userA := trackedUser(18.02, -76.81, true, true)
	subA := subscriptionFor(userA.Location.UserID, "https://push.example/slow")

	f.reportRepo.EXPECT().FindReportByID(ctx, report.ID).Return(report, nil)
	f.locationRepo.EXPECT().FindTrackedUsers(ctx).Return([]*entity.TrackedUser{userA}, nil)
	f.subscriptionRepo.EXPECT().FindSubscriptionsByUsers(ctx, mock.Anything).Return([]*entity.PushSubscription{subA}, nil)
	f.sender.EXPECT().Send(mock.Anything, subA, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ *entity.PushSubscription, _ *entity.NotificationPayload) error {
			<-ctx.Done()

			return ctx.Err()
		}).Once()
	f.expectDispatchLog(report, 0, 5000)

	result, err := f.svc.DispatchProximity(ctx, dispatchInput(report))

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 0, result.Notified)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "deadline exceeded")
	f.subscriptionRepo.AssertNotCalled(t, "DeleteSubscriptionByID", mock.Anything, mock.Anything)
}

func TestDispatchService_DispatchProximity_CancellationKeepsPartialResults(t *testing.T) {
	cfg := testConfig()
	cfg.Dispatch.Concurrency = 1
	f := newDispatchFixture(t, cfg)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	report := kingstonReport()
	userA := trackedUser(18.02, -76.81, true, true)
	subs := []*entity.PushSubscription{
		subscriptionFor(userA.Location.UserID, "https://push.example/1"),
		subscriptionFor(userA.Location.UserID, "https://push.example/2"),
		subscriptionFor(userA.Location.UserID, "https://push.example/3"),
	}

	f.reportRepo.EXPECT().FindReportByID(ctx, report.ID).Return(report, nil)
	f.locationRepo.EXPECT().FindTrackedUsers(ctx).Return([]*entity.TrackedUser{userA}, nil)
	f.subscriptionRepo.EXPECT().FindSubscriptionsByUsers(ctx, mock.Anything).Return(subs, nil)
	f.sender.EXPECT().Send(mock.Anything, subs[0], mock.Anything).
		RunAndReturn(func(context.Context, *entity.PushSubscription, *entity.NotificationPayload) error {
			cancel()

			return nil
		}).Once()
	f.expectDispatchLog(report, 1, 5000)

	result, err := f.svc.DispatchProximity(ctx, dispatchInput(report))

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, 1, result.Notified)
	assert.Equal(t, 3, result.TotalSubscriptions)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "2 deliveries not attempted")
}

func TestDispatchService_DispatchProximity_CleanupFailuresAreReported(t *testing.T) {
	f := newDispatchFixture(t, testConfig())
	ctx := context.Background()

	report := kingstonReport()
	userA := trackedUser(18.02, -76.81, true, true)
	subA := subscriptionFor(userA.Location.UserID, "https://push.example/a")

	f.reportRepo.EXPECT().FindReportByID(ctx, report.ID).Return(report, nil)
	f.locationRepo.EXPECT().FindTrackedUsers(ctx).Return([]*entity.TrackedUser{userA}, nil)
	f.subscriptionRepo.EXPECT().FindSubscriptionsByUsers(ctx, mock.Anything).Return([]*entity.PushSubscription{subA}, nil)
	f.sender.EXPECT().Send(mock.Anything, subA, mock.Anything).
		Return(&service.PermanentDeliveryError{StatusCode: 410, Err: errors.New("gone")}).Once()
	f.subscriptionRepo.EXPECT().DeleteSubscriptionByID(mock.Anything, subA.ID).Return(errors.New("connection reset")).Once()
	f.dispatchLogRepo.EXPECT().CreateDispatchLog(mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()

	result, err := f.svc.DispatchProximity(ctx, dispatchInput(report))

	require.NoError(t, err)
	assert.True(t, result.Success)
	require.Len(t, result.Errors, 3)
	assert.Contains(t, result.Errors[1], "failed to remove subscription")
	assert.Contains(t, result.Errors[2], "dispatch log")
}

func TestDispatchService_DispatchProximity_ReportNotFound(t *testing.T) {
	f := newDispatchFixture(t, testConfig())
	ctx := context.Background()
	report := kingstonReport()

	f.reportRepo.EXPECT().FindReportByID(ctx, report.ID).Return(nil, repository.ErrReportNotFound)

	result, err := f.svc.DispatchProximity(ctx, dispatchInput(report))

	assert.Nil(t, result)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrReportNotFound)
}

func TestDispatchService_DispatchProximity_UpstreamFailures(t *testing.T) {
	report := kingstonReport()
	userA := trackedUser(18.02, -76.81, true, true)

	tests := []struct {
		name  string
		setup func(f *dispatchFixture, ctx context.Context)
	}{
		{
			name: "report lookup",
			setup: func(f *dispatchFixture, ctx context.Context) {
				f.reportRepo.EXPECT().FindReportByID(ctx, report.ID).Return(nil, errors.New("timeout"))
			},
		},
		{
			name: "location scan",
			setup: func(f *dispatchFixture, ctx context.Context) {
				f.reportRepo.EXPECT().FindReportByID(ctx, report.ID).Return(report, nil)
				f.locationRepo.EXPECT().FindTrackedUsers(ctx).Return(nil, errors.New("timeout"))
			},
		},
		{
			name: "subscription lookup",
			setup: func(f *dispatchFixture, ctx context.Context) {
				f.reportRepo.EXPECT().FindReportByID(ctx, report.ID).Return(report, nil)
				f.locationRepo.EXPECT().FindTrackedUsers(ctx).Return([]*entity.TrackedUser{userA}, nil)
				f.subscriptionRepo.EXPECT().FindSubscriptionsByUsers(ctx, mock.Anything).Return(nil, errors.New("timeout"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newDispatchFixture(t, testConfig())
			ctx := context.Background()
			tt.setup(f, ctx)

			result, err := f.svc.DispatchProximity(ctx, dispatchInput(report))

			assert.Nil(t, result)
			var upstream *domainerrors.UpstreamQueryError
			require.ErrorAs(t, err, &upstream)
			assert.Equal(t, 500, upstream.HTTPCode())
		})
	}
}

func TestDispatchService_DispatchProximity_InvalidInput(t *testing.T) {
	zero, negative, tooFar, nan := 0.0, -10.0, 50001.0, math.NaN()
	validID := uuid.NewString()

	tests := []struct {
		name  string
		input *usecase.DispatchInput
	}{
		{name: "nil input", input: nil},
		{name: "malformed id", input: &usecase.DispatchInput{ExperienceID: "not-a-uuid"}},
		{name: "zero radius", input: &usecase.DispatchInput{ExperienceID: validID, RadiusMeters: &zero}},
		{name: "negative radius", input: &usecase.DispatchInput{ExperienceID: validID, RadiusMeters: &negative}},
		{name: "radius above max", input: &usecase.DispatchInput{ExperienceID: validID, RadiusMeters: &tooFar}},
		{name: "NaN radius", input: &usecase.DispatchInput{ExperienceID: validID, RadiusMeters: &nan}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newDispatchFixture(t, testConfig())

			_, err := f.svc.DispatchProximity(context.Background(), tt.input)

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestFilterNearby_InclusiveBoundary(t *testing.T) {
	report := kingstonReport()
	user := trackedUser(18.03, -76.80, true, true)
	distance := geo.DistanceMeters(
		geo.Point{Latitude: report.Latitude, Longitude: report.Longitude},
		geo.Point{Latitude: user.Location.Latitude, Longitude: user.Location.Longitude},
	)

	inside := filterNearby([]*entity.TrackedUser{user}, report, distance)
	require.Len(t, inside, 1)
	assert.InDelta(t, distance, inside[0].distanceMeters, 0)

	outside := filterNearby([]*entity.TrackedUser{user}, report, math.Nextafter(distance, 0))
	assert.Empty(t, outside)
}

func TestFilterNearby_DeduplicatesUsers(t *testing.T) {
	report := kingstonReport()
	user := trackedUser(18.02, -76.81, true, true)
	dup := *user

	nearby := filterNearby([]*entity.TrackedUser{user, &dup, nil}, report, 5000)

	assert.Len(t, nearby, 1)
}

func TestDispatchService_SendTestNotification(t *testing.T) {
	f := newDispatchFixture(t, testConfig())
	ctx := context.Background()
	userID := uuid.New()
	subs := []*entity.PushSubscription{
		subscriptionFor(userID, "https://push.example/phone"),
		subscriptionFor(userID, "https://push.example/laptop"),
	}

	f.subscriptionRepo.EXPECT().FindSubscriptionsByUser(ctx, userID).Return(subs, nil)
	f.sender.EXPECT().
		Send(mock.Anything, mock.Anything, mock.MatchedBy(func(p *entity.NotificationPayload) bool {
			return p.Tag == testTag && p.Body == "hello" && p.Data.Type == entity.PayloadTypeTest
		})).
		Return(nil).Twice()

	result, err := f.svc.SendTestNotification(ctx, userID, "hello")

	require.NoError(t, err)
	assert.Equal(t, 2, result.Notified)
	assert.Equal(t, 2, result.TotalSubscriptions)
}

func TestDispatchService_SendTestNotification_NoSubscriptions(t *testing.T) {
	f := newDispatchFixture(t, testConfig())
	ctx := context.Background()
	userID := uuid.New()

	f.subscriptionRepo.EXPECT().FindSubscriptionsByUser(ctx, userID).Return([]*entity.PushSubscription{}, nil)

	result, err := f.svc.SendTestNotification(ctx, userID, "")

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 0, result.Notified)
}

func TestDispatchService_EnqueueProximityDispatch(t *testing.T) {
	f := newDispatchFixture(t, testConfig())
	ctx := context.Background()
	report := kingstonReport()
	radius := 1200.0

	f.reportRepo.EXPECT().FindReportByID(ctx, report.ID).Return(report, nil)
	f.publisher.EXPECT().
		PublishReportCreated(ctx, mock.MatchedBy(func(e *entity.ReportCreatedEvent) bool {
			return e.ExperienceID == report.ID.String() && e.RadiusMeters != nil && *e.RadiusMeters == radius
		})).
		Return(nil)

	err := f.svc.EnqueueProximityDispatch(ctx, &usecase.DispatchInput{ExperienceID: report.ID.String(), RadiusMeters: &radius})

	require.NoError(t, err)
}

func TestDispatchService_EnqueueProximityDispatch_PublishFailure(t *testing.T) {
	f := newDispatchFixture(t, testConfig())
	ctx := context.Background()
	report := kingstonReport()

	f.reportRepo.EXPECT().FindReportByID(ctx, report.ID).Return(report, nil)
	f.publisher.EXPECT().PublishReportCreated(ctx, mock.Anything).Return(errors.New("topic unavailable"))

	err := f.svc.EnqueueProximityDispatch(ctx, dispatchInput(report))

	assert.ErrorIs(t, err, domainerrors.ErrPublishFailed)
}

func TestDispatchService_EnqueueProximityDispatch_UnknownReport(t *testing.T) {
	f := newDispatchFixture(t, testConfig())
	ctx := context.Background()
	report := kingstonReport()

	f.reportRepo.EXPECT().FindReportByID(ctx, report.ID).Return(nil, repository.ErrReportNotFound)

	err := f.svc.EnqueueProximityDispatch(ctx, dispatchInput(report))

	assert.ErrorIs(t, err, domainerrors.ErrReportNotFound)
}
