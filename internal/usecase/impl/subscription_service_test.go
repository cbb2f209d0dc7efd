package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"civicradar/config"
	"civicradar/internal/domain/entity"
	domainerrors "civicradar/internal/domain/errors"
	"civicradar/internal/domain/repository"
	"civicradar/internal/errors"
	mockRepo "civicradar/internal/mocks/repository"
	"civicradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type subscriptionFixture struct {
	svc              usecase.SubscriptionUsecase
	subscriptionRepo *mockRepo.MockPushSubscriptionRepository
	preferenceRepo   *mockRepo.MockPreferenceRepository
	txManager        *mockRepo.MockTransactionManager
}

func newSubscriptionFixture(t *testing.T, cfg *config.Config) *subscriptionFixture {
	t.Helper()

	f := &subscriptionFixture{
		subscriptionRepo: mockRepo.NewMockPushSubscriptionRepository(t),
		preferenceRepo:   mockRepo.NewMockPreferenceRepository(t),
		txManager:        mockRepo.NewMockTransactionManager(t),
	}
	f.svc = NewSubscriptionService(SubscriptionServiceParams{
		Config:           cfg,
		Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
		SubscriptionRepo: f.subscriptionRepo,
		PreferenceRepo:   f.preferenceRepo,
		TxManager:        f.txManager,
	})

	return f
}

func validSubscribeInput() *usecase.SubscribeInput {
	return &usecase.SubscribeInput{
		Endpoint: "https://fcm.googleapis.com/fcm/send/abc123",
		Keys:     usecase.SubscriptionKeys{PublicKey: "BNcRdreALRFX", AuthSecret: "tBHItJI5svbpez7KI4CCXg"},
	}
}

func TestSubscriptionService_Subscribe(t *testing.T) {
	f := newSubscriptionFixture(t, testConfig())
	ctx := context.Background()
	userID := uuid.New()

	f.subscriptionRepo.EXPECT().
		UpsertSubscription(ctx, mock.MatchedBy(func(sub *entity.PushSubscription) bool {
			return sub.UserID == userID &&
				sub.Endpoint == "https://fcm.googleapis.com/fcm/send/abc123" &&
				sub.PublicKey == "BNcRdreALRFX" &&
				sub.AuthSecret == "tBHItJI5svbpez7KI4CCXg"
		})).
		Return(nil)

	sub, err := f.svc.Subscribe(ctx, userID, validSubscribeInput())

	require.NoError(t, err)
	assert.Equal(t, userID, sub.UserID)
	assert.NotEqual(t, uuid.Nil, sub.ID)
}

func TestSubscriptionService_Subscribe_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *usecase.SubscribeInput) *usecase.SubscribeInput
	}{
		{name: "nil input", mutate: func(*usecase.SubscribeInput) *usecase.SubscribeInput { return nil }},
		{name: "blank endpoint", mutate: func(in *usecase.SubscribeInput) *usecase.SubscribeInput {
			in.Endpoint = "  "

			return in
		}},
		{name: "missing public key", mutate: func(in *usecase.SubscribeInput) *usecase.SubscribeInput {
			in.Keys.PublicKey = ""

			return in
		}},
		{name: "missing auth secret", mutate: func(in *usecase.SubscribeInput) *usecase.SubscribeInput {
			in.Keys.AuthSecret = ""

			return in
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSubscriptionFixture(t, testConfig())

			_, err := f.svc.Subscribe(context.Background(), uuid.New(), tt.mutate(validSubscribeInput()))

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestSubscriptionService_Subscribe_StorageFailure(t *testing.T) {
	f := newSubscriptionFixture(t, testConfig())
	ctx := context.Background()

	f.subscriptionRepo.EXPECT().UpsertSubscription(ctx, mock.Anything).Return(errors.New("connection refused"))

	_, err := f.svc.Subscribe(ctx, uuid.New(), validSubscribeInput())

	var upstream *domainerrors.UpstreamQueryError
	assert.ErrorAs(t, err, &upstream)
}

// upsertingRepo keys rows by (user, endpoint) the way the unique index does.
type upsertingRepo struct {
	repository.PushSubscriptionRepository

	mu   sync.Mutex
	rows map[string]*entity.PushSubscription
}

func (r *upsertingRepo) UpsertSubscription(_ context.Context, sub *entity.PushSubscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := sub.UserID.String() + "|" + sub.Endpoint
	if existing, ok := r.rows[key]; ok {
		existing.PublicKey, existing.AuthSecret, existing.UpdatedAt = sub.PublicKey, sub.AuthSecret, sub.UpdatedAt
		*sub = *existing

		return nil
	}
	stored := *sub
	r.rows[key] = &stored

	return nil
}

func (r *upsertingRepo) FindSubscriptionsByUser(_ context.Context, userID uuid.UUID) ([]*entity.PushSubscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*entity.PushSubscription, 0)
	for _, sub := range r.rows {
		if sub.UserID == userID {
			out = append(out, sub)
		}
	}

	return out, nil
}

func TestSubscriptionService_ResubscribeUpdatesInPlace(t *testing.T) {
	repo := &upsertingRepo{rows: map[string]*entity.PushSubscription{}}
	svc := NewSubscriptionService(SubscriptionServiceParams{
		Config:           testConfig(),
		Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
		SubscriptionRepo: repo,
	})
	ctx := context.Background()
	userID := uuid.New()

	first, err := svc.Subscribe(ctx, userID, validSubscribeInput())
	require.NoError(t, err)

	again := validSubscribeInput()
	again.Keys.PublicKey = "rotated"
	second, err := svc.Subscribe(ctx, userID, again)
	require.NoError(t, err)

	subs, err := svc.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "rotated", subs[0].PublicKey)
}

func TestSubscriptionService_Unsubscribe_DisablesProximity(t *testing.T) {
	f := newSubscriptionFixture(t, testConfig())
	ctx := context.Background()
	userID := uuid.New()
	endpoint := "https://push.example/device"

	factory := mockRepo.NewMockRepositoryFactory(t)
	txSubs := mockRepo.NewMockPushSubscriptionRepository(t)
	txPrefs := mockRepo.NewMockPreferenceRepository(t)

	f.txManager.EXPECT().Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
	factory.EXPECT().NewPushSubscriptionRepository().Return(txSubs)
	factory.EXPECT().NewPreferenceRepository().Return(txPrefs)
	txSubs.EXPECT().DeleteSubscription(ctx, userID, endpoint).Return(true, nil)
	txPrefs.EXPECT().DisableProximity(ctx, userID).Return(nil)

	require.NoError(t, f.svc.Unsubscribe(ctx, userID, endpoint))
}

func TestSubscriptionService_Unsubscribe_KeepsPreferenceWhenDecoupled(t *testing.T) {
	cfg := testConfig()
	cfg.Subscriptions.UnsubscribeDisablesProximity = false
	f := newSubscriptionFixture(t, cfg)
	ctx := context.Background()
	userID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txSubs := mockRepo.NewMockPushSubscriptionRepository(t)

	f.txManager.EXPECT().Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
	factory.EXPECT().NewPushSubscriptionRepository().Return(txSubs)
	txSubs.EXPECT().DeleteSubscription(ctx, userID, "https://push.example/device").Return(false, nil)

	require.NoError(t, f.svc.Unsubscribe(ctx, userID, "https://push.example/device"))
	factory.AssertNotCalled(t, "NewPreferenceRepository")
}

func TestSubscriptionService_Unsubscribe_RollsBackOnFailure(t *testing.T) {
	f := newSubscriptionFixture(t, testConfig())
	ctx := context.Background()
	userID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txSubs := mockRepo.NewMockPushSubscriptionRepository(t)
	txPrefs := mockRepo.NewMockPreferenceRepository(t)

	f.txManager.EXPECT().Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
	factory.EXPECT().NewPushSubscriptionRepository().Return(txSubs)
	factory.EXPECT().NewPreferenceRepository().Return(txPrefs)
	txSubs.EXPECT().DeleteSubscription(ctx, userID, "https://push.example/device").Return(true, nil)
	txPrefs.EXPECT().DisableProximity(ctx, userID).Return(errors.New("deadlock detected"))

	err := f.svc.Unsubscribe(ctx, userID, "https://push.example/device")

	var upstream *domainerrors.UpstreamQueryError
	assert.ErrorAs(t, err, &upstream)
}

func TestSubscriptionService_Unsubscribe_RequiresEndpoint(t *testing.T) {
	f := newSubscriptionFixture(t, testConfig())

	err := f.svc.Unsubscribe(context.Background(), uuid.New(), "")

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestSubscriptionService_ListAll(t *testing.T) {
	f := newSubscriptionFixture(t, testConfig())
	ctx := context.Background()
	subs := []*entity.PushSubscription{subscriptionFor(uuid.New(), "a"), subscriptionFor(uuid.New(), "b")}

	f.subscriptionRepo.EXPECT().FindAllSubscriptions(ctx).Return(subs, nil)

	got, err := f.svc.ListAll(ctx)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestSubscriptionService_Remove(t *testing.T) {
	f := newSubscriptionFixture(t, testConfig())
	ctx := context.Background()
	known, unknown := uuid.New(), uuid.New()

	f.subscriptionRepo.EXPECT().DeleteSubscriptionByID(ctx, known).Return(nil)
	f.subscriptionRepo.EXPECT().DeleteSubscriptionByID(ctx, unknown).Return(repository.ErrPushSubscriptionNotFound)

	require.NoError(t, f.svc.Remove(ctx, known))
	assert.ErrorIs(t, f.svc.Remove(ctx, unknown), domainerrors.ErrSubscriptionNotFound)
}

func TestSubscriptionService_GetPreferences_DefaultsToOptedOut(t *testing.T) {
	f := newSubscriptionFixture(t, testConfig())
	ctx := context.Background()
	userID := uuid.New()

	f.preferenceRepo.EXPECT().FindPreference(ctx, userID).Return(nil, repository.ErrPreferenceNotFound)

	pref, err := f.svc.GetPreferences(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, userID, pref.UserID)
	assert.False(t, pref.NotificationsEnabled)
	assert.False(t, pref.ProximityNotificationsEnabled)
}

func TestSubscriptionService_UpdatePreferences(t *testing.T) {
	f := newSubscriptionFixture(t, testConfig())
	ctx := context.Background()
	userID := uuid.New()
	enabled := true

	f.preferenceRepo.EXPECT().FindPreference(ctx, userID).Return(&entity.NotificationPreference{
		UserID:               userID,
		NotificationsEnabled: true,
		UpdatedAt:            time.Now().Add(-time.Hour),
	}, nil)
	f.preferenceRepo.EXPECT().
		UpsertPreference(ctx, mock.MatchedBy(func(p *entity.NotificationPreference) bool {
			return p.NotificationsEnabled && p.ProximityNotificationsEnabled
		})).
		Return(nil)

	pref, err := f.svc.UpdatePreferences(ctx, userID, &usecase.UpdatePreferencesInput{ProximityNotificationsEnabled: &enabled})

	require.NoError(t, err)
	assert.True(t, pref.ProximityNotificationsEnabled)
}

func TestSubscriptionService_UpdatePreferences_EmptyInput(t *testing.T) {
	f := newSubscriptionFixture(t, testConfig())

	_, err := f.svc.UpdatePreferences(context.Background(), uuid.New(), &usecase.UpdatePreferencesInput{})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
