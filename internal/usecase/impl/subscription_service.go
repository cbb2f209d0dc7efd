package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"civicradar/config"
	deliverycontext "civicradar/internal/delivery/context"
	"civicradar/internal/domain/entity"
	domainerrors "civicradar/internal/domain/errors"
	"civicradar/internal/domain/repository"
	"civicradar/internal/errors"
	"civicradar/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const maxEndpointLength = 2048

type subscriptionService struct {
	logger                       *slog.Logger
	subscriptionRepo             repository.PushSubscriptionRepository
	preferenceRepo               repository.PreferenceRepository
	txManager                    repository.TransactionManager
	unsubscribeDisablesProximity bool
	now                          func() time.Time
}

// SubscriptionServiceParams holds dependencies for SubscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	Config           *config.Config
	Logger           *slog.Logger
	SubscriptionRepo repository.PushSubscriptionRepository
	PreferenceRepo   repository.PreferenceRepository
	TxManager        repository.TransactionManager
}

// NewSubscriptionService creates the push subscription registry
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	disables := true
	if params.Config.Subscriptions != nil {
		disables = params.Config.Subscriptions.UnsubscribeDisablesProximity
	}

	return &subscriptionService{
		logger:                       params.Logger,
		subscriptionRepo:             params.SubscriptionRepo,
		preferenceRepo:               params.PreferenceRepo,
		txManager:                    params.TxManager,
		unsubscribeDisablesProximity: disables,
		now:                          time.Now,
	}
}

// Subscribe stores or refreshes the caller's push endpoint
func (s *subscriptionService) Subscribe(ctx context.Context, userID uuid.UUID, input *usecase.SubscribeInput) (*entity.PushSubscription, error) {
	if err := validateSubscribeInput(input); err != nil {
		return nil, err
	}

	now := s.now()
	sub := &entity.PushSubscription{
		ID:         uuid.New(),
		UserID:     userID,
		Endpoint:   strings.TrimSpace(input.Endpoint),
		PublicKey:  input.Keys.PublicKey,
		AuthSecret: input.Keys.AuthSecret,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.subscriptionRepo.UpsertSubscription(ctx, sub); err != nil {
		return nil, domainerrors.NewUpstreamQueryError(err, "failed to save push subscription")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Push subscription saved",
		slog.String("user_id", userID.String()),
		slog.String("subscription_id", sub.ID.String()),
	)

	return sub, nil
}

func validateSubscribeInput(input *usecase.SubscribeInput) error {
	switch {
	case input == nil:
		return domainerrors.ErrValidationFailed.WithDetails("subscription is required")
	case strings.TrimSpace(input.Endpoint) == "":
		return domainerrors.ErrValidationFailed.WithDetails("endpoint is required")
	case len(input.Endpoint) > maxEndpointLength:
		return domainerrors.ErrValidationFailed.WithDetails("endpoint is too long")
	case input.Keys.PublicKey == "" || input.Keys.AuthSecret == "":
		return domainerrors.ErrValidationFailed.WithDetails("keys.publicKey and keys.authSecret are required")
	}

	return nil
}

// Unsubscribe deletes the endpoint and, when configured, turns off proximity
// alerts for the whole account in the same transaction.
func (s *subscriptionService) Unsubscribe(ctx context.Context, userID uuid.UUID, endpoint string) error {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return domainerrors.ErrValidationFailed.WithDetails("endpoint is required")
	}

	var removed bool
	err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		var err error
		removed, err = txRepoFactory.NewPushSubscriptionRepository().DeleteSubscription(ctx, userID, endpoint)
		if err != nil {
			return errors.Wrap(err, "failed to delete push subscription")
		}

		if s.unsubscribeDisablesProximity {
			if err := txRepoFactory.NewPreferenceRepository().DisableProximity(ctx, userID); err != nil {
				return errors.Wrap(err, "failed to disable proximity notifications")
			}
		}

		return nil
	})
	if err != nil {
		return domainerrors.NewUpstreamQueryError(err, "failed to unsubscribe")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Push subscription removed",
		slog.String("user_id", userID.String()),
		slog.Bool("existed", removed),
		slog.Bool("proximity_disabled", s.unsubscribeDisablesProximity),
	)

	return nil
}

func (s *subscriptionService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PushSubscription, error) {
	subs, err := s.subscriptionRepo.FindSubscriptionsByUser(ctx, userID)
	if err != nil {
		return nil, domainerrors.NewUpstreamQueryError(err, "failed to list push subscriptions")
	}

	return subs, nil
}

func (s *subscriptionService) ListAll(ctx context.Context) ([]*entity.PushSubscription, error) {
	subs, err := s.subscriptionRepo.FindAllSubscriptions(ctx)
	if err != nil {
		return nil, domainerrors.NewUpstreamQueryError(err, "failed to list push subscriptions")
	}

	return subs, nil
}

func (s *subscriptionService) Remove(ctx context.Context, subscriptionID uuid.UUID) error {
	if err := s.subscriptionRepo.DeleteSubscriptionByID(ctx, subscriptionID); err != nil {
		if errors.Is(err, repository.ErrPushSubscriptionNotFound) {
			return domainerrors.ErrSubscriptionNotFound.WithDetails(subscriptionID.String())
		}

		return domainerrors.NewUpstreamQueryError(err, "failed to remove push subscription")
	}

	return nil
}

// GetPreferences returns the stored opt-ins, or both flags off when none exist.
func (s *subscriptionService) GetPreferences(ctx context.Context, userID uuid.UUID) (*entity.NotificationPreference, error) {
	pref, err := s.preferenceRepo.FindPreference(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrPreferenceNotFound) {
			return &entity.NotificationPreference{UserID: userID}, nil
		}

		return nil, domainerrors.NewUpstreamQueryError(err, "failed to load notification preferences")
	}

	return pref, nil
}

func (s *subscriptionService) UpdatePreferences(ctx context.Context, userID uuid.UUID, input *usecase.UpdatePreferencesInput) (*entity.NotificationPreference, error) {
	if input == nil || (input.NotificationsEnabled == nil && input.ProximityNotificationsEnabled == nil) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("at least one preference must be provided")
	}

	pref, err := s.GetPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.NotificationsEnabled != nil {
		pref.NotificationsEnabled = *input.NotificationsEnabled
	}
	if input.ProximityNotificationsEnabled != nil {
		pref.ProximityNotificationsEnabled = *input.ProximityNotificationsEnabled
	}
	pref.UpdatedAt = s.now()

	if err := s.preferenceRepo.UpsertPreference(ctx, pref); err != nil {
		return nil, domainerrors.NewUpstreamQueryError(err, "failed to save notification preferences")
	}

	return pref, nil
}
