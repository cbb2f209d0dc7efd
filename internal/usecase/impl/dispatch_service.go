package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"civicradar/config"
	deliverycontext "civicradar/internal/delivery/context"
	"civicradar/internal/domain/entity"
	domainerrors "civicradar/internal/domain/errors"
	"civicradar/internal/domain/lifecycle"
	"civicradar/internal/domain/repository"
	"civicradar/internal/domain/service"
	"civicradar/internal/errors"
	"civicradar/internal/geo"
	"civicradar/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type dispatchService struct {
	logger           *slog.Logger
	reportRepo       repository.ReportRepository
	locationRepo     repository.LocationRepository
	subscriptionRepo repository.PushSubscriptionRepository
	dispatchLogRepo  repository.DispatchLogRepository
	sender           service.PushSender
	publisher        service.EventPublisher
	composer         *NotificationComposer

	defaultRadius   float64
	maxRadius       float64
	concurrency     int
	deliveryTimeout time.Duration
	now             func() time.Time
}

// DispatchServiceParams holds dependencies for DispatchService, injected by Fx.
type DispatchServiceParams struct {
	fx.In

	Config           *config.Config
	Logger           *slog.Logger
	ReportRepo       repository.ReportRepository
	LocationRepo     repository.LocationRepository
	SubscriptionRepo repository.PushSubscriptionRepository
	DispatchLogRepo  repository.DispatchLogRepository
	Sender           service.PushSender
	Publisher        service.EventPublisher
	Composer         *NotificationComposer
}

// NewDispatchService creates the proximity dispatcher
func NewDispatchService(params DispatchServiceParams) usecase.DispatchUsecase {
	cfg := params.Config.Dispatch
	if cfg == nil {
		cfg = &config.DispatchConfig{}
	}

	svc := &dispatchService{
		logger:           params.Logger,
		reportRepo:       params.ReportRepo,
		locationRepo:     params.LocationRepo,
		subscriptionRepo: params.SubscriptionRepo,
		dispatchLogRepo:  params.DispatchLogRepo,
		sender:           params.Sender,
		publisher:        params.Publisher,
		composer:         params.Composer,
		defaultRadius:    cfg.DefaultRadiusMeters,
		maxRadius:        cfg.MaxRadiusMeters,
		concurrency:      cfg.Concurrency,
		deliveryTimeout:  cfg.DeliveryTimeout,
		now:              time.Now,
	}
	if svc.defaultRadius <= 0 {
		svc.defaultRadius = config.DefaultRadiusMeters
	}
	if svc.maxRadius <= 0 {
		svc.maxRadius = config.DefaultMaxRadiusMeters
	}
	if svc.concurrency <= 0 {
		svc.concurrency = config.DefaultConcurrency
	}
	if svc.deliveryTimeout <= 0 {
		svc.deliveryTimeout = config.DefaultDeliveryTimeout
	}

	return svc
}

// nearbyUser is an opted-in user inside the dispatch radius.
type nearbyUser struct {
	userID         uuid.UUID
	distanceMeters float64
}

// deliveryJob pairs a subscription with the payload composed for its owner.
type deliveryJob struct {
	sub     *entity.PushSubscription
	payload *entity.NotificationPayload
}

// deliveryOutcome is shared by the fan-out workers.
type deliveryOutcome struct {
	mu        sync.Mutex
	attempted int
	delivered int
	dead      []*entity.PushSubscription
	errs      []string
}

func (o *deliveryOutcome) record(job deliveryJob, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.attempted++
	if err == nil {
		o.delivered++

		return
	}

	o.errs = append(o.errs, fmt.Sprintf("%s: %v", job.sub.ID, err))
	if service.IsPermanentDeliveryError(err) {
		o.dead = append(o.dead, job.sub)
	}
}

// DispatchProximity notifies every opted-in user within the radius of the report
func (s *dispatchService) DispatchProximity(ctx context.Context, input *usecase.DispatchInput) (*usecase.DispatchResult, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	reportID, radius, err := s.validateInput(input)
	if err != nil {
		return nil, err
	}

	report, err := s.loadReport(ctx, reportID)
	if err != nil {
		return nil, err
	}

	tracked, err := s.locationRepo.FindTrackedUsers(ctx)
	if err != nil {
		return nil, domainerrors.NewUpstreamQueryError(err, "failed to load user locations")
	}

	nearby := filterNearby(tracked, report, radius)
	result := &usecase.DispatchResult{
		Success:          true,
		TotalNearbyUsers: len(nearby),
		Errors:           []string{},
	}

	if len(nearby) == 0 {
		logger.Info("No opted-in users within dispatch radius",
			slog.String("experience_id", report.ID.String()),
			slog.Float64("radius_meters", radius),
			slog.Int("tracked_users", len(tracked)),
		)
		s.writeDispatchLog(ctx, logger, report.ID, radius, result)

		return result, nil
	}

	jobs, err := s.buildProximityJobs(ctx, logger, report, nearby, result)
	if err != nil {
		return nil, err
	}

	s.fanOut(ctx, logger, jobs, result)
	s.writeDispatchLog(ctx, logger, report.ID, radius, result)

	logger.Info("Proximity dispatch completed",
		slog.String("experience_id", report.ID.String()),
		slog.Float64("radius_meters", radius),
		slog.Int("nearby_users", result.TotalNearbyUsers),
		slog.Int("subscriptions", result.TotalSubscriptions),
		slog.Int("notified", result.Notified),
		slog.Int("errors", len(result.Errors)),
	)

	return result, nil
}

// EnqueueProximityDispatch hands the dispatch to the worker through the event publisher
func (s *dispatchService) EnqueueProximityDispatch(ctx context.Context, input *usecase.DispatchInput) error {
	reportID, _, err := s.validateInput(input)
	if err != nil {
		return err
	}

	if _, err := s.loadReport(ctx, reportID); err != nil {
		return err
	}

	event := &entity.ReportCreatedEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		ExperienceID: reportID.String(),
		RadiusMeters: input.RadiusMeters,
	}
	if err := s.publisher.PublishReportCreated(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Error("Failed to publish report-created event",
			slog.String("experience_id", event.ExperienceID),
			slog.Any("error", err),
		)

		return domainerrors.ErrPublishFailed.WithDetails(err.Error())
	}

	return nil
}

// SendTestNotification delivers the diagnostic payload to all of the user's subscriptions
func (s *dispatchService) SendTestNotification(ctx context.Context, userID uuid.UUID, message string) (*usecase.DispatchResult, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	payload, err := s.composer.BuildTestPayload(message)
	if err != nil {
		return nil, err
	}

	subs, err := s.subscriptionRepo.FindSubscriptionsByUser(ctx, userID)
	if err != nil {
		return nil, domainerrors.NewUpstreamQueryError(err, "failed to load push subscriptions")
	}

	jobs := make([]deliveryJob, 0, len(subs))
	for _, sub := range subs {
		jobs = append(jobs, deliveryJob{sub: sub, payload: payload})
	}

	result := &usecase.DispatchResult{
		Success:            true,
		TotalSubscriptions: len(subs),
		Errors:             []string{},
	}
	s.fanOut(ctx, logger, jobs, result)

	logger.Info("Test notification sent",
		slog.String("user_id", userID.String()),
		slog.Int("subscriptions", result.TotalSubscriptions),
		slog.Int("notified", result.Notified),
	)

	return result, nil
}

func (s *dispatchService) validateInput(input *usecase.DispatchInput) (uuid.UUID, float64, error) {
	if input == nil {
		return uuid.Nil, 0, domainerrors.ErrValidationFailed.WithDetails("dispatch input is required")
	}

	reportID, err := uuid.Parse(input.ExperienceID)
	if err != nil {
		return uuid.Nil, 0, domainerrors.ErrValidationFailed.WithDetails("experienceId must be a UUID")
	}

	radius := s.defaultRadius
	if input.RadiusMeters != nil {
		radius = *input.RadiusMeters
	}
	// NaN fails both comparisons, so test for the valid range.
	if !(radius > 0 && radius <= s.maxRadius) {
		return uuid.Nil, 0, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("radiusMeters must be in (0, %.0f]", s.maxRadius))
	}

	return reportID, radius, nil
}

func (s *dispatchService) loadReport(ctx context.Context, reportID uuid.UUID) (*entity.Report, error) {
	report, err := s.reportRepo.FindReportByID(ctx, reportID)
	if err != nil {
		if errors.Is(err, repository.ErrReportNotFound) {
			return nil, domainerrors.ErrReportNotFound.WithDetails(reportID.String())
		}

		return nil, domainerrors.NewUpstreamQueryError(err, "failed to load report")
	}

	return report, nil
}

// filterNearby keeps users who opted in and sit within radius of the report.
// Each user appears at most once.
func filterNearby(tracked []*entity.TrackedUser, report *entity.Report, radius float64) []nearbyUser {
	origin := geo.Point{Latitude: report.Latitude, Longitude: report.Longitude}
	seen := make(map[uuid.UUID]struct{}, len(tracked))
	nearby := make([]nearbyUser, 0)

	for _, user := range tracked {
		if user == nil || !user.WantsProximityAlerts() {
			continue
		}
		if _, dup := seen[user.Location.UserID]; dup {
			continue
		}

		distance := geo.DistanceMeters(origin, geo.Point{
			Latitude:  user.Location.Latitude,
			Longitude: user.Location.Longitude,
		})
		if distance > radius {
			continue
		}

		seen[user.Location.UserID] = struct{}{}
		nearby = append(nearby, nearbyUser{userID: user.Location.UserID, distanceMeters: distance})
	}

	return nearby
}

// buildProximityJobs resolves subscriptions and composes one payload per user.
func (s *dispatchService) buildProximityJobs(
	ctx context.Context,
	logger *slog.Logger,
	report *entity.Report,
	nearby []nearbyUser,
	result *usecase.DispatchResult,
) ([]deliveryJob, error) {
	userIDs := make([]uuid.UUID, len(nearby))
	for idx, user := range nearby {
		userIDs[idx] = user.userID
	}

	subs, err := s.subscriptionRepo.FindSubscriptionsByUsers(ctx, userIDs)
	if err != nil {
		return nil, domainerrors.NewUpstreamQueryError(err, "failed to resolve push subscriptions")
	}
	result.TotalSubscriptions = len(subs)

	payloads := make(map[uuid.UUID]*entity.NotificationPayload, len(nearby))
	for _, user := range nearby {
		payload, err := s.composer.BuildProximityPayload(report, user.distanceMeters/1000)
		if err != nil {
			logger.Error("Failed to compose proximity payload",
				slog.String("user_id", user.userID.String()),
				slog.Any("error", err),
			)
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", user.userID, err))

			continue
		}
		payloads[user.userID] = payload
	}

	jobs := make([]deliveryJob, 0, len(subs))
	for _, sub := range subs {
		if payload, ok := payloads[sub.UserID]; ok {
			jobs = append(jobs, deliveryJob{sub: sub, payload: payload})
		}
	}

	return jobs, nil
}

// fanOut delivers every job through a bounded worker pool, then removes the
// subscriptions that failed permanently. Attempts made before ctx is cancelled
// are kept.
func (s *dispatchService) fanOut(ctx context.Context, logger *slog.Logger, jobs []deliveryJob, result *usecase.DispatchResult) {
	outcome := &deliveryOutcome{}
	if len(jobs) > 0 {
		jobCh := make(chan deliveryJob, len(jobs))
		go dispatchJobs(ctx, jobCh, jobs)
		s.spawnDeliveryWorkers(ctx, logger, s.workerCount(len(jobs)), jobCh, outcome).Wait()
	}

	result.Notified = outcome.delivered
	result.Errors = append(result.Errors, outcome.errs...)

	if skipped := len(jobs) - outcome.attempted; skipped > 0 {
		result.Success = false
		result.Errors = append(result.Errors, fmt.Sprintf("dispatch canceled: %d deliveries not attempted", skipped))
		logger.Warn("Dispatch canceled before all deliveries were attempted",
			slog.Int("attempted", outcome.attempted),
			slog.Int("skipped", skipped),
			slog.Any("error", ctx.Err()),
		)
	}

	s.removeDeadSubscriptions(ctx, logger, outcome.dead, result)
}

func (s *dispatchService) workerCount(jobCount int) int {
	if jobCount < s.concurrency {
		return jobCount
	}

	return s.concurrency
}

func dispatchJobs(ctx context.Context, jobCh chan<- deliveryJob, jobs []deliveryJob) {
	defer close(jobCh)

	for _, job := range jobs {
		if ctx.Err() != nil {
			return
		}

		jobCh <- job
	}
}

func (s *dispatchService) spawnDeliveryWorkers(
	ctx context.Context,
	logger *slog.Logger,
	workerCount int,
	jobCh <-chan deliveryJob,
	outcome *deliveryOutcome,
) *sync.WaitGroup {
	var workerGroup sync.WaitGroup

	for range workerCount {
		workerGroup.Add(1)
		go func() {
			defer workerGroup.Done()
			for job := range jobCh {
				if ctx.Err() != nil {
					return
				}

				outcome.record(job, s.deliverOne(ctx, logger, job))
			}
		}()
	}

	return &workerGroup
}

// deliverOne sends a single payload under its own timeout. Anything other than
// a permanent rejection is transient.
func (s *dispatchService) deliverOne(ctx context.Context, logger *slog.Logger, job deliveryJob) error {
	deliveryCtx, cancel := context.WithTimeout(ctx, s.deliveryTimeout)
	defer cancel()

	err := s.sender.Send(deliveryCtx, job.sub, job.payload)
	if err == nil {
		return nil
	}

	attrs := []any{
		slog.String("user_id", job.sub.UserID.String()),
		slog.String("subscription_id", job.sub.ID.String()),
		slog.Any("error", err),
	}

	if service.IsPermanentDeliveryError(err) {
		logger.Warn("Push endpoint rejected subscription permanently", attrs...)

		return err
	}

	var transient *service.TransientDeliveryError
	if !errors.As(err, &transient) {
		err = &service.TransientDeliveryError{Err: err}
	}
	if errors.Is(deliveryCtx.Err(), context.DeadlineExceeded) {
		attrs = append(attrs, slog.Duration("timeout", s.deliveryTimeout))
	}
	logger.Warn("Push delivery failed, keeping subscription", attrs...)

	return err
}

// removeDeadSubscriptions deletes permanently failed subscriptions. It runs on a
// context detached from the caller so cleanup survives cancellation.
func (s *dispatchService) removeDeadSubscriptions(ctx context.Context, logger *slog.Logger, dead []*entity.PushSubscription, result *usecase.DispatchResult) {
	if len(dead) == 0 {
		return
	}

	cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.CleanupTimeout)
	defer cancel()

	removed := 0
	for _, sub := range dead {
		err := s.subscriptionRepo.DeleteSubscriptionByID(cleanupCtx, sub.ID)
		if err != nil && !errors.Is(err, repository.ErrPushSubscriptionNotFound) {
			logger.Error("Failed to remove dead push subscription",
				slog.String("user_id", sub.UserID.String()),
				slog.String("subscription_id", sub.ID.String()),
				slog.Any("error", err),
			)
			result.Errors = append(result.Errors, fmt.Sprintf("%s: failed to remove subscription: %v", sub.ID, err))

			continue
		}
		removed++
	}

	logger.Info("Removed dead push subscriptions", slog.Int("removed", removed), slog.Int("dead", len(dead)))
}

func (s *dispatchService) writeDispatchLog(ctx context.Context, logger *slog.Logger, reportID uuid.UUID, radius float64, result *usecase.DispatchResult) {
	cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.CleanupTimeout)
	defer cancel()

	entry := &entity.DispatchLogEntry{
		ID:                 uuid.New(),
		Type:               entity.DispatchTypeProximity,
		SourceExperienceID: reportID,
		RecipientsCount:    result.Notified,
		RadiusMeters:       radius,
		CreatedAt:          s.now(),
	}

	if err := s.dispatchLogRepo.CreateDispatchLog(cleanupCtx, entry); err != nil {
		logger.Error("Failed to write dispatch log",
			slog.String("experience_id", reportID.String()),
			slog.Any("error", err),
		)
		result.Errors = append(result.Errors, fmt.Sprintf("dispatch log: %v", err))
	}
}
