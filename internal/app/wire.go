//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"
	"time"

	eventsGateway "service/internal/gateway/events"
	mapsGateway "service/internal/gateway/maps"
	"service/internal/handlers/rest/checkpoint_verify_post"
	"service/internal/handlers/rest/integrity_issues_post"
	"service/internal/handlers/rest/location_update_post"
	"service/internal/handlers/rest/otc_generate_post"
	"service/internal/handlers/rest/otc_verify_post"
	"service/internal/handlers/rest/package_scan_post"
	"service/internal/handlers/rest/packages_create_post"
	"service/internal/handlers/rest/tampering_report_post"
	"service/internal/handlers/rest/tracking_cancel_post"
	"service/internal/handlers/rest/tracking_get"
	"service/internal/handlers/rest/tracking_initialize_post"
	"service/internal/handlers/tasks/otc_expiry"
	"service/internal/pkg/config"
	"service/internal/pkg/factory/codegen"

	packagingRepo "service/internal/repository/packaging"
	trackingRepo "service/internal/repository/tracking"
	verificationRepo "service/internal/repository/verification"
	anomalyService "service/internal/service/anomaly"
	packagingService "service/internal/service/packaging"
	trackingService "service/internal/service/tracking"
	verificationService "service/internal/service/verification"

	"service/pkg/background"
	"service/pkg/logger"
	"service/pkg/querier"
	"service/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	OTCExpiryInterval time.Duration
)

type Application struct {
	ServiceTracking     ServiceTracking
	ServiceVerification ServiceVerification
	ServicePackaging    ServicePackaging
	BackgroundWorkers   *background.Worker
}

type ServiceTracking interface {
	tracking_initialize_post.Service
	tracking_get.Service
	tracking_cancel_post.Service
	location_update_post.Service
	checkpoint_verify_post.Service
	otc_verify_post.Service
	tampering_report_post.Service
}

type ServiceVerification interface {
	otc_generate_post.Service
	integrity_issues_post.Service
}

type ServicePackaging interface {
	packages_create_post.Service
	package_scan_post.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideOTCExpiryInterval,

		provideTrackingRepository,
		provideVerificationRepository,
		providePackagingRepository,

		codegen.New,
		anomalyService.New,
		provideHTTPClient,
		provideMapsGateway,
		provideEventsGateway,

		provideServiceVerification,
		provideServicePackaging,
		provideServiceTracking,

		provideOTCExpiryTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceTracking), new(*trackingService.Tracking)),
		wire.Bind(new(ServiceVerification), new(*verificationService.Verification)),
		wire.Bind(new(ServicePackaging), new(*packagingService.Packaging)),

		wire.Bind(new(trackingService.Repository), new(*trackingRepo.Repository)),
		wire.Bind(new(trackingService.RoutePlanner), new(*mapsGateway.MapsGateway)),
		wire.Bind(new(trackingService.AnomalyDetector), new(*anomalyService.Detector)),
		wire.Bind(new(trackingService.OTCService), new(*verificationService.Verification)),
		wire.Bind(new(trackingService.PackagingService), new(*packagingService.Packaging)),
		wire.Bind(new(trackingService.CodeFactory), new(*codegen.CodeFactory)),
		wire.Bind(new(trackingService.EventPublisher), new(*eventsGateway.EventsGateway)),

		wire.Bind(new(verificationService.Repository), new(*verificationRepo.Repository)),
		wire.Bind(new(verificationService.TrackingSync), new(*trackingRepo.Repository)),
		wire.Bind(new(verificationService.CodeFactory), new(*codegen.CodeFactory)),

		wire.Bind(new(packagingService.Repository), new(*packagingRepo.Repository)),
		wire.Bind(new(packagingService.TrackingMarker), new(*trackingRepo.Repository)),
		wire.Bind(new(packagingService.CodeFactory), new(*codegen.CodeFactory)),

		wire.Bind(new(trackingService.TxManager), new(*tx.Manager)),
		wire.Bind(new(verificationService.TxManager), new(*tx.Manager)),
		wire.Bind(new(packagingService.TxManager), new(*tx.Manager)),

		wire.Bind(new(otc_expiry.Service), new(*verificationService.Verification)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	TrackingService *trackingService.Tracking
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-shipment-dispatched)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideTrackingRepository,
		provideVerificationRepository,
		providePackagingRepository,

		codegen.New,
		anomalyService.New,
		provideHTTPClient,
		provideMapsGateway,
		provideEventsGateway,

		provideServiceVerification,
		provideServicePackaging,
		provideServiceTracking,

		wire.Bind(new(trackingService.Repository), new(*trackingRepo.Repository)),
		wire.Bind(new(trackingService.RoutePlanner), new(*mapsGateway.MapsGateway)),
		wire.Bind(new(trackingService.AnomalyDetector), new(*anomalyService.Detector)),
		wire.Bind(new(trackingService.OTCService), new(*verificationService.Verification)),
		wire.Bind(new(trackingService.PackagingService), new(*packagingService.Packaging)),
		wire.Bind(new(trackingService.CodeFactory), new(*codegen.CodeFactory)),
		wire.Bind(new(trackingService.EventPublisher), new(*eventsGateway.EventsGateway)),

		wire.Bind(new(verificationService.Repository), new(*verificationRepo.Repository)),
		wire.Bind(new(verificationService.TrackingSync), new(*trackingRepo.Repository)),
		wire.Bind(new(verificationService.CodeFactory), new(*codegen.CodeFactory)),

		wire.Bind(new(packagingService.Repository), new(*packagingRepo.Repository)),
		wire.Bind(new(packagingService.TrackingMarker), new(*trackingRepo.Repository)),
		wire.Bind(new(packagingService.CodeFactory), new(*codegen.CodeFactory)),

		wire.Bind(new(trackingService.TxManager), new(*tx.Manager)),
		wire.Bind(new(verificationService.TxManager), new(*tx.Manager)),
		wire.Bind(new(packagingService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideTrackingRepository(querier *querier.Querier) *trackingRepo.Repository {
	return trackingRepo.New(querier)
}

func provideVerificationRepository(querier *querier.Querier) *verificationRepo.Repository {
	return verificationRepo.New(querier)
}

func providePackagingRepository(querier *querier.Querier) *packagingRepo.Repository {
	return packagingRepo.New(querier)
}

func provideHTTPClient(cfg *config.Config) *http.Client {
	return &http.Client{Timeout: cfg.Maps.RequestTimeout}
}

func provideMapsGateway(client *http.Client, cfg *config.Config) *mapsGateway.MapsGateway {
	return mapsGateway.New(client, cfg.Maps.BaseURL, cfg.Maps.APIKey)
}

func provideEventsGateway(log logger.Logger, producer sarama.SyncProducer, cfg *config.Config) *eventsGateway.EventsGateway {
	return eventsGateway.New(log, producer, cfg.Kafka.ProducerTopic)
}

func provideServiceVerification(
	repository verificationService.Repository,
	trackingSync verificationService.TrackingSync,
	codeFactory verificationService.CodeFactory,
	txManager verificationService.TxManager,
) *verificationService.Verification {
	return verificationService.New(repository, trackingSync, codeFactory, txManager)
}

func provideServicePackaging(
	repository packagingService.Repository,
	trackingMarker packagingService.TrackingMarker,
	codeFactory packagingService.CodeFactory,
	txManager packagingService.TxManager,
) *packagingService.Packaging {
	return packagingService.New(repository, trackingMarker, codeFactory, txManager)
}

func provideServiceTracking(
	repository trackingService.Repository,
	routePlanner trackingService.RoutePlanner,
	detector trackingService.AnomalyDetector,
	otcService trackingService.OTCService,
	packaging trackingService.PackagingService,
	codeFactory trackingService.CodeFactory,
	publisher trackingService.EventPublisher,
	txManager trackingService.TxManager,
) *trackingService.Tracking {
	return trackingService.New(
		repository,
		routePlanner,
		detector,
		otcService,
		packaging,
		codeFactory,
		publisher,
		txManager,
	)
}

func provideOTCExpiryInterval(cfg *config.Config) OTCExpiryInterval {
	return OTCExpiryInterval(cfg.Tasks.OTCExpiryInterval)
}

func provideOTCExpiryTask(
	log logger.Logger,
	verificationService otc_expiry.Service,
	interval OTCExpiryInterval,
) *otc_expiry.OTCExpiry {
	return otc_expiry.NewOTCExpiry(log, verificationService, time.Duration(interval))
}

func provideTaskList(
	otcExpiryTask *otc_expiry.OTCExpiry,
) []background.Task {
	return []background.Task{
		otcExpiryTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
