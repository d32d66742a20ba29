//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_test
package tracking

import (
	"context"

	"service/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, trackingModify entities.TrackingModify) (*entities.Tracking, error)
	GetByID(ctx context.Context, trackingID int64) (*entities.Tracking, error)
	GetByShipmentID(ctx context.Context, shipmentID string) (*entities.Tracking, error)
	Update(ctx context.Context, trackingID int64, version int64, trackingModify entities.TrackingModify) (*entities.Tracking, error)
}

type RoutePlanner interface {
	PlanRoute(ctx context.Context, origin, destination entities.Coordinate, waypoints []entities.Coordinate) (*entities.RouteInfo, error)
}

type AnomalyDetector interface {
	Detect(window []entities.PositionReport, path []entities.Coordinate) []entities.AnomalyFinding
}

type OTCService interface {
	Register(ctx context.Context, shipmentID string, code string) error
	Verify(ctx context.Context, shipmentID string, code string, actor entities.Actor) (*entities.DeliveryVerification, error)
}

type PackagingService interface {
	RecordVerification(ctx context.Context, shipmentID string, packageID string, entry entities.PackageVerification) (*entities.Package, error)
	ReportTamper(ctx context.Context, packageID string, evidence entities.TamperEvidence) (*entities.Package, error)
	FlagSuspicious(ctx context.Context, shipmentID string, entry entities.PackageVerification) error
	MarkDelivered(ctx context.Context, shipmentID string, entry entities.PackageVerification) error
	ListByShipmentID(ctx context.Context, shipmentID string) ([]entities.Package, error)
}

type CodeFactory interface {
	SecurityToken() string
	CheckpointCode() string
	OTC() string
}

// EventPublisher отправляет события смены статуса. Публикация best-effort:
// сбой логируется внутри шлюза и не откатывает переход.
type EventPublisher interface {
	PublishStatusChanged(ctx context.Context, event entities.TrackingStatusEvent)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
