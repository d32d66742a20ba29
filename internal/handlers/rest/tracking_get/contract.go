//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_get_test
package tracking_get

import (
	"context"
	"time"

	"service/internal/entities"
	"service/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
	Sync() error
}

type Service interface {
	GetSnapshot(ctx context.Context, trackingID int64) (*entities.TrackingSnapshot, error)
}

// Представление для чтения. Коды контрольных точек, токен устройства и
// одноразовый код доставки наружу не отдаются.
type checkpointViewDTO struct {
	ID         string              `json:"id"`
	Name       string              `json:"name"`
	Location   entities.Coordinate `json:"location"`
	Status     string              `json:"status"`
	VerifiedBy string              `json:"verifiedBy,omitempty"`
	VerifiedAt *time.Time          `json:"verifiedAt,omitempty"`
}

type packageViewDTO struct {
	PackageID  string `json:"packageId"`
	Status     string `json:"status"`
	SealIntact bool   `json:"sealIntact"`
}

type trackingSnapshotResponse struct {
	ID                   int64                 `json:"id"`
	ShipmentID           string                `json:"shipmentId"`
	VehicleID            string                `json:"vehicleId"`
	DriverID             string                `json:"driverId"`
	Status               string                `json:"status"`
	CurrentLocation      entities.Coordinate   `json:"currentLocation"`
	LocationUpdatedAt    time.Time             `json:"locationUpdatedAt"`
	PlannedRoute         []entities.Coordinate `json:"plannedRoute"`
	Checkpoints          []checkpointViewDTO   `json:"checkpoints"`
	LastCheckpointPassed int                   `json:"lastCheckpointPassed"`
	ProgressPercent      float64               `json:"progressPercent"`
	AnomalyDetected      bool                  `json:"anomalyDetected"`
	AnomalyDetails       string                `json:"anomalyDetails,omitempty"`
	ExpectedDeliveryAt   *time.Time            `json:"expectedDeliveryAt,omitempty"`
	ActualDeliveryAt     *time.Time            `json:"actualDeliveryAt,omitempty"`
	Packages             []packageViewDTO      `json:"packages"`
}
