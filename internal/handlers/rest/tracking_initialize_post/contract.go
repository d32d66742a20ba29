//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_initialize_post_test
package tracking_initialize_post

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
	Initialize(ctx context.Context, init entities.TrackingInit) (*entities.Tracking, error)
}

type trackingInitRequest struct {
	ShipmentID     string                `json:"shipmentId"`
	VehicleID      string                `json:"vehicleId"`
	DriverID       string                `json:"driverId"`
	Origin         entities.Coordinate   `json:"origin"`
	Destination    entities.Coordinate   `json:"destination"`
	Waypoints      []entities.Coordinate `json:"waypoints,omitempty"`
	NumCheckpoints int                   `json:"numCheckpoints,omitempty"`
}

type checkpointDTO struct {
	ID       string              `json:"id"`
	Name     string              `json:"name"`
	Location entities.Coordinate `json:"location"`
	Code     string              `json:"code"`
	Status   string              `json:"status"`
}

// Ответ содержит токен устройства и коды, они передаются водителю отдельным каналом.
type trackingInitResponse struct {
	ID                     int64                 `json:"id"`
	ShipmentID             string                `json:"shipmentId"`
	Status                 string                `json:"status"`
	SecurityToken          string                `json:"securityToken"`
	DeliveryOTC            string                `json:"deliveryOtc"`
	PlannedRoute           []entities.Coordinate `json:"plannedRoute"`
	RouteDistanceMeters    float64               `json:"routeDistanceMeters"`
	PlannedDurationSeconds int64                 `json:"plannedDurationSeconds"`
	Checkpoints            []checkpointDTO       `json:"checkpoints"`
	ExpectedDeliveryAt     *time.Time            `json:"expectedDeliveryAt,omitempty"`
}
