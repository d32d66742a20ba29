//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=location_update_post_test
package location_update_post

import (
	"context"

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
	UpdateLocation(ctx context.Context, trackingID int64, token string, location entities.Coordinate) (*entities.LocationUpdate, error)
}

// Запрос аутентифицируется токеном бортового устройства, а не ролью.
type locationUpdateRequest struct {
	Token    string              `json:"token"`
	Location entities.Coordinate `json:"location"`
}

type anomalyFindingDTO struct {
	Type           string  `json:"type"`
	StoppedForSecs int64   `json:"stoppedForSeconds,omitempty"`
	DeviationKm    float64 `json:"deviationKm,omitempty"`
	SpeedKmh       float64 `json:"speedKmh,omitempty"`
	MeanSpeedKmh   float64 `json:"meanSpeedKmh,omitempty"`
}

type approachingCheckpointDTO struct {
	ID       string              `json:"id"`
	Name     string              `json:"name"`
	Location entities.Coordinate `json:"location"`
}

type locationUpdateResponse struct {
	Status                string                    `json:"status"`
	AnomalyDetected       bool                      `json:"anomalyDetected"`
	Findings              []anomalyFindingDTO       `json:"findings,omitempty"`
	ApproachingCheckpoint *approachingCheckpointDTO `json:"approachingCheckpoint,omitempty"`
}
