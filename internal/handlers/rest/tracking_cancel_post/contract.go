//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_cancel_post_test
package tracking_cancel_post

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
	Cancel(ctx context.Context, trackingID int64, reason string) (*entities.Tracking, error)
}

type trackingCancelRequest struct {
	Reason string `json:"reason"`
}

type trackingCancelResponse struct {
	ID         int64  `json:"id"`
	ShipmentID string `json:"shipmentId"`
	Status     string `json:"status"`
}
