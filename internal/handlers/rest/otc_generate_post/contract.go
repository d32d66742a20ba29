//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=otc_generate_post_test
package otc_generate_post

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
	Generate(ctx context.Context, shipmentID string) (*entities.DeliveryVerification, error)
}

type otcGenerateResponse struct {
	ShipmentID  string    `json:"shipmentId"`
	Code        string    `json:"code"`
	GeneratedAt time.Time `json:"generatedAt"`
	ExpiresAt   time.Time `json:"expiresAt"`
	MaxAttempts int       `json:"maxAttempts"`
}
