//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=otc_verify_post_test
package otc_verify_post

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

// Подтверждение кода завершает доставку целиком, поэтому обработчик
// ходит в сервис сопровождения, а не напрямую в сервис верификации.
type Service interface {
	CompleteDelivery(ctx context.Context, shipmentID string, code string, actor entities.Actor) (*entities.Tracking, error)
}

type otcVerifyRequest struct {
	Code string `json:"code"`
}

type otcVerifyResponse struct {
	ShipmentID       string     `json:"shipmentId"`
	Status           string     `json:"status"`
	ActualDeliveryAt *time.Time `json:"actualDeliveryAt,omitempty"`
}

type otcVerifyError struct {
	Error        string `json:"error"`
	AttemptsLeft *int   `json:"attemptsLeft,omitempty"`
}
