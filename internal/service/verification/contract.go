//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=verification_test
package verification

import (
	"context"
	"time"

	"service/internal/entities"
)

type Repository interface {
	Upsert(ctx context.Context, verification entities.DeliveryVerification) (*entities.DeliveryVerification, error)
	GetByShipmentID(ctx context.Context, shipmentID string) (*entities.DeliveryVerification, error)
	Update(ctx context.Context, shipmentID string, verificationModify entities.VerificationModify) (*entities.DeliveryVerification, error)
	ExpireStale(ctx context.Context, now time.Time) (int64, error)
}

// TrackingSync дублирует актуальный код выдачи в запись сопровождения.
type TrackingSync interface {
	SyncDeliveryOTC(ctx context.Context, shipmentID string, code string) error
}

type CodeFactory interface {
	OTC() string
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
