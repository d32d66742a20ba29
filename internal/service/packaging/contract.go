//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=packaging_test
package packaging

import (
	"context"

	"service/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, pkg entities.Package) (*entities.Package, error)
	GetByPackageID(ctx context.Context, packageID string) (*entities.Package, error)
	FindByCode(ctx context.Context, code string) (*entities.Package, error)
	ListByShipmentID(ctx context.Context, shipmentID string) ([]entities.Package, error)
	Update(ctx context.Context, packageID string, packageModify entities.PackageModify) (*entities.Package, error)
}

// TrackingMarker переводит запись сопровождения отгрузки в suspicious_activity
// при компрометации упаковки.
type TrackingMarker interface {
	MarkSuspicious(ctx context.Context, shipmentID string, attempt entities.TamperAttempt) error
}

type CodeFactory interface {
	PackageID() string
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
