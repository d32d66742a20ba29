//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=package_scan_post_test
package package_scan_post

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
	Scan(ctx context.Context, code string, entry entities.PackageVerification) (*entities.Package, error)
}

// Код это идентификатор упаковки, штрихкод или полезная нагрузка QR.
type packageScanRequest struct {
	Code     string               `json:"code"`
	Status   string               `json:"status,omitempty"`
	Notes    string               `json:"notes,omitempty"`
	Location *entities.Coordinate `json:"location,omitempty"`
}

type packageScanResponse struct {
	PackageID  string `json:"packageId"`
	ShipmentID string `json:"shipmentId"`
	Status     string `json:"status"`
	SealIntact bool   `json:"sealIntact"`
	ScansTotal int    `json:"scansTotal"`
}
