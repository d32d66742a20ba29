//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=packages_create_post_test
package packages_create_post

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
	CreateForShipment(ctx context.Context, shipmentID string, batchNumber string, stockIDs []string) ([]entities.Package, error)
}

type packagesCreateRequest struct {
	ShipmentID  string   `json:"shipmentId"`
	BatchNumber string   `json:"batchNumber"`
	StockIDs    []string `json:"stockIds"`
}

type packageDTO struct {
	PackageID string `json:"packageId"`
	StockID   string `json:"stockId"`
	QRPayload string `json:"qrPayload"`
	Barcode   string `json:"barcode"`
	Status    string `json:"status"`
}

type packagesCreateResponse struct {
	ShipmentID string       `json:"shipmentId"`
	Packages   []packageDTO `json:"packages"`
}
