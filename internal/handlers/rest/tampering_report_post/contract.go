//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tampering_report_post_test
package tampering_report_post

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
	ReportTamper(ctx context.Context, report entities.TamperReport) (*entities.TamperReportResult, error)
}

// Указывается либо trackingId, либо packageId.
type tamperReportRequest struct {
	TrackingID  int64                `json:"trackingId,omitempty"`
	PackageID   string               `json:"packageId,omitempty"`
	Description string               `json:"description"`
	Evidence    []string             `json:"evidence,omitempty"`
	Location    *entities.Coordinate `json:"location,omitempty"`
}

type tamperReportResponse struct {
	TrackingStatus string `json:"trackingStatus,omitempty"`
	PackageID      string `json:"packageId,omitempty"`
	PackageStatus  string `json:"packageStatus,omitempty"`
}
