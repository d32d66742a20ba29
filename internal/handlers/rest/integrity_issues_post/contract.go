//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=integrity_issues_post_test
package integrity_issues_post

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
	ReportIssues(ctx context.Context, shipmentID string, issues []entities.IntegrityIssue) (*entities.DeliveryVerification, error)
}

type integrityIssueDTO struct {
	Description string `json:"description"`
	Evidence    string `json:"evidence,omitempty"`
}

type integrityIssuesRequest struct {
	Issues []integrityIssueDTO `json:"issues"`
}

type integrityIssuesResponse struct {
	ShipmentID  string `json:"shipmentId"`
	IssuesTotal int    `json:"issuesTotal"`
}
