//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=checkpoint_verify_post_test
package checkpoint_verify_post

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
	VerifyCheckpoint(ctx context.Context, trackingID int64, checkpointID string, code string, actor entities.Actor, scans []entities.PackageScan) (*entities.CheckpointVerification, error)
}

type packageScanDTO struct {
	PackageID string `json:"packageId"`
	Intact    bool   `json:"intact"`
	Notes     string `json:"notes,omitempty"`
}

type checkpointVerifyRequest struct {
	CheckpointID string           `json:"checkpointId"`
	Code         string           `json:"code"`
	Scans        []packageScanDTO `json:"scans,omitempty"`
}

type verifiedCheckpointDTO struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Status     string     `json:"status"`
	VerifiedBy string     `json:"verifiedBy,omitempty"`
	VerifiedAt *time.Time `json:"verifiedAt,omitempty"`
}

type packageScanResultDTO struct {
	PackageID string `json:"packageId"`
	Found     bool   `json:"found"`
	Verified  bool   `json:"verified"`
	Status    string `json:"status,omitempty"`
}

type checkpointVerifyResponse struct {
	TrackingStatus string                 `json:"trackingStatus"`
	Checkpoint     verifiedCheckpointDTO  `json:"checkpoint"`
	NextCheckpoint *verifiedCheckpointDTO `json:"nextCheckpoint,omitempty"`
	PackageResults []packageScanResultDTO `json:"packageResults,omitempty"`
}
