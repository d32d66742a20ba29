package tracking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"service/internal/entities"
	"service/internal/repository"
	"service/internal/service/tracking"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const trackingColumns = `id, shipment_id, vehicle_id, driver_id,
		start_lat, start_lng, end_lat, end_lng, current_lat, current_lng,
		location_updated_at, planned_route, route_distance_meters, planned_duration_seconds,
		checkpoints, last_checkpoint_passed, status, security_token,
		delivery_otc, otc_verified, expected_delivery_at, actual_delivery_at,
		anomaly_detected, anomaly_details, tamper_attempts, version, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, trackingModify entities.TrackingModify) (*entities.Tracking, error) {
	trackingModifyDB, err := FromDomainModify(&trackingModify)
	if err != nil {
		return nil, fmt.Errorf("unexpected tracking repository create error: %w", err)
	}

	query := `
		INSERT INTO tracking (
			shipment_id, vehicle_id, driver_id,
			start_lat, start_lng, end_lat, end_lng, current_lat, current_lng,
			location_updated_at, planned_route, route_distance_meters, planned_duration_seconds,
			checkpoints, last_checkpoint_passed, status, security_token,
			delivery_otc, otc_verified, expected_delivery_at,
			anomaly_detected, anomaly_details, tamper_attempts
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
		RETURNING ` + trackingColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		trackingModifyDB.ShipmentID,
		trackingModifyDB.VehicleID,
		trackingModifyDB.DriverID,
		trackingModifyDB.StartLat,
		trackingModifyDB.StartLng,
		trackingModifyDB.EndLat,
		trackingModifyDB.EndLng,
		trackingModifyDB.CurrentLat,
		trackingModifyDB.CurrentLng,
		trackingModifyDB.LocationUpdatedAt,
		trackingModifyDB.PlannedRoute,
		trackingModifyDB.RouteDistanceMeters,
		trackingModifyDB.PlannedDurationSeconds,
		trackingModifyDB.Checkpoints,
		trackingModifyDB.LastCheckpointPassed,
		trackingModifyDB.Status,
		trackingModifyDB.SecurityToken,
		trackingModifyDB.DeliveryOTC,
		trackingModifyDB.OTCVerified,
		trackingModifyDB.ExpectedDeliveryAt,
		trackingModifyDB.AnomalyDetected,
		trackingModifyDB.AnomalyDetails,
		trackingModifyDB.TamperAttempts,
	)

	trackingDB, err := scanTracking(row)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, tracking.ErrTrackingExists
		}
		return nil, fmt.Errorf("unexpected tracking repository create error: %w", err)
	}

	return ToDomain(trackingDB)
}

func (r *Repository) GetByID(ctx context.Context, trackingID int64) (*entities.Tracking, error) {
	query := `
		SELECT ` + trackingColumns + `
		FROM tracking
		WHERE id = $1`

	trackingDB, err := scanTracking(r.querier.QueryRow(ctx, query, trackingID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, tracking.ErrTrackingNotFound
		}
		return nil, fmt.Errorf("unexpected tracking repository getbyid error: %w", err)
	}

	return ToDomain(trackingDB)
}

func (r *Repository) GetByShipmentID(ctx context.Context, shipmentID string) (*entities.Tracking, error) {
	query := `
		SELECT ` + trackingColumns + `
		FROM tracking
		WHERE shipment_id = $1
		ORDER BY id DESC
		LIMIT 1`

	trackingDB, err := scanTracking(r.querier.QueryRow(ctx, query, shipmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, tracking.ErrTrackingNotFound
		}
		return nil, fmt.Errorf("unexpected tracking repository getbyshipmentid error: %w", err)
	}

	return ToDomain(trackingDB)
}

// Update применяет только переданные поля. Строка с другой версией не
// затрагивается, вызывающий уже прочитал запись в этой же транзакции.
func (r *Repository) Update(ctx context.Context, trackingID int64, version int64, trackingModify entities.TrackingModify) (*entities.Tracking, error) {
	trackingModifyDB, err := FromDomainModify(&trackingModify)
	if err != nil {
		return nil, fmt.Errorf("unexpected tracking repository update error: %w", err)
	}

	builder := qb.
		Update("tracking")

	// опциональные поля
	if trackingModifyDB.CurrentLat != nil {
		builder = builder.Set("current_lat", trackingModifyDB.CurrentLat)
		builder = builder.Set("current_lng", trackingModifyDB.CurrentLng)
	}
	if trackingModifyDB.LocationUpdatedAt != nil {
		builder = builder.Set("location_updated_at", trackingModifyDB.LocationUpdatedAt)
	}
	if trackingModifyDB.PlannedRoute != nil {
		builder = builder.Set("planned_route", trackingModifyDB.PlannedRoute)
	}
	if trackingModifyDB.RouteDistanceMeters != nil {
		builder = builder.Set("route_distance_meters", trackingModifyDB.RouteDistanceMeters)
	}
	if trackingModifyDB.PlannedDurationSeconds != nil {
		builder = builder.Set("planned_duration_seconds", trackingModifyDB.PlannedDurationSeconds)
	}
	if trackingModifyDB.Checkpoints != nil {
		builder = builder.Set("checkpoints", trackingModifyDB.Checkpoints)
	}
	if trackingModifyDB.LastCheckpointPassed != nil {
		builder = builder.Set("last_checkpoint_passed", trackingModifyDB.LastCheckpointPassed)
	}
	if trackingModifyDB.Status != nil {
		builder = builder.Set("status", trackingModifyDB.Status)
	}
	if trackingModifyDB.DeliveryOTC != nil {
		builder = builder.Set("delivery_otc", trackingModifyDB.DeliveryOTC)
	}
	if trackingModifyDB.OTCVerified != nil {
		builder = builder.Set("otc_verified", trackingModifyDB.OTCVerified)
	}
	if trackingModifyDB.ExpectedDeliveryAt != nil {
		builder = builder.Set("expected_delivery_at", trackingModifyDB.ExpectedDeliveryAt)
	}
	if trackingModifyDB.ActualDeliveryAt != nil {
		builder = builder.Set("actual_delivery_at", trackingModifyDB.ActualDeliveryAt)
	}
	if trackingModifyDB.AnomalyDetected != nil {
		builder = builder.Set("anomaly_detected", trackingModifyDB.AnomalyDetected)
	}
	if trackingModifyDB.AnomalyDetails != nil {
		builder = builder.Set("anomaly_details", trackingModifyDB.AnomalyDetails)
	}
	if trackingModifyDB.TamperAttempts != nil {
		builder = builder.Set("tamper_attempts", trackingModifyDB.TamperAttempts)
	}

	builder = builder.
		Set("version", version+1).
		Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": trackingID, "version": version}).
		Suffix("RETURNING " + trackingColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected tracking repository update error: %w", err)
	}

	trackingDB, err := scanTracking(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, tracking.ErrConcurrentUpdate
		}
		return nil, fmt.Errorf("unexpected tracking repository update error: %w", err)
	}

	return ToDomain(trackingDB)
}

// SyncDeliveryOTC переносит свежий код выдачи в открытую запись сопровождения.
func (r *Repository) SyncDeliveryOTC(ctx context.Context, shipmentID string, code string) error {
	query := `
		UPDATE tracking
		SET delivery_otc = $2,
			otc_verified = FALSE,
			version = version + 1,
			updated_at = NOW()
		WHERE shipment_id = $1
		  AND status NOT IN ('completed', 'cancelled')`

	result, err := r.querier.Exec(ctx, query, shipmentID, code)
	if err != nil {
		return fmt.Errorf("unexpected tracking repository sync otc error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return tracking.ErrTrackingNotFound
	}
	return nil
}

// MarkSuspicious дописывает факт вскрытия в журнал и переводит открытую
// запись в suspicious_activity одним запросом.
func (r *Repository) MarkSuspicious(ctx context.Context, shipmentID string, attempt entities.TamperAttempt) error {
	attemptJSON, err := json.Marshal(attempt)
	if err != nil {
		return fmt.Errorf("unexpected tracking repository mark suspicious error: %w", err)
	}

	query := `
		UPDATE tracking
		SET status = 'suspicious_activity',
			anomaly_detected = TRUE,
			anomaly_details = $3,
			tamper_attempts = tamper_attempts || $2::jsonb,
			version = version + 1,
			updated_at = NOW()
		WHERE shipment_id = $1
		  AND status NOT IN ('completed', 'cancelled')`

	result, err := r.querier.Exec(ctx, query, shipmentID, attemptJSON, attempt.Description)
	if err != nil {
		return fmt.Errorf("unexpected tracking repository mark suspicious error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return tracking.ErrTrackingNotFound
	}
	return nil
}

func scanTracking(row pgx.Row) (*TrackingDB, error) {
	var trackingDB TrackingDB
	err := row.Scan(
		&trackingDB.ID,
		&trackingDB.ShipmentID,
		&trackingDB.VehicleID,
		&trackingDB.DriverID,
		&trackingDB.StartLat,
		&trackingDB.StartLng,
		&trackingDB.EndLat,
		&trackingDB.EndLng,
		&trackingDB.CurrentLat,
		&trackingDB.CurrentLng,
		&trackingDB.LocationUpdatedAt,
		&trackingDB.PlannedRoute,
		&trackingDB.RouteDistanceMeters,
		&trackingDB.PlannedDurationSeconds,
		&trackingDB.Checkpoints,
		&trackingDB.LastCheckpointPassed,
		&trackingDB.Status,
		&trackingDB.SecurityToken,
		&trackingDB.DeliveryOTC,
		&trackingDB.OTCVerified,
		&trackingDB.ExpectedDeliveryAt,
		&trackingDB.ActualDeliveryAt,
		&trackingDB.AnomalyDetected,
		&trackingDB.AnomalyDetails,
		&trackingDB.TamperAttempts,
		&trackingDB.Version,
		&trackingDB.CreatedAt,
		&trackingDB.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &trackingDB, nil
}
