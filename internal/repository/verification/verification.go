package verification

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"service/internal/entities"
	"service/internal/service/verification"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const verificationColumns = `id, shipment_id, code, generated_at, expires_at,
		attempts, max_attempts, status, verified_by, verified_by_role, verified_at,
		issues, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Upsert выпускает код заново для существующей отгрузки: счётчик попыток и
// отметка проверки сбрасываются, накопленные замечания остаются.
func (r *Repository) Upsert(ctx context.Context, verificationEntity entities.DeliveryVerification) (*entities.DeliveryVerification, error) {
	query := `
		INSERT INTO delivery_verifications (
			shipment_id, code, generated_at, expires_at, attempts, max_attempts, status
		)
		VALUES ($1, $2, $3, $4, 0, $5, $6)
		ON CONFLICT (shipment_id) DO UPDATE
		SET code = EXCLUDED.code,
			generated_at = EXCLUDED.generated_at,
			expires_at = EXCLUDED.expires_at,
			attempts = 0,
			max_attempts = EXCLUDED.max_attempts,
			status = EXCLUDED.status,
			verified_by = '',
			verified_by_role = '',
			verified_at = NULL,
			updated_at = NOW()
		RETURNING ` + verificationColumns

	verificationDB, err := scanVerification(r.querier.QueryRow(
		ctx,
		query,
		verificationEntity.ShipmentID,
		verificationEntity.Code,
		verificationEntity.GeneratedAt,
		verificationEntity.ExpiresAt,
		verificationEntity.MaxAttempts,
		verificationEntity.Status.String(),
	))
	if err != nil {
		return nil, fmt.Errorf("unexpected verification repository upsert error: %w", err)
	}

	return ToDomain(verificationDB)
}

func (r *Repository) GetByShipmentID(ctx context.Context, shipmentID string) (*entities.DeliveryVerification, error) {
	query := `
		SELECT ` + verificationColumns + `
		FROM delivery_verifications
		WHERE shipment_id = $1`

	verificationDB, err := scanVerification(r.querier.QueryRow(ctx, query, shipmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, verification.ErrVerificationNotFound
		}
		return nil, fmt.Errorf("unexpected verification repository getbyshipmentid error: %w", err)
	}

	return ToDomain(verificationDB)
}

func (r *Repository) Update(ctx context.Context, shipmentID string, verificationModify entities.VerificationModify) (*entities.DeliveryVerification, error) {
	verificationModifyDB, err := FromDomainModify(&verificationModify)
	if err != nil {
		return nil, fmt.Errorf("unexpected verification repository update error: %w", err)
	}

	builder := qb.
		Update("delivery_verifications")

	// опциональные поля
	if verificationModifyDB.Code != nil {
		builder = builder.Set("code", verificationModifyDB.Code)
	}
	if verificationModifyDB.GeneratedAt != nil {
		builder = builder.Set("generated_at", verificationModifyDB.GeneratedAt)
	}
	if verificationModifyDB.ExpiresAt != nil {
		builder = builder.Set("expires_at", verificationModifyDB.ExpiresAt)
	}
	if verificationModifyDB.Attempts != nil {
		builder = builder.Set("attempts", verificationModifyDB.Attempts)
	}
	if verificationModifyDB.MaxAttempts != nil {
		builder = builder.Set("max_attempts", verificationModifyDB.MaxAttempts)
	}
	if verificationModifyDB.Status != nil {
		builder = builder.Set("status", verificationModifyDB.Status)
	}
	if verificationModifyDB.VerifiedBy != nil {
		builder = builder.Set("verified_by", verificationModifyDB.VerifiedBy)
	}
	if verificationModifyDB.VerifiedByRole != nil {
		builder = builder.Set("verified_by_role", verificationModifyDB.VerifiedByRole)
	}
	if verificationModifyDB.VerifiedAt != nil {
		builder = builder.Set("verified_at", verificationModifyDB.VerifiedAt)
	}
	if verificationModifyDB.Issues != nil {
		builder = builder.Set("issues", verificationModifyDB.Issues)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"shipment_id": shipmentID}).
		Suffix("RETURNING " + verificationColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected verification repository update error: %w", err)
	}

	verificationDB, err := scanVerification(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, verification.ErrVerificationNotFound
		}
		return nil, fmt.Errorf("unexpected verification repository update error: %w", err)
	}

	return ToDomain(verificationDB)
}

func (r *Repository) ExpireStale(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE delivery_verifications
		SET status = 'expired',
			updated_at = NOW()
		WHERE status = 'pending'
		  AND expires_at < $1`

	result, err := r.querier.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("unexpected verification repository expire stale error: %w", err)
	}

	return result.RowsAffected(), nil
}

func scanVerification(row pgx.Row) (*VerificationDB, error) {
	var verificationDB VerificationDB
	err := row.Scan(
		&verificationDB.ID,
		&verificationDB.ShipmentID,
		&verificationDB.Code,
		&verificationDB.GeneratedAt,
		&verificationDB.ExpiresAt,
		&verificationDB.Attempts,
		&verificationDB.MaxAttempts,
		&verificationDB.Status,
		&verificationDB.VerifiedBy,
		&verificationDB.VerifiedByRole,
		&verificationDB.VerifiedAt,
		&verificationDB.Issues,
		&verificationDB.CreatedAt,
		&verificationDB.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &verificationDB, nil
}
