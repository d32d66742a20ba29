package packaging

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"service/internal/entities"
	"service/internal/repository"
	"service/internal/service/packaging"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const packageColumns = `id, package_id, shipment_id, stock_id, batch_number,
		qr_payload, barcode, seal_intact, status, verification_history, tamper_evidence,
		created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, packageEntity entities.Package) (*entities.Package, error) {
	query := `
		INSERT INTO packages (
			package_id, shipment_id, stock_id, batch_number,
			qr_payload, barcode, seal_intact, status,
			verification_history, tamper_evidence
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, '[]'::jsonb, '[]'::jsonb)
		RETURNING ` + packageColumns

	packageDB, err := scanPackage(r.querier.QueryRow(
		ctx,
		query,
		packageEntity.PackageID,
		packageEntity.ShipmentID,
		packageEntity.StockID,
		packageEntity.BatchNumber,
		packageEntity.QRPayload,
		packageEntity.Barcode,
		packageEntity.SealIntact,
		packageEntity.Status.String(),
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, packaging.ErrPackageExists
		}
		return nil, fmt.Errorf("unexpected packaging repository create error: %w", err)
	}

	return ToDomain(packageDB)
}

func (r *Repository) GetByPackageID(ctx context.Context, packageID string) (*entities.Package, error) {
	query := `
		SELECT ` + packageColumns + `
		FROM packages
		WHERE package_id = $1`

	packageDB, err := scanPackage(r.querier.QueryRow(ctx, query, packageID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, packaging.ErrPackageNotFound
		}
		return nil, fmt.Errorf("unexpected packaging repository getbypackageid error: %w", err)
	}

	return ToDomain(packageDB)
}

// FindByCode принимает любой из кодов упаковки: идентификатор, штрихкод или
// полное содержимое QR.
func (r *Repository) FindByCode(ctx context.Context, code string) (*entities.Package, error) {
	query := `
		SELECT ` + packageColumns + `
		FROM packages
		WHERE package_id = $1 OR barcode = $1 OR qr_payload = $1
		LIMIT 1`

	packageDB, err := scanPackage(r.querier.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, packaging.ErrPackageNotFound
		}
		return nil, fmt.Errorf("unexpected packaging repository findbycode error: %w", err)
	}

	return ToDomain(packageDB)
}

func (r *Repository) ListByShipmentID(ctx context.Context, shipmentID string) ([]entities.Package, error) {
	query := `
		SELECT ` + packageColumns + `
		FROM packages
		WHERE shipment_id = $1
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("unexpected packaging repository listbyshipmentid error: %w", err)
	}
	defer rows.Close()

	packageModels := make([]PackageDB, 0, 8)
	for rows.Next() {
		var packageDB PackageDB
		err := rows.Scan(
			&packageDB.ID,
			&packageDB.PackageID,
			&packageDB.ShipmentID,
			&packageDB.StockID,
			&packageDB.BatchNumber,
			&packageDB.QRPayload,
			&packageDB.Barcode,
			&packageDB.SealIntact,
			&packageDB.Status,
			&packageDB.VerificationHistory,
			&packageDB.TamperEvidence,
			&packageDB.CreatedAt,
			&packageDB.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected packaging repository listbyshipmentid error: %w", err)
		}
		packageModels = append(packageModels, packageDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected packaging repository listbyshipmentid error: %w", err)
	}

	return ToDomainList(packageModels)
}

func (r *Repository) Update(ctx context.Context, packageID string, packageModify entities.PackageModify) (*entities.Package, error) {
	packageModifyDB, err := FromDomainModify(&packageModify)
	if err != nil {
		return nil, fmt.Errorf("unexpected packaging repository update error: %w", err)
	}

	builder := qb.
		Update("packages")

	// опциональные поля
	if packageModifyDB.SealIntact != nil {
		builder = builder.Set("seal_intact", packageModifyDB.SealIntact)
	}
	if packageModifyDB.Status != nil {
		builder = builder.Set("status", packageModifyDB.Status)
	}
	if packageModifyDB.VerificationHistory != nil {
		builder = builder.Set("verification_history", packageModifyDB.VerificationHistory)
	}
	if packageModifyDB.TamperEvidence != nil {
		builder = builder.Set("tamper_evidence", packageModifyDB.TamperEvidence)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"package_id": packageID}).
		Suffix("RETURNING " + packageColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected packaging repository update error: %w", err)
	}

	packageDB, err := scanPackage(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, packaging.ErrPackageNotFound
		}
		return nil, fmt.Errorf("unexpected packaging repository update error: %w", err)
	}

	return ToDomain(packageDB)
}

func scanPackage(row pgx.Row) (*PackageDB, error) {
	var packageDB PackageDB
	err := row.Scan(
		&packageDB.ID,
		&packageDB.PackageID,
		&packageDB.ShipmentID,
		&packageDB.StockID,
		&packageDB.BatchNumber,
		&packageDB.QRPayload,
		&packageDB.Barcode,
		&packageDB.SealIntact,
		&packageDB.Status,
		&packageDB.VerificationHistory,
		&packageDB.TamperEvidence,
		&packageDB.CreatedAt,
		&packageDB.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &packageDB, nil
}
