// Package packaging ведёт неизменяемую историю упаковок: журнал только
// пополняется, статус compromised терминален и не отменяется.
package packaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/AlekSi/pointer"
	"service/internal/entities"
)

type Packaging struct {
	repository     Repository
	trackingMarker TrackingMarker
	codeFactory    CodeFactory
	txManager      TxManager
}

func New(
	repository Repository,
	trackingMarker TrackingMarker,
	codeFactory CodeFactory,
	txManager TxManager,
) *Packaging {
	return &Packaging{
		repository:     repository,
		trackingMarker: trackingMarker,
		codeFactory:    codeFactory,
		txManager:      txManager,
	}
}

type qrPayload struct {
	PackageID   string `json:"packageId"`
	ShipmentID  string `json:"shipmentId"`
	BatchNumber string `json:"batchNumber"`
	Timestamp   int64  `json:"timestamp"`
}

// CreateForShipment выпускает опечатанную упаковку на каждую позицию отгрузки.
func (p *Packaging) CreateForShipment(ctx context.Context, shipmentID string, batchNumber string, stockIDs []string) ([]entities.Package, error) {
	if !isValidID(shipmentID) || len(stockIDs) == 0 {
		return nil, ErrMissingRequiredFields
	}

	now := time.Now().UTC()
	created := make([]entities.Package, 0, len(stockIDs))

	err := p.txManager.Do(ctx, func(ctx context.Context) error {
		for _, stockID := range stockIDs {
			packageID := p.codeFactory.PackageID()

			payload, err := json.Marshal(qrPayload{
				PackageID:   packageID,
				ShipmentID:  shipmentID,
				BatchNumber: batchNumber,
				Timestamp:   now.UnixMilli(),
			})
			if err != nil {
				return fmt.Errorf("marshal qr payload: %w", err)
			}

			pkg, err := p.repository.Create(ctx, entities.Package{
				PackageID:   packageID,
				ShipmentID:  shipmentID,
				StockID:     stockID,
				BatchNumber: batchNumber,
				QRPayload:   string(payload),
				Barcode:     "BAR-" + packageID,
				SealIntact:  true,
				Status:      entities.PackageSealed,
			})
			if err != nil {
				return fmt.Errorf("create package for stock %s: %w", stockID, err)
			}
			created = append(created, *pkg)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// RecordVerification дописывает запись в историю упаковки. Запись со статусом
// compromised опускает пломбу, закрывает упаковку и помечает сопровождение
// отгрузки как подозрительное.
func (p *Packaging) RecordVerification(ctx context.Context, shipmentID string, packageID string, entry entities.PackageVerification) (*entities.Package, error) {
	if !isValidID(shipmentID) || !isValidID(packageID) {
		return nil, ErrMissingRequiredFields
	}

	var updated *entities.Package
	err := p.txManager.Do(ctx, func(ctx context.Context) error {
		pkg, err := p.repository.GetByPackageID(ctx, packageID)
		if err != nil {
			return fmt.Errorf("get package: %w", err)
		}
		if pkg.ShipmentID != shipmentID {
			return ErrPackageNotFound
		}

		history := appendHistory(pkg.VerificationHistory, entry)
		packageModify := entities.PackageModify{VerificationHistory: &history}

		compromisedNow := entry.Status == entities.PackageEntryCompromised && pkg.Status != entities.PackageCompromised
		if compromisedNow {
			description := entry.Notes
			if description == "" {
				description = "Seal broken at verification"
			}
			evidence := appendEvidence(pkg.TamperEvidence, entities.TamperEvidence{
				Timestamp:   entry.Timestamp,
				Location:    entry.Location,
				ReportedBy:  entry.VerifiedBy,
				Description: description,
			})

			packageModify.SealIntact = pointer.To(false)
			packageModify.Status = pointer.To(entities.PackageCompromised)
			packageModify.TamperEvidence = &evidence
		}

		updated, err = p.repository.Update(ctx, packageID, packageModify)
		if err != nil {
			return fmt.Errorf("update package: %w", err)
		}

		if compromisedNow {
			attempt := entities.TamperAttempt{
				Timestamp:   entry.Timestamp,
				Description: fmt.Sprintf("Package %s compromised", packageID),
				Location:    entry.Location,
				ReportedBy:  entry.VerifiedBy,
			}
			if err := p.trackingMarker.MarkSuspicious(ctx, shipmentID, attempt); err != nil {
				return fmt.Errorf("mark tracking suspicious: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ReportTamper фиксирует вскрытие упаковки. Эффект терминальный.
func (p *Packaging) ReportTamper(ctx context.Context, packageID string, evidence entities.TamperEvidence) (*entities.Package, error) {
	if !isValidID(packageID) || !isValidID(evidence.Description) {
		return nil, ErrMissingRequiredFields
	}

	var updated *entities.Package
	err := p.txManager.Do(ctx, func(ctx context.Context) error {
		pkg, err := p.repository.GetByPackageID(ctx, packageID)
		if err != nil {
			return fmt.Errorf("get package: %w", err)
		}

		evidenceList := appendEvidence(pkg.TamperEvidence, evidence)
		history := appendHistory(pkg.VerificationHistory, entities.PackageVerification{
			Timestamp:  evidence.Timestamp,
			Location:   evidence.Location,
			VerifiedBy: evidence.ReportedBy,
			Status:     entities.PackageEntryCompromised,
			Notes:      evidence.Description,
		})

		updated, err = p.repository.Update(ctx, packageID, entities.PackageModify{
			SealIntact:          pointer.To(false),
			Status:              pointer.To(entities.PackageCompromised),
			VerificationHistory: &history,
			TamperEvidence:      &evidenceList,
		})
		if err != nil {
			return fmt.Errorf("update package: %w", err)
		}

		attempt := entities.TamperAttempt{
			Timestamp:   evidence.Timestamp,
			Description: evidence.Description,
			Location:    evidence.Location,
			ReportedBy:  evidence.ReportedBy,
		}
		if err := p.trackingMarker.MarkSuspicious(ctx, pkg.ShipmentID, attempt); err != nil {
			return fmt.Errorf("mark tracking suspicious: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Scan находит упаковку по любому из её кодов: идентификатору, штрихкоду или
// содержимому QR. Скан с координатами дописывается в историю.
func (p *Packaging) Scan(ctx context.Context, code string, entry entities.PackageVerification) (*entities.Package, error) {
	if !isValidID(code) {
		return nil, ErrMissingRequiredFields
	}

	var scanned *entities.Package
	err := p.txManager.Do(ctx, func(ctx context.Context) error {
		pkg, err := p.repository.FindByCode(ctx, code)
		if err != nil {
			return fmt.Errorf("find package: %w", err)
		}

		if entry.Location == nil {
			scanned = pkg
			return nil
		}

		history := appendHistory(pkg.VerificationHistory, entry)
		scanned, err = p.repository.Update(ctx, pkg.PackageID, entities.PackageModify{
			VerificationHistory: &history,
		})
		if err != nil {
			return fmt.Errorf("update package: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return scanned, nil
}

// MarkDelivered закрывает все нескомпрометированные упаковки отгрузки.
func (p *Packaging) MarkDelivered(ctx context.Context, shipmentID string, entry entities.PackageVerification) error {
	if !isValidID(shipmentID) {
		return ErrMissingRequiredFields
	}

	return p.txManager.Do(ctx, func(ctx context.Context) error {
		packages, err := p.repository.ListByShipmentID(ctx, shipmentID)
		if err != nil {
			return fmt.Errorf("list packages: %w", err)
		}

		for _, pkg := range packages {
			if pkg.Status == entities.PackageCompromised {
				continue
			}

			history := appendHistory(pkg.VerificationHistory, entry)
			if _, err := p.repository.Update(ctx, pkg.PackageID, entities.PackageModify{
				Status:              pointer.To(entities.PackageDelivered),
				VerificationHistory: &history,
			}); err != nil {
				return fmt.Errorf("mark package %s delivered: %w", pkg.PackageID, err)
			}
		}
		return nil
	})
}

// FlagSuspicious дописывает подозрительную запись всем упаковкам отгрузки,
// не меняя их статусов.
func (p *Packaging) FlagSuspicious(ctx context.Context, shipmentID string, entry entities.PackageVerification) error {
	if !isValidID(shipmentID) {
		return ErrMissingRequiredFields
	}

	return p.txManager.Do(ctx, func(ctx context.Context) error {
		packages, err := p.repository.ListByShipmentID(ctx, shipmentID)
		if err != nil {
			return fmt.Errorf("list packages: %w", err)
		}

		for _, pkg := range packages {
			history := appendHistory(pkg.VerificationHistory, entry)
			if _, err := p.repository.Update(ctx, pkg.PackageID, entities.PackageModify{
				VerificationHistory: &history,
			}); err != nil {
				return fmt.Errorf("flag package %s: %w", pkg.PackageID, err)
			}
		}
		return nil
	})
}

func (p *Packaging) ListByShipmentID(ctx context.Context, shipmentID string) ([]entities.Package, error) {
	if !isValidID(shipmentID) {
		return nil, ErrMissingRequiredFields
	}

	packages, err := p.repository.ListByShipmentID(ctx, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}
	return packages, nil
}

func appendHistory(history []entities.PackageVerification, entry entities.PackageVerification) []entities.PackageVerification {
	out := make([]entities.PackageVerification, 0, len(history)+1)
	out = append(out, history...)
	return append(out, entry)
}

func appendEvidence(evidence []entities.TamperEvidence, entry entities.TamperEvidence) []entities.TamperEvidence {
	out := make([]entities.TamperEvidence, 0, len(evidence)+1)
	out = append(out, evidence...)
	return append(out, entry)
}
