package packaging

import (
	"encoding/json"
	"fmt"

	"service/internal/entities"
)

func ToDomain(p *PackageDB) (*entities.Package, error) {
	if p == nil {
		return nil, nil
	}

	var history []entities.PackageVerification
	if len(p.VerificationHistory) > 0 {
		if err := json.Unmarshal(p.VerificationHistory, &history); err != nil {
			return nil, fmt.Errorf("unmarshal verification history: %w", err)
		}
	}

	var evidence []entities.TamperEvidence
	if len(p.TamperEvidence) > 0 {
		if err := json.Unmarshal(p.TamperEvidence, &evidence); err != nil {
			return nil, fmt.Errorf("unmarshal tamper evidence: %w", err)
		}
	}

	return &entities.Package{
		ID:                  p.ID,
		PackageID:           p.PackageID,
		ShipmentID:          p.ShipmentID,
		StockID:             p.StockID,
		BatchNumber:         p.BatchNumber,
		QRPayload:           p.QRPayload,
		Barcode:             p.Barcode,
		SealIntact:          p.SealIntact,
		Status:              entities.PackageStatusType(p.Status),
		VerificationHistory: history,
		TamperEvidence:      evidence,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}, nil
}

func ToDomainList(packageModels []PackageDB) ([]entities.Package, error) {
	packages := make([]entities.Package, 0, len(packageModels))
	for i := range packageModels {
		packageEntity, err := ToDomain(&packageModels[i])
		if err != nil {
			return nil, err
		}
		packages = append(packages, *packageEntity)
	}
	return packages, nil
}

func FromDomainModify(p *entities.PackageModify) (*PackageModifyDB, error) {
	if p == nil {
		return nil, nil
	}
	packageModifyDB := &PackageModifyDB{}

	if p.SealIntact != nil {
		packageModifyDB.SealIntact = p.SealIntact
	}
	if p.Status != nil {
		status := p.Status.String()
		packageModifyDB.Status = &status
	}
	if p.VerificationHistory != nil {
		history, err := json.Marshal(*p.VerificationHistory)
		if err != nil {
			return nil, fmt.Errorf("marshal verification history: %w", err)
		}
		packageModifyDB.VerificationHistory = history
	}
	if p.TamperEvidence != nil {
		evidence, err := json.Marshal(*p.TamperEvidence)
		if err != nil {
			return nil, fmt.Errorf("marshal tamper evidence: %w", err)
		}
		packageModifyDB.TamperEvidence = evidence
	}

	return packageModifyDB, nil
}
