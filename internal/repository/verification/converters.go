package verification

import (
	"encoding/json"
	"fmt"

	"service/internal/entities"
)

func ToDomain(v *VerificationDB) (*entities.DeliveryVerification, error) {
	if v == nil {
		return nil, nil
	}

	var issues []entities.IntegrityIssue
	if len(v.Issues) > 0 {
		if err := json.Unmarshal(v.Issues, &issues); err != nil {
			return nil, fmt.Errorf("unmarshal issues: %w", err)
		}
	}

	return &entities.DeliveryVerification{
		ID:             v.ID,
		ShipmentID:     v.ShipmentID,
		Code:           v.Code,
		GeneratedAt:    v.GeneratedAt,
		ExpiresAt:      v.ExpiresAt,
		Attempts:       v.Attempts,
		MaxAttempts:    v.MaxAttempts,
		Status:         entities.VerificationStatusType(v.Status),
		VerifiedBy:     v.VerifiedBy,
		VerifiedByRole: v.VerifiedByRole,
		VerifiedAt:     v.VerifiedAt,
		Issues:         issues,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}, nil
}

func FromDomainModify(v *entities.VerificationModify) (*VerificationModifyDB, error) {
	if v == nil {
		return nil, nil
	}
	verificationModifyDB := &VerificationModifyDB{}

	if v.Code != nil {
		verificationModifyDB.Code = v.Code
	}
	if v.GeneratedAt != nil {
		verificationModifyDB.GeneratedAt = v.GeneratedAt
	}
	if v.ExpiresAt != nil {
		verificationModifyDB.ExpiresAt = v.ExpiresAt
	}
	if v.Attempts != nil {
		verificationModifyDB.Attempts = v.Attempts
	}
	if v.MaxAttempts != nil {
		verificationModifyDB.MaxAttempts = v.MaxAttempts
	}
	if v.Status != nil {
		status := v.Status.String()
		verificationModifyDB.Status = &status
	}
	if v.VerifiedBy != nil {
		verificationModifyDB.VerifiedBy = v.VerifiedBy
	}
	if v.VerifiedByRole != nil {
		verificationModifyDB.VerifiedByRole = v.VerifiedByRole
	}
	if v.VerifiedAt != nil {
		verificationModifyDB.VerifiedAt = v.VerifiedAt
	}
	if v.Issues != nil {
		issues, err := json.Marshal(*v.Issues)
		if err != nil {
			return nil, fmt.Errorf("marshal issues: %w", err)
		}
		verificationModifyDB.Issues = issues
	}

	return verificationModifyDB, nil
}
