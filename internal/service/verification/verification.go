// Package verification ведёт одноразовые коды выдачи: одна запись на отгрузку,
// срок жизни кода 30 минут, не больше трёх неудачных попыток.
package verification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AlekSi/pointer"
	"service/internal/entities"
)

const (
	otcTTL      = 30 * time.Minute
	maxAttempts = 3
)

type Verification struct {
	repository   Repository
	trackingSync TrackingSync
	codeFactory  CodeFactory
	txManager    TxManager
}

func New(
	repository Repository,
	trackingSync TrackingSync,
	codeFactory CodeFactory,
	txManager TxManager,
) *Verification {
	return &Verification{
		repository:   repository,
		trackingSync: trackingSync,
		codeFactory:  codeFactory,
		txManager:    txManager,
	}
}

// Register создаёт запись с уже выпущенным кодом. Вызывается при постановке
// отгрузки на сопровождение, в её транзакции.
func (v *Verification) Register(ctx context.Context, shipmentID string, code string) error {
	if !isValidShipmentID(shipmentID) || code == "" {
		return ErrMissingRequiredFields
	}

	now := time.Now().UTC()
	_, err := v.repository.Upsert(ctx, entities.DeliveryVerification{
		ShipmentID:  shipmentID,
		Code:        code,
		GeneratedAt: now,
		ExpiresAt:   now.Add(otcTTL),
		MaxAttempts: maxAttempts,
		Status:      entities.VerificationPending,
	})
	if err != nil {
		return fmt.Errorf("upsert verification: %w", err)
	}
	return nil
}

// Generate выпускает новый код: прежний перестаёт действовать, счётчик попыток
// обнуляется, копия кода уходит в запись сопровождения.
func (v *Verification) Generate(ctx context.Context, shipmentID string) (*entities.DeliveryVerification, error) {
	if !isValidShipmentID(shipmentID) {
		return nil, ErrMissingRequiredFields
	}

	code := v.codeFactory.OTC()
	now := time.Now().UTC()

	var generated *entities.DeliveryVerification
	err := v.txManager.Do(ctx, func(ctx context.Context) error {
		if err := v.trackingSync.SyncDeliveryOTC(ctx, shipmentID, code); err != nil {
			return fmt.Errorf("sync otc to tracking: %w", err)
		}

		var err error
		generated, err = v.repository.Upsert(ctx, entities.DeliveryVerification{
			ShipmentID:  shipmentID,
			Code:        code,
			GeneratedAt: now,
			ExpiresAt:   now.Add(otcTTL),
			MaxAttempts: maxAttempts,
			Status:      entities.VerificationPending,
		})
		if err != nil {
			return fmt.Errorf("upsert verification: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return generated, nil
}

// Verify проверяет код. Порядок проверок фиксирован: терминальный статус,
// срок, потолок попыток, совпадение. Несовпадение тратит попытку, закрытая
// запись (verified/failed/expired) не перепроверяется.
func (v *Verification) Verify(ctx context.Context, shipmentID string, code string, actor entities.Actor) (*entities.DeliveryVerification, error) {
	if !isValidShipmentID(shipmentID) || code == "" {
		return nil, ErrMissingRequiredFields
	}

	var verified *entities.DeliveryVerification
	var attemptsLeft int
	var verifyErr error

	err := v.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := v.repository.GetByShipmentID(ctx, shipmentID)
		if err != nil {
			return fmt.Errorf("get verification: %w", err)
		}

		switch current.Status {
		case entities.VerificationVerified:
			verifyErr = ErrVerificationClosed
			return nil
		case entities.VerificationExpired:
			verifyErr = ErrOTCExpired
			return nil
		case entities.VerificationFailed:
			verifyErr = ErrOTCAttemptsExceeded
			return nil
		}

		now := time.Now().UTC()

		if now.After(current.ExpiresAt) {
			if _, err := v.repository.Update(ctx, shipmentID, entities.VerificationModify{
				Status: pointer.To(entities.VerificationExpired),
			}); err != nil {
				return fmt.Errorf("mark verification expired: %w", err)
			}
			verifyErr = ErrOTCExpired
			return nil
		}

		if current.Attempts >= current.MaxAttempts {
			if _, err := v.repository.Update(ctx, shipmentID, entities.VerificationModify{
				Status: pointer.To(entities.VerificationFailed),
			}); err != nil {
				return fmt.Errorf("mark verification failed: %w", err)
			}
			verifyErr = ErrOTCAttemptsExceeded
			return nil
		}

		if current.Code != code {
			updated, err := v.repository.Update(ctx, shipmentID, entities.VerificationModify{
				Attempts: pointer.To(current.Attempts + 1),
			})
			if err != nil {
				return fmt.Errorf("increment attempts: %w", err)
			}
			attemptsLeft = updated.AttemptsLeft()
			verifyErr = ErrInvalidOTC
			return nil
		}

		verified, err = v.repository.Update(ctx, shipmentID, entities.VerificationModify{
			Status:         pointer.To(entities.VerificationVerified),
			VerifiedBy:     &actor.UserID,
			VerifiedByRole: &actor.Role,
			VerifiedAt:     &now,
		})
		if err != nil {
			return fmt.Errorf("mark verification verified: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	switch {
	case errors.Is(verifyErr, ErrInvalidOTC):
		return nil, &InvalidOTCError{AttemptsLeft: attemptsLeft}
	case verifyErr != nil:
		return nil, verifyErr
	}
	return verified, nil
}

// ReportIssues дописывает замечания о целостности, не трогая состояние кода.
// Отсутствующая запись создаётся со свежим кодом.
func (v *Verification) ReportIssues(ctx context.Context, shipmentID string, issues []entities.IntegrityIssue) (*entities.DeliveryVerification, error) {
	if !isValidShipmentID(shipmentID) || len(issues) == 0 {
		return nil, ErrMissingRequiredFields
	}

	var updated *entities.DeliveryVerification
	err := v.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := v.repository.GetByShipmentID(ctx, shipmentID)
		if err != nil {
			if !errors.Is(err, ErrVerificationNotFound) {
				return fmt.Errorf("get verification: %w", err)
			}

			now := time.Now().UTC()
			current, err = v.repository.Upsert(ctx, entities.DeliveryVerification{
				ShipmentID:  shipmentID,
				Code:        v.codeFactory.OTC(),
				GeneratedAt: now,
				ExpiresAt:   now.Add(otcTTL),
				MaxAttempts: maxAttempts,
				Status:      entities.VerificationPending,
			})
			if err != nil {
				return fmt.Errorf("create verification: %w", err)
			}
		}

		merged := make([]entities.IntegrityIssue, 0, len(current.Issues)+len(issues))
		merged = append(merged, current.Issues...)
		merged = append(merged, issues...)

		updated, err = v.repository.Update(ctx, shipmentID, entities.VerificationModify{
			Issues: &merged,
		})
		if err != nil {
			return fmt.Errorf("append issues: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ExpireStale ставит expired всем просроченным pending записям. Тот же статус
// вычислил бы и путь проверки, фоновая задача лишь материализует его.
func (v *Verification) ExpireStale(ctx context.Context) (int64, error) {
	rowsAffected, err := v.repository.ExpireStale(ctx, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("expire stale verifications: %w", err)
	}
	return rowsAffected, nil
}
