package verification

import "time"

type VerificationDB struct {
	ID             int64
	ShipmentID     string
	Code           string
	GeneratedAt    time.Time
	ExpiresAt      time.Time
	Attempts       int
	MaxAttempts    int
	Status         string
	VerifiedBy     string
	VerifiedByRole string
	VerifiedAt     *time.Time
	Issues         []byte
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type VerificationModifyDB struct {
	Code           *string
	GeneratedAt    *time.Time
	ExpiresAt      *time.Time
	Attempts       *int
	MaxAttempts    *int
	Status         *string
	VerifiedBy     *string
	VerifiedByRole *string
	VerifiedAt     *time.Time
	Issues         []byte
}
