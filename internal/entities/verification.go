package entities

import "time"

type DeliveryVerification struct {
	ID             int64
	ShipmentID     string
	Code           string
	GeneratedAt    time.Time
	ExpiresAt      time.Time
	Attempts       int
	MaxAttempts    int
	Status         VerificationStatusType
	VerifiedBy     string
	VerifiedByRole string
	VerifiedAt     *time.Time
	Issues         []IntegrityIssue
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (v DeliveryVerification) AttemptsLeft() int {
	left := v.MaxAttempts - v.Attempts
	if left < 0 {
		return 0
	}
	return left
}

type VerificationStatusType string

const (
	VerificationPending  VerificationStatusType = "pending"
	VerificationVerified VerificationStatusType = "verified"
	VerificationExpired  VerificationStatusType = "expired"
	VerificationFailed   VerificationStatusType = "failed"
)

func (s VerificationStatusType) String() string {
	return string(s)
}

type IntegrityIssue struct {
	Description string    `json:"description"`
	ReportedAt  time.Time `json:"reportedAt"`
	ReportedBy  string    `json:"reportedBy"`
	Evidence    string    `json:"evidence,omitempty"`
}

type VerificationModify struct {
	Code           *string
	GeneratedAt    *time.Time
	ExpiresAt      *time.Time
	Attempts       *int
	MaxAttempts    *int
	Status         *VerificationStatusType
	VerifiedBy     *string
	VerifiedByRole *string
	VerifiedAt     *time.Time
	Issues         *[]IntegrityIssue
}

// Actor идентифицирует инициатора операции, проставленного внешним слоем аутентификации.
type Actor struct {
	UserID string
	Role   string
}
