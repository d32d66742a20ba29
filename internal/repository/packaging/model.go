package packaging

import "time"

type PackageDB struct {
	ID                  int64
	PackageID           string
	ShipmentID          string
	StockID             string
	BatchNumber         string
	QRPayload           string
	Barcode             string
	SealIntact          bool
	Status              string
	VerificationHistory []byte
	TamperEvidence      []byte
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type PackageModifyDB struct {
	SealIntact          *bool
	Status              *string
	VerificationHistory []byte
	TamperEvidence      []byte
}
