package entities

import "time"

type Package struct {
	ID                  int64
	PackageID           string
	ShipmentID          string
	StockID             string
	BatchNumber         string
	QRPayload           string
	Barcode             string
	SealIntact          bool
	Status              PackageStatusType
	VerificationHistory []PackageVerification
	TamperEvidence      []TamperEvidence
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type PackageStatusType string

const (
	PackageSealed      PackageStatusType = "sealed"
	PackageInTransit   PackageStatusType = "in_transit"
	PackageDelivered   PackageStatusType = "delivered"
	PackageCompromised PackageStatusType = "compromised"
)

func (s PackageStatusType) String() string {
	return string(s)
}

type PackageEntryStatusType string

const (
	PackageEntryIntact      PackageEntryStatusType = "intact"
	PackageEntrySuspicious  PackageEntryStatusType = "suspicious"
	PackageEntryCompromised PackageEntryStatusType = "compromised"
)

func (s PackageEntryStatusType) String() string {
	return string(s)
}

type PackageVerification struct {
	Timestamp  time.Time              `json:"timestamp"`
	Location   *Coordinate            `json:"location,omitempty"`
	VerifiedBy string                 `json:"verifiedBy,omitempty"`
	Status     PackageEntryStatusType `json:"status"`
	Notes      string                 `json:"notes,omitempty"`
}

type TamperEvidence struct {
	Timestamp   time.Time   `json:"timestamp"`
	Location    *Coordinate `json:"location,omitempty"`
	ReportedBy  string      `json:"reportedBy,omitempty"`
	Description string      `json:"description"`
	Evidence    []string    `json:"evidence,omitempty"`
}

type PackageModify struct {
	SealIntact          *bool
	Status              *PackageStatusType
	VerificationHistory *[]PackageVerification
	TamperEvidence      *[]TamperEvidence
}

// PackageScan описывает предъявление упаковки на контрольной точке или складе.
type PackageScan struct {
	PackageID string
	Intact    bool
	Notes     string
}

type PackageScanResult struct {
	PackageID string
	Found     bool
	Verified  bool
	Status    PackageStatusType
}
