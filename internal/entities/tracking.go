package entities

import "time"

type Tracking struct {
	ID                   int64
	ShipmentID           string
	VehicleID            string
	DriverID             string
	StartLocation        Coordinate
	EndLocation          Coordinate
	CurrentLocation      Coordinate
	LocationUpdatedAt    time.Time
	PlannedRoute         []Coordinate
	RouteDistanceMeters  float64
	PlannedDuration      time.Duration
	Checkpoints          []Checkpoint
	LastCheckpointPassed int
	Status               TrackingStatusType
	SecurityToken        string
	DeliveryOTC          string
	OTCVerified          bool
	ExpectedDeliveryAt   *time.Time
	ActualDeliveryAt     *time.Time
	AnomalyDetected      bool
	AnomalyDetails       string
	TamperAttempts       []TamperAttempt
	Version              int64
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type TrackingStatusType string

const (
	TrackingPreparing  TrackingStatusType = "preparing"
	TrackingInTransit  TrackingStatusType = "in_transit"
	TrackingDelayed    TrackingStatusType = "delayed"
	TrackingSuspicious TrackingStatusType = "suspicious_activity"
	TrackingCompleted  TrackingStatusType = "completed"
	TrackingCancelled  TrackingStatusType = "cancelled"
)

func (s TrackingStatusType) String() string {
	return string(s)
}

// IsTerminal сообщает, что запись закрыта и больше не изменяется.
func (s TrackingStatusType) IsTerminal() bool {
	return s == TrackingCompleted || s == TrackingCancelled
}

type Checkpoint struct {
	ID               string               `json:"id"`
	Name             string               `json:"name"`
	Location         Coordinate           `json:"location"`
	GeofenceRadiusKm float64              `json:"geofenceRadiusKm"`
	Code             string               `json:"code"`
	Status           CheckpointStatusType `json:"status"`
	VerifiedBy       string               `json:"verifiedBy,omitempty"`
	VerifiedAt       *time.Time           `json:"verifiedAt,omitempty"`
}

type CheckpointStatusType string

const (
	CheckpointPending  CheckpointStatusType = "pending"
	CheckpointVerified CheckpointStatusType = "verified"
	CheckpointMissed   CheckpointStatusType = "missed"
)

func (s CheckpointStatusType) String() string {
	return string(s)
}

type TamperAttempt struct {
	Timestamp   time.Time   `json:"timestamp"`
	Description string      `json:"description"`
	Location    *Coordinate `json:"location,omitempty"`
	ReportedBy  string      `json:"reportedBy,omitempty"`
}

type TrackingModify struct {
	ShipmentID           *string
	VehicleID            *string
	DriverID             *string
	StartLocation        *Coordinate
	EndLocation          *Coordinate
	CurrentLocation      *Coordinate
	LocationUpdatedAt    *time.Time
	PlannedRoute         *[]Coordinate
	RouteDistanceMeters  *float64
	PlannedDuration      *time.Duration
	Checkpoints          *[]Checkpoint
	LastCheckpointPassed *int
	Status               *TrackingStatusType
	SecurityToken        *string
	DeliveryOTC          *string
	OTCVerified          *bool
	ExpectedDeliveryAt   *time.Time
	ActualDeliveryAt     *time.Time
	AnomalyDetected      *bool
	AnomalyDetails       *string
	TamperAttempts       *[]TamperAttempt
}

// TrackingInit описывает запрос на постановку отгрузки на сопровождение.
type TrackingInit struct {
	ShipmentID     string
	VehicleID      string
	DriverID       string
	Origin         Coordinate
	Destination    Coordinate
	Waypoints      []Coordinate
	NumCheckpoints int
}

type LocationUpdate struct {
	Tracking              *Tracking
	Findings              []AnomalyFinding
	ApproachingCheckpoint *Checkpoint
}

type CheckpointVerification struct {
	Tracking       *Tracking
	Checkpoint     *Checkpoint
	NextCheckpoint *Checkpoint
	PackageResults []PackageScanResult
}

type TrackingSnapshot struct {
	Tracking        *Tracking
	Packages        []Package
	ProgressPercent float64
}

// TamperReport указывает либо на запись сопровождения, либо на конкретную упаковку.
type TamperReport struct {
	TrackingID  int64
	PackageID   string
	Description string
	Evidence    []string
	Location    *Coordinate
	Actor       Actor
}

type TamperReportResult struct {
	Tracking *Tracking
	Package  *Package
}
