package tracking

import "time"

type TrackingDB struct {
	ID                     int64
	ShipmentID             string
	VehicleID              string
	DriverID               string
	StartLat               float64
	StartLng               float64
	EndLat                 float64
	EndLng                 float64
	CurrentLat             float64
	CurrentLng             float64
	LocationUpdatedAt      time.Time
	PlannedRoute           []byte
	RouteDistanceMeters    float64
	PlannedDurationSeconds int64
	Checkpoints            []byte
	LastCheckpointPassed   int
	Status                 string
	SecurityToken          string
	DeliveryOTC            string
	OTCVerified            bool
	ExpectedDeliveryAt     *time.Time
	ActualDeliveryAt       *time.Time
	AnomalyDetected        bool
	AnomalyDetails         string
	TamperAttempts         []byte
	Version                int64
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

type TrackingModifyDB struct {
	ShipmentID             *string
	VehicleID              *string
	DriverID               *string
	StartLat               *float64
	StartLng               *float64
	EndLat                 *float64
	EndLng                 *float64
	CurrentLat             *float64
	CurrentLng             *float64
	LocationUpdatedAt      *time.Time
	PlannedRoute           []byte
	RouteDistanceMeters    *float64
	PlannedDurationSeconds *int64
	Checkpoints            []byte
	LastCheckpointPassed   *int
	Status                 *string
	SecurityToken          *string
	DeliveryOTC            *string
	OTCVerified            *bool
	ExpectedDeliveryAt     *time.Time
	ActualDeliveryAt       *time.Time
	AnomalyDetected        *bool
	AnomalyDetails         *string
	TamperAttempts         []byte
}
