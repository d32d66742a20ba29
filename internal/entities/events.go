package entities

import "time"

// TrackingStatusEvent публикуется при завершении, отмене и подозрительной активности;
// внешние сервисы отгрузок и остатков применяют каскад по нему.
type TrackingStatusEvent struct {
	ShipmentID     string             `json:"shipmentId"`
	TrackingID     int64              `json:"trackingId"`
	Status         TrackingStatusType `json:"status"`
	AnomalyDetails string             `json:"anomalyDetails,omitempty"`
	Reason         string             `json:"reason,omitempty"`
	OccurredAt     time.Time          `json:"occurredAt"`
}

// ShipmentDispatched приходит из кафки от сервиса отгрузок.
type ShipmentDispatched struct {
	ShipmentID     string       `json:"shipmentId"`
	VehicleID      string       `json:"vehicleId"`
	DriverID       string       `json:"driverId"`
	Origin         Coordinate   `json:"origin"`
	Destination    Coordinate   `json:"destination"`
	Waypoints      []Coordinate `json:"waypoints,omitempty"`
	NumCheckpoints int          `json:"numCheckpoints,omitempty"`
	DispatchedAt   time.Time    `json:"dispatchedAt"`
}
