package tracking

import (
	"encoding/json"
	"fmt"
	"time"

	"service/internal/entities"
)

func ToDomain(t *TrackingDB) (*entities.Tracking, error) {
	if t == nil {
		return nil, nil
	}

	var plannedRoute []entities.Coordinate
	if len(t.PlannedRoute) > 0 {
		if err := json.Unmarshal(t.PlannedRoute, &plannedRoute); err != nil {
			return nil, fmt.Errorf("unmarshal planned route: %w", err)
		}
	}

	var checkpoints []entities.Checkpoint
	if len(t.Checkpoints) > 0 {
		if err := json.Unmarshal(t.Checkpoints, &checkpoints); err != nil {
			return nil, fmt.Errorf("unmarshal checkpoints: %w", err)
		}
	}

	var tamperAttempts []entities.TamperAttempt
	if len(t.TamperAttempts) > 0 {
		if err := json.Unmarshal(t.TamperAttempts, &tamperAttempts); err != nil {
			return nil, fmt.Errorf("unmarshal tamper attempts: %w", err)
		}
	}

	return &entities.Tracking{
		ID:                   t.ID,
		ShipmentID:           t.ShipmentID,
		VehicleID:            t.VehicleID,
		DriverID:             t.DriverID,
		StartLocation:        entities.Coordinate{Lat: t.StartLat, Lng: t.StartLng},
		EndLocation:          entities.Coordinate{Lat: t.EndLat, Lng: t.EndLng},
		CurrentLocation:      entities.Coordinate{Lat: t.CurrentLat, Lng: t.CurrentLng},
		LocationUpdatedAt:    t.LocationUpdatedAt,
		PlannedRoute:         plannedRoute,
		RouteDistanceMeters:  t.RouteDistanceMeters,
		PlannedDuration:      time.Duration(t.PlannedDurationSeconds) * time.Second,
		Checkpoints:          checkpoints,
		LastCheckpointPassed: t.LastCheckpointPassed,
		Status:               entities.TrackingStatusType(t.Status),
		SecurityToken:        t.SecurityToken,
		DeliveryOTC:          t.DeliveryOTC,
		OTCVerified:          t.OTCVerified,
		ExpectedDeliveryAt:   t.ExpectedDeliveryAt,
		ActualDeliveryAt:     t.ActualDeliveryAt,
		AnomalyDetected:      t.AnomalyDetected,
		AnomalyDetails:       t.AnomalyDetails,
		TamperAttempts:       tamperAttempts,
		Version:              t.Version,
		CreatedAt:            t.CreatedAt,
		UpdatedAt:            t.UpdatedAt,
	}, nil
}

func FromDomainModify(t *entities.TrackingModify) (*TrackingModifyDB, error) {
	if t == nil {
		return nil, nil
	}
	trackingModifyDB := &TrackingModifyDB{}

	if t.ShipmentID != nil {
		trackingModifyDB.ShipmentID = t.ShipmentID
	}
	if t.VehicleID != nil {
		trackingModifyDB.VehicleID = t.VehicleID
	}
	if t.DriverID != nil {
		trackingModifyDB.DriverID = t.DriverID
	}
	if t.StartLocation != nil {
		trackingModifyDB.StartLat = &t.StartLocation.Lat
		trackingModifyDB.StartLng = &t.StartLocation.Lng
	}
	if t.EndLocation != nil {
		trackingModifyDB.EndLat = &t.EndLocation.Lat
		trackingModifyDB.EndLng = &t.EndLocation.Lng
	}
	if t.CurrentLocation != nil {
		trackingModifyDB.CurrentLat = &t.CurrentLocation.Lat
		trackingModifyDB.CurrentLng = &t.CurrentLocation.Lng
	}
	if t.LocationUpdatedAt != nil {
		trackingModifyDB.LocationUpdatedAt = t.LocationUpdatedAt
	}
	if t.PlannedRoute != nil {
		plannedRoute, err := json.Marshal(*t.PlannedRoute)
		if err != nil {
			return nil, fmt.Errorf("marshal planned route: %w", err)
		}
		trackingModifyDB.PlannedRoute = plannedRoute
	}
	if t.RouteDistanceMeters != nil {
		trackingModifyDB.RouteDistanceMeters = t.RouteDistanceMeters
	}
	if t.PlannedDuration != nil {
		seconds := int64(t.PlannedDuration.Seconds())
		trackingModifyDB.PlannedDurationSeconds = &seconds
	}
	if t.Checkpoints != nil {
		checkpoints, err := json.Marshal(*t.Checkpoints)
		if err != nil {
			return nil, fmt.Errorf("marshal checkpoints: %w", err)
		}
		trackingModifyDB.Checkpoints = checkpoints
	}
	if t.LastCheckpointPassed != nil {
		trackingModifyDB.LastCheckpointPassed = t.LastCheckpointPassed
	}
	if t.Status != nil {
		status := t.Status.String()
		trackingModifyDB.Status = &status
	}
	if t.SecurityToken != nil {
		trackingModifyDB.SecurityToken = t.SecurityToken
	}
	if t.DeliveryOTC != nil {
		trackingModifyDB.DeliveryOTC = t.DeliveryOTC
	}
	if t.OTCVerified != nil {
		trackingModifyDB.OTCVerified = t.OTCVerified
	}
	if t.ExpectedDeliveryAt != nil {
		trackingModifyDB.ExpectedDeliveryAt = t.ExpectedDeliveryAt
	}
	if t.ActualDeliveryAt != nil {
		trackingModifyDB.ActualDeliveryAt = t.ActualDeliveryAt
	}
	if t.AnomalyDetected != nil {
		trackingModifyDB.AnomalyDetected = t.AnomalyDetected
	}
	if t.AnomalyDetails != nil {
		trackingModifyDB.AnomalyDetails = t.AnomalyDetails
	}
	if t.TamperAttempts != nil {
		tamperAttempts, err := json.Marshal(*t.TamperAttempts)
		if err != nil {
			return nil, fmt.Errorf("marshal tamper attempts: %w", err)
		}
		trackingModifyDB.TamperAttempts = tamperAttempts
	}

	return trackingModifyDB, nil
}
