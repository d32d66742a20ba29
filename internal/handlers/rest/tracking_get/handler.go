package tracking_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"service/internal/pkg/capability"
	"service/internal/service/tracking"
	"service/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	role := r.Header.Get("X-User-Role")
	if role == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	if !capability.Allowed(role, capability.TrackingView) {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	idStr := mux.Vars(r)["id"]
	trackingID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	snapshot, err := h.service.GetSnapshot(r.Context(), trackingID)
	if err != nil {
		switch {
		case errors.Is(err, tracking.ErrTrackingNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, tracking.ErrInvalidTrackingID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	trackingEntity := snapshot.Tracking
	checkpoints := make([]checkpointViewDTO, 0, len(trackingEntity.Checkpoints))
	for _, cp := range trackingEntity.Checkpoints {
		checkpoints = append(checkpoints, checkpointViewDTO{
			ID:         cp.ID,
			Name:       cp.Name,
			Location:   cp.Location,
			Status:     cp.Status.String(),
			VerifiedBy: cp.VerifiedBy,
			VerifiedAt: cp.VerifiedAt,
		})
	}

	packages := make([]packageViewDTO, 0, len(snapshot.Packages))
	for _, pkg := range snapshot.Packages {
		packages = append(packages, packageViewDTO{
			PackageID:  pkg.PackageID,
			Status:     pkg.Status.String(),
			SealIntact: pkg.SealIntact,
		})
	}

	response := trackingSnapshotResponse{
		ID:                   trackingEntity.ID,
		ShipmentID:           trackingEntity.ShipmentID,
		VehicleID:            trackingEntity.VehicleID,
		DriverID:             trackingEntity.DriverID,
		Status:               trackingEntity.Status.String(),
		CurrentLocation:      trackingEntity.CurrentLocation,
		LocationUpdatedAt:    trackingEntity.LocationUpdatedAt,
		PlannedRoute:         trackingEntity.PlannedRoute,
		Checkpoints:          checkpoints,
		LastCheckpointPassed: trackingEntity.LastCheckpointPassed,
		ProgressPercent:      snapshot.ProgressPercent,
		AnomalyDetected:      trackingEntity.AnomalyDetected,
		AnomalyDetails:       trackingEntity.AnomalyDetails,
		ExpectedDeliveryAt:   trackingEntity.ExpectedDeliveryAt,
		ActualDeliveryAt:     trackingEntity.ActualDeliveryAt,
		Packages:             packages,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
