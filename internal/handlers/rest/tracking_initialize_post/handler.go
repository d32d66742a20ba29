package tracking_initialize_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"service/internal/entities"
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
	if !capability.Allowed(role, capability.TrackingInitialize) {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	var req trackingInitRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	trackingEntity, err := h.service.Initialize(r.Context(), entities.TrackingInit{
		ShipmentID:     req.ShipmentID,
		VehicleID:      req.VehicleID,
		DriverID:       req.DriverID,
		Origin:         req.Origin,
		Destination:    req.Destination,
		Waypoints:      req.Waypoints,
		NumCheckpoints: req.NumCheckpoints,
	})
	if err != nil {
		switch {
		case errors.Is(err, tracking.ErrMissingRequiredFields),
			errors.Is(err, tracking.ErrInvalidCoordinates):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, tracking.ErrTrackingExists):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, tracking.ErrRouteProvider):
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	checkpoints := make([]checkpointDTO, 0, len(trackingEntity.Checkpoints))
	for _, cp := range trackingEntity.Checkpoints {
		checkpoints = append(checkpoints, checkpointDTO{
			ID:       cp.ID,
			Name:     cp.Name,
			Location: cp.Location,
			Code:     cp.Code,
			Status:   cp.Status.String(),
		})
	}

	response := trackingInitResponse{
		ID:                     trackingEntity.ID,
		ShipmentID:             trackingEntity.ShipmentID,
		Status:                 trackingEntity.Status.String(),
		SecurityToken:          trackingEntity.SecurityToken,
		DeliveryOTC:            trackingEntity.DeliveryOTC,
		PlannedRoute:           trackingEntity.PlannedRoute,
		RouteDistanceMeters:    trackingEntity.RouteDistanceMeters,
		PlannedDurationSeconds: int64(trackingEntity.PlannedDuration.Seconds()),
		Checkpoints:            checkpoints,
		ExpectedDeliveryAt:     trackingEntity.ExpectedDeliveryAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
