package location_update_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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
	idStr := mux.Vars(r)["id"]
	trackingID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var req locationUpdateRequest
	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	update, err := h.service.UpdateLocation(r.Context(), trackingID, req.Token, req.Location)
	if err != nil {
		switch {
		case errors.Is(err, tracking.ErrInvalidSecurityToken):
			w.WriteHeader(http.StatusUnauthorized)
		case errors.Is(err, tracking.ErrTrackingNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, tracking.ErrInvalidTrackingID),
			errors.Is(err, tracking.ErrInvalidCoordinates),
			errors.Is(err, tracking.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, tracking.ErrTrackingClosed),
			errors.Is(err, tracking.ErrConcurrentUpdate):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	findings := make([]anomalyFindingDTO, 0, len(update.Findings))
	for _, finding := range update.Findings {
		findings = append(findings, anomalyFindingDTO{
			Type:           finding.Type.String(),
			StoppedForSecs: int64(finding.StoppedFor.Seconds()),
			DeviationKm:    finding.DeviationKm,
			SpeedKmh:       finding.SpeedKmh,
			MeanSpeedKmh:   finding.MeanSpeedKmh,
		})
	}

	response := locationUpdateResponse{
		Status:          update.Tracking.Status.String(),
		AnomalyDetected: update.Tracking.AnomalyDetected,
		Findings:        findings,
	}
	if update.ApproachingCheckpoint != nil {
		response.ApproachingCheckpoint = &approachingCheckpointDTO{
			ID:       update.ApproachingCheckpoint.ID,
			Name:     update.ApproachingCheckpoint.Name,
			Location: update.ApproachingCheckpoint.Location,
		}
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
