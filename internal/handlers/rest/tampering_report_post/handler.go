package tampering_report_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"service/internal/entities"
	"service/internal/pkg/capability"
	"service/internal/service/packaging"
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
	actor := entities.Actor{
		UserID: r.Header.Get("X-User-Id"),
		Role:   r.Header.Get("X-User-Role"),
	}
	if actor.Role == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	if !capability.Allowed(actor.Role, capability.TamperReport) {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	var req tamperReportRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := h.service.ReportTamper(r.Context(), entities.TamperReport{
		TrackingID:  req.TrackingID,
		PackageID:   req.PackageID,
		Description: req.Description,
		Evidence:    req.Evidence,
		Location:    req.Location,
		Actor:       actor,
	})
	if err != nil {
		switch {
		case errors.Is(err, tracking.ErrMissingRequiredFields),
			errors.Is(err, tracking.ErrInvalidTrackingID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, tracking.ErrTrackingNotFound),
			errors.Is(err, packaging.ErrPackageNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, tracking.ErrTrackingClosed),
			errors.Is(err, tracking.ErrConcurrentUpdate):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	var response tamperReportResponse
	if result.Tracking != nil {
		response.TrackingStatus = result.Tracking.Status.String()
	}
	if result.Package != nil {
		response.PackageID = result.Package.PackageID
		response.PackageStatus = result.Package.Status.String()
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
