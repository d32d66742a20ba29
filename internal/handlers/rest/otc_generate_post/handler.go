package otc_generate_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"service/internal/pkg/capability"
	"service/internal/service/tracking"
	"service/internal/service/verification"
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
	if !capability.Allowed(role, capability.OTCGenerate) {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	shipmentID := mux.Vars(r)["shipmentId"]

	verificationEntity, err := h.service.Generate(r.Context(), shipmentID)
	if err != nil {
		switch {
		case errors.Is(err, verification.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, tracking.ErrTrackingNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := otcGenerateResponse{
		ShipmentID:  verificationEntity.ShipmentID,
		Code:        verificationEntity.Code,
		GeneratedAt: verificationEntity.GeneratedAt,
		ExpiresAt:   verificationEntity.ExpiresAt,
		MaxAttempts: verificationEntity.MaxAttempts,
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
