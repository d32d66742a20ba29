package otc_verify_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"service/internal/entities"
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
	actor := entities.Actor{
		UserID: r.Header.Get("X-User-Id"),
		Role:   r.Header.Get("X-User-Role"),
	}
	if actor.Role == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	if !capability.Allowed(actor.Role, capability.OTCVerify) {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	shipmentID := mux.Vars(r)["shipmentId"]

	var req otcVerifyRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	trackingEntity, err := h.service.CompleteDelivery(r.Context(), shipmentID, req.Code, actor)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response := otcVerifyResponse{
		ShipmentID:       trackingEntity.ShipmentID,
		Status:           trackingEntity.Status.String(),
		ActualDeliveryAt: trackingEntity.ActualDeliveryAt,
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

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var invalidOTC *verification.InvalidOTCError

	switch {
	case errors.As(err, &invalidOTC):
		h.writeErrorBody(w, http.StatusUnauthorized, otcVerifyError{
			Error:        "invalid_otc",
			AttemptsLeft: &invalidOTC.AttemptsLeft,
		})
	case errors.Is(err, verification.ErrOTCExpired):
		h.writeErrorBody(w, http.StatusBadRequest, otcVerifyError{Error: "otc_expired"})
	case errors.Is(err, verification.ErrOTCAttemptsExceeded):
		h.writeErrorBody(w, http.StatusBadRequest, otcVerifyError{Error: "otc_attempts_exceeded"})
	case errors.Is(err, verification.ErrVerificationNotFound),
		errors.Is(err, tracking.ErrTrackingNotFound):
		w.WriteHeader(http.StatusNotFound)
	case errors.Is(err, tracking.ErrTrackingClosed),
		errors.Is(err, verification.ErrVerificationClosed),
		errors.Is(err, tracking.ErrConcurrentUpdate):
		w.WriteHeader(http.StatusConflict)
	case errors.Is(err, tracking.ErrMissingRequiredFields),
		errors.Is(err, verification.ErrMissingRequiredFields):
		w.WriteHeader(http.StatusBadRequest)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (h *Handler) writeErrorBody(w http.ResponseWriter, status int, body otcVerifyError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
