package integrity_issues_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"service/internal/entities"
	"service/internal/pkg/capability"
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
	if !capability.Allowed(actor.Role, capability.IssueReport) {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	shipmentID := mux.Vars(r)["shipmentId"]

	var req integrityIssuesRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	now := time.Now()
	issues := make([]entities.IntegrityIssue, 0, len(req.Issues))
	for _, issue := range req.Issues {
		issues = append(issues, entities.IntegrityIssue{
			Description: issue.Description,
			ReportedAt:  now,
			ReportedBy:  actor.UserID,
			Evidence:    issue.Evidence,
		})
	}

	verificationEntity, err := h.service.ReportIssues(r.Context(), shipmentID, issues)
	if err != nil {
		switch {
		case errors.Is(err, verification.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, verification.ErrVerificationNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := integrityIssuesResponse{
		ShipmentID:  verificationEntity.ShipmentID,
		IssuesTotal: len(verificationEntity.Issues),
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
