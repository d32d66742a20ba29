package package_scan_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"service/internal/entities"
	"service/internal/pkg/capability"
	"service/internal/service/packaging"
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
	if !capability.Allowed(actor.Role, capability.PackageScan) {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	var req packageScanRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	entryStatus := entities.PackageEntryStatusType(req.Status)
	if req.Status == "" {
		entryStatus = entities.PackageEntryIntact
	}

	packageEntity, err := h.service.Scan(r.Context(), req.Code, entities.PackageVerification{
		Timestamp:  time.Now(),
		Location:   req.Location,
		VerifiedBy: actor.UserID,
		Status:     entryStatus,
		Notes:      req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, packaging.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, packaging.ErrPackageNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := packageScanResponse{
		PackageID:  packageEntity.PackageID,
		ShipmentID: packageEntity.ShipmentID,
		Status:     packageEntity.Status.String(),
		SealIntact: packageEntity.SealIntact,
		ScansTotal: len(packageEntity.VerificationHistory),
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
