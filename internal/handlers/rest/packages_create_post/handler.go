package packages_create_post

import (
	"encoding/json"
	"errors"
	"net/http"

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
	role := r.Header.Get("X-User-Role")
	if role == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	if !capability.Allowed(role, capability.PackageCreate) {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	var req packagesCreateRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	packages, err := h.service.CreateForShipment(r.Context(), req.ShipmentID, req.BatchNumber, req.StockIDs)
	if err != nil {
		switch {
		case errors.Is(err, packaging.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, packaging.ErrPackageExists):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	packageDTOs := make([]packageDTO, 0, len(packages))
	for _, pkg := range packages {
		packageDTOs = append(packageDTOs, packageDTO{
			PackageID: pkg.PackageID,
			StockID:   pkg.StockID,
			QRPayload: pkg.QRPayload,
			Barcode:   pkg.Barcode,
			Status:    pkg.Status.String(),
		})
	}

	response := packagesCreateResponse{
		ShipmentID: req.ShipmentID,
		Packages:   packageDTOs,
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
