package checkpoint_verify_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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
	actor := entities.Actor{
		UserID: r.Header.Get("X-User-Id"),
		Role:   r.Header.Get("X-User-Role"),
	}
	if actor.Role == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	if !capability.Allowed(actor.Role, capability.CheckpointVerify) {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	idStr := mux.Vars(r)["id"]
	trackingID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var req checkpointVerifyRequest
	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	scans := make([]entities.PackageScan, 0, len(req.Scans))
	for _, scan := range req.Scans {
		scans = append(scans, entities.PackageScan{
			PackageID: scan.PackageID,
			Intact:    scan.Intact,
			Notes:     scan.Notes,
		})
	}

	verification, err := h.service.VerifyCheckpoint(r.Context(), trackingID, req.CheckpointID, req.Code, actor, scans)
	if err != nil {
		switch {
		case errors.Is(err, tracking.ErrInvalidCheckpointCode):
			w.WriteHeader(http.StatusUnauthorized)
		case errors.Is(err, tracking.ErrCheckpointNotFound),
			errors.Is(err, tracking.ErrTrackingNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, tracking.ErrTrackingClosed),
			errors.Is(err, tracking.ErrConcurrentUpdate):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, tracking.ErrCheckpointAlreadyVerified),
			errors.Is(err, tracking.ErrInvalidTrackingID),
			errors.Is(err, tracking.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	results := make([]packageScanResultDTO, 0, len(verification.PackageResults))
	for _, result := range verification.PackageResults {
		results = append(results, packageScanResultDTO{
			PackageID: result.PackageID,
			Found:     result.Found,
			Verified:  result.Verified,
			Status:    result.Status.String(),
		})
	}

	response := checkpointVerifyResponse{
		TrackingStatus: verification.Tracking.Status.String(),
		Checkpoint:     toCheckpointDTO(verification.Checkpoint),
		PackageResults: results,
	}
	if verification.NextCheckpoint != nil {
		next := toCheckpointDTO(verification.NextCheckpoint)
		response.NextCheckpoint = &next
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

func toCheckpointDTO(cp *entities.Checkpoint) verifiedCheckpointDTO {
	return verifiedCheckpointDTO{
		ID:         cp.ID,
		Name:       cp.Name,
		Status:     cp.Status.String(),
		VerifiedBy: cp.VerifiedBy,
		VerifiedAt: cp.VerifiedAt,
	}
}
