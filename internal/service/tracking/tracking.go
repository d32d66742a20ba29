package tracking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AlekSi/pointer"
	"service/internal/entities"
	"service/internal/pkg/geo"
	"service/internal/service/packaging"
)

const (
	defaultNumCheckpoints = 3

	// Радиусы геозон контрольных точек в километрах.
	checkpointGeofenceKm = 0.5
	approachRadiusKm     = 0.1

	// Сканирование дальше offRouteScanKm от планового маршрута помечается suspicious.
	offRouteScanKm = 1.0

	delayThreshold = 30 * time.Minute
)

type Tracking struct {
	repository       Repository
	routePlanner     RoutePlanner
	detector         AnomalyDetector
	otcService       OTCService
	packagingService PackagingService
	codeFactory      CodeFactory
	publisher        EventPublisher
	txManager        TxManager
}

func New(
	repository Repository,
	routePlanner RoutePlanner,
	detector AnomalyDetector,
	otcService OTCService,
	packagingService PackagingService,
	codeFactory CodeFactory,
	publisher EventPublisher,
	txManager TxManager,
) *Tracking {
	return &Tracking{
		repository:       repository,
		routePlanner:     routePlanner,
		detector:         detector,
		otcService:       otcService,
		packagingService: packagingService,
		codeFactory:      codeFactory,
		publisher:        publisher,
		txManager:        txManager,
	}
}

// Initialize ставит отгрузку на сопровождение: строит маршрут у провайдера,
// размечает контрольные точки и выпускает токен безопасности и код выдачи.
func (t *Tracking) Initialize(ctx context.Context, init entities.TrackingInit) (*entities.Tracking, error) {
	if !isValidShipmentID(init.ShipmentID) {
		return nil, ErrMissingRequiredFields
	}
	if !isValidCoordinate(init.Origin) || !isValidCoordinate(init.Destination) {
		return nil, ErrInvalidCoordinates
	}

	numCheckpoints := init.NumCheckpoints
	if numCheckpoints <= 0 {
		numCheckpoints = defaultNumCheckpoints
	}

	route, err := t.routePlanner.PlanRoute(ctx, init.Origin, init.Destination, init.Waypoints)
	if err != nil {
		return nil, fmt.Errorf("plan route: %w", err)
	}

	checkpoints := t.buildCheckpoints(route.Path, numCheckpoints)
	otc := t.codeFactory.OTC()
	now := time.Now().UTC()
	expectedAt := now.Add(route.EffectiveDuration())

	var created *entities.Tracking
	err = t.txManager.Do(ctx, func(ctx context.Context) error {
		existing, err := t.repository.GetByShipmentID(ctx, init.ShipmentID)
		if err != nil && !errors.Is(err, ErrTrackingNotFound) {
			return fmt.Errorf("check existing tracking: %w", err)
		}
		if existing != nil && !existing.Status.IsTerminal() {
			return ErrTrackingExists
		}

		trackingModify := entities.TrackingModify{
			ShipmentID:           &init.ShipmentID,
			VehicleID:            &init.VehicleID,
			DriverID:             &init.DriverID,
			StartLocation:        &init.Origin,
			EndLocation:          &init.Destination,
			CurrentLocation:      &init.Origin,
			LocationUpdatedAt:    &now,
			PlannedRoute:         &route.Path,
			RouteDistanceMeters:  &route.DistanceMeters,
			PlannedDuration:      pointer.To(route.EffectiveDuration()),
			Checkpoints:          &checkpoints,
			LastCheckpointPassed: pointer.To(-1),
			Status:               pointer.To(entities.TrackingPreparing),
			SecurityToken:        pointer.To(t.codeFactory.SecurityToken()),
			DeliveryOTC:          &otc,
			ExpectedDeliveryAt:   &expectedAt,
		}

		created, err = t.repository.Create(ctx, trackingModify)
		if err != nil {
			return fmt.Errorf("create tracking: %w", err)
		}

		if err := t.otcService.Register(ctx, init.ShipmentID, otc); err != nil {
			return fmt.Errorf("register otc: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateLocation принимает отчёт о позиции. Токен безопасности обязателен:
// при несовпадении запись не меняется.
func (t *Tracking) UpdateLocation(ctx context.Context, trackingID int64, token string, location entities.Coordinate) (*entities.LocationUpdate, error) {
	if trackingID <= 0 {
		return nil, ErrInvalidTrackingID
	}
	if !isValidCoordinate(location) {
		return nil, ErrInvalidCoordinates
	}

	result := entities.LocationUpdate{}
	becameSuspicious := false
	var shipmentID string
	var details string

	err := t.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := t.repository.GetByID(ctx, trackingID)
		if err != nil {
			return fmt.Errorf("get tracking: %w", err)
		}
		if current.SecurityToken != token {
			return ErrInvalidSecurityToken
		}
		if current.Status.IsTerminal() {
			return ErrTrackingClosed
		}

		now := time.Now().UTC()
		shipmentID = current.ShipmentID

		window := []entities.PositionReport{
			{Location: current.CurrentLocation, Timestamp: current.LocationUpdatedAt},
			{Location: location, Timestamp: now},
		}
		findings := t.detector.Detect(window, current.PlannedRoute)

		trackingModify := entities.TrackingModify{
			CurrentLocation:   &location,
			LocationUpdatedAt: &now,
		}

		status := current.Status
		if len(findings) > 0 {
			details = describeFindings(findings)
			trackingModify.AnomalyDetected = pointer.To(true)
			trackingModify.AnomalyDetails = &details
			if status != entities.TrackingSuspicious {
				status = entities.TrackingSuspicious
				trackingModify.Status = &status
				becameSuspicious = true
			}
		}

		t.refreshETA(ctx, current, location, now, status, &trackingModify)

		updated, err := t.repository.Update(ctx, current.ID, current.Version, trackingModify)
		if err != nil {
			return fmt.Errorf("update tracking: %w", err)
		}

		if becameSuspicious {
			entry := entities.PackageVerification{
				Timestamp: now,
				Location:  &location,
				Status:    entities.PackageEntrySuspicious,
				Notes:     "Anomaly detected: " + details,
			}
			if err := t.packagingService.FlagSuspicious(ctx, current.ShipmentID, entry); err != nil {
				return fmt.Errorf("flag packages suspicious: %w", err)
			}
		}

		result.Tracking = updated
		result.Findings = findings
		result.ApproachingCheckpoint = approachingCheckpoint(updated.Checkpoints, location)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if becameSuspicious {
		t.publisher.PublishStatusChanged(ctx, entities.TrackingStatusEvent{
			ShipmentID:     shipmentID,
			TrackingID:     result.Tracking.ID,
			Status:         entities.TrackingSuspicious,
			AnomalyDetails: details,
			OccurredAt:     time.Now().UTC(),
		})
	}
	return &result, nil
}

// VerifyCheckpoint подтверждает прохождение контрольной точки по её коду.
// Порядок прохождения не навязывается, указатель прогресса только растёт.
func (t *Tracking) VerifyCheckpoint(
	ctx context.Context,
	trackingID int64,
	checkpointID string,
	code string,
	actor entities.Actor,
	scans []entities.PackageScan,
) (*entities.CheckpointVerification, error) {
	if trackingID <= 0 {
		return nil, ErrInvalidTrackingID
	}
	if strings.TrimSpace(checkpointID) == "" || strings.TrimSpace(code) == "" {
		return nil, ErrMissingRequiredFields
	}

	result := entities.CheckpointVerification{}
	err := t.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := t.repository.GetByID(ctx, trackingID)
		if err != nil {
			return fmt.Errorf("get tracking: %w", err)
		}
		if current.Status.IsTerminal() {
			return ErrTrackingClosed
		}

		idx := checkpointIndex(current.Checkpoints, checkpointID)
		if idx < 0 {
			return ErrCheckpointNotFound
		}

		checkpoints := make([]entities.Checkpoint, len(current.Checkpoints))
		copy(checkpoints, current.Checkpoints)
		checkpoint := &checkpoints[idx]

		if checkpoint.Status == entities.CheckpointVerified {
			return ErrCheckpointAlreadyVerified
		}
		if checkpoint.Code != code {
			return ErrInvalidCheckpointCode
		}

		now := time.Now().UTC()
		checkpoint.Status = entities.CheckpointVerified
		checkpoint.VerifiedBy = actor.UserID
		checkpoint.VerifiedAt = &now

		lastPassed := current.LastCheckpointPassed
		if idx > lastPassed {
			lastPassed = idx
		}

		trackingModify := entities.TrackingModify{
			Checkpoints:          &checkpoints,
			LastCheckpointPassed: &lastPassed,
		}
		if current.Status == entities.TrackingPreparing {
			trackingModify.Status = pointer.To(entities.TrackingInTransit)
		}

		scanResults, err := t.applyScans(ctx, current, scans, actor, now)
		if err != nil {
			return err
		}

		updated, err := t.repository.Update(ctx, current.ID, current.Version, trackingModify)
		if err != nil {
			return fmt.Errorf("update tracking: %w", err)
		}

		result.Tracking = updated
		result.Checkpoint = &updated.Checkpoints[idx]
		result.NextCheckpoint = firstPending(updated.Checkpoints)
		result.PackageResults = scanResults
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// CompleteDelivery завершает сопровождение после успешной проверки кода выдачи.
// Проверка кода идёт отдельной транзакцией: счётчик неудачных попыток
// не должен откатываться вместе с переходом.
func (t *Tracking) CompleteDelivery(ctx context.Context, shipmentID string, code string, actor entities.Actor) (*entities.Tracking, error) {
	if !isValidShipmentID(shipmentID) {
		return nil, ErrMissingRequiredFields
	}

	current, err := t.repository.GetByShipmentID(ctx, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("get tracking: %w", err)
	}
	if current.Status.IsTerminal() {
		return nil, ErrTrackingClosed
	}

	if _, err := t.otcService.Verify(ctx, shipmentID, code, actor); err != nil {
		return nil, fmt.Errorf("verify otc: %w", err)
	}

	var completed *entities.Tracking
	err = t.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := t.repository.GetByShipmentID(ctx, shipmentID)
		if err != nil {
			return fmt.Errorf("get tracking: %w", err)
		}
		if current.Status.IsTerminal() {
			return ErrTrackingClosed
		}

		now := time.Now().UTC()
		trackingModify := entities.TrackingModify{
			Status:           pointer.To(entities.TrackingCompleted),
			OTCVerified:      pointer.To(true),
			ActualDeliveryAt: &now,
		}

		completed, err = t.repository.Update(ctx, current.ID, current.Version, trackingModify)
		if err != nil {
			return fmt.Errorf("update tracking: %w", err)
		}

		entry := entities.PackageVerification{
			Timestamp:  now,
			Location:   &completed.CurrentLocation,
			VerifiedBy: actor.UserID,
			Status:     entities.PackageEntryIntact,
			Notes:      "Delivered",
		}
		if err := t.packagingService.MarkDelivered(ctx, shipmentID, entry); err != nil {
			return fmt.Errorf("mark packages delivered: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	t.publisher.PublishStatusChanged(ctx, entities.TrackingStatusEvent{
		ShipmentID: shipmentID,
		TrackingID: completed.ID,
		Status:     entities.TrackingCompleted,
		OccurredAt: time.Now().UTC(),
	})
	return completed, nil
}

// Cancel закрывает сопровождение без выдачи.
func (t *Tracking) Cancel(ctx context.Context, trackingID int64, reason string) (*entities.Tracking, error) {
	if trackingID <= 0 {
		return nil, ErrInvalidTrackingID
	}

	var cancelled *entities.Tracking
	err := t.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := t.repository.GetByID(ctx, trackingID)
		if err != nil {
			return fmt.Errorf("get tracking: %w", err)
		}
		if current.Status.IsTerminal() {
			return ErrTrackingClosed
		}

		cancelled, err = t.repository.Update(ctx, current.ID, current.Version, entities.TrackingModify{
			Status: pointer.To(entities.TrackingCancelled),
		})
		if err != nil {
			return fmt.Errorf("update tracking: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	t.publisher.PublishStatusChanged(ctx, entities.TrackingStatusEvent{
		ShipmentID: cancelled.ShipmentID,
		TrackingID: cancelled.ID,
		Status:     entities.TrackingCancelled,
		Reason:     reason,
		OccurredAt: time.Now().UTC(),
	})
	return cancelled, nil
}

// ReportTamper фиксирует попытку вскрытия по записи сопровождения или по упаковке.
func (t *Tracking) ReportTamper(ctx context.Context, report entities.TamperReport) (*entities.TamperReportResult, error) {
	if strings.TrimSpace(report.Description) == "" {
		return nil, ErrMissingRequiredFields
	}
	if report.PackageID != "" {
		return t.reportPackageTamper(ctx, report)
	}
	if report.TrackingID <= 0 {
		return nil, ErrInvalidTrackingID
	}

	result := entities.TamperReportResult{}
	var details string
	err := t.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := t.repository.GetByID(ctx, report.TrackingID)
		if err != nil {
			return fmt.Errorf("get tracking: %w", err)
		}
		if current.Status.IsTerminal() {
			return ErrTrackingClosed
		}

		now := time.Now().UTC()
		attempts := append([]entities.TamperAttempt{}, current.TamperAttempts...)
		attempts = append(attempts, entities.TamperAttempt{
			Timestamp:   now,
			Description: report.Description,
			Location:    report.Location,
			ReportedBy:  report.Actor.UserID,
		})

		details = "Tamper attempt: " + report.Description
		trackingModify := entities.TrackingModify{
			Status:          pointer.To(entities.TrackingSuspicious),
			AnomalyDetected: pointer.To(true),
			AnomalyDetails:  &details,
			TamperAttempts:  &attempts,
		}

		result.Tracking, err = t.repository.Update(ctx, current.ID, current.Version, trackingModify)
		if err != nil {
			return fmt.Errorf("update tracking: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	t.publisher.PublishStatusChanged(ctx, entities.TrackingStatusEvent{
		ShipmentID:     result.Tracking.ShipmentID,
		TrackingID:     result.Tracking.ID,
		Status:         entities.TrackingSuspicious,
		AnomalyDetails: details,
		OccurredAt:     time.Now().UTC(),
	})
	return &result, nil
}

// GetSnapshot возвращает запись вместе с упаковками и процентом прогресса.
func (t *Tracking) GetSnapshot(ctx context.Context, trackingID int64) (*entities.TrackingSnapshot, error) {
	if trackingID <= 0 {
		return nil, ErrInvalidTrackingID
	}

	current, err := t.repository.GetByID(ctx, trackingID)
	if err != nil {
		return nil, fmt.Errorf("get tracking: %w", err)
	}

	packages, err := t.packagingService.ListByShipmentID(ctx, current.ShipmentID)
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}

	return &entities.TrackingSnapshot{
		Tracking:        current,
		Packages:        packages,
		ProgressPercent: progressPercent(current),
	}, nil
}

func (t *Tracking) reportPackageTamper(ctx context.Context, report entities.TamperReport) (*entities.TamperReportResult, error) {
	pkg, err := t.packagingService.ReportTamper(ctx, report.PackageID, entities.TamperEvidence{
		Timestamp:   time.Now().UTC(),
		Location:    report.Location,
		ReportedBy:  report.Actor.UserID,
		Description: report.Description,
		Evidence:    report.Evidence,
	})
	if err != nil {
		return nil, fmt.Errorf("report package tamper: %w", err)
	}

	result := entities.TamperReportResult{Package: pkg}
	if tracked, err := t.repository.GetByShipmentID(ctx, pkg.ShipmentID); err == nil {
		result.Tracking = tracked
		t.publisher.PublishStatusChanged(ctx, entities.TrackingStatusEvent{
			ShipmentID:     tracked.ShipmentID,
			TrackingID:     tracked.ID,
			Status:         entities.TrackingSuspicious,
			AnomalyDetails: "Tamper attempt: " + report.Description,
			OccurredAt:     time.Now().UTC(),
		})
	}
	return &result, nil
}

// refreshETA запрашивает у провайдера свежую оценку прибытия. Отказ провайдера
// не прерывает отчёт: остаётся прежняя оценка.
func (t *Tracking) refreshETA(
	ctx context.Context,
	current *entities.Tracking,
	location entities.Coordinate,
	now time.Time,
	status entities.TrackingStatusType,
	trackingModify *entities.TrackingModify,
) {
	route, err := t.routePlanner.PlanRoute(ctx, location, current.EndLocation, nil)
	if err != nil {
		return
	}

	eta := now.Add(route.EffectiveDuration())
	trackingModify.ExpectedDeliveryAt = &eta

	if status != entities.TrackingInTransit {
		return
	}

	plannedArrival := current.CreatedAt.Add(current.PlannedDuration)
	if eta.Sub(plannedArrival) > delayThreshold {
		trackingModify.Status = pointer.To(entities.TrackingDelayed)
	}
}

func (t *Tracking) applyScans(
	ctx context.Context,
	current *entities.Tracking,
	scans []entities.PackageScan,
	actor entities.Actor,
	now time.Time,
) ([]entities.PackageScanResult, error) {
	if len(scans) == 0 {
		return nil, nil
	}

	offRoute := geo.MinDistanceToPath(current.CurrentLocation, current.PlannedRoute) > offRouteScanKm

	results := make([]entities.PackageScanResult, 0, len(scans))
	for _, scan := range scans {
		entryStatus := entities.PackageEntryIntact
		switch {
		case !scan.Intact:
			entryStatus = entities.PackageEntryCompromised
		case offRoute:
			entryStatus = entities.PackageEntrySuspicious
		}

		entry := entities.PackageVerification{
			Timestamp:  now,
			Location:   &current.CurrentLocation,
			VerifiedBy: actor.UserID,
			Status:     entryStatus,
			Notes:      scan.Notes,
		}

		pkg, err := t.packagingService.RecordVerification(ctx, current.ShipmentID, scan.PackageID, entry)
		if err != nil {
			if errors.Is(err, packaging.ErrPackageNotFound) {
				results = append(results, entities.PackageScanResult{PackageID: scan.PackageID})
				continue
			}
			return nil, fmt.Errorf("verify package %s: %w", scan.PackageID, err)
		}

		results = append(results, entities.PackageScanResult{
			PackageID: scan.PackageID,
			Found:     true,
			Verified:  entryStatus == entities.PackageEntryIntact,
			Status:    pkg.Status,
		})
	}
	return results, nil
}

func (t *Tracking) buildCheckpoints(path []entities.Coordinate, n int) []entities.Checkpoint {
	locations := geo.DeriveCheckpoints(path, n)

	checkpoints := make([]entities.Checkpoint, 0, len(locations))
	for i, location := range locations {
		checkpoints = append(checkpoints, entities.Checkpoint{
			ID:               fmt.Sprintf("cp-%d", i+1),
			Name:             fmt.Sprintf("Checkpoint %d", i+1),
			Location:         location,
			GeofenceRadiusKm: checkpointGeofenceKm,
			Code:             t.codeFactory.CheckpointCode(),
			Status:           entities.CheckpointPending,
		})
	}
	return checkpoints
}

func progressPercent(tracked *entities.Tracking) float64 {
	if tracked.Status == entities.TrackingCompleted {
		return 100
	}

	if tracked.LastCheckpointPassed >= 0 && len(tracked.Checkpoints) > 0 {
		return float64(tracked.LastCheckpointPassed+1) / float64(len(tracked.Checkpoints)+1) * 100
	}

	total := geo.Distance(tracked.StartLocation, tracked.EndLocation)
	if total <= 0 {
		return 0
	}

	percent := geo.Distance(tracked.StartLocation, tracked.CurrentLocation) / total * 100
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

func describeFindings(findings []entities.AnomalyFinding) string {
	types := make([]string, 0, len(findings))
	for _, f := range findings {
		types = append(types, f.Type.String())
	}
	return strings.Join(types, ", ")
}

func checkpointIndex(checkpoints []entities.Checkpoint, checkpointID string) int {
	for i, cp := range checkpoints {
		if cp.ID == checkpointID {
			return i
		}
	}
	return -1
}

func firstPending(checkpoints []entities.Checkpoint) *entities.Checkpoint {
	for i := range checkpoints {
		if checkpoints[i].Status == entities.CheckpointPending {
			return &checkpoints[i]
		}
	}
	return nil
}

func approachingCheckpoint(checkpoints []entities.Checkpoint, location entities.Coordinate) *entities.Checkpoint {
	for i := range checkpoints {
		if checkpoints[i].Status != entities.CheckpointPending {
			continue
		}
		if geo.PointInCircle(location, checkpoints[i].Location, approachRadiusKm) {
			return &checkpoints[i]
		}
	}
	return nil
}
