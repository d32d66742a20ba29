// Package anomaly распознаёт аномалии движения по окну последних позиций:
// незапланированные остановки, уход с маршрута и аномальную скорость.
package anomaly

import (
	"math"
	"time"

	"service/internal/entities"
	"service/internal/pkg/geo"
)

const (
	defaultStopRadiusKm       = 0.05
	defaultStopDuration       = 30 * time.Minute
	defaultDeviationKm        = 2.0
	defaultSpeedLimitKmh      = 100.0
	defaultSpeedSigmaMultiple = 3.0
)

type Detector struct {
	stopRadiusKm       float64
	stopDuration       time.Duration
	deviationKm        float64
	speedLimitKmh      float64
	speedSigmaMultiple float64
}

func New() *Detector {
	return &Detector{
		stopRadiusKm:       defaultStopRadiusKm,
		stopDuration:       defaultStopDuration,
		deviationKm:        defaultDeviationKm,
		speedLimitKmh:      defaultSpeedLimitKmh,
		speedSigmaMultiple: defaultSpeedSigmaMultiple,
	}
}

// Detect прогоняет все эвристики по окну позиций. Функция чистая:
// одно и то же окно всегда даёт один и тот же результат.
// Окно короче двух позиций аномалий не содержит.
func (d *Detector) Detect(window []entities.PositionReport, path []entities.Coordinate) []entities.AnomalyFinding {
	if len(window) < 2 {
		return nil
	}

	var findings []entities.AnomalyFinding

	if f, ok := d.detectStop(window); ok {
		findings = append(findings, f)
	}
	if f, ok := d.detectDeviation(window, path); ok {
		findings = append(findings, f)
	}
	if f, ok := d.detectSpeed(window); ok {
		findings = append(findings, f)
	}

	return findings
}

// detectStop ищет самую длинную непрерывную серию позиций, попарно лежащих
// ближе stopRadiusKm друг к другу.
func (d *Detector) detectStop(window []entities.PositionReport) (entities.AnomalyFinding, bool) {
	var longest time.Duration
	var stopStart *time.Time

	for i := 1; i < len(window); i++ {
		prev, cur := window[i-1], window[i]

		if geo.Distance(prev.Location, cur.Location) < d.stopRadiusKm {
			if stopStart == nil {
				ts := prev.Timestamp
				stopStart = &ts
			}
			if stopped := cur.Timestamp.Sub(*stopStart); stopped > longest {
				longest = stopped
			}
		} else {
			stopStart = nil
		}
	}

	if longest <= d.stopDuration {
		return entities.AnomalyFinding{}, false
	}

	return entities.AnomalyFinding{
		Type:       entities.AnomalyUnexpectedStop,
		Location:   window[len(window)-1].Location,
		StoppedFor: longest,
	}, true
}

// detectDeviation берёт максимум по окну от минимального расстояния до маршрута.
func (d *Detector) detectDeviation(window []entities.PositionReport, path []entities.Coordinate) (entities.AnomalyFinding, bool) {
	if len(path) == 0 {
		return entities.AnomalyFinding{}, false
	}

	var maxDeviation float64
	for _, report := range window {
		if dev := geo.MinDistanceToPath(report.Location, path); dev > maxDeviation {
			maxDeviation = dev
		}
	}

	if maxDeviation <= d.deviationKm {
		return entities.AnomalyFinding{}, false
	}

	return entities.AnomalyFinding{
		Type:        entities.AnomalyRouteDeviation,
		Location:    window[len(window)-1].Location,
		DeviationKm: maxDeviation,
	}, true
}

// detectSpeed считает попарные скорости и сравнивает максимум одновременно
// с абсолютным порогом и с mean + k*sigma по окну.
func (d *Detector) detectSpeed(window []entities.PositionReport) (entities.AnomalyFinding, bool) {
	var speeds []float64
	var locations []entities.Coordinate

	for i := 1; i < len(window); i++ {
		prev, cur := window[i-1], window[i]

		hours := cur.Timestamp.Sub(prev.Timestamp).Hours()
		if hours <= 0 {
			continue
		}

		speeds = append(speeds, geo.Distance(prev.Location, cur.Location)/hours)
		locations = append(locations, cur.Location)
	}

	if len(speeds) == 0 {
		return entities.AnomalyFinding{}, false
	}

	var sum float64
	for _, s := range speeds {
		sum += s
	}
	mean := sum / float64(len(speeds))

	var variance float64
	for _, s := range speeds {
		variance += (s - mean) * (s - mean)
	}
	sigma := math.Sqrt(variance / float64(len(speeds)))

	maxSpeed, maxIdx := speeds[0], 0
	for i, s := range speeds {
		if s > maxSpeed {
			maxSpeed, maxIdx = s, i
		}
	}

	if maxSpeed <= d.speedLimitKmh || maxSpeed <= mean+d.speedSigmaMultiple*sigma {
		return entities.AnomalyFinding{}, false
	}

	return entities.AnomalyFinding{
		Type:         entities.AnomalyUnusualSpeed,
		Location:     locations[maxIdx],
		SpeedKmh:     maxSpeed,
		MeanSpeedKmh: mean,
	}, true
}
