package entities

import "time"

type RouteInfo struct {
	Path                     []Coordinate
	DistanceMeters           float64
	DurationSeconds          int64
	DurationInTrafficSeconds int64
	TrafficConditions        TrafficLevelType
}

// EffectiveDuration предпочитает оценку с учётом трафика, когда провайдер её вернул.
func (r RouteInfo) EffectiveDuration() time.Duration {
	seconds := r.DurationSeconds
	if r.DurationInTrafficSeconds > 0 {
		seconds = r.DurationInTrafficSeconds
	}
	return time.Duration(seconds) * time.Second
}

type TrafficLevelType string

const (
	TrafficLight    TrafficLevelType = "light"
	TrafficModerate TrafficLevelType = "moderate"
	TrafficHeavy    TrafficLevelType = "heavy"
	TrafficUnknown  TrafficLevelType = "unknown"
)

func (t TrafficLevelType) String() string {
	return string(t)
}
