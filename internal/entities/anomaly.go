package entities

import "time"

type AnomalyType string

const (
	AnomalyUnexpectedStop AnomalyType = "unexpected_stop"
	AnomalyRouteDeviation AnomalyType = "route_deviation"
	AnomalyUnusualSpeed   AnomalyType = "unusual_speed"
)

func (t AnomalyType) String() string {
	return string(t)
}

type AnomalyFinding struct {
	Type         AnomalyType
	Location     Coordinate
	StoppedFor   time.Duration
	DeviationKm  float64
	SpeedKmh     float64
	MeanSpeedKmh float64
}
