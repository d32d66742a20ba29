package maps

import "service/internal/entities"

// Пороги отношения оценки с трафиком к базовой.
const (
	heavyTrafficRatio    = 1.5
	moderateTrafficRatio = 1.2
)

func toDomain(route *routeDTO) *entities.RouteInfo {
	if route == nil {
		return nil
	}

	path := make([]entities.Coordinate, 0, len(route.Geometry.Coordinates))
	for _, pair := range route.Geometry.Coordinates {
		if len(pair) < 2 {
			continue
		}
		path = append(path, entities.Coordinate{Lat: pair[1], Lng: pair[0]})
	}

	return &entities.RouteInfo{
		Path:                     path,
		DistanceMeters:           route.DistanceMeters,
		DurationSeconds:          route.DurationSeconds,
		DurationInTrafficSeconds: route.DurationInTrafficSeconds,
		TrafficConditions:        trafficLevel(route.DurationSeconds, route.DurationInTrafficSeconds),
	}
}

func trafficLevel(duration, durationInTraffic int64) entities.TrafficLevelType {
	if duration <= 0 || durationInTraffic <= 0 {
		return entities.TrafficUnknown
	}

	ratio := float64(durationInTraffic) / float64(duration)
	switch {
	case ratio > heavyTrafficRatio:
		return entities.TrafficHeavy
	case ratio > moderateTrafficRatio:
		return entities.TrafficModerate
	default:
		return entities.TrafficLight
	}
}
