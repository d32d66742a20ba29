package maps

// Формат ответа провайдера направлений. Координаты приходят парами
// [lng, lat], порядок обратный внутреннему.
type directionsResponse struct {
	Routes []routeDTO `json:"routes"`
}

type routeDTO struct {
	Geometry                 geometryDTO `json:"geometry"`
	DistanceMeters           float64     `json:"distanceMeters"`
	DurationSeconds          int64       `json:"durationSeconds"`
	DurationInTrafficSeconds int64       `json:"durationInTrafficSeconds"`
}

type geometryDTO struct {
	Coordinates [][]float64 `json:"coordinates"`
}
