package tracking

import (
	"strings"

	"service/internal/entities"
)

func isValidShipmentID(shipmentID string) bool {
	return strings.TrimSpace(shipmentID) != ""
}

func isValidCoordinate(c entities.Coordinate) bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}
