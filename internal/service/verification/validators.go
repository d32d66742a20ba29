package verification

import "strings"

func isValidShipmentID(shipmentID string) bool {
	return strings.TrimSpace(shipmentID) != ""
}
