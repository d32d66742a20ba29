package entities

import (
	"encoding/json"
	"fmt"
	"time"
)

// Coordinate сериализуется в JSON как пара [lat, lng].
type Coordinate struct {
	Lat float64
	Lng float64
}

func (c Coordinate) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{c.Lat, c.Lng})
}

func (c *Coordinate) UnmarshalJSON(data []byte) error {
	var pair []float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("coordinate: expected [lat, lng], got %d elements", len(pair))
	}
	c.Lat = pair[0]
	c.Lng = pair[1]
	return nil
}

type PositionReport struct {
	Location  Coordinate
	Timestamp time.Time
}
