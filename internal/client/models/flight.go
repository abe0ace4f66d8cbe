package models

// Flight mirrors the backend's flight resource. It is read-only on the
// client; booking only produces a confirmation message.
type Flight struct {
	ID          string  `json:"id"`
	Destination string  `json:"destination"`
	Departure   string  `json:"departure"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Seat        string  `json:"seat"`
	Price       float64 `json:"price"`
}
