package favorites

import "time"

// Favorite is a guidance result the user chose to keep on this device.
type Favorite struct {
	ID          int64     `json:"id"`
	Book        string    `json:"book"`
	Problem     string    `json:"problem"`
	Verse       string    `json:"verse"`
	Explanation string    `json:"explanation"`
	SavedAt     time.Time `json:"savedAt"`
}
