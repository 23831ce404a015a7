package domain

// Snapshot is the inventory as of a simulated day
type Snapshot struct {
	Day   int    `json:"day"`
	Items []Item `json:"items"`
}
