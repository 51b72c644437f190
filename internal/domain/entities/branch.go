package entities

// Branch is a physical hotel location.
type Branch struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	City string `json:"city"`
}
