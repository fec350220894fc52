package domain

// CostBreakdown is the only entity the user observes. It is always rebuilt,
// never patched.
type CostBreakdown struct {
	Treatment     float64 `json:"treatment"`
	Accommodation float64 `json:"accommodation"`
	Flight        float64 `json:"flight"`
	Nights        int     `json:"nights"`
	NightlyRate   float64 `json:"nightly_rate"`
	Total         float64 `json:"total"`
}
