package weather

// Snapshot holds the weather observations feeding the recommendation context.
// It is produced once per request and never mutated afterwards.
type Snapshot struct {
	Temperature float64 `json:"temperature"`
	Humidity    int     `json:"humidity"`
	UVIndex     int     `json:"uv_index"`
	Condition   string  `json:"condition"`
	Description string  `json:"description,omitempty"`
	Location    string  `json:"location,omitempty"`
	Note        string  `json:"note,omitempty"`
}
