package request_models

type TripRequest struct {
	Destination         string   `json:"destination" binding:"required"`
	DurationDays        int      `json:"duration_days" binding:"required,gt=0"`
	TravelerPreferences []string `json:"traveler_preferences" binding:"required"`
	TripStyle           string   `json:"trip_style"`
	Pace                string   `json:"pace"`
}

// ApplyDefaults fills the optional fields the way the API contract documents
// them. The request is treated as immutable afterwards.
func (r *TripRequest) ApplyDefaults() {
	if r.TripStyle == "" {
		r.TripStyle = "luxury"
	}
	if r.Pace == "" {
		r.Pace = "moderate"
	}
}
