package response_models

// ItineraryPlan mirrors the JSON structure the model is instructed to return.
// The pipeline hands the decoded object back to the caller verbatim; this
// typed form exists for schema validation and for tests.
type ItineraryPlan struct {
	TripName            string         `json:"trip_name"`
	Destination         string         `json:"destination"`
	DurationDays        int            `json:"duration_days"`
	TripStyle           string         `json:"trip_style"`
	Pace                string         `json:"pace"`
	TravelerPreferences []string       `json:"traveler_preferences"`
	Itinerary           []DayPlan      `json:"itinerary"`
	EstimatedCosts      EstimatedCosts `json:"estimated_costs"`
	TravelTips          []string       `json:"travel_tips"`
}

type DayPlan struct {
	Day        int        `json:"day"`
	Activities []Activity `json:"activities"`
}

type Activity struct {
	ID          *int     `json:"id,omitempty"`
	Time        string   `json:"time"`
	TimeWindow  string   `json:"time_window"`
	Place       string   `json:"place"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	Notes       string   `json:"notes,omitempty"`
	PlaceLabel  string   `json:"place_label,omitempty"`
	ParentLabel string   `json:"parent_label,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
}

type EstimatedCosts struct {
	Currency       string `json:"currency"`
	Accommodation  string `json:"accommodation"`
	Meals          string `json:"meals"`
	Transportation string `json:"transportation"`
	Activities     string `json:"activities"`
	TotalEstimate  string `json:"total_estimate"`
}
