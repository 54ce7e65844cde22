package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"itinero/internal/models/request_models"
)

// planSchema is the exact structure the model must return. It is embedded in
// every prompt and mirrored by ValidateItineraryPlan.
const planSchema = `{
  "trip_name": "string",
  "destination": "string",
  "duration_days": number,
  "trip_style": "string",
  "pace": "string",
  "traveler_preferences": ["string"],
  "itinerary": [
    {
      "day": number,
      "activities": [
        {
          "id": int (the id of the place taken from the Available Places section),
          "time": "string (e.g., 09:00-11:00)",
          "time_window": "string (morning/afternoon/evening)",
          "place": "string",
          "description": "string",
          "duration": "string",
          "notes": "string (optional)",
          "place_label": "string (the place_label of the place taken from the Available Places section)",
          "parent_label": "string (the parent_label of the place taken from the Available Places section)",
          "latitude": decimal number (the latitude of the place taken from the Available Places section),
          "longitude": decimal number (the longitude of the place taken from the Available Places section),
          "image_url": string (the image_url of the place taken from the Available Places section)
        }
      ]
    }
  ],
  "estimated_costs": {
    "currency": "string",
    "accommodation": "string",
    "meals": "string",
    "transportation": "string",
    "activities": "string",
    "total_estimate": "string"
  },
  "travel_tips": ["string"]
}`

// MinPlacesForPace returns the minimum number of distinct places an itinerary
// must visit for the given pace. Unknown pace values get the moderate rule.
func MinPlacesForPace(pace string) int {
	switch strings.ToLower(pace) {
	case "packed":
		return 7
	case "relaxed":
		return 3
	default:
		return 5
	}
}

// BuildItineraryPrompt renders the request, plus optional already-serialized
// catalog rows, into a single instruction. Identical inputs (including row
// order) produce byte-identical text: map rows are embedded through
// encoding/json, which sorts keys.
func BuildItineraryPrompt(req request_models.TripRequest, places []map[string]any) (string, error) {
	placesSection := ""
	if len(places) > 0 {
		placesJSON, err := json.MarshalIndent(places, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode catalog rows: %w", err)
		}
		placesSection = fmt.Sprintf("\n\nAvailable Places (use these JSON objects directly in the itinerary `place` field):\n%s\n", placesJSON)
	}

	var prompt strings.Builder

	prompt.WriteString("You are a professional travel planner specializing in generating machine-readable JSON itineraries.\n\n")
	prompt.WriteString(fmt.Sprintf("Create a detailed %d-day %s trip itinerary for %s with a %s pace.\n",
		req.DurationDays, req.TripStyle, req.Destination, req.Pace))
	prompt.WriteString(fmt.Sprintf("Traveler preferences: %s.%s\n\n",
		strings.Join(req.TravelerPreferences, ", "), placesSection))

	prompt.WriteString("IMPORTANT INSTRUCTIONS:\n")
	prompt.WriteString("1. Format your response as a perfect JSON object\n")
	prompt.WriteString("2. Do not include any text outside the JSON object\n")
	prompt.WriteString("3. Escape all special characters\n")
	prompt.WriteString("4. Adjust the number of activities and free time based on the selected pace:\n")
	prompt.WriteString("- For a packed pace: include more activities with minimal but realistic breaks for transportation and rest. The number of places to visit must be at least 7.\n")
	prompt.WriteString("- For a moderate pace: balance activities and free time reasonably. The number of places to visit must be at least 5.\n")
	prompt.WriteString("- For a relaxed pace: fewer activities with more room for rest and exploration. The number of places to visit must be at least 3.\n")
	prompt.WriteString("5. Always consider reasonable transportation time between places, especially for packed itineraries, to avoid unrealistic schedules.\n")
	prompt.WriteString("6. Do not return the same place more than once.\n")
	if len(places) > 0 {
		prompt.WriteString("7. For every activity, copy id, place_label, parent_label, latitude, longitude and image_url from the matching Available Places object. Do not invent these fields.\n")
		prompt.WriteString("8. Follow this exact structure:\n\n")
	} else {
		prompt.WriteString("7. Follow this exact structure:\n\n")
	}
	prompt.WriteString(planSchema)
	prompt.WriteString("\n\nExample of valid time formats:\n- \"09:00-11:00\"\n- \"14:30-16:00\"\n- \"19:00-22:00\"\n\n")
	prompt.WriteString("Example of duration formats:\n- \"2 hours\"\n- \"30 minutes\"\n- \"Full day\"\n")
	prompt.WriteString("DO NOT include any additional text or explanations outside the JSON object.")

	return prompt.String(), nil
}

// BuildCorrectionPrompt extends a prompt after a schema violation; used for
// the single re-prompt the pipeline allows.
func BuildCorrectionPrompt(prompt string, violation error) string {
	var out strings.Builder
	out.WriteString(prompt)
	out.WriteString("\n\nYour previous response was rejected: ")
	out.WriteString(violation.Error())
	out.WriteString("\nReturn the corrected JSON object only, following the structure above exactly.")
	return out.String()
}
