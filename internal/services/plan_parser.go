package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"itinero/internal/models/request_models"
	"itinero/internal/models/response_models"
	"itinero/pkg/utils"
)

// ExtractJSONPayload strips an optional markdown code-fence wrapper from
// model output. A leading "```json" marker is removed together with the
// trailing fence; a bare "```" fence likewise. Remaining whitespace is
// trimmed either way.
func ExtractJSONPayload(raw string) string {
	text := strings.TrimSpace(raw)

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	}

	return strings.TrimSpace(text)
}

// ParseItineraryResponse decodes fence-stripped model output. A decode
// failure is a parse failure carrying the decoder's diagnostic: it signals
// the model violated the requested format.
func ParseItineraryResponse(raw string) (map[string]any, error) {
	payload := ExtractJSONPayload(raw)

	var plan map[string]any
	if err := json.Unmarshal([]byte(payload), &plan); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrPlanNotJSON, err)
	}
	return plan, nil
}

// ValidateItineraryPlan checks the decoded object against the schema the
// prompt demands: required fields present and correctly shaped, and the
// distinct place count meeting the pace rule. Violations are schema failures,
// recoverable by one correction re-prompt.
func ValidateItineraryPlan(plan map[string]any, req request_models.TripRequest) error {
	for _, field := range []string{"trip_name", "destination"} {
		if s, ok := plan[field].(string); !ok || strings.TrimSpace(s) == "" {
			return schemaViolation("%q must be a non-empty string", field)
		}
	}

	days, ok := plan["duration_days"].(float64)
	if !ok || days < 1 {
		return schemaViolation("\"duration_days\" must be a positive number")
	}

	itinerary, ok := plan["itinerary"].([]any)
	if !ok || len(itinerary) == 0 {
		return schemaViolation("\"itinerary\" must be a non-empty array of day plans")
	}

	distinctPlaces := map[string]struct{}{}
	for i, rawDay := range itinerary {
		day, ok := rawDay.(map[string]any)
		if !ok {
			return schemaViolation("itinerary entry %d is not an object", i+1)
		}
		if _, ok := day["day"].(float64); !ok {
			return schemaViolation("itinerary entry %d is missing its \"day\" number", i+1)
		}
		activities, ok := day["activities"].([]any)
		if !ok || len(activities) == 0 {
			return schemaViolation("itinerary entry %d has no activities", i+1)
		}
		for j, rawActivity := range activities {
			activity, ok := rawActivity.(map[string]any)
			if !ok {
				return schemaViolation("activity %d of day %d is not an object", j+1, i+1)
			}
			for _, field := range []string{"time", "place", "description"} {
				if s, ok := activity[field].(string); !ok || strings.TrimSpace(s) == "" {
					return schemaViolation("activity %d of day %d is missing %q", j+1, i+1, field)
				}
			}
			place := activity["place"].(string)
			distinctPlaces[strings.ToLower(strings.TrimSpace(place))] = struct{}{}
		}
	}

	if min := MinPlacesForPace(req.Pace); len(distinctPlaces) < min {
		return schemaViolation("a %s pace requires at least %d distinct places, got %d",
			req.Pace, min, len(distinctPlaces))
	}

	costs, ok := plan["estimated_costs"].(map[string]any)
	if !ok {
		return schemaViolation("\"estimated_costs\" must be an object")
	}
	if s, ok := costs["currency"].(string); !ok || strings.TrimSpace(s) == "" {
		return schemaViolation("\"estimated_costs.currency\" must be a non-empty string")
	}

	if _, ok := plan["travel_tips"].([]any); !ok {
		return schemaViolation("\"travel_tips\" must be an array of strings")
	}

	// Final gate: the object must decode into the typed plan, which catches
	// mistyped fields the presence checks above cannot (numeric tips, string
	// ids, non-integer day counts).
	raw, err := json.Marshal(plan)
	if err != nil {
		return schemaViolation("plan is not encodable: %v", err)
	}
	var typed response_models.ItineraryPlan
	if err := json.Unmarshal(raw, &typed); err != nil {
		return schemaViolation("plan does not match the itinerary structure: %v", err)
	}

	return nil
}

func schemaViolation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", utils.ErrPlanSchema, fmt.Sprintf(format, args...))
}
