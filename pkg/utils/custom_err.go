package utils

import "errors"

var (
	// ErrCatalogQuery covers connection and query failures while reading the
	// place catalog.
	ErrCatalogQuery = errors.New("catalog query failed")

	// ErrGenerationFailed covers provider-side failures of the model call:
	// network, quota, empty candidates.
	ErrGenerationFailed = errors.New("failed to generate trip plan")

	// ErrPlanNotJSON means the model output was not decodable JSON after
	// fence stripping.
	ErrPlanNotJSON = errors.New("failed to parse JSON response from model")

	// ErrPlanSchema means the decoded JSON does not conform to the itinerary
	// schema the prompt demands.
	ErrPlanSchema = errors.New("model response does not match itinerary schema")
)
