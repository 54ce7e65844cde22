package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"itinero/internal/models/request_models"
	"itinero/internal/repositories"
	"itinero/pkg/utils"
)

type PlannerServiceInterface interface {
	GenerateItinerary(ctx context.Context, req request_models.TripRequest) (map[string]any, error)
}

type PlannerService struct {
	placeRepo repositories.PlaceRepository
	aiClient  utils.PlannerClientInterface
}

func NewPlannerService(
	placeRepo repositories.PlaceRepository,
	aiClient utils.PlannerClientInterface,
) PlannerServiceInterface {
	return &PlannerService{
		placeRepo: placeRepo,
		aiClient:  aiClient,
	}
}

// GenerateItinerary runs the pipeline: catalog query, row serialization,
// prompt construction, model call, parse, schema validation. Any failure
// aborts the sequence; no partial itinerary is ever returned. A schema
// violation alone is retried once with a correction prompt.
func (s *PlannerService) GenerateItinerary(ctx context.Context, req request_models.TripRequest) (map[string]any, error) {
	req.ApplyDefaults()

	rows, err := s.resolveCatalog(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrCatalogQuery, err)
	}

	places := utils.SerializeRows(rows)
	log.Printf("Planning %d-day trip to %s with %d catalog rows", req.DurationDays, req.Destination, len(places))

	prompt, err := BuildItineraryPrompt(req, places)
	if err != nil {
		return nil, err
	}

	plan, err := s.generateAndParse(ctx, req, prompt)
	if err == nil {
		return plan, nil
	}
	if !errors.Is(err, utils.ErrPlanSchema) {
		return nil, err
	}

	log.Printf("Schema violation, re-prompting once: %v", err)
	plan, retryErr := s.generateAndParse(ctx, req, BuildCorrectionPrompt(prompt, err))
	if retryErr != nil {
		return nil, retryErr
	}
	return plan, nil
}

func (s *PlannerService) resolveCatalog(ctx context.Context, req request_models.TripRequest) ([]map[string]any, error) {
	if len(req.TravelerPreferences) > 0 {
		return s.placeRepo.ListPlacesByCityAndPreferences(ctx, req.Destination, req.TravelerPreferences)
	}
	return s.placeRepo.ListPlacesByCity(ctx, req.Destination)
}

func (s *PlannerService) generateAndParse(ctx context.Context, req request_models.TripRequest, prompt string) (map[string]any, error) {
	raw, err := s.aiClient.GenerateItinerary(ctx, prompt)
	if err != nil {
		return nil, err
	}

	plan, err := ParseItineraryResponse(raw)
	if err != nil {
		return nil, err
	}

	if err := ValidateItineraryPlan(plan, req); err != nil {
		return nil, err
	}
	return plan, nil
}
