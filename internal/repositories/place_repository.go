package repositories

import (
	"context"

	"gorm.io/gorm"

	"itinero/internal/models/db_models"
)

type PlaceRepository interface {
	// ListPlacesByCity returns every catalog place in the city, ignoring
	// preferences entirely.
	ListPlacesByCity(ctx context.Context, city string) ([]map[string]any, error)

	// ListPlacesByCityAndPreferences returns the places in the city whose
	// leaf label name, or that label's parent name, appears in prefs. One
	// row per (place, label, image) combination.
	ListPlacesByCityAndPreferences(ctx context.Context, city string, prefs []string) ([]map[string]any, error)
}

type placeRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{db: db}
}

func (r *placeRepository) ListPlacesByCity(ctx context.Context, city string) ([]map[string]any, error) {
	var places []db_models.Place
	err := r.db.WithContext(ctx).
		Where("city = ?", city).
		Find(&places).Error
	if err != nil {
		return nil, err
	}

	rows := make([]map[string]any, 0, len(places))
	for _, place := range places {
		rows = append(rows, place.AsRow())
	}
	return rows, nil
}

const placesByLabelQuery = `
SELECT DISTINCT p.id, p.name, p.longitude, p.latitude, p.city, p.country, p.country_id,
       p.open_hours, p.rating, p.number_of_ratings, p.created_at, p.updated_at,
       p.website, p.phone, p.price_range, pl.place_id, pl.label_id,
       l.label_name AS place_label, l.parent_id, l2.label_name AS parent_label,
       pli.img_url AS image_url
FROM places p
JOIN places_labels pl ON p.id = pl.place_id
JOIN places_images pli ON p.id = pli.place_id
JOIN labels l ON pl.label_id = l.id
JOIN labels l2 ON l.parent_id = l2.id
WHERE p.city = ?
  AND (
    l.label_name IN ?
    OR l.parent_id IN (SELECT id FROM labels WHERE label_name IN ?)
  )`

func (r *placeRepository) ListPlacesByCityAndPreferences(ctx context.Context, city string, prefs []string) ([]map[string]any, error) {
	// An empty IN list matches nothing; skip the round trip.
	if len(prefs) == 0 {
		return []map[string]any{}, nil
	}

	var results []db_models.PlaceRow
	err := r.db.WithContext(ctx).
		Raw(placesByLabelQuery, city, prefs, prefs).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	rows := make([]map[string]any, 0, len(results))
	for _, row := range results {
		rows = append(rows, row.AsRow())
	}
	return rows, nil
}
