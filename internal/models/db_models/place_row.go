package db_models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlaceRow is the projection produced by the catalog join. One row exists per
// (place, label, image) combination, so the same place can appear more than
// once; callers must not assume one row per place.
type PlaceRow struct {
	ID              int
	Name            string
	Longitude       decimal.Decimal
	Latitude        decimal.Decimal
	City            string
	Country         string
	CountryID       int
	OpenHours       string
	Rating          decimal.Decimal
	NumberOfRatings int
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Website         string
	Phone           string
	PriceRange      string
	PlaceID         int
	LabelID         int
	PlaceLabel      string
	ParentID        *int
	ParentLabel     string
	ImageURL        string
}

// AsRow exposes the projection as a column-name keyed map with DB-native
// values, the shape the serializer and the prompt builder work on.
func (r PlaceRow) AsRow() map[string]any {
	return map[string]any{
		"id":                r.ID,
		"name":              r.Name,
		"longitude":         r.Longitude,
		"latitude":          r.Latitude,
		"city":              r.City,
		"country":           r.Country,
		"country_id":        r.CountryID,
		"open_hours":        r.OpenHours,
		"rating":            r.Rating,
		"number_of_ratings": r.NumberOfRatings,
		"created_at":        r.CreatedAt,
		"updated_at":        r.UpdatedAt,
		"website":           r.Website,
		"phone":             r.Phone,
		"price_range":       r.PriceRange,
		"place_id":          r.PlaceID,
		"label_id":          r.LabelID,
		"place_label":       r.PlaceLabel,
		"parent_id":         r.ParentID,
		"parent_label":      r.ParentLabel,
		"image_url":         r.ImageURL,
	}
}

// AsRow is the unfiltered-mode counterpart: place columns only, no taxonomy
// or image fields.
func (p Place) AsRow() map[string]any {
	return map[string]any{
		"id":                p.ID,
		"name":              p.Name,
		"longitude":         p.Longitude,
		"latitude":          p.Latitude,
		"city":              p.City,
		"country":           p.Country,
		"country_id":        p.CountryID,
		"open_hours":        p.OpenHours,
		"rating":            p.Rating,
		"number_of_ratings": p.NumberOfRatings,
		"created_at":        p.CreatedAt,
		"updated_at":        p.UpdatedAt,
		"website":           p.Website,
		"phone":             p.Phone,
		"price_range":       p.PriceRange,
	}
}
