package db_models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Place struct {
	ID              int `gorm:"primaryKey"`
	Name            string
	Latitude        decimal.Decimal `gorm:"type:numeric(10,7)"`
	Longitude       decimal.Decimal `gorm:"type:numeric(10,7)"`
	City            string
	Country         string
	CountryID       int
	OpenHours       string
	Rating          decimal.Decimal `gorm:"type:numeric(3,2)"`
	NumberOfRatings int
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Website         string
	Phone           string
	PriceRange      string

	Labels []Label      `gorm:"many2many:places_labels"`
	Images []PlaceImage `gorm:"foreignKey:PlaceID"`
}

type PlaceImage struct {
	ID      int `gorm:"primaryKey"`
	PlaceID int
	ImgURL  string
}

func (PlaceImage) TableName() string {
	return "places_images"
}
