package db_models

// Label is one node of the two-level place taxonomy. Root labels have a nil
// ParentID; leaf labels point at their root. Deeper nesting is not supported.
type Label struct {
	ID        int `gorm:"primaryKey"`
	LabelName string
	ParentID  *int
	Parent    *Label `gorm:"foreignKey:ParentID"`
}

type PlaceLabel struct {
	PlaceID int `gorm:"primaryKey"`
	LabelID int `gorm:"primaryKey"`
}

func (PlaceLabel) TableName() string {
	return "places_labels"
}
