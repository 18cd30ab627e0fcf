package models

import "github.com/google/uuid"

// PropertyImage is one row of the ordered image set owned by a property.
// The set is always rewritten as a whole, so display_order stays a dense
// 0..n-1 sequence in form order.
type PropertyImage struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	PropertyID   uuid.UUID `json:"property_id" gorm:"type:uuid;not null;index"`
	ImageURL     string    `json:"image_url" gorm:"type:text;not null"`
	DisplayOrder int       `json:"display_order" gorm:"not null;default:0"`
}

func (PropertyImage) TableName() string {
	return "property_images"
}
