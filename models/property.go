package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	CategoryCamping = "camping"
	CategoryCottage = "cottage"
	CategoryVilla   = "villa"
)

type Property struct {
	ID           uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	Title        string          `json:"title"`
	Slug         string          `json:"slug" gorm:"uniqueIndex"` // public route key, derived from title
	Description  string          `json:"description"`
	Category     string          `json:"category"` // camping | cottage | villa
	Location     string          `json:"location"`
	Price        int             `json:"price"` // rupees, whole units
	PriceNote    string          `json:"price_note"`
	Capacity     int             `json:"capacity"`
	MaxCapacity  int             `json:"max_capacity"`
	Rating       float64         `json:"rating"`
	IsTopSelling bool            `json:"is_top_selling"`
	IsActive     bool            `json:"is_active"` // inactive properties are hidden from the public listing
	CheckInTime  string          `json:"check_in_time"`
	CheckOutTime string          `json:"check_out_time"`
	Contact      string          `json:"contact"`
	Address      string          `json:"address"`
	Amenities    datatypes.JSON  `json:"amenities" gorm:"type:json"`
	Highlights   datatypes.JSON  `json:"highlights" gorm:"type:json"`
	Activities   datatypes.JSON  `json:"activities" gorm:"type:json"`
	Policies     datatypes.JSON  `json:"policies" gorm:"type:json"`
	CreatedAt    time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
	Images       []PropertyImage `json:"images" gorm:"foreignKey:PropertyID"`
}

func (Property) TableName() string {
	return "properties"
}

func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (p *Property) ValidateCategory() error {
	switch p.Category {
	case CategoryCamping, CategoryCottage, CategoryVilla:
		return nil
	}
	return fmt.Errorf("invalid Category: %q, must be camping, cottage or villa", p.Category)
}

func (p *Property) ValidateRating() error {
	if p.Rating < 0 || p.Rating > 5 {
		return fmt.Errorf("invalid Rating: %v, must be between 0 and 5", p.Rating)
	}
	return nil
}
