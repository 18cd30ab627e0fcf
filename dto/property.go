package dto

import (
	"time"

	"github.com/google/uuid"
)

// PropertyRequest is the admin form payload. Images travel separately from
// the row fields: they are an ordered URL list that fully replaces the
// stored image set on every save.
type PropertyRequest struct {
	ID           string   `json:"id"`
	Title        string   `json:"title" binding:"required"`
	Slug         string   `json:"slug"`
	Description  string   `json:"description" binding:"required"`
	Category     string   `json:"category" binding:"required,propertycategory"`
	Location     string   `json:"location" binding:"required"`
	Price        int      `json:"price"`
	PriceNote    string   `json:"price_note"`
	Capacity     int      `json:"capacity"`
	MaxCapacity  int      `json:"max_capacity"`
	Rating       float64  `json:"rating"`
	IsTopSelling bool     `json:"is_top_selling"`
	IsActive     bool     `json:"is_active"`
	CheckInTime  string   `json:"check_in_time"`
	CheckOutTime string   `json:"check_out_time"`
	Contact      string   `json:"contact"`
	Address      string   `json:"address"`
	Amenities    []string `json:"amenities"`
	Highlights   []string `json:"highlights"`
	Activities   []string `json:"activities"`
	Policies     []string `json:"policies"`
	Images       []string `json:"images"`
}

type PropertyStatusRequest struct {
	ID       string `json:"id" binding:"required"`
	IsActive *bool  `json:"is_active" binding:"required"`
}

// PropertySummaryResponse is the dashboard projection.
type PropertySummaryResponse struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Category     string    `json:"category"`
	Location     string    `json:"location"`
	Price        int       `json:"price"`
	IsActive     bool      `json:"is_active"`
	IsTopSelling bool      `json:"is_top_selling"`
	Rating       float64   `json:"rating"`
}

// PropertyDetailResponse hydrates the edit form: every stored field plus the
// image URL list in display order.
type PropertyDetailResponse struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Location     string    `json:"location"`
	Price        int       `json:"price"`
	PriceNote    string    `json:"price_note"`
	Capacity     int       `json:"capacity"`
	MaxCapacity  int       `json:"max_capacity"`
	Rating       float64   `json:"rating"`
	IsTopSelling bool      `json:"is_top_selling"`
	IsActive     bool      `json:"is_active"`
	CheckInTime  string    `json:"check_in_time"`
	CheckOutTime string    `json:"check_out_time"`
	Contact      string    `json:"contact"`
	Address      string    `json:"address"`
	Amenities    []string  `json:"amenities"`
	Highlights   []string  `json:"highlights"`
	Activities   []string  `json:"activities"`
	Policies     []string  `json:"policies"`
	Images       []string  `json:"images"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
