package services

import (
	"encoding/json"

	"looncamp/dto"
	"looncamp/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PropertyFromForm maps the flat admin form onto a property row. It is a
// direct field copy: price is already numeric on this path, and the four
// list fields marshal into JSON columns. Image URLs are not part of the row,
// they map separately through BuildImageRows.
func PropertyFromForm(req dto.PropertyRequest) (models.Property, error) {
	amenities, err := toJSONList(req.Amenities)
	if err != nil {
		return models.Property{}, err
	}
	highlights, err := toJSONList(req.Highlights)
	if err != nil {
		return models.Property{}, err
	}
	activities, err := toJSONList(req.Activities)
	if err != nil {
		return models.Property{}, err
	}
	policies, err := toJSONList(req.Policies)
	if err != nil {
		return models.Property{}, err
	}

	return models.Property{
		Title:        req.Title,
		Slug:         req.Slug,
		Description:  req.Description,
		Category:     req.Category,
		Location:     req.Location,
		Price:        req.Price,
		PriceNote:    req.PriceNote,
		Capacity:     req.Capacity,
		MaxCapacity:  req.MaxCapacity,
		Rating:       req.Rating,
		IsTopSelling: req.IsTopSelling,
		IsActive:     req.IsActive,
		CheckInTime:  req.CheckInTime,
		CheckOutTime: req.CheckOutTime,
		Contact:      req.Contact,
		Address:      req.Address,
		Amenities:    amenities,
		Highlights:   highlights,
		Activities:   activities,
		Policies:     policies,
	}, nil
}

// BuildImageRows zips the ordered URL list with its index so display_order
// is always a dense 0..n-1 sequence. An empty list yields no rows.
func BuildImageRows(propertyID uuid.UUID, urls []string) []models.PropertyImage {
	rows := make([]models.PropertyImage, 0, len(urls))
	for i, url := range urls {
		rows = append(rows, models.PropertyImage{
			PropertyID:   propertyID,
			ImageURL:     url,
			DisplayOrder: i,
		})
	}
	return rows
}

// DetailFromProperty hydrates the edit form from a stored row and its image
// rows, which must already be sorted by display_order.
func DetailFromProperty(prop models.Property, images []models.PropertyImage) dto.PropertyDetailResponse {
	urls := make([]string, 0, len(images))
	for _, img := range images {
		urls = append(urls, img.ImageURL)
	}

	return dto.PropertyDetailResponse{
		ID:           prop.ID,
		Title:        prop.Title,
		Slug:         prop.Slug,
		Description:  prop.Description,
		Category:     prop.Category,
		Location:     prop.Location,
		Price:        prop.Price,
		PriceNote:    prop.PriceNote,
		Capacity:     prop.Capacity,
		MaxCapacity:  prop.MaxCapacity,
		Rating:       prop.Rating,
		IsTopSelling: prop.IsTopSelling,
		IsActive:     prop.IsActive,
		CheckInTime:  prop.CheckInTime,
		CheckOutTime: prop.CheckOutTime,
		Contact:      prop.Contact,
		Address:      prop.Address,
		Amenities:    fromJSONList(prop.Amenities),
		Highlights:   fromJSONList(prop.Highlights),
		Activities:   fromJSONList(prop.Activities),
		Policies:     fromJSONList(prop.Policies),
		Images:       urls,
		CreatedAt:    prop.CreatedAt,
		UpdatedAt:    prop.UpdatedAt,
	}
}

func toJSONList(items []string) (datatypes.JSON, error) {
	if items == nil {
		items = []string{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(data), nil
}

func fromJSONList(data datatypes.JSON) []string {
	items := []string{}
	if len(data) == 0 {
		return items
	}
	if err := json.Unmarshal(data, &items); err != nil {
		return []string{}
	}
	return items
}
