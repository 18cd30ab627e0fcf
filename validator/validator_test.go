package validator

import (
	"testing"

	"looncamp/dto"
	"looncamp/errors"
	"looncamp/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() dto.PropertyRequest {
	return dto.PropertyRequest{
		Title:       "Pawna Lakeside Camping",
		Description: "Lakeside tents.",
		Category:    models.CategoryCamping,
		Location:    "Pawna Lake",
		Price:       1299,
		Capacity:    2,
		MaxCapacity: 4,
		Rating:      4.6,
		Images:      []string{"https://images.looncamp.in/pawna-lakeside/cover.jpg"},
	}
}

func TestValidatePropertyAccepts(t *testing.T) {
	req := validRequest()
	assert.NoError(t, ValidateProperty(&req))
}

func TestValidatePropertyRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dto.PropertyRequest)
		code   errors.ErrorCode
	}{
		{"empty title", func(r *dto.PropertyRequest) { r.Title = "" }, errors.ErrCodeRequiredField},
		{"negative price", func(r *dto.PropertyRequest) { r.Price = -1 }, errors.ErrCodeInvalidAmount},
		{"zero capacity", func(r *dto.PropertyRequest) { r.Capacity = 0 }, errors.ErrCodeValidation},
		{"max below capacity", func(r *dto.PropertyRequest) { r.MaxCapacity = 1 }, errors.ErrCodeValidation},
		{"rating above five", func(r *dto.PropertyRequest) { r.Rating = 5.1 }, errors.ErrCodeValidation},
		{"blank image url", func(r *dto.PropertyRequest) { r.Images = []string{""} }, errors.ErrCodeRequiredField},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)

			err := ValidateProperty(&req)
			require.Error(t, err)
			appErr := errors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, tc.code, appErr.Code)
		})
	}
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("admin@looncamp.in"))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail(""))
}
