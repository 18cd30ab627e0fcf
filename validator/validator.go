package validator

import (
	"regexp"

	"looncamp/dto"
	"looncamp/errors"
	"looncamp/models"

	"github.com/gin-gonic/gin/binding"
	playground "github.com/go-playground/validator/v10"
)

func init() {
	if v, ok := binding.Validator.Engine().(*playground.Validate); ok {
		v.RegisterValidation("propertycategory", func(fl playground.FieldLevel) bool {
			switch fl.Field().String() {
			case models.CategoryCamping, models.CategoryCottage, models.CategoryVilla:
				return true
			}
			return false
		})
	}
}

// ValidateProperty checks the admin form payload beyond what binding tags
// cover. Malformed numeric fields are rejected here rather than coerced.
func ValidateProperty(req *dto.PropertyRequest) error {
	if req.Title == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Title must not be empty", nil)
	}

	if req.Price < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Price must not be negative", nil)
	}

	if req.Capacity < 1 {
		return errors.NewAppError(errors.ErrCodeValidation, "Capacity must be at least 1", nil)
	}

	if req.MaxCapacity != 0 && req.MaxCapacity < req.Capacity {
		return errors.NewAppError(errors.ErrCodeValidation, "Max capacity must not be below capacity", nil)
	}

	if req.Rating < 0 || req.Rating > 5 {
		return errors.NewAppError(errors.ErrCodeValidation, "Rating must be between 0 and 5", nil)
	}

	for _, url := range req.Images {
		if url == "" {
			return errors.NewAppError(errors.ErrCodeRequiredField, "Image URL must not be empty", nil)
		}
	}

	return nil
}

// ValidateEmail checks a login email address.
func ValidateEmail(email string) error {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email address is not valid", nil)
	}
	return nil
}
