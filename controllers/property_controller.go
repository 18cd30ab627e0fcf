package controllers

import (
	"looncamp/dto"
	"looncamp/response"
	"looncamp/services"
	"looncamp/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type PropertyController struct {
	service *services.PropertyService
}

func NewPropertyController(db *gorm.DB, redisCli *redis.Client) *PropertyController {
	return &PropertyController{
		service: services.NewPropertyService(services.PropertyServiceOptions{
			DB:    db,
			Redis: redisCli,
		}),
	}
}

// GetAllProperties serves the dashboard listing, newest first.
func (pc *PropertyController) GetAllProperties(c *gin.Context) {
	summaries, err := pc.service.List(c.Request.Context())
	if err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithTotal(c, summaries, len(summaries))
}

// GetPropertyDetail hydrates the edit form.
func (pc *PropertyController) GetPropertyDetail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Property id is not valid")
		return
	}

	detail, err := pc.service.Load(c.Request.Context(), id)
	if err != nil {
		if services.IsNotFound(err) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, detail)
}

// CreateProperty inserts a new property together with its image set.
func (pc *PropertyController) CreateProperty(c *gin.Context) {
	var req dto.PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Request payload is not valid")
		return
	}
	req.ID = ""

	if err := validator.ValidateProperty(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	id, err := pc.service.Save(c.Request.Context(), req)
	if err != nil {
		response.ServerError(c)
		return
	}

	detail, err := pc.service.Load(c.Request.Context(), id)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, detail)
}

// UpdateProperty rewrites the full record and replaces its image set.
func (pc *PropertyController) UpdateProperty(c *gin.Context) {
	var req dto.PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Request payload is not valid")
		return
	}

	if req.ID == "" {
		response.BadRequest(c, "Property id is required")
		return
	}

	if err := validator.ValidateProperty(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	id, err := pc.service.Save(c.Request.Context(), req)
	if err != nil {
		if services.IsNotFound(err) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	detail, err := pc.service.Load(c.Request.Context(), id)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, detail)
}

// ChangePropertyStatus toggles only the visibility flag.
func (pc *PropertyController) ChangePropertyStatus(c *gin.Context) {
	var req dto.PropertyStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Property id and status are required")
		return
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		response.BadRequest(c, "Property id is not valid")
		return
	}

	if err := pc.service.SetActive(c.Request.Context(), id, *req.IsActive); err != nil {
		if services.IsNotFound(err) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

// DeleteProperty removes the property and its images.
func (pc *PropertyController) DeleteProperty(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Property id is not valid")
		return
	}

	if err := pc.service.Delete(c.Request.Context(), id); err != nil {
		if services.IsNotFound(err) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

// GetAllPropertiesForUser serves the public website: active listings only.
func (pc *PropertyController) GetAllPropertiesForUser(c *gin.Context) {
	details, err := pc.service.GetActiveProperties(c.Request.Context())
	if err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithTotal(c, details, len(details))
}

// GetPropertyBySlug serves the public detail page.
func (pc *PropertyController) GetPropertyBySlug(c *gin.Context) {
	detail, err := pc.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if services.IsNotFound(err) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, detail)
}
