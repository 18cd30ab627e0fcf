package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"looncamp/dto"
	"looncamp/models"
	"looncamp/services/logger"
	"looncamp/utils"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	ErrCodePropertyNotFound = "PROPERTY_NOT_FOUND"
	ErrCodePersistence      = "PERSISTENCE_ERROR"
	ErrCodeInvalidID        = "INVALID_PROPERTY_ID"
	ErrCodeInvalidForm      = "INVALID_FORM"
)

const (
	listingCacheKey = "properties:active"
	listingCacheTTL = 60 * time.Minute
)

type ServiceError struct {
	Code    string
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// IsNotFound reports whether err is the lookup-miss kind, as opposed to a
// persistence failure.
func IsNotFound(err error) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Code == ErrCodePropertyNotFound
	}
	return false
}

// PropertyService owns the property + property_images pair: it hydrates the
// edit form, writes the two tables as one logical record, and serves the
// dashboard and public listings.
type PropertyService struct {
	db     *gorm.DB
	rdb    *redis.Client
	logger logger.Logger
}

type PropertyServiceOptions struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Logger logger.Logger
}

func NewPropertyService(opts PropertyServiceOptions) *PropertyService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &PropertyService{
		db:     opts.DB,
		rdb:    opts.Redis,
		logger: l,
	}
}

// Load fetches one property row and its images ordered by display_order.
func (s *PropertyService) Load(ctx context.Context, id uuid.UUID) (dto.PropertyDetailResponse, error) {
	var prop models.Property
	if err := s.db.WithContext(ctx).First(&prop, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.PropertyDetailResponse{}, &ServiceError{
				Code:    ErrCodePropertyNotFound,
				Message: fmt.Sprintf("property %s does not exist", id),
			}
		}
		return dto.PropertyDetailResponse{}, s.persistenceError("load property", err)
	}

	var images []models.PropertyImage
	if err := s.db.WithContext(ctx).
		Where("property_id = ?", id).
		Order("display_order").
		Find(&images).Error; err != nil {
		return dto.PropertyDetailResponse{}, s.persistenceError("load property images", err)
	}

	return DetailFromProperty(prop, images), nil
}

// Save persists the form as one logical record. With no ID it inserts a new
// row plus its image rows; with an ID it rewrites every field of the
// existing row and replaces the full image set. Both paths run in a single
// transaction so a failed image write cannot leave a half-updated record.
func (s *PropertyService) Save(ctx context.Context, req dto.PropertyRequest) (uuid.UUID, error) {
	prop, err := PropertyFromForm(req)
	if err != nil {
		return uuid.Nil, &ServiceError{Code: ErrCodeInvalidForm, Message: "cannot map form fields", Err: err}
	}

	if req.ID == "" {
		return s.create(ctx, prop, req.Images)
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		return uuid.Nil, &ServiceError{Code: ErrCodeInvalidID, Message: "property id is not a valid uuid", Err: err}
	}
	return s.update(ctx, id, prop, req.Images)
}

func (s *PropertyService) create(ctx context.Context, prop models.Property, imageURLs []string) (uuid.UUID, error) {
	if prop.Slug == "" {
		prop.Slug = utils.Slugify(prop.Title)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&prop).Error; err != nil {
			return err
		}
		rows := BuildImageRows(prop.ID, imageURLs)
		if len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, s.persistenceError("create property", err)
	}

	s.invalidateListingCache(ctx)
	s.logger.Info("created property %s (%s)", prop.ID, prop.Slug)
	return prop.ID, nil
}

func (s *PropertyService) update(ctx context.Context, id uuid.UUID, prop models.Property, imageURLs []string) (uuid.UUID, error) {
	var existing models.Property
	if err := s.db.WithContext(ctx).First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, &ServiceError{
				Code:    ErrCodePropertyNotFound,
				Message: fmt.Sprintf("property %s does not exist", id),
			}
		}
		return uuid.Nil, s.persistenceError("load property for update", err)
	}

	prop.ID = existing.ID
	prop.CreatedAt = existing.CreatedAt
	// The slug is fixed at creation, an empty form slug keeps the stored one.
	if prop.Slug == "" {
		prop.Slug = existing.Slug
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&prop).Error; err != nil {
			return err
		}
		if err := tx.Where("property_id = ?", id).Delete(&models.PropertyImage{}).Error; err != nil {
			return err
		}
		rows := BuildImageRows(id, imageURLs)
		if len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, s.persistenceError("update property", err)
	}

	s.invalidateListingCache(ctx)
	s.logger.Info("updated property %s (%s)", id, prop.Slug)
	return id, nil
}

// List returns the dashboard projection of every property, newest first.
// It always reads the database so the operator sees mutations immediately.
func (s *PropertyService) List(ctx context.Context) ([]dto.PropertySummaryResponse, error) {
	var summaries []dto.PropertySummaryResponse
	err := s.db.WithContext(ctx).
		Model(&models.Property{}).
		Select("id, title, slug, category, location, price, is_active, is_top_selling, rating").
		Order("created_at DESC").
		Find(&summaries).Error
	if err != nil {
		return nil, s.persistenceError("list properties", err)
	}
	if summaries == nil {
		summaries = []dto.PropertySummaryResponse{}
	}
	return summaries, nil
}

// SetActive updates exactly the is_active column.
func (s *PropertyService) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	result := s.db.WithContext(ctx).
		Model(&models.Property{}).
		Where("id = ?", id).
		Update("is_active", active)
	if result.Error != nil {
		return s.persistenceError("update property status", result.Error)
	}
	if result.RowsAffected == 0 {
		return &ServiceError{
			Code:    ErrCodePropertyNotFound,
			Message: fmt.Sprintf("property %s does not exist", id),
		}
	}

	s.invalidateListingCache(ctx)
	return nil
}

// Delete removes the property row together with its image rows. The cascade
// is explicit: the store is not trusted to clean up property_images.
func (s *PropertyService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("property_id = ?", id).Delete(&models.PropertyImage{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Property{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ServiceError{
				Code:    ErrCodePropertyNotFound,
				Message: fmt.Sprintf("property %s does not exist", id),
			}
		}
		return s.persistenceError("delete property", err)
	}

	s.invalidateListingCache(ctx)
	s.logger.Info("deleted property %s", id)
	return nil
}

// GetActiveProperties serves the public website listing: active properties
// only, newest first, full detail with images. Results come from the redis
// cache when present; every admin mutation drops the key.
func (s *PropertyService) GetActiveProperties(ctx context.Context) ([]dto.PropertyDetailResponse, error) {
	if s.rdb != nil {
		var cached []dto.PropertyDetailResponse
		if err := GetFromRedis(ctx, s.rdb, listingCacheKey, &cached); err == nil && len(cached) > 0 {
			return cached, nil
		}
	}

	details, err := s.loadActiveProperties(ctx)
	if err != nil {
		return nil, err
	}

	if s.rdb != nil && len(details) > 0 {
		if err := SetToRedis(ctx, s.rdb, listingCacheKey, details, listingCacheTTL); err != nil {
			s.logger.Error("cannot cache active listing: %v", err)
		}
	}
	return details, nil
}

// GetBySlug serves the public detail page. Inactive properties are not
// visible through this path.
func (s *PropertyService) GetBySlug(ctx context.Context, slug string) (dto.PropertyDetailResponse, error) {
	var prop models.Property
	err := s.db.WithContext(ctx).
		Where("slug = ? AND is_active = ?", slug, true).
		First(&prop).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.PropertyDetailResponse{}, &ServiceError{
				Code:    ErrCodePropertyNotFound,
				Message: fmt.Sprintf("no active property with slug %q", slug),
			}
		}
		return dto.PropertyDetailResponse{}, s.persistenceError("load property by slug", err)
	}

	var images []models.PropertyImage
	if err := s.db.WithContext(ctx).
		Where("property_id = ?", prop.ID).
		Order("display_order").
		Find(&images).Error; err != nil {
		return dto.PropertyDetailResponse{}, s.persistenceError("load property images", err)
	}

	return DetailFromProperty(prop, images), nil
}

// RefreshListingCache recomputes the public listing cache. Used by the
// nightly cron job.
func (s *PropertyService) RefreshListingCache(ctx context.Context) error {
	if s.rdb == nil {
		return nil
	}
	details, err := s.loadActiveProperties(ctx)
	if err != nil {
		return err
	}
	return SetToRedis(ctx, s.rdb, listingCacheKey, details, listingCacheTTL)
}

func (s *PropertyService) loadActiveProperties(ctx context.Context) ([]dto.PropertyDetailResponse, error) {
	var props []models.Property
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order")
		}).
		Find(&props).Error
	if err != nil {
		return nil, s.persistenceError("list active properties", err)
	}

	details := make([]dto.PropertyDetailResponse, 0, len(props))
	for _, prop := range props {
		details = append(details, DetailFromProperty(prop, prop.Images))
	}
	return details, nil
}

func (s *PropertyService) invalidateListingCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := DeleteFromRedis(ctx, s.rdb, listingCacheKey); err != nil {
		s.logger.Error("cannot invalidate listing cache: %v", err)
	}
}

func (s *PropertyService) persistenceError(op string, err error) *ServiceError {
	s.logger.Error("%s: %v", op, err)
	return &ServiceError{
		Code:    ErrCodePersistence,
		Message: fmt.Sprintf("cannot %s", op),
		Err:     err,
	}
}
