package services

import (
	"context"
	"testing"

	"looncamp/dto"
	"looncamp/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: glogger.Default.LogMode(glogger.Silent),
	})
	require.NoError(t, err)

	// a single connection keeps every query on the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Property{}, &models.PropertyImage{}))
	return db
}

func newTestService(t *testing.T) *PropertyService {
	t.Helper()
	return NewPropertyService(PropertyServiceOptions{DB: newTestDB(t)})
}

func testRequest(title string, images []string) dto.PropertyRequest {
	return dto.PropertyRequest{
		Title:        title,
		Description:  "Lakeside tents with bonfire and dinner.",
		Category:     models.CategoryCamping,
		Location:     "Pawna Lake",
		Price:        1299,
		PriceNote:    "per person with meal",
		Capacity:     2,
		MaxCapacity:  4,
		Rating:       4.5,
		IsActive:     true,
		CheckInTime:  "2:00 PM",
		CheckOutTime: "11:00 AM",
		Contact:      "+91 8669505727",
		Amenities:    []string{"Bonfire", "Parking"},
		Highlights:   []string{"Waterfront"},
		Activities:   []string{"Boating"},
		Policies:     []string{"No outside alcohol"},
		Images:       images,
	}
}

func TestBuildImageRowsDenseOrder(t *testing.T) {
	pid := uuid.New()

	rows := BuildImageRows(pid, []string{"a.jpg", "b.jpg", "c.jpg"})
	require.Len(t, rows, 3)
	for i, row := range rows {
		assert.Equal(t, pid, row.PropertyID)
		assert.Equal(t, i, row.DisplayOrder)
	}
	assert.Equal(t, "a.jpg", rows[0].ImageURL)
	assert.Equal(t, "c.jpg", rows[2].ImageURL)

	assert.Empty(t, BuildImageRows(pid, nil))
	assert.Empty(t, BuildImageRows(pid, []string{}))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	images := []string{"one.jpg", "two.jpg", "three.jpg"}
	id, err := svc.Save(ctx, testRequest("Luxury Lakeside Cottage!! ", images))
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, id)

	detail, err := svc.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "luxury-lakeside-cottage", detail.Slug)
	assert.Equal(t, images, detail.Images)
	assert.Equal(t, []string{"Bonfire", "Parking"}, detail.Amenities)
	assert.Equal(t, 1299, detail.Price)
}

func TestUpdateReplacesImageSet(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	id, err := svc.Save(ctx, testRequest("Pawna Lakeside Camping", []string{"a.jpg", "b.jpg"}))
	require.NoError(t, err)

	update := testRequest("Pawna Lakeside Camping", []string{"c.jpg"})
	update.ID = id.String()
	_, err = svc.Save(ctx, update)
	require.NoError(t, err)

	detail, err := svc.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"c.jpg"}, detail.Images)

	var count int64
	require.NoError(t, svc.db.Model(&models.PropertyImage{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "old image rows must be gone")
}

func TestUpdateClearsImagesWhenListEmpty(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	id, err := svc.Save(ctx, testRequest("Sunset Glamping Dome", []string{"dome.jpg"}))
	require.NoError(t, err)

	update := testRequest("Sunset Glamping Dome", nil)
	update.ID = id.String()
	_, err = svc.Save(ctx, update)
	require.NoError(t, err)

	detail, err := svc.Load(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, detail.Images)
}

func TestUpdateKeepsSlug(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	id, err := svc.Save(ctx, testRequest("Forest Edge Cottage", nil))
	require.NoError(t, err)

	update := testRequest("Forest Edge Cottage Renovated", nil)
	update.ID = id.String()
	_, err = svc.Save(ctx, update)
	require.NoError(t, err)

	detail, err := svc.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Forest Edge Cottage Renovated", detail.Title)
	assert.Equal(t, "forest-edge-cottage", detail.Slug, "slug is fixed at creation")
}

func TestLoadMissingIsNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Load(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, IsNotFound(err), "missing row must surface as not-found, not a persistence failure")
}

func TestListNewestFirst(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.Save(ctx, testRequest("Older Camp", nil))
	require.NoError(t, err)

	// force distinct creation timestamps on the second row
	require.NoError(t, svc.db.Model(&models.Property{}).
		Where("id = ?", first).
		Update("created_at", "2024-01-01 00:00:00").Error)

	second, err := svc.Save(ctx, testRequest("Newer Camp", nil))
	require.NoError(t, err)

	summaries, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, second, summaries[0].ID)
	assert.Equal(t, first, summaries[1].ID)
}

func TestSetActiveTouchesOnlyTheFlag(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	req := testRequest("Cliffside Tent Stay", nil)
	req.IsActive = false
	id, err := svc.Save(ctx, req)
	require.NoError(t, err)

	before, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, before, 1)
	require.False(t, before[0].IsActive)

	require.NoError(t, svc.SetActive(ctx, id, true))

	after, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.True(t, after[0].IsActive)

	got := after[0]
	got.IsActive = before[0].IsActive
	assert.Equal(t, before[0], got, "no field besides is_active may change")
}

func TestSetActiveMissingIsNotFound(t *testing.T) {
	svc := newTestService(t)

	err := svc.SetActive(context.Background(), uuid.New(), true)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestDeleteCascadesToImages(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	id, err := svc.Save(ctx, testRequest("Pawna Lakeside Camping", []string{"a.jpg", "b.jpg"}))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, id))

	_, err = svc.Load(ctx, id)
	assert.True(t, IsNotFound(err))

	var count int64
	require.NoError(t, svc.db.Model(&models.PropertyImage{}).Count(&count).Error)
	assert.EqualValues(t, 0, count, "image rows must be deleted with the property")
}

func TestActiveListingExcludesInactive(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Save(ctx, testRequest("Visible Camp", nil))
	require.NoError(t, err)

	hidden := testRequest("Hidden Camp", nil)
	hidden.IsActive = false
	_, err = svc.Save(ctx, hidden)
	require.NoError(t, err)

	details, err := svc.GetActiveProperties(ctx)
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, "Visible Camp", details[0].Title)
}

func TestGetBySlug(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Save(ctx, testRequest("Luxury Lakeside Cottage", []string{"x.jpg"}))
	require.NoError(t, err)

	detail, err := svc.GetBySlug(ctx, "luxury-lakeside-cottage")
	require.NoError(t, err)
	assert.Equal(t, "Luxury Lakeside Cottage", detail.Title)
	assert.Equal(t, []string{"x.jpg"}, detail.Images)

	_, err = svc.GetBySlug(ctx, "no-such-slug")
	assert.True(t, IsNotFound(err))
}
