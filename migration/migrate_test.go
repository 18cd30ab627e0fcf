package migration

import (
	"context"
	"testing"

	"looncamp/models"
	"looncamp/services/logger"

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

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Property{}, &models.PropertyImage{}))
	return db
}

func TestParsePrice(t *testing.T) {
	cases := []struct {
		display string
		want    int
	}{
		{"₹2,500/night", 2500},
		{"₹1,299", 1299},
		{"₹18,000/night", 18000},
		{"999", 999},
		{"price on request", 0},
		{"", 0},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ParsePrice(tc.display), "display %q", tc.display)
	}
}

func TestRunImportsAllSeeds(t *testing.T) {
	db := newTestDB(t)
	l := logger.NewDefaultLogger(logger.ErrorLevel)

	migrated := Run(context.Background(), db, l)
	assert.Equal(t, len(SeedProperties), migrated)

	var props []models.Property
	require.NoError(t, db.Order("slug").Find(&props).Error)
	require.Len(t, props, len(SeedProperties))

	bySlug := make(map[string]models.Property, len(props))
	for _, p := range props {
		bySlug[p.Slug] = p
	}

	// slug taken from the seed ID when present
	camp, ok := bySlug["pawna-lakeside-camping"]
	require.True(t, ok)
	assert.Equal(t, 1299, camp.Price)
	assert.True(t, camp.IsActive)
	assert.Equal(t, 4, camp.MaxCapacity)

	// slug derived from the title when the seed has no ID
	dome, ok := bySlug["sunset-glamping-dome"]
	require.True(t, ok)
	assert.Equal(t, 3200, dome.Price)
	assert.Equal(t, 2, dome.MaxCapacity, "missing max capacity falls back to capacity")
	assert.Equal(t, defaultCheckInTime, dome.CheckInTime)
	assert.Equal(t, defaultCheckOutTime, dome.CheckOutTime)
	assert.Equal(t, defaultContact, dome.Contact)

	villa, ok := bySlug["royal-villa-lonavala"]
	require.True(t, ok)
	assert.Equal(t, 18000, villa.Price)
	assert.Equal(t, "12:00 PM", villa.CheckInTime, "seed values win over defaults")

	// the single-photo seed still ends up with one ordered image row
	var domeImages []models.PropertyImage
	require.NoError(t, db.Where("property_id = ?", dome.ID).Find(&domeImages).Error)
	require.Len(t, domeImages, 1)
	assert.Equal(t, 0, domeImages[0].DisplayOrder)

	var campImages []models.PropertyImage
	require.NoError(t, db.Where("property_id = ?", camp.ID).Order("display_order").Find(&campImages).Error)
	require.Len(t, campImages, 3)
	for i, row := range campImages {
		assert.Equal(t, i, row.DisplayOrder)
	}
}

func TestRunContinuesPastFailedEntry(t *testing.T) {
	db := newTestDB(t)
	l := logger.NewDefaultLogger(logger.ErrorLevel)

	seeds := []SeedProperty{
		{
			ID:       "lake-hut",
			Title:    "Lake Hut",
			Category: "cottage",
			Location: "Pawna Lake",
			Price:    "₹2,000",
			Capacity: 2,
			Rating:   4.0,
		},
		{
			// duplicates the first slug, insert fails on the unique index
			ID:       "lake-hut",
			Title:    "Lake Hut Copy",
			Category: "cottage",
			Location: "Pawna Lake",
			Price:    "₹2,100",
			Capacity: 2,
			Rating:   4.0,
		},
		{
			ID:       "hill-tent",
			Title:    "Hill Tent",
			Category: "camping",
			Location: "Pawna Lake",
			Price:    "₹900",
			Capacity: 2,
			Rating:   4.1,
			Image:    "https://images.looncamp.in/hill-tent/cover.jpg",
		},
	}

	migrated := run(context.Background(), db, l, seeds)
	assert.Equal(t, 2, migrated, "the bad entry is skipped, not fatal")

	var titles []string
	require.NoError(t, db.Model(&models.Property{}).Order("slug").Pluck("title", &titles).Error)
	assert.Equal(t, []string{"Hill Tent", "Lake Hut"}, titles)

	var imageCount int64
	require.NoError(t, db.Model(&models.PropertyImage{}).Count(&imageCount).Error)
	assert.EqualValues(t, 1, imageCount)
}
