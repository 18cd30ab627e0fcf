package migration

import (
	"context"
	"regexp"
	"strconv"

	"looncamp/dto"
	"looncamp/services"
	"looncamp/services/logger"
	"looncamp/utils"

	"gorm.io/gorm"
)

// Defaults applied to seed entries that predate the corresponding form
// fields, matching what the live records carry.
const (
	defaultCheckInTime  = "2:00 PM"
	defaultCheckOutTime = "11:00 AM"
	defaultContact      = "+91 8669505727"
)

var nonDigit = regexp.MustCompile(`[^0-9]`)

// ParsePrice coerces a legacy display price like "₹2,500/night" into whole
// rupees. Strings without digits degrade to 0. Only seed input goes through
// this path, the interactive form always submits a number.
func ParsePrice(display string) int {
	digits := nonDigit.ReplaceAllString(display, "")
	price, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return price
}

// Run copies the hardcoded seed listings into the database. It is a
// one-shot operator tool: per-item failures are logged and skipped so a bad
// entry cannot block the rest of the import. There is no rollback and no
// retry. Returns the number of properties persisted.
func Run(ctx context.Context, db *gorm.DB, l logger.Logger) int {
	return run(ctx, db, l, SeedProperties)
}

func run(ctx context.Context, db *gorm.DB, l logger.Logger, seeds []SeedProperty) int {
	l.Info("starting property migration, %d seed entries", len(seeds))

	migrated := 0
	for _, seed := range seeds {
		prop, err := services.PropertyFromForm(seedToForm(seed))
		if err != nil {
			l.Error("cannot map seed property %q: %v", seed.Title, err)
			continue
		}

		prop.Slug = seed.ID
		if prop.Slug == "" {
			prop.Slug = utils.Slugify(seed.Title)
		}

		if err := db.WithContext(ctx).Create(&prop).Error; err != nil {
			l.Error("cannot migrate property %q: %v", seed.Title, err)
			continue
		}
		migrated++
		l.Info("migrated property %q", seed.Title)

		images := seed.Images
		if len(images) == 0 && seed.Image != "" {
			images = []string{seed.Image}
		}
		rows := services.BuildImageRows(prop.ID, images)
		if len(rows) == 0 {
			continue
		}
		if err := db.WithContext(ctx).Create(&rows).Error; err != nil {
			l.Error("cannot migrate images for %q: %v", seed.Title, err)
			continue
		}
		l.Info("migrated %d images for %q", len(rows), seed.Title)
	}

	l.Info("property migration complete, %d/%d migrated", migrated, len(seeds))
	return migrated
}

// seedToForm adapts a legacy seed entry to the form shape the mapper
// expects. All lossy coercion lives here, not in the mapper.
func seedToForm(seed SeedProperty) dto.PropertyRequest {
	maxCapacity := seed.MaxCapacity
	if maxCapacity == 0 {
		maxCapacity = seed.Capacity
	}
	checkIn := seed.CheckInTime
	if checkIn == "" {
		checkIn = defaultCheckInTime
	}
	checkOut := seed.CheckOutTime
	if checkOut == "" {
		checkOut = defaultCheckOutTime
	}
	contact := seed.Contact
	if contact == "" {
		contact = defaultContact
	}

	return dto.PropertyRequest{
		Title:        seed.Title,
		Description:  seed.Description,
		Category:     seed.Category,
		Location:     seed.Location,
		Price:        ParsePrice(seed.Price),
		PriceNote:    seed.PriceNote,
		Capacity:     seed.Capacity,
		MaxCapacity:  maxCapacity,
		Rating:       seed.Rating,
		IsTopSelling: seed.IsTopSelling,
		IsActive:     true,
		CheckInTime:  checkIn,
		CheckOutTime: checkOut,
		Contact:      contact,
		Address:      seed.Address,
		Amenities:    seed.Amenities,
		Highlights:   seed.Highlights,
		Activities:   seed.Activities,
		Policies:     seed.Policies,
	}
}
