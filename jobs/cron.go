package jobs

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"
)

// ListingCacheRefresher rebuilds the public listing cache.
type ListingCacheRefresher interface {
	RefreshListingCache(ctx context.Context) error
}

var cacheRefresher ListingCacheRefresher

func SetListingCacheRefresher(refresher ListingCacheRefresher) {
	cacheRefresher = refresher
}

// InitCronJobs schedules the nightly cache rebuild and starts the scheduler.
func InitCronJobs(c *cron.Cron) error {
	_, err := c.AddFunc("0 0 * * *", func() {
		if cacheRefresher == nil {
			log.Println("Listing cache refresher is not configured")
			return
		}
		if err := cacheRefresher.RefreshListingCache(context.Background()); err != nil {
			log.Printf("Error refreshing listing cache: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
