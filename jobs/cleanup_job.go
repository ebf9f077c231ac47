package jobs

import (
	"log"
	"time"

	"thekedaar-server/middleware"
)

// CleanupJob prunes idle per-client rate limiters
type CleanupJob struct {
	stopChan chan bool
}

// NewCleanupJob creates a new cleanup job
func NewCleanupJob() *CleanupJob {
	return &CleanupJob{
		stopChan: make(chan bool),
	}
}

// Start begins the cleanup job
func (j *CleanupJob) Start() {
	go j.run()
	log.Println("🚀 Rate limiter cleanup job started")
}

// Stop stops the cleanup job
func (j *CleanupJob) Stop() {
	j.stopChan <- true
	log.Println("🛑 Rate limiter cleanup job stopped")
}

func (j *CleanupJob) run() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			middleware.GlobalRateLimiter.Cleanup()
		case <-j.stopChan:
			return
		}
	}
}
