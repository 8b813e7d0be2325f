package services

import (
	"database/sql"
	"log"
	"time"

	"venturepulse/app/database"
)

// StartScheduler starts the background task scheduler. Expired review rows
// are left for lazy overwrite on the next generation; only sessions are swept.
func StartScheduler(db *sql.DB) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			deleted, err := database.DeleteExpiredSessions(db)
			if err != nil {
				log.Printf("Error deleting expired sessions: %v", err)
				continue
			}
			if deleted > 0 {
				log.Printf("Deleted %d expired sessions", deleted)
			}
		}
	}()
}
