package logging

import (
	"log/slog"
	"time"

	"github.com/kampusapp/admin-backend/internal/models"
	"gorm.io/gorm"
)

// StartCleanup sweeps system_logs daily, deleting entries older than the
// configured retention window (LOG_RETENTION).
func StartCleanup(db *gorm.DB, retention time.Duration, done chan struct{}) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				cutoff := time.Now().Add(-retention)
				result := db.Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
				if result.Error != nil {
					slog.Error("log cleanup failed", "error", result.Error)
				} else if result.RowsAffected > 0 {
					slog.Info("log cleanup completed", "deleted", result.RowsAffected, "retention", retention.String())
				}
			case <-done:
				return
			}
		}
	}()
}
