package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/Harshrawat27/rently/internals/features/users/auth/model"
)

// StartBlacklistCleanupScheduler prunes expired logged-out tokens once a
// day. Entries stick around TOKEN_BLACKLIST_TTL_DAYS past their expiry
// (default 7) so recent logouts stay auditable.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		ttlDays := 7
		if val := os.Getenv("TOKEN_BLACKLIST_TTL_DAYS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil {
				ttlDays = parsed
			}
		}

		for {
			deleteBefore := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)

			var expired []model.TokenBlacklist
			if err := db.
				Where("expired_at < ? AND deleted_at IS NULL", deleteBefore).
				Limit(100).
				Find(&expired).Error; err != nil {
				log.Printf("[CLEANUP ERROR] loading expired tokens: %v", err)
			} else if len(expired) > 0 {
				if err := db.Delete(&expired).Error; err != nil {
					log.Printf("[CLEANUP ERROR] deleting tokens: %v", err)
				} else {
					log.Printf("[CLEANUP] removed %d expired blacklist tokens", len(expired))
				}
			}

			time.Sleep(24 * time.Hour)
		}
	}()
}
