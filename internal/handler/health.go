package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health reports liveness of the API and its two backing stores. 503 when
// either Postgres or Redis is unreachable, so the orchestrator can recycle
// the instance.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		postgres := "ok"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			postgres = "error"
		}

		cache := "ok"
		if rdb.Ping(ctx).Err() != nil {
			cache = "error"
		}

		status := http.StatusOK
		if postgres != "ok" || cache != "ok" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"servicio": "inventia-api",
			"ok":       status == http.StatusOK,
			"postgres": postgres,
			"redis":    cache,
		})
	}
}
