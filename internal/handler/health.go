package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health reports liveness of the API and its backing services.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		dbOK := false
		if sqlDB, err := db.DB(); err == nil {
			dbOK = sqlDB.PingContext(ctx) == nil
		}

		redisOK := rdb != nil && rdb.Ping(ctx).Err() == nil

		status := http.StatusOK
		if !dbOK || !redisOK {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{
			"ok":    dbOK && redisOK,
			"db":    dbOK,
			"redis": redisOK,
		})
	}
}
