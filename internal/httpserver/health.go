package httpserver

import (
	"net/http"

	"content-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Content API V1"
	HealthVersion = "1.0.0"
	ServiceName   = "content-srv"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck handles readiness check requests (Postgres + Redis, plus Qdrant and Kafka when configured).
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "A dependency is down"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()
	if err := srv.postgresDB.PingContext(ctx); err != nil {
		notReady(c, "Database connection failed", err)
		return
	}
	if err := srv.redisClient.Ping(ctx); err != nil {
		notReady(c, "Redis connection failed", err)
		return
	}
	if srv.qdrantClient != nil {
		if err := srv.qdrantClient.Ping(ctx); err != nil {
			notReady(c, "Qdrant connection failed", err)
			return
		}
	}
	if srv.kafkaProducer != nil {
		if err := srv.kafkaProducer.HealthCheck(); err != nil {
			notReady(c, "Kafka producer unhealthy", err)
			return
		}
	}
	response.OK(c, gin.H{
		"status":   "ready",
		"message":  HealthMessage,
		"version":  HealthVersion,
		"service":  ServiceName,
		"database": "connected",
		"redis":    "connected",
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

func notReady(c *gin.Context, message string, err error) {
	c.JSON(http.StatusServiceUnavailable, gin.H{
		"status":  "not ready",
		"message": message,
		"error":   err.Error(),
	})
}
