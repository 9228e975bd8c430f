package server

import (
	"net/http"

	"fitclub/internal/api"
	"fitclub/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200 {object} api.HealthResponse
// @Router       /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, api.HealthResponse{Status: "ok"})
}

// @Summary      Readiness check
// @Description  Reports whether the user data store has finished loading
// @Tags         system
// @Produce      json
// @Success      200 {object} api.ReadyResponse
// @Failure      503 {object} api.ReadyResponse
// @Router       /ready [get]
func Ready(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !st.Ready() {
			c.JSON(http.StatusServiceUnavailable, api.ReadyResponse{Ready: false})
			return
		}
		c.JSON(http.StatusOK, api.ReadyResponse{Ready: true})
	}
}

// @Summary      Prometheus metrics
// @Description  Exposes Prometheus metrics in text format
// @Tags         system
// @Produce      text/plain
// @Success      200 {string} string
// @Router       /metrics [get]
func Metrics() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
