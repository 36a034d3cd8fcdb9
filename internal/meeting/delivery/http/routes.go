package http

import (
	"github.com/gin-gonic/gin"

	"smartmeet/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// The two parse endpoints sit in front of the LLM call and are rate
// limited per client IP.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw *middleware.Middleware) {
	rg.POST("", mw.RateLimit(), h.Schedule)
	rg.POST("/preview", mw.RateLimit(), h.Preview)
	rg.GET("", h.List)
	rg.GET("/slots", h.Slots)
	rg.GET("/:id", h.Detail)
	rg.DELETE("/:id", h.Cancel)
}
