package http

import (
	"mtgsim/internal/delivery/http/debugrouter"
	"mtgsim/internal/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter builds the gin engine serving the RL gateway plus the
// read-only debug sub-router, grounded on the teacher's cmd/server/main.go
// route-grouping style.
func SetupRouter(manager *session.Manager) *gin.Engine {
	r := gin.New()
	r.Use(Recovery(), LoggingMiddleware())

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(config))

	h := NewGameHandler(manager)
	r.GET("/health", h.HealthCheck)

	api := r.Group("/api/v1")
	{
		sessions := api.Group("/sessions")
		sessions.POST("", h.Create)
		sessions.POST("/batch", h.CreateBatch)
		sessions.POST("/batch/step", h.StepBatch)
		sessions.POST("/batch/reset", h.ResetBatch)
		sessions.POST("/batch/delete", h.DeleteBatch)
		sessions.POST("/:sessionId/step", h.Step)
		sessions.POST("/:sessionId/opponent-step", h.OpponentStep)
		sessions.POST("/:sessionId/reset", h.Reset)
		sessions.GET("/:sessionId/state", h.GetState)
		sessions.GET("/:sessionId/legal-actions", h.GetLegalActions)
		sessions.GET("/:sessionId/query-expert", h.QueryExpert)
		sessions.DELETE("/:sessionId", h.Delete)
	}

	r.Any("/debug/*any", gin.WrapH(debugrouter.New(manager)))

	return r
}
