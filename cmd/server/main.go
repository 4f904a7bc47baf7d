// Command server runs the RL gateway process: an HTTP API and a websocket
// relay over a bounded, in-memory set of game sessions. There is no
// persisted state — restarting the process drops every session.
package main

import (
	"net/http"
	"os"

	"mtgsim/internal/catalog"
	httpdelivery "mtgsim/internal/delivery/http"
	"mtgsim/internal/delivery/ws"
	"mtgsim/internal/logger"
	"mtgsim/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	logLevel := os.Getenv("MTG_LOG_LEVEL")
	var logLevelPtr *string
	if logLevel != "" {
		logLevelPtr = &logLevel
	}
	if err := logger.Init(logLevelPtr); err != nil {
		panic(err)
	}
	log := logger.Get()

	reg := catalog.NewRegistry(catalog.StarterCards)
	manager := session.NewManager(reg)

	hub := ws.NewHub(manager)
	go hub.Run()

	r := httpdelivery.SetupRouter(manager)
	r.GET("/ws", func(c *gin.Context) {
		ws.ServeWS(hub, c.Writer, c.Request)
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Info("mtgsim server starting",
		zap.String("port", port),
		zap.Int("capacity", session.DefaultCapacity),
	)
	log.Info("health check available", zap.String("url", "http://localhost:"+port+"/health"))
	log.Info("websocket relay available", zap.String("url", "ws://localhost:"+port+"/ws"))

	if err := r.Run(":" + port); err != nil && err != http.ErrServerClosed {
		log.Fatal("server failed to start", zap.Error(err))
	}
}
