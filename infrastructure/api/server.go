// Package api exposes the chat core over HTTP. It is a thin adapter:
// request parsing, identity header extraction, CORS, and status mapping
// live here, all decisions live in the services.
package api

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/process"
)

// NewRouter assembles the gin engine. Browser clients are served from
// other origins, so CORS is wide open apart from the configured list;
// the identity header must be allowed through preflight.
func NewRouter(handler *Handler, allowedOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(allowedOrigins) == 1 && allowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = allowedOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, IdentityHeader)
	router.Use(cors.New(corsConfig))

	router.POST("/participants", handler.RegisterParticipant)
	router.GET("/participants", handler.ListParticipants)
	router.POST("/messages", handler.PostMessage)
	router.GET("/messages", handler.ListMessages)
	router.POST("/status", handler.Heartbeat)
	router.GET("/health", healthHandler(time.Now()))

	return router
}

// healthHandler reports liveness plus the process self-stats (RSS, CPU,
// OS status) so an operator can eyeball the service without extra tooling.
func healthHandler(startedAt time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		body := gin.H{
			"status": "ok",
			"uptime": time.Since(startedAt).Round(time.Second).String(),
		}
		if p, err := process.NewProcess(int32(os.Getpid())); err == nil {
			if memInfo, err := p.MemoryInfo(); err == nil {
				body["ram_bytes"] = memInfo.RSS
			}
			if cpuPercent, err := p.CPUPercent(); err == nil {
				body["cpu_percent"] = cpuPercent
			}
			if status, err := p.Status(); err == nil {
				body["pid_status"] = status
			}
		}
		c.JSON(http.StatusOK, body)
	}
}
