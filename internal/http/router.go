// README: HTTP router registration, CORS, and middleware wiring.
package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripsmith/internal/http/handlers"
	"tripsmith/internal/http/middleware"
	"tripsmith/internal/itinerary"
)

// RouterDeps carries everything the router needs; construction stays in main.
type RouterDeps struct {
	Composer *itinerary.Composer
	Log      *zap.Logger
	// CORSOrigin is the single trusted browser origin.
	CORSOrigin string
}

func NewRouter(deps RouterDeps) *gin.Engine {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(log))
	r.Use(middleware.Recovery(log))

	if deps.CORSOrigin != "" {
		r.Use(cors.New(cors.Config{
			AllowOrigins:  []string{deps.CORSOrigin},
			AllowMethods:  []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders: []string{"Content-Length", "Content-Disposition"},
			MaxAge:        12 * time.Hour,
		}))
	}

	h := handlers.NewItineraryHandler(deps.Composer, log)
	r.POST("/generate-itinerary", h.Generate)
	r.POST("/generate-itinerary/pdf", h.GeneratePDF)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
