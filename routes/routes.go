package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"vrzone-backend/config"
	"vrzone-backend/controllers"
)

func SetupRouter(bc *controllers.BookingController, log zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"https://vrzone.example.com",
			"http://localhost:3000",
		},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
	}))

	r.Use(config.PerformanceLogger(log))

	r.GET("/health", controllers.HealthCheck)
	r.POST("/book", bc.CreateBooking)

	return r
}
