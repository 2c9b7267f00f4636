package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/rockdove/aviation-backend/internal/api/handlers"
	"github.com/rockdove/aviation-backend/internal/api/middleware"
	"github.com/rockdove/aviation-backend/internal/auth"
)

type Deps struct {
	Submit   *handlers.SubmitHandler
	Admin    *handlers.AdminHandler
	Verifier auth.Verifier
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := r.Group("/api")
	api.POST("/submit-form", d.Submit.Submit)

	admin := api.Group("/admin")
	admin.Use(middleware.AdminAuth(d.Verifier))
	admin.GET("", d.Admin.Handle)
	admin.POST("", d.Admin.Handle)
}
