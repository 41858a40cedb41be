package routes

import (
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/Dev-HideyukiTakahashi/rocketlog-api/config"
	"github.com/Dev-HideyukiTakahashi/rocketlog-api/handlers"
	"github.com/Dev-HideyukiTakahashi/rocketlog-api/middleware"
	"github.com/Dev-HideyukiTakahashi/rocketlog-api/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	registerTagNames()

	secret := []byte(cfg.JWTSecret)

	users := handlers.NewUsersHandler(db)
	sessions := handlers.NewSessionsHandler(db, secret)
	deliveries := handlers.NewDeliveriesHandler(db)
	deliveryStatus := handlers.NewDeliveryStatusHandler(db)
	deliveryLogs := handlers.NewDeliveryLogsHandler(db)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ── Public routes ──────────────────────────────────────────────
	r.POST("/users", users.Create)
	r.POST("/sessions", sessions.Create)

	// ── Deliveries ("sale" only) ───────────────────────────────────
	d := r.Group("/deliveries")
	d.Use(middleware.EnsureAuthenticated(secret), middleware.VerifyUserAuthorization(models.RoleSale))
	{
		d.POST("", deliveries.Create)
		d.GET("", deliveries.Index)
		d.PATCH("/:id/status", deliveryStatus.Update)
	}

	// ── Delivery logs (role-gated per operation) ───────────────────
	dl := r.Group("/delivery-logs")
	dl.Use(middleware.EnsureAuthenticated(secret))
	{
		dl.POST("",
			middleware.VerifyUserAuthorization(models.RoleSale),
			deliveryLogs.Create)
		dl.GET("/:delivery_id/show",
			middleware.VerifyUserAuthorization(models.RoleSale, models.RoleCustomer),
			deliveryLogs.Show)
	}
}

var tagNamesOnce sync.Once

// registerTagNames makes validation errors report json field names
// (e.g. user_id) instead of Go struct field names.
func registerTagNames() {
	tagNamesOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}
