package handlers

import (
	"net/http"

	"github.com/Dev-HideyukiTakahashi/rocketlog-api/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DeliveriesHandler struct {
	db *gorm.DB
}

func NewDeliveriesHandler(db *gorm.DB) *DeliveriesHandler {
	return &DeliveriesHandler{db: db}
}

type CreateDeliveryRequest struct {
	UserID      string `json:"user_id" binding:"required,uuid"`
	Description string `json:"description" binding:"required"`
}

// Create registers a new delivery for a user. Whether the user exists is
// left to the foreign key constraint at the persistence layer.
func (h *DeliveriesHandler) Create(c *gin.Context) {
	var req CreateDeliveryRequest
	if !bindJSON(c, &req) {
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		fail(c, err)
		return
	}

	delivery := models.Delivery{
		UserID:      userID,
		Description: req.Description,
		Status:      models.StatusProcessing,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&delivery).Error; err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "ok"})
}

// Index lists every delivery with its owning user joined in. There is no
// pagination or per-caller scoping: every "sale" caller sees all deliveries.
func (h *DeliveriesHandler) Index(c *gin.Context) {
	var deliveries []models.Delivery
	err := h.db.WithContext(c.Request.Context()).
		Preload("User").
		Order("created_at desc").
		Find(&deliveries).Error
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deliveries": deliveries})
}
