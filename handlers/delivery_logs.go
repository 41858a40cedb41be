package handlers

import (
	"errors"
	"net/http"

	"github.com/Dev-HideyukiTakahashi/rocketlog-api/apperr"
	"github.com/Dev-HideyukiTakahashi/rocketlog-api/middleware"
	"github.com/Dev-HideyukiTakahashi/rocketlog-api/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DeliveryLogsHandler struct {
	db *gorm.DB
}

func NewDeliveryLogsHandler(db *gorm.DB) *DeliveryLogsHandler {
	return &DeliveryLogsHandler{db: db}
}

type CreateDeliveryLogRequest struct {
	DeliveryID  string `json:"delivery_id" binding:"required,uuid"`
	Description string `json:"description" binding:"required"`
}

// Create attaches a log entry to a delivery. Logs can only be added while
// the delivery is in transit: not yet shipped or already delivered are
// both refused.
func (h *DeliveryLogsHandler) Create(c *gin.Context) {
	var req CreateDeliveryLogRequest
	if !bindJSON(c, &req) {
		return
	}

	deliveryID, err := uuid.Parse(req.DeliveryID)
	if err != nil {
		fail(c, err)
		return
	}

	var delivery models.Delivery
	err = h.db.WithContext(c.Request.Context()).
		First(&delivery, "id = ?", deliveryID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, apperr.WithStatus("Delivery not found", http.StatusNotFound))
			return
		}
		fail(c, err)
		return
	}

	switch delivery.Status {
	case models.StatusProcessing:
		fail(c, apperr.New("change the delivery status to shipped"))
		return
	case models.StatusDelivered:
		fail(c, apperr.New("this delivery has already been delivered"))
		return
	}

	logEntry := models.DeliveryLog{
		DeliveryID:  delivery.ID,
		Description: req.Description,
	}
	if err := h.db.WithContext(c.Request.Context()).Create(&logEntry).Error; err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, logEntry)
}

// Show returns a delivery joined with its owner and logs. A "customer"
// caller may only view their own deliveries; "sale" sees any.
func (h *DeliveryLogsHandler) Show(c *gin.Context) {
	deliveryID, err := uuid.Parse(c.Param("delivery_id"))
	if err != nil {
		fail(c, apperr.New("invalid delivery id"))
		return
	}

	var delivery models.Delivery
	err = h.db.WithContext(c.Request.Context()).
		Preload("User").
		Preload("Logs").
		First(&delivery, "id = ?", deliveryID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, apperr.WithStatus("Delivery not found", http.StatusNotFound))
			return
		}
		fail(c, err)
		return
	}

	if middleware.GetRole(c) == models.RoleCustomer && middleware.GetUserID(c) != delivery.UserID {
		fail(c, apperr.WithStatus("The user can only view their own deliveries", http.StatusUnauthorized))
		return
	}

	c.JSON(http.StatusOK, delivery)
}
