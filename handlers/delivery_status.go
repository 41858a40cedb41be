package handlers

import (
	"errors"
	"net/http"

	"github.com/Dev-HideyukiTakahashi/rocketlog-api/apperr"
	"github.com/Dev-HideyukiTakahashi/rocketlog-api/models"
	"github.com/Dev-HideyukiTakahashi/rocketlog-api/statemachine"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DeliveryStatusHandler struct {
	db *gorm.DB
}

func NewDeliveryStatusHandler(db *gorm.DB) *DeliveryStatusHandler {
	return &DeliveryStatusHandler{db: db}
}

type UpdateDeliveryStatusRequest struct {
	Status models.DeliveryStatus `json:"status" binding:"required,oneof=processing shipped delivered"`
}

// Update progresses a delivery's status and appends a log entry recording
// the change.
func (h *DeliveryStatusHandler) Update(c *gin.Context) {
	deliveryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		fail(c, apperr.New("invalid delivery id"))
		return
	}

	var req UpdateDeliveryStatusRequest
	if !bindJSON(c, &req) {
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

	if err := statemachine.CanTransition(delivery.Status, req.Status); err != nil {
		fail(c, apperr.New(err.Error()))
		return
	}

	prevStatus := delivery.Status
	err = h.db.WithContext(c.Request.Context()).
		Model(&delivery).
		Update("status", req.Status).Error
	if err != nil {
		fail(c, err)
		return
	}

	logEntry := models.DeliveryLog{
		DeliveryID:  delivery.ID,
		Description: "status changed from " + string(prevStatus) + " to " + string(req.Status),
	}
	if err := h.db.WithContext(c.Request.Context()).Create(&logEntry).Error; err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"delivery": delivery})
}
