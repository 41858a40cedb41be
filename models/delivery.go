package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeliveryStatus represents all possible states of a delivery
type DeliveryStatus string

const (
	StatusProcessing DeliveryStatus = "processing"
	StatusShipped    DeliveryStatus = "shipped"
	StatusDelivered  DeliveryStatus = "delivered"
)

type Delivery struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID      `json:"user_id" gorm:"type:uuid;not null;index"`
	User        User           `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Description string         `json:"description" gorm:"not null"`
	Status      DeliveryStatus `json:"status" gorm:"not null;default:'processing'"`
	Logs        []DeliveryLog  `json:"logs,omitempty" gorm:"foreignKey:DeliveryID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (d *Delivery) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// DeliveryLog is a timestamped note attached to a delivery, recording
// progress events and status changes.
type DeliveryLog struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	DeliveryID  uuid.UUID `json:"delivery_id" gorm:"type:uuid;not null;index"`
	Description string    `json:"description" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (l *DeliveryLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
