package statemachine

import (
	"testing"

	"github.com/Dev-HideyukiTakahashi/rocketlog-api/models"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	assert.NoError(t, CanTransition(models.StatusProcessing, models.StatusShipped))
	assert.NoError(t, CanTransition(models.StatusShipped, models.StatusDelivered))

	// no skipping ahead
	assert.Error(t, CanTransition(models.StatusProcessing, models.StatusDelivered))
	// no moving backwards
	assert.Error(t, CanTransition(models.StatusShipped, models.StatusProcessing))
	assert.Error(t, CanTransition(models.StatusDelivered, models.StatusShipped))
	// no self transitions
	assert.Error(t, CanTransition(models.StatusProcessing, models.StatusProcessing))
}

func TestValidTransitionsFrom(t *testing.T) {
	assert.Equal(t, []models.DeliveryStatus{models.StatusShipped}, ValidTransitionsFrom(models.StatusProcessing))
	assert.Equal(t, []models.DeliveryStatus{models.StatusDelivered}, ValidTransitionsFrom(models.StatusShipped))
	assert.Empty(t, ValidTransitionsFrom(models.StatusDelivered))
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(models.StatusProcessing))
	assert.True(t, ValidStatus(models.StatusShipped))
	assert.True(t, ValidStatus(models.StatusDelivered))
	assert.False(t, ValidStatus(models.DeliveryStatus("flying")))
}
