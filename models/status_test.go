package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStageProgression(t *testing.T) {
	assert.Equal(t, 1, StatusPending.Stage())
	assert.Equal(t, 2, StatusPreparing.Stage())
	assert.Equal(t, 3, StatusReady.Stage())
	assert.Equal(t, 4, StatusCompleted.Stage())
}

func TestCancelledHasNoStage(t *testing.T) {
	assert.Equal(t, 0, StatusCancelled.Stage())
	assert.Equal(t, 0, OrderStatus("lost").Stage())
}

func TestTerminalStatuses(t *testing.T) {
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusReady.Terminal())
}

func TestValid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.False(t, OrderStatus("paid").Valid())

	assert.True(t, OrderTypeDelivery.Valid())
	assert.False(t, OrderType("drive-thru").Valid())
}
