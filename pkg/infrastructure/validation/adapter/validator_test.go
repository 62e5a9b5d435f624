package adapter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	Name    string        `validate:"required"`
	Count   int           `validate:"required,gt=0"`
	Address sampleAddress
	Items   []sampleItem  `validate:"dive"`
}

type sampleAddress struct {
	City string `validate:"required"`
}

type sampleItem struct {
	Code string `validate:"required,numeric"`
}

func TestValidateCollectsEveryViolation(t *testing.T) {
	validator := NewCommandValidator[samplePayload]()

	notifications := validator.Validate(context.Background(), samplePayload{
		Items: []sampleItem{{Code: "abc"}},
	})

	require.Len(t, notifications, 4)

	keys := make([]string, 0, len(notifications))
	for _, notification := range notifications {
		keys = append(keys, notification.Key)
	}
	assert.Contains(t, keys, "Name")
	assert.Contains(t, keys, "Count")
	assert.Contains(t, keys, "Address.City")
	assert.Contains(t, keys, "Items[0].Code")
}

func TestValidateValidPayload(t *testing.T) {
	validator := NewCommandValidator[samplePayload]()

	notifications := validator.Validate(context.Background(), samplePayload{
		Name:    "Acme",
		Count:   1,
		Address: sampleAddress{City: "São Paulo"},
		Items:   []sampleItem{{Code: "42"}},
	})

	assert.Empty(t, notifications)
}

func TestFieldKeyStripsRootTypeName(t *testing.T) {
	validator := NewCommandValidator[sampleAddress]()

	notifications := validator.Validate(context.Background(), sampleAddress{})

	require.Len(t, notifications, 1)
	assert.Equal(t, "City", notifications[0].Key)
}
