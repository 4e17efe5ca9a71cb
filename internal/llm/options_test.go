package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCallOptions_Empty(t *testing.T) {
	settings := ResolveCallOptions()
	assert.Nil(t, settings.Temperature)
}

func TestResolveCallOptions_Temperature(t *testing.T) {
	settings := ResolveCallOptions(WithCallTemperature(1.0))
	require.NotNil(t, settings.Temperature)
	assert.InDelta(t, 1.0, *settings.Temperature, 0.001)
}
