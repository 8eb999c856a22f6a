package tax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateCodeNormalization(t *testing.T) {
	assert.Equal(t, "27", StateCode("Maharashtra"))
	assert.Equal(t, "27", StateCode("MAHARASHTRA"))
	assert.Equal(t, "27", StateCode("  maharashtra  "))
	assert.Equal(t, StateCode(" maharashtra "), StateCode("MAHARASHTRA"))
}

func TestStateCodeUnknown(t *testing.T) {
	assert.Equal(t, UnknownStateCode, StateCode("Atlantis"))
	assert.Equal(t, UnknownStateCode, StateCode(""))
}

func TestStateCodeUnionTerritories(t *testing.T) {
	assert.Equal(t, "07", StateCode("Delhi"))
	assert.Equal(t, "38", StateCode("Ladakh"))
	assert.Equal(t, "34", StateCode("Puducherry"))
}

func TestIsInterstate(t *testing.T) {
	assert.False(t, IsInterstate("Maharashtra", "Maharashtra"))
	assert.True(t, IsInterstate("Maharashtra", "Karnataka"))
	assert.False(t, IsInterstate(" karnataka ", "KARNATAKA"))
}

func TestIsInterstateUnknownStates(t *testing.T) {
	// Two unknown states both resolve to "00" and compare equal.
	assert.False(t, IsInterstate("Atlantis", "Narnia"))
	assert.True(t, IsInterstate("Atlantis", "Maharashtra"))
}

func TestKnownStateCode(t *testing.T) {
	assert.True(t, KnownStateCode("27"))
	assert.True(t, KnownStateCode("01"))
	assert.False(t, KnownStateCode("00"))
	assert.False(t, KnownStateCode("99"))
}
