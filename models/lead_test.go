package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectivePricePrefersAgreed(t *testing.T) {
	offered, agreed := 500.0, 450.0
	l := Lead{OfferedPrice: &offered, AgreedPrice: &agreed}
	assert.InDelta(t, 450.0, l.EffectivePrice(), 1e-9)
}

func TestEffectivePriceFallsBackToOffered(t *testing.T) {
	offered := 500.0
	l := Lead{OfferedPrice: &offered}
	assert.InDelta(t, 500.0, l.EffectivePrice(), 1e-9)
}

func TestEffectivePriceZeroWhenUnset(t *testing.T) {
	assert.Zero(t, Lead{}.EffectivePrice())
}

func TestVolume(t *testing.T) {
	v := 120
	assert.Equal(t, 120, Lead{ExpectedVolume: &v}.Volume())
	assert.Zero(t, Lead{}.Volume())
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleAdmin))
	assert.True(t, ValidRole(RoleManager))
	assert.True(t, ValidRole(RoleMember))
	assert.False(t, ValidRole("superuser"))
	assert.False(t, ValidRole(""))
}
