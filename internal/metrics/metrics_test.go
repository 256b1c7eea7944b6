package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProject(t *testing.T) {
	p := Project(5000, 100, 0.25)
	assert.InDelta(t, 500000.0, p.MonthlyRevenue, 1e-9)
	assert.InDelta(t, 6000000.0, p.AnnualRevenue, 1e-9)
	assert.InDelta(t, 25.0, p.MonthlyDataLoadGB, 1e-9)
	assert.InDelta(t, 0.83, p.DailyDataLoadGB, 1e-9)
}

func TestProjectZeroVolume(t *testing.T) {
	p := Project(5000, 0, 0.25)
	assert.Equal(t, Projection{}, p)
}

func TestProjectZeroPrice(t *testing.T) {
	p := Project(0, 100, 0.25)
	assert.Zero(t, p.MonthlyRevenue)
	assert.Zero(t, p.AnnualRevenue)
	// Data load depends on volume only.
	assert.InDelta(t, 25.0, p.MonthlyDataLoadGB, 1e-9)
}

func TestProjectScalesLinearlyWithVolume(t *testing.T) {
	single := Project(250, 10, 0.25)
	double := Project(250, 20, 0.25)
	assert.InDelta(t, single.MonthlyRevenue*2, double.MonthlyRevenue, 1e-9)
	assert.InDelta(t, single.AnnualRevenue*2, double.AnnualRevenue, 1e-9)
	assert.InDelta(t, single.MonthlyDataLoadGB*2, double.MonthlyDataLoadGB, 1e-9)
}

func TestProjectIsPure(t *testing.T) {
	assert.Equal(t, Project(123.45, 67, 0.25), Project(123.45, 67, 0.25))
}

func TestDataLoadRounding(t *testing.T) {
	daily, monthly := DataLoad(100, 0.25)
	assert.InDelta(t, 25.0, monthly, 1e-9)
	// 25/30 = 0.8333..., rounded to two decimals.
	assert.InDelta(t, 0.83, daily, 1e-9)
}

func TestRound2(t *testing.T) {
	assert.InDelta(t, 1.24, Round2(1.236), 1e-9)
	assert.InDelta(t, 1.23, Round2(1.234), 1e-9)
	assert.Zero(t, Round2(0))
}

func TestRound1(t *testing.T) {
	assert.InDelta(t, 66.7, Round1(66.666), 1e-9)
	assert.InDelta(t, 50.0, Round1(50.04), 1e-9)
}
