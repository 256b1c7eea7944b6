// Package metrics converts a lead's price and volume into revenue and
// data-load projections. Pure computation; price resolution (agreed over
// offered) is the caller's job.
package metrics

import "math"

// DefaultAvgScanSizeGB is the assumed data size of one scan when no
// deployment-specific value is configured.
const DefaultAvgScanSizeGB = 0.25

// Projection holds the four derived figures for a price/volume pair, each
// rounded to two decimals.
type Projection struct {
	MonthlyRevenue    float64
	AnnualRevenue     float64
	DailyDataLoadGB   float64
	MonthlyDataLoadGB float64
}

// Project computes revenue and data-load projections from a unit price and
// a monthly volume. Zero inputs yield zero outputs; there are no error
// conditions.
func Project(price float64, volume int, scanSizeGB float64) Projection {
	monthly := price * float64(volume)
	dailyLoad, monthlyLoad := DataLoad(int64(volume), scanSizeGB)
	return Projection{
		MonthlyRevenue:    Round2(monthly),
		AnnualRevenue:     Round2(monthly * 12),
		DailyDataLoadGB:   dailyLoad,
		MonthlyDataLoadGB: monthlyLoad,
	}
}

// DataLoad converts a monthly scan volume into daily and monthly data-load
// estimates in GB, rounded to two decimals.
func DataLoad(volume int64, scanSizeGB float64) (dailyGB, monthlyGB float64) {
	monthly := float64(volume) * scanSizeGB
	return Round2(monthly / 30), Round2(monthly)
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round1 rounds to one decimal place. Used for percentage figures.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
