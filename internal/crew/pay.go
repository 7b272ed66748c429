package crew

import (
	"mccrew-ai/internal/model"
	"mccrew-ai/pkg/datemath"
)

const (
	nightPremiumFromMinute = 22 * 60
	// nightPremiumRate is applied to the whole shift, not just the night hours.
	nightPremiumRate = 0.5
)

// ShiftHours is the paid length of a shift. Overnight shifts wrap past midnight.
func ShiftHours(s model.Shift) float64 {
	return float64(datemath.SpanMinutes(s.Start, s.End)) / 60
}

// EstimateShiftPay is the demo pay calculation for a single shift: hours × rate,
// plus a flat 0.5 × hours when the shift ends at or after 22:00.
func EstimateShiftPay(s model.Shift, hourlyRate float64) PayEstimate {
	hours := ShiftHours(s)
	est := PayEstimate{
		Hours: hours,
		Base:  hours * hourlyRate,
	}
	if end, err := datemath.ParseClock(s.End); err == nil && end >= nightPremiumFromMinute {
		est.NightPremium = nightPremiumRate * hours
	}
	est.Total = est.Base + est.NightPremium
	return est
}
