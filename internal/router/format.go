package router

import (
	"fmt"

	"mccrew-ai/internal/model"
	"mccrew-ai/pkg/datemath"
)

func formatShift(s model.Shift, hours float64) string {
	return fmt.Sprintf("%s • %s–%s (%s hrs)", s.Date, s.Start, s.End, formatHours(hours))
}

func formatHours(h float64) string {
	return fmt.Sprintf("%.2f", h)
}

func formatMoney(v float64) string {
	return fmt.Sprintf("£%.2f", v)
}

func formatKnowledge(e model.KnowledgeEntry) string {
	return e.Topic + "\n" + e.Answer
}

func shiftHours(s model.Shift) float64 {
	return float64(datemath.SpanMinutes(s.Start, s.End)) / 60
}
