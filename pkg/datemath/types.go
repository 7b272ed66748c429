package datemath

const (
	// DateLayout is the wire format for calendar dates (YYYY-MM-DD).
	DateLayout = "2006-01-02"

	// ClockLayout is the wire format for wall-clock times (HH:MM, 24h).
	ClockLayout = "15:04"
)
