package constants

const (
	// DateFormat is the calendar-date format used for completion dates (YYYY-MM-DD)
	DateFormat = "2006-01-02"
)
