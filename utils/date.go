package utils

import (
	"fmt"
	"os"
	"time"
)

// DateLocation is the application timezone, loaded once at startup. All
// user-facing timestamps (token expiry, email logs, period keys) use it.
var DateLocation *time.Location

// InitializeDateLocation loads the timezone named by APP_TIMEZONE,
// defaulting to Asia/Kolkata.
func InitializeDateLocation() error {
	name := os.Getenv("APP_TIMEZONE")
	if name == "" {
		name = "Asia/Kolkata"
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return fmt.Errorf("failed to load timezone %q: %w", name, err)
	}
	DateLocation = loc
	return nil
}

// Today returns the current time in the application timezone.
func Today() time.Time {
	if DateLocation == nil {
		return time.Now()
	}
	return time.Now().In(DateLocation)
}

// PeriodKey returns the period identifier a recurring engagement uses for a
// given frequency: "2026-08" for monthly, "2026-Q3" for quarterly and
// "2026" for yearly.
func PeriodKey(t time.Time, frequency string) string {
	switch frequency {
	case "QUARTERLY":
		quarter := (int(t.Month())-1)/3 + 1
		return fmt.Sprintf("%d-Q%d", t.Year(), quarter)
	case "YEARLY":
		return fmt.Sprintf("%d", t.Year())
	default:
		return t.Format("2006-01")
	}
}
