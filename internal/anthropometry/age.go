package anthropometry

import (
	"strings"
	"time"
)

const isoDate = "2006-01-02"

// Age returns the whole years elapsed since birthDate (YYYY-MM-DD) as of
// today in local time.
func Age(birthDate string) int {
	return AgeAt(birthDate, time.Now())
}

// AgeAt returns the whole years elapsed between birthDate and now, minus
// one when now's month/day precedes the birth month/day. Empty or malformed
// dates yield 0.
func AgeAt(birthDate string, now time.Time) int {
	birthDate = strings.TrimSpace(birthDate)
	if birthDate == "" {
		return 0
	}
	// Timestamps such as 1990-04-02T00:00:00Z carry the date in their prefix.
	if len(birthDate) > len(isoDate) {
		birthDate = birthDate[:len(isoDate)]
	}
	birth, err := time.Parse(isoDate, birthDate)
	if err != nil {
		return 0
	}

	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}
