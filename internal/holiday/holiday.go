// Package holiday is a lookup table of Korean public holidays, keyed by
// ISO date string.
package holiday

import (
	"fmt"
	"strings"
	"time"
)

var table = map[string]string{
	"2024-01-01": "신정",
	"2024-02-09": "설날",
	"2024-02-10": "설날",
	"2024-02-11": "설날",
	"2024-03-01": "삼일절",
	"2024-05-05": "어린이날",
	"2024-06-06": "현충일",
	"2024-08-15": "광복절",
	"2024-09-16": "추석",
	"2024-09-17": "추석",
	"2024-09-18": "추석",
	"2024-10-03": "개천절",
	"2024-10-09": "한글날",
	"2024-12-25": "크리스마스",
}

// ForMonth returns the holidays falling in the month of the given
// reference time, as a map from ISO date string to holiday name. Months
// without holidays yield an empty map.
func ForMonth(reference time.Time) map[string]string {
	prefix := fmt.Sprintf("%04d-%02d-", reference.Year(), int(reference.Month()))

	holidays := make(map[string]string)
	for date, name := range table {
		if strings.HasPrefix(date, prefix) {
			holidays[date] = name
		}
	}
	return holidays
}

// Lookup returns the holiday name for an ISO date string, if any.
func Lookup(date string) (string, bool) {
	name, ok := table[date]
	return name, ok
}
