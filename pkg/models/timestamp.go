package models

import "time"

// Timestamp keeps the backend's string verbatim; formats differ between
// endpoints.
type Timestamp string

var timestampLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"}

func (t Timestamp) Time() (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, string(t)); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
