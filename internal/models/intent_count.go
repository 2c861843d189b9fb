package models

import "time"

// IntentCount is the number of chat messages classified into an intent.
type IntentCount struct {
	Intent     string
	Count      int64
	LastSeenAt time.Time
}
