package service

import (
	"encoding/json"
	"fmt"
	"time"
)

// TimeLayout is the layout of timestamps in the task file, in local time.
const TimeLayout = "2006-01-02 15:04:05"

// Task represents a single task item.
type Task struct {
	ID          int       `json:"id"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   Timestamp `json:"created_at,omitzero"`
}

// Timestamp is a time encoded in JSON as TimeLayout.
// RFC 3339 strings are accepted on decode.
type Timestamp struct {
	time.Time
}

// NewTimestamp truncates t to whole seconds, the precision of TimeLayout.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.Truncate(time.Second)}
}

// MarshalJSON implements json.Marshaler.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(ts.Local().Format(TimeLayout))
}

// UnmarshalJSON implements json.Unmarshaler.
// null and "" decode to the zero time.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*ts = Timestamp{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("created_at: %w", err)
	}
	if s == "" {
		*ts = Timestamp{}
		return nil
	}
	t, err := time.ParseInLocation(TimeLayout, s, time.Local)
	if err != nil {
		var rerr error
		if t, rerr = time.Parse(time.RFC3339Nano, s); rerr != nil {
			return fmt.Errorf("created_at: %w", err)
		}
	}
	*ts = Timestamp{Time: t}
	return nil
}

// Stats summarizes the task collection.
type Stats struct {
	Total     int
	Completed int
	Pending   int
}

// CompletionRate returns the completed share in percent, 0 for no tasks.
func (s Stats) CompletionRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Completed) / float64(s.Total) * 100
}

// Snapshot is the persisted state of the collection.
type Snapshot struct {
	Tasks []Task

	// NextID is the lowest ID never issued. Zero means unknown.
	NextID int
}
