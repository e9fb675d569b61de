package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// MessageResponse is returned by writes that have nothing else to report.
type MessageResponse struct {
	Message string `json:"message"`
}

// LooseString accepts a JSON string or number. The billing screen sends
// mattam as either, depending on how the operator typed it.
type LooseString string

func (s *LooseString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*s = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*s = LooseString(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*s = LooseString(n.String())
	return nil
}

// DateOrTime accepts an RFC3339 timestamp or a plain YYYY-MM-DD date.
// An empty string or null leaves it zero.
type DateOrTime struct {
	Time     time.Time
	DateOnly bool
}

func (d *DateOrTime) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*d = DateOrTime{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("expected a YYYY-MM-DD date or an RFC3339 timestamp, got %s", b)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		*d = DateOrTime{}
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		*d = DateOrTime{Time: t}
		return nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		*d = DateOrTime{Time: t, DateOnly: true}
		return nil
	}
	return fmt.Errorf("expected a YYYY-MM-DD date or an RFC3339 timestamp, got %q", s)
}

func (d DateOrTime) IsZero() bool { return d.Time.IsZero() }

// Resolve returns the instant to store. A plain date keeps now's time of day
// in loc, so a payment dated today still lands after this morning's sales.
func (d DateOrTime) Resolve(now time.Time, loc *time.Location) time.Time {
	if !d.DateOnly {
		return d.Time
	}
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	y, m, day := d.Time.Date()
	return time.Date(y, m, day, local.Hour(), local.Minute(), local.Second(), local.Nanosecond(), loc)
}
