package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// TimeLayout is the text form of every timestamp column. It is fixed width
// in UTC, so lexical order equals chronological order.
const TimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Layouts accepted on read besides TimeLayout: RFC 3339, naive ISO 8601 and
// SQLite's CURRENT_TIMESTAMP.
var readLayouts = []string{
	TimeLayout,
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// FormatTime renders t as stored in the database.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// ParseTime parses a stored timestamp.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range readLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

type timeScanner struct {
	dst *time.Time
}

func (s timeScanner) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*s.dst = time.Time{}
		return nil
	case time.Time:
		*s.dst = v.UTC()
		return nil
	case string:
		t, err := ParseTime(v)
		if err != nil {
			return err
		}
		*s.dst = t
		return nil
	case []byte:
		return s.Scan(string(v))
	default:
		return fmt.Errorf("cannot scan %T into timestamp", src)
	}
}

type nullTimeScanner struct {
	dst **time.Time
}

func (s nullTimeScanner) Scan(src any) error {
	if src == nil {
		*s.dst = nil
		return nil
	}
	var t time.Time
	if err := (timeScanner{dst: &t}).Scan(src); err != nil {
		return err
	}
	*s.dst = &t
	return nil
}

// ScanTime returns a scanner that decodes a timestamp column into dst.
func ScanTime(dst *time.Time) sql.Scanner { return timeScanner{dst: dst} }

// ScanNullTime is ScanTime for nullable columns; NULL leaves *dst nil.
func ScanNullTime(dst **time.Time) sql.Scanner { return nullTimeScanner{dst: dst} }

// NullTime is the bind value of a nullable timestamp.
func NullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return FormatTime(*t)
}

// StringList is the column codec for list-valued fields: an ordered
// sequence of strings stored as a JSON array in a TEXT column. NULL, empty
// text and JSON null all read back as an empty, non-nil list.
type StringList []string

// Value implements driver.Valuer; a nil list is stored as "[]".
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src any) error {
	var raw string
	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("cannot scan %T into string list", src)
	}

	if strings.TrimSpace(raw) == "" {
		*l = StringList{}
		return nil
	}

	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return fmt.Errorf("malformed string list %q: %w", raw, err)
	}
	if out == nil {
		out = []string{}
	}
	*l = out
	return nil
}

// ScanList returns a scanner decoding a list column into dst.
func ScanList(dst *[]string) sql.Scanner { return (*StringList)(dst) }

// Ptr returns a pointer to v. It keeps Fields literals short.
func Ptr[T any](v T) *T { return &v }

func valueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

func listOr(p *[]string) []string {
	if p == nil || *p == nil {
		return []string{}
	}
	out := make([]string, len(*p))
	copy(out, *p)
	return out
}

// Base carries the store-assigned fields common to every record.
type Base struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newBase(id string, now time.Time) Base {
	now = now.UTC()
	return Base{ID: id, CreatedAt: now, UpdatedAt: now}
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
