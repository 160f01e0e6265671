package utils

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// DateOnly stores a calendar date without a time component.
type DateOnly struct {
	time.Time
}

func NewDateOnly(year int, month time.Month, day int) DateOnly {
	return DateOnly{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDateOnly(s string) (DateOnly, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return DateOnly{}, fmt.Errorf("invalid date format: %s", s)
	}
	return DateOnly{t}, nil
}

func (d *DateOnly) UnmarshalJSON(data []byte) error {
	if string(data) == `null` {
		*d = DateOnly{time.Time{}}
		return nil
	}

	str := string(data)
	if len(str) >= 2 && str[0] == '"' && str[len(str)-1] == '"' {
		str = str[1 : len(str)-1]
	}

	parsed, err := ParseDateOnly(str)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.Format("2006-01-02") + `"`), nil
}

func (d DateOnly) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time.Format("2006-01-02"), nil
}

func (d *DateOnly) Scan(value interface{}) error {
	if value == nil {
		*d = DateOnly{time.Time{}}
		return nil
	}

	switch v := value.(type) {
	case time.Time:
		*d = DateOnly{v}
		return nil
	case string:
		parsed, err := ParseDateOnly(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		parsed, err := ParseDateOnly(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into DateOnly", value)
	}
}

// Before reports whether d falls on an earlier calendar day than other.
func (d DateOnly) Before(other DateOnly) bool {
	return d.Time.Truncate(24 * time.Hour).Before(other.Time.Truncate(24 * time.Hour))
}

func (d DateOnly) GormDataType() string {
	return "date"
}
