package entity

import (
	"bytes"
	"fmt"
	"strings"
	"time"
)

const (
	// DateLayout formato de fechas sin hora del backend (LocalDate).
	DateLayout = "2006-01-02"
	// DateTimeLayout formato de fechas con hora del backend (LocalDateTime).
	DateTimeLayout = "2006-01-02T15:04:05"
)

var acceptedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	DateTimeLayout,
	"2006-01-02 15:04:05",
	DateLayout,
}

// ParseFlexibleTime interpreta las variantes de fecha que emite el backend.
func ParseFlexibleTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range acceptedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("fecha inválida: %q", s)
}

// Date fecha de calendario (yyyy-mm-dd). El valor cero se serializa como null.
type Date struct {
	time.Time
}

// NewDate construye una Date truncada al día.
func NewDate(y int, m time.Month, d int) Date {
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	t, err := unmarshalTime(b)
	if err != nil {
		return err
	}
	if !t.IsZero() {
		t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
	d.Time = t
	return nil
}

// DateTime instante con hora (yyyy-mm-ddThh:mm:ss). El valor cero se serializa como null.
type DateTime struct {
	time.Time
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(time.RFC3339) + `"`), nil
}

func (d *DateTime) UnmarshalJSON(b []byte) error {
	t, err := unmarshalTime(b)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func unmarshalTime(b []byte) (time.Time, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) || bytes.Equal(b, []byte(`""`)) {
		return time.Time{}, nil
	}
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return time.Time{}, fmt.Errorf("fecha inválida: %s", b)
	}
	return ParseFlexibleTime(string(b[1 : len(b)-1]))
}
