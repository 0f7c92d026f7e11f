package repository

import (
	"database/sql"
	"time"
)

// parseNullableTime reads an optional timestamp column such as ended_at.
// NULL, empty and unparsable values read as nil.
func parseNullableTime(s sql.NullString, layout string) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(layout, s.String)
	if err != nil {
		return nil
	}
	return &t
}

// nullableTimeToString stores a nil time as NULL.
func nullableTimeToString(t *time.Time, layout string) any {
	if t == nil {
		return nil
	}
	return t.Format(layout)
}

// nullableIntToValue stores a nil int, such as an unset RPE, as NULL.
func nullableIntToValue(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

// boolToInt encodes the warmup and drop_set flags.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func intToBool(i int) bool {
	return i != 0
}

// nowUTC stamps created_at.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// nullableString stores "" as NULL, as for a record with no session.
func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// utcPtr returns a copy of t in UTC, or nil.
func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
