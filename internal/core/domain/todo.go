package domain

import (
	"fmt"
	"strings"
)

type Status string

const (
	StatusTodo  Status = "Todo"
	StatusDoing Status = "Doing"
	StatusDone  Status = "Done"
)

// Todo is one task entry on the board. The username is an opaque partition
// key supplied by the client; there is no user table behind it.
type Todo struct {
	ID             int64  `json:"id" db:"id"`
	Username       string `json:"username" db:"username" validate:"required"`
	Title          string `json:"title" db:"title" validate:"required"`
	TargetDatetime string `json:"target_datetime" db:"target_datetime" validate:"required"`
	Status         Status `json:"status" db:"status"`
}

func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusDoing, StatusDone:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

func ParseStatus(raw string) (Status, error) {
	s := Status(raw)

	if !s.IsValid() {
		return "", &ValidationError{Field: "status", Message: fmt.Sprintf("invalid status: %s", raw)}
	}

	return s, nil
}

// NormalizeTargetDatetime converts a client-supplied ISO-8601-like string
// into the naive storage form: the T separator becomes a space, a trailing Z
// and any fractional seconds are dropped. "2024-05-01T10:00:00.000Z" becomes
// "2024-05-01 10:00:00". The transformation is purely textual, no timezone
// math is applied.
func NormalizeTargetDatetime(raw string) string {
	s := strings.Replace(raw, "T", " ", 1)
	s = strings.TrimSuffix(s, "Z")

	if i := strings.Index(s, "."); i >= 0 {
		s = s[:i]
	}

	return s
}

func (t *Todo) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"id":              t.ID,
		"username":        t.Username,
		"title":           t.Title,
		"target_datetime": t.TargetDatetime,
		"status":          t.Status.String(),
	}
}
