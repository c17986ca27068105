package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Validation limits for task fields.
const (
	TitleMinLen       = 3
	TitleMaxLen       = 255
	DescriptionMaxLen = 1000
)

// Task is the single persisted entity of the service.
//
// ID is assigned by the database exactly once at creation and never reused
// after deletion. UpdatedAt stays nil until the first update.
type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	IsCompleted bool       `json:"isCompleted"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt"`
}

// TaskUpdate carries the mutable fields of a task. Nil fields are left
// unchanged by an update.
type TaskUpdate struct {
	Title       *string
	IsCompleted *bool
}

// Empty reports whether the update would change nothing.
func (u TaskUpdate) Empty() bool {
	return u.Title == nil && u.IsCompleted == nil
}

// NormalizeTitle trims the title and validates its length.
// Returns the trimmed value ready for persistence.
// Lengths count characters, not bytes, matching the varchar column.
func NormalizeTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	length := utf8.RuneCountInString(trimmed)
	if length < TitleMinLen {
		return "", NewValidationError("title", "must be at least 3 characters")
	}
	if length > TitleMaxLen {
		return "", NewValidationError("title", "must be at most 255 characters")
	}
	return trimmed, nil
}

// ValidateDescription checks the optional description length.
func ValidateDescription(description *string) error {
	if description != nil && utf8.RuneCountInString(*description) > DescriptionMaxLen {
		return NewValidationError("description", "must be at most 1000 characters")
	}
	return nil
}
