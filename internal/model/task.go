package model

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusOpen      Status = "open"
	StatusCompleted Status = "completed"
)

type RecurrenceType string

const (
	RecurrenceNone    RecurrenceType = "none"
	RecurrenceDaily   RecurrenceType = "daily"
	RecurrenceWeekly  RecurrenceType = "weekly"
	RecurrenceMonthly RecurrenceType = "monthly"
	// RecurrenceCustom is reserved; it has no date-advance rule yet.
	RecurrenceCustom RecurrenceType = "custom"
)

const (
	MaxTitleLength       = 200
	MaxCategoriesPerTask = 5
)

// Task is a single unit of work. Categories are referenced by name, not by
// id, so renaming a category does not cascade to tasks holding the old name.
type Task struct {
	ID                 string         `json:"id"`
	Title              string         `json:"title"`
	Description        string         `json:"description"`
	Status             Status         `json:"status"`
	DueDate            *Date          `json:"due_date"`
	Categories         []string       `json:"categories"`
	Recurrence         RecurrenceType `json:"recurrence"`
	RecurrenceInterval int            `json:"recurrence_interval"`
	RecurrenceEndDate  *Date          `json:"recurrence_end_date"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	CompletedAt        *time.Time     `json:"completed_at"`
}

// NewTask builds an open task with a fresh id. Title and category invariants
// are checked here; capitalization is the controller's concern.
func NewTask(title, description string) (Task, error) {
	if err := ValidateTitle(title); err != nil {
		return Task{}, err
	}
	now := time.Now()
	return Task{
		ID:                 uuid.NewString(),
		Title:              title,
		Description:        description,
		Status:             StatusOpen,
		Categories:         []string{},
		Recurrence:         RecurrenceNone,
		RecurrenceInterval: 1,
		CreatedAt:          now,
		UpdatedAt:          now,
	}, nil
}

func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return NewValidationError("title must not be empty")
	}
	if len([]rune(title)) > MaxTitleLength {
		return NewValidationError("title must be at most %d characters", MaxTitleLength)
	}
	return nil
}

func ValidateCategories(categories []string) error {
	if len(categories) > MaxCategoriesPerTask {
		return NewValidationError("at most %d categories per task", MaxCategoriesPerTask)
	}
	return nil
}

// Touch refreshes the updated-at timestamp.
func (t *Task) Touch() {
	t.UpdatedAt = time.Now()
}

// SetCategories replaces the category list after checking the cap.
func (t *Task) SetCategories(categories []string) error {
	if err := ValidateCategories(categories); err != nil {
		return err
	}
	t.Categories = slices.Clone(categories)
	if t.Categories == nil {
		t.Categories = []string{}
	}
	t.Touch()
	return nil
}

func (t *Task) HasCategory(name string) bool {
	return slices.Contains(t.Categories, name)
}

// MarkCompleted transitions to completed. Calling it on an already completed
// task only refreshes the timestamps.
func (t *Task) MarkCompleted() {
	now := time.Now()
	t.Status = StatusCompleted
	t.CompletedAt = &now
	t.UpdatedAt = now
}

// MarkOpen transitions to open and clears the completion timestamp.
func (t *Task) MarkOpen() {
	t.Status = StatusOpen
	t.CompletedAt = nil
	t.Touch()
}

func (t *Task) ToggleCompletion() {
	if t.Status == StatusOpen {
		t.MarkCompleted()
	} else {
		t.MarkOpen()
	}
}

// IsOverdue reports whether the task is past due and not completed. Tasks
// without a due date are never overdue.
func (t *Task) IsOverdue() bool {
	if t.DueDate == nil || t.Status == StatusCompleted {
		return false
	}
	return t.DueDate.Before(Today())
}

func (t *Task) IsDueToday() bool {
	if t.DueDate == nil {
		return false
	}
	return t.DueDate.Equal(Today())
}

// IsDueThisWeek reports whether the due date falls between today and the end
// of the current week (week ends Sunday).
func (t *Task) IsDueThisWeek() bool {
	if t.DueDate == nil {
		return false
	}
	today := Today()
	daysLeft := (7 - int(today.Weekday())) % 7
	weekEnd := today.AddDays(daysLeft)
	return !t.DueDate.Before(today) && !t.DueDate.After(weekEnd)
}

// NextDueDate returns the due date of the next recurrence instance, or nil
// when the task has no due date or no applicable recurrence rule. CUSTOM has
// no advance rule and yields nil.
func (t *Task) NextDueDate() *Date {
	if t.DueDate == nil {
		return nil
	}
	interval := t.RecurrenceInterval
	if interval < 1 {
		interval = 1
	}
	var next Date
	switch t.Recurrence {
	case RecurrenceDaily:
		next = t.DueDate.AddDays(interval)
	case RecurrenceWeekly:
		next = t.DueDate.AddDays(7 * interval)
	case RecurrenceMonthly:
		next = t.DueDate.AddMonths(interval)
	default:
		return nil
	}
	return &next
}

// ShouldCreateNextRecurrence reports whether completing this task should
// materialize a follow-up instance.
func (t *Task) ShouldCreateNextRecurrence() bool {
	if t.Recurrence == RecurrenceNone {
		return false
	}
	if t.Status != StatusCompleted {
		return false
	}
	if t.RecurrenceEndDate != nil && Today().After(*t.RecurrenceEndDate) {
		return false
	}
	return true
}
