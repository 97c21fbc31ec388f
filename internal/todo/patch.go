package todo

import (
	"strings"

	"github.com/zobe03/se-todo-app/internal/model"
)

// Patch represents a partial task update.
// nil pointer => "no change"
// empty string for the date fields => clear (set to nil)
// The task id has no patch field; it is immutable.
type Patch struct {
	Title              *string               `json:"title,omitempty"`
	Description        *string               `json:"description,omitempty"`
	DueDate            *string               `json:"due_date,omitempty"`
	Categories         *[]string             `json:"categories,omitempty"`
	Recurrence         *model.RecurrenceType `json:"recurrence,omitempty"`
	RecurrenceInterval *int                  `json:"recurrence_interval,omitempty"`
	RecurrenceEndDate  *string               `json:"recurrence_end_date,omitempty"`
}

func applyPatch(t *model.Task, p Patch) error {
	if p.Title != nil {
		if err := model.ValidateTitle(*p.Title); err != nil {
			return err
		}
		t.Title = model.CapitalizeFirst(strings.TrimSpace(*p.Title))
	}

	if p.Description != nil {
		t.Description = model.CapitalizeSentences(strings.TrimSpace(*p.Description))
	}

	if p.DueDate != nil {
		due, err := parseDateField(*p.DueDate)
		if err != nil {
			return err
		}
		t.DueDate = due
	}

	if p.Categories != nil {
		if err := model.ValidateCategories(*p.Categories); err != nil {
			return err
		}
		if *p.Categories == nil {
			t.Categories = []string{}
		} else {
			t.Categories = append([]string{}, (*p.Categories)...)
		}
	}

	if p.Recurrence != nil {
		t.Recurrence = *p.Recurrence
	}
	if p.RecurrenceInterval != nil && *p.RecurrenceInterval > 0 {
		t.RecurrenceInterval = *p.RecurrenceInterval
	}

	if p.RecurrenceEndDate != nil {
		end, err := parseDateField(*p.RecurrenceEndDate)
		if err != nil {
			return err
		}
		t.RecurrenceEndDate = end
	}

	return nil
}

func parseDateField(s string) (*model.Date, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	d, err := model.ParseDate(s)
	if err != nil {
		return nil, model.NewValidationError("invalid date %q, expected YYYY-MM-DD", s)
	}
	return &d, nil
}
