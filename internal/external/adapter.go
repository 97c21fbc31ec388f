package external

import (
	"fmt"
	"strings"
	"time"

	"github.com/zobe03/se-todo-app/internal/model"
)

// urgentCategory is appended on import for high/urgent priority tasks and
// drives the priority on export.
const urgentCategory = "Urgent"

// ToModel translates a foreign task into the domain shape. The foreign id is
// reused as-is; resolving id collisions is the importer's job. An unparsable
// deadline is treated as "no due date", but unparsable created/modified
// timestamps are an error since the domain requires them. The domain's title
// and category limits apply to the converted task, counting an appended
// "Urgent" category against the cap.
func ToModel(ext Task) (model.Task, error) {
	created, err := parseTimestamp(ext.Created)
	if err != nil {
		return model.Task{}, fmt.Errorf("task %s: created: %w", ext.TaskID, err)
	}
	modified, err := parseTimestamp(ext.Modified)
	if err != nil {
		return model.Task{}, fmt.Errorf("task %s: modified: %w", ext.TaskID, err)
	}

	status := model.StatusOpen
	var completedAt *time.Time
	if ext.IsCompleted {
		status = model.StatusCompleted
		completedAt = &modified
	}

	var dueDate *model.Date
	if ext.Deadline != nil {
		if d, err := model.ParseDate(*ext.Deadline); err == nil {
			dueDate = &d
		}
	}

	categories := append([]string{}, ext.Tags...)
	switch strings.ToLower(ext.Priority) {
	case "high", "urgent":
		found := false
		for _, c := range categories {
			if c == urgentCategory {
				found = true
				break
			}
		}
		if !found {
			categories = append(categories, urgentCategory)
		}
	}

	if err := model.ValidateTitle(ext.Name); err != nil {
		return model.Task{}, fmt.Errorf("task %s: %w", ext.TaskID, err)
	}
	if err := model.ValidateCategories(categories); err != nil {
		return model.Task{}, fmt.Errorf("task %s: %w", ext.TaskID, err)
	}

	return model.Task{
		ID:                 ext.TaskID,
		Title:              ext.Name,
		Description:        ext.Details,
		Status:             status,
		DueDate:            dueDate,
		Categories:         categories,
		Recurrence:         repeatPatternToRecurrence(ext.RepeatPattern),
		RecurrenceInterval: 1,
		CreatedAt:          created,
		UpdatedAt:          modified,
		CompletedAt:        completedAt,
	}, nil
}

// FromModel translates a domain task into the foreign shape. The priority
// mapping is lossy: anything urgent-tagged becomes "urgent", everything
// else "normal"; high and urgent are not distinguished on the way back.
func FromModel(t model.Task) Task {
	priority := "normal"
	tags := make([]string, 0, len(t.Categories))
	for _, c := range t.Categories {
		if c == urgentCategory {
			priority = "urgent"
			continue
		}
		tags = append(tags, c)
	}

	var deadline *string
	if t.DueDate != nil {
		s := t.DueDate.String()
		deadline = &s
	}

	return Task{
		TaskID:        t.ID,
		Name:          t.Title,
		Details:       t.Description,
		Priority:      priority,
		Deadline:      deadline,
		Tags:          tags,
		IsCompleted:   t.Status == model.StatusCompleted,
		Created:       t.CreatedAt.Format(time.RFC3339),
		Modified:      t.UpdatedAt.Format(time.RFC3339),
		RepeatPattern: recurrenceToRepeatPattern(t.Recurrence),
	}
}

// ToModelAll maps each foreign task independently. A failing element is
// reported through the error slice and never aborts the rest of the batch.
func ToModelAll(exts []Task) ([]model.Task, []error) {
	tasks := make([]model.Task, 0, len(exts))
	var errs []error
	for _, ext := range exts {
		t, err := ToModel(ext)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		tasks = append(tasks, t)
	}
	return tasks, errs
}

func FromModelAll(tasks []model.Task) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, FromModel(t))
	}
	return out
}

func repeatPatternToRecurrence(pattern *string) model.RecurrenceType {
	if pattern == nil {
		return model.RecurrenceNone
	}
	switch strings.ToLower(strings.TrimSpace(*pattern)) {
	case "daily":
		return model.RecurrenceDaily
	case "weekly":
		return model.RecurrenceWeekly
	case "monthly":
		return model.RecurrenceMonthly
	default:
		return model.RecurrenceNone
	}
}

func recurrenceToRepeatPattern(r model.RecurrenceType) *string {
	switch r {
	case model.RecurrenceDaily, model.RecurrenceWeekly, model.RecurrenceMonthly:
		s := string(r)
		return &s
	default:
		// NONE and CUSTOM have no foreign equivalent.
		return nil
	}
}

func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("missing timestamp")
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}
