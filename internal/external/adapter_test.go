package external

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zobe03/se-todo-app/internal/model"
)

func strPtr(s string) *string { return &s }

func sampleExt() Task {
	return Task{
		TaskID:   "ext-1",
		Name:     "Review PR",
		Details:  "Look at the diff",
		Priority: "normal",
		Tags:     []string{"Work"},
		Created:  "2025-01-15T10:00:00Z",
		Modified: "2025-01-16T09:30:00Z",
	}
}

func TestToModel_Basic(t *testing.T) {
	got, err := ToModel(sampleExt())
	require.NoError(t, err)

	assert.Equal(t, "ext-1", got.ID)
	assert.Equal(t, "Review PR", got.Title)
	assert.Equal(t, "Look at the diff", got.Description)
	assert.Equal(t, model.StatusOpen, got.Status)
	assert.Equal(t, []string{"Work"}, got.Categories)
	assert.Equal(t, model.RecurrenceNone, got.Recurrence)
	assert.Nil(t, got.DueDate)
	assert.Nil(t, got.CompletedAt)
	assert.Equal(t, 2025, got.CreatedAt.Year())
}

func TestToModel_Completed(t *testing.T) {
	ext := sampleExt()
	ext.IsCompleted = true

	got, err := ToModel(ext)
	require.NoError(t, err)

	assert.Equal(t, model.StatusCompleted, got.Status)
	require.NotNil(t, got.CompletedAt)
	assert.True(t, got.CompletedAt.Equal(got.UpdatedAt), "completed-at mirrors the modified timestamp")
}

func TestToModel_EmptyNameFails(t *testing.T) {
	ext := sampleExt()
	ext.Name = "   "

	_, err := ToModel(ext)
	require.Error(t, err)
	assert.True(t, model.IsValidation(err))
	assert.Contains(t, err.Error(), "ext-1")
}

func TestToModel_TooManyCategoriesFails(t *testing.T) {
	ext := sampleExt()
	ext.Tags = []string{"a", "b", "c", "d", "e", "f"}

	_, err := ToModel(ext)
	require.Error(t, err)
	assert.True(t, model.IsValidation(err))
}

func TestToModel_UrgentCountsAgainstCategoryCap(t *testing.T) {
	ext := sampleExt()
	ext.Priority = "urgent"
	ext.Tags = []string{"a", "b", "c", "d", "e"}

	_, err := ToModel(ext)
	require.Error(t, err, "five tags plus the appended Urgent exceed the cap")
	assert.True(t, model.IsValidation(err))
}

func TestToModel_Deadline(t *testing.T) {
	ext := sampleExt()
	ext.Deadline = strPtr("2025-06-10")

	got, err := ToModel(ext)
	require.NoError(t, err)
	require.NotNil(t, got.DueDate)
	assert.Equal(t, "2025-06-10", got.DueDate.String())
}

func TestToModel_UnparsableDeadlineIsNil(t *testing.T) {
	ext := sampleExt()
	ext.Deadline = strPtr("next tuesday")

	got, err := ToModel(ext)
	require.NoError(t, err, "a bad deadline is not an error")
	assert.Nil(t, got.DueDate)
}

func TestToModel_PriorityAppendsUrgent(t *testing.T) {
	for _, priority := range []string{"high", "urgent", "HIGH", "Urgent"} {
		ext := sampleExt()
		ext.Priority = priority

		got, err := ToModel(ext)
		require.NoError(t, err)
		assert.Equal(t, []string{"Work", "Urgent"}, got.Categories, "priority %s", priority)
	}
}

func TestToModel_UrgentNotDuplicated(t *testing.T) {
	ext := sampleExt()
	ext.Priority = "urgent"
	ext.Tags = []string{"Urgent", "Work"}

	got, err := ToModel(ext)
	require.NoError(t, err)
	assert.Equal(t, []string{"Urgent", "Work"}, got.Categories)
}

func TestToModel_LowPriorityAddsNothing(t *testing.T) {
	ext := sampleExt()
	ext.Priority = "low"

	got, err := ToModel(ext)
	require.NoError(t, err)
	assert.Equal(t, []string{"Work"}, got.Categories)
}

func TestToModel_RepeatPattern(t *testing.T) {
	cases := map[string]model.RecurrenceType{
		"daily":   model.RecurrenceDaily,
		"WEEKLY":  model.RecurrenceWeekly,
		"Monthly": model.RecurrenceMonthly,
		"never":   model.RecurrenceNone,
	}
	for pattern, want := range cases {
		ext := sampleExt()
		ext.RepeatPattern = strPtr(pattern)

		got, err := ToModel(ext)
		require.NoError(t, err)
		assert.Equal(t, want, got.Recurrence, "pattern %s", pattern)
	}
}

func TestToModel_BadTimestamps(t *testing.T) {
	ext := sampleExt()
	ext.Created = "garbage"
	_, err := ToModel(ext)
	assert.Error(t, err)

	ext = sampleExt()
	ext.Modified = ""
	_, err = ToModel(ext)
	assert.Error(t, err)
}

func TestFromModel(t *testing.T) {
	due := model.NewDate(2025, time.June, 10)
	task, err := model.NewTask("Review PR", "Look at the diff")
	require.NoError(t, err)
	task.DueDate = &due
	task.Categories = []string{"Work", "Urgent"}
	task.Recurrence = model.RecurrenceWeekly

	got := FromModel(task)

	assert.Equal(t, task.ID, got.TaskID)
	assert.Equal(t, "Review PR", got.Name)
	assert.Equal(t, "urgent", got.Priority, "urgent category drives the priority")
	assert.Equal(t, []string{"Work"}, got.Tags, "the urgent marker is not exported as a tag")
	require.NotNil(t, got.Deadline)
	assert.Equal(t, "2025-06-10", *got.Deadline)
	require.NotNil(t, got.RepeatPattern)
	assert.Equal(t, "weekly", *got.RepeatPattern)
	assert.False(t, got.IsCompleted)
}

func TestFromModel_NormalPriority(t *testing.T) {
	task, err := model.NewTask("Plain", "")
	require.NoError(t, err)
	task.Categories = []string{"Home"}

	got := FromModel(task)

	assert.Equal(t, "normal", got.Priority)
	assert.Equal(t, []string{"Home"}, got.Tags)
	assert.Nil(t, got.Deadline)
	assert.Nil(t, got.RepeatPattern, "none maps to null")
}

func TestFromModel_CustomRecurrenceMapsToNull(t *testing.T) {
	task, err := model.NewTask("Odd", "")
	require.NoError(t, err)
	task.Recurrence = model.RecurrenceCustom

	assert.Nil(t, FromModel(task).RepeatPattern)
}

func TestToModelAll_PartialFailure(t *testing.T) {
	good := sampleExt()
	bad := sampleExt()
	bad.TaskID = "ext-2"
	bad.Created = "garbage"

	tasks, errs := ToModelAll([]Task{good, bad})

	require.Len(t, tasks, 1)
	assert.Equal(t, "ext-1", tasks[0].ID)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "ext-2")
}

func TestMemorySource(t *testing.T) {
	src := NewMemorySource(sampleExt())
	src.Add(sampleExt())

	fetched, err := src.FetchTasks()
	require.NoError(t, err)
	assert.Len(t, fetched, 2)
}
