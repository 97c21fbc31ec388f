package todo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zobe03/se-todo-app/internal/external"
	"github.com/zobe03/se-todo-app/internal/model"
)

func extTask(id, name string) external.Task {
	return external.Task{
		TaskID:   id,
		Name:     name,
		Priority: "normal",
		Created:  "2025-01-15T10:00:00Z",
		Modified: "2025-01-16T09:30:00Z",
	}
}

func TestImport_NewTasks(t *testing.T) {
	c := newTestController(t)

	src := external.NewMemorySource(
		extTask("ext-1", "First"),
		extTask("ext-2", "Second"),
	)

	stats, err := c.ImportFromSource(src, MergeSkipDuplicates)
	require.NoError(t, err)

	assert.Equal(t, ImportStats{Imported: 2, Skipped: 0, Errors: 0, TotalFetched: 2}, stats)
	assert.Len(t, c.Todos(), 2)

	imported, ok := c.Get("ext-1")
	require.True(t, ok, "the foreign id is reused as-is")
	assert.Equal(t, "First", imported.Title)
}

func TestImport_SkipDuplicates(t *testing.T) {
	c := newTestController(t)

	src := external.NewMemorySource(extTask("x1", "Original"))
	_, err := c.ImportFromSource(src, MergeSkipDuplicates)
	require.NoError(t, err)

	src2 := external.NewMemorySource(extTask("x1", "Replacement"))
	stats, err := c.ImportFromSource(src2, MergeSkipDuplicates)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Skipped)
	assert.Equal(t, 0, stats.Imported)

	kept, _ := c.Get("x1")
	assert.Equal(t, "Original", kept.Title)
}

func TestImport_DefaultStrategyIsSkip(t *testing.T) {
	c := newTestController(t)

	src := external.NewMemorySource(extTask("x1", "One"))
	_, err := c.ImportFromSource(src, "")
	require.NoError(t, err)

	stats, err := c.ImportFromSource(src, "")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Skipped)
}

func TestImport_Overwrite(t *testing.T) {
	c := newTestController(t)

	_, err := c.ImportFromSource(external.NewMemorySource(extTask("x1", "Old")), MergeSkipDuplicates)
	require.NoError(t, err)

	stats, err := c.ImportFromSource(external.NewMemorySource(extTask("x1", "New")), MergeOverwrite)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Imported)
	assert.Len(t, c.Todos(), 1)
	kept, _ := c.Get("x1")
	assert.Equal(t, "New", kept.Title)
}

func TestImport_OverwriteMovesToEnd(t *testing.T) {
	c := newTestController(t)

	_, err := c.ImportFromSource(external.NewMemorySource(
		extTask("x1", "Old"),
		extTask("x2", "Untouched"),
	), MergeSkipDuplicates)
	require.NoError(t, err)

	_, err = c.ImportFromSource(external.NewMemorySource(extTask("x1", "New")), MergeOverwrite)
	require.NoError(t, err)

	todos := c.Todos()
	require.Len(t, todos, 2)
	assert.Equal(t, "x2", todos[0].ID, "the overwritten task leaves its old position")
	assert.Equal(t, "x1", todos[1].ID)
	assert.Equal(t, "New", todos[1].Title)
}

func TestImport_KeepBoth(t *testing.T) {
	c := newTestController(t)

	_, err := c.ImportFromSource(external.NewMemorySource(extTask("x1", "Old")), MergeSkipDuplicates)
	require.NoError(t, err)

	stats, err := c.ImportFromSource(external.NewMemorySource(extTask("x1", "New")), MergeKeepBoth)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Imported)
	require.Len(t, c.Todos(), 2)

	var fresh model.Task
	for _, task := range c.Todos() {
		if task.Title == "New" {
			fresh = task
		}
	}
	assert.NotEqual(t, "x1", fresh.ID, "keep_both assigns a fresh id")
}

func TestImport_PerItemErrors(t *testing.T) {
	c := newTestController(t)

	broken := extTask("bad", "Broken")
	broken.Created = "not a timestamp"

	stats, err := c.ImportFromSource(external.NewMemorySource(
		extTask("ok-1", "Fine"),
		broken,
		extTask("ok-2", "Also fine"),
	), MergeSkipDuplicates)
	require.NoError(t, err, "a bad item never aborts the batch")

	assert.Equal(t, 2, stats.Imported)
	assert.Equal(t, 1, stats.Errors)
	assert.Equal(t, 3, stats.TotalFetched)
	assert.Len(t, c.Todos(), 2)
}

func TestImport_InvalidTasksCountAsErrors(t *testing.T) {
	c := newTestController(t)

	noTitle := extTask("bad-title", "")
	overTagged := extTask("bad-tags", "Too many tags")
	overTagged.Priority = "urgent"
	overTagged.Tags = []string{"a", "b", "c", "d", "e"}

	stats, err := c.ImportFromSource(external.NewMemorySource(
		noTitle,
		overTagged,
		extTask("ok-1", "Fine"),
	), MergeSkipDuplicates)
	require.NoError(t, err)

	assert.Equal(t, ImportStats{Imported: 1, Skipped: 0, Errors: 2, TotalFetched: 3}, stats)
	require.Len(t, c.Todos(), 1)
	assert.Equal(t, "ok-1", c.Todos()[0].ID)
}

func TestImport_UnknownStrategy(t *testing.T) {
	c := newTestController(t)

	_, err := c.ImportFromSource(external.NewMemorySource(), MergeStrategy("bogus"))
	assert.Error(t, err)
}

func TestExport_All(t *testing.T) {
	c := newTestController(t)

	_, err := c.Create(CreateParams{Title: "One"})
	require.NoError(t, err)
	_, err = c.Create(CreateParams{Title: "Two"})
	require.NoError(t, err)

	exported := c.ExportExternal(nil)
	require.Len(t, exported, 2)
	assert.Equal(t, "One", exported[0].Name)
	assert.Equal(t, "Two", exported[1].Name)
}

func TestExport_Subset(t *testing.T) {
	c := newTestController(t)

	first, err := c.Create(CreateParams{Title: "One"})
	require.NoError(t, err)
	_, err = c.Create(CreateParams{Title: "Two"})
	require.NoError(t, err)

	exported := c.ExportExternal([]string{first.ID})
	require.Len(t, exported, 1)
	assert.Equal(t, first.ID, exported[0].TaskID)
}

func TestExport_IsReadOnly(t *testing.T) {
	c := newTestController(t)

	_, err := c.Create(CreateParams{Title: "One"})
	require.NoError(t, err)

	before := c.Todos()
	_ = c.ExportExternal(nil)
	assert.Equal(t, before, c.Todos())
}

func TestExportImportRoundTrip(t *testing.T) {
	c := newTestController(t)

	due := model.NewDate(2025, time.June, 10)
	task, err := c.Create(CreateParams{
		Title:       "Round trip",
		Description: "Survives the journey",
		DueDate:     &due,
		Categories:  []string{"Work", "Urgent"},
		Recurrence:  model.RecurrenceWeekly,
	})
	require.NoError(t, err)

	exported := c.ExportExternal([]string{task.ID})
	require.Len(t, exported, 1)

	// Import into a fresh controller.
	other := NewController(newTestStore(t))
	stats, err := other.ImportFromSource(external.NewMemorySource(exported...), MergeSkipDuplicates)
	require.NoError(t, err)
	require.Equal(t, 1, stats.Imported)

	back, ok := other.Get(task.ID)
	require.True(t, ok)
	assert.Equal(t, "Round trip", back.Title)
	assert.Equal(t, "Survives the journey", back.Description)
	require.NotNil(t, back.DueDate)
	assert.True(t, due.Equal(*back.DueDate))
	assert.Equal(t, model.RecurrenceWeekly, back.Recurrence)
	// "Urgent" comes back via the urgent priority, the rest via tags.
	assert.ElementsMatch(t, []string{"Work", "Urgent"}, back.Categories)
}
