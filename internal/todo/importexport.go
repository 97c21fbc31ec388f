package todo

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/zobe03/se-todo-app/internal/external"
	"github.com/zobe03/se-todo-app/internal/model"
)

// MergeStrategy decides what happens when an imported task's id collides
// with an existing one.
type MergeStrategy string

const (
	// MergeSkipDuplicates drops colliding imports and counts them as skipped.
	MergeSkipDuplicates MergeStrategy = "skip_duplicates"
	// MergeOverwrite replaces the existing task with the imported one.
	MergeOverwrite MergeStrategy = "overwrite"
	// MergeKeepBoth gives the imported task a fresh id and keeps both.
	MergeKeepBoth MergeStrategy = "keep_both"
)

// ImportStats summarizes one import run.
type ImportStats struct {
	Imported     int `json:"imported"`
	Skipped      int `json:"skipped"`
	Errors       int `json:"errors"`
	TotalFetched int `json:"total_fetched"`
}

// ImportFromSource fetches all foreign tasks from src, translates each and
// reconciles ids against the existing collection per the strategy. A
// translation failure on one item is counted and does not abort the batch.
// The collection is persisted once if anything was imported.
func (c *Controller) ImportFromSource(src external.Source, strategy MergeStrategy) (ImportStats, error) {
	if strategy == "" {
		strategy = MergeSkipDuplicates
	}
	switch strategy {
	case MergeSkipDuplicates, MergeOverwrite, MergeKeepBoth:
	default:
		return ImportStats{}, fmt.Errorf("unknown merge strategy %q", strategy)
	}

	fetched, err := src.FetchTasks()
	if err != nil {
		return ImportStats{}, fmt.Errorf("fetch external tasks: %w", err)
	}

	imported, mapErrs := external.ToModelAll(fetched)

	stats := ImportStats{
		Errors:       len(mapErrs),
		TotalFetched: len(fetched),
	}

	existing := make(map[string]bool, len(c.todos))
	for _, t := range c.todos {
		existing[t.ID] = true
	}

	for _, t := range imported {
		if existing[t.ID] {
			switch strategy {
			case MergeSkipDuplicates:
				stats.Skipped++
				continue
			case MergeOverwrite:
				// Remove the old task and append the replacement, so the
				// overwritten task moves to the end of the collection.
				idx := c.index(t.ID)
				c.todos = slices.Delete(c.todos, idx, idx+1)
			case MergeKeepBoth:
				t.ID = uuid.NewString()
			}
		}
		existing[t.ID] = true
		c.todos = append(c.todos, t)
		stats.Imported++
	}

	if stats.Imported > 0 {
		c.save()
	}
	return stats, nil
}

// ExportExternal maps tasks into the foreign shape. A nil or empty id list
// exports the whole collection; otherwise only the matching tasks are
// exported, in collection order. Read-only, no persistence side effect.
func (c *Controller) ExportExternal(ids []string) []external.Task {
	source := c.todos
	if len(ids) > 0 {
		source = []model.Task{}
		for _, t := range c.todos {
			if slices.Contains(ids, t.ID) {
				source = append(source, t)
			}
		}
	}
	return external.FromModelAll(source)
}
