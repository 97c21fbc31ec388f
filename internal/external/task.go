package external

// Task is the foreign task shape used for import and export. It is an
// interchange format only and is never persisted.
type Task struct {
	TaskID        string   `json:"task_id"`
	Name          string   `json:"name"`
	Details       string   `json:"details"`
	Priority      string   `json:"priority"` // low | normal | high | urgent
	Deadline      *string  `json:"deadline"` // ISO date or null
	Tags          []string `json:"tags"`
	IsCompleted   bool     `json:"is_completed"`
	Created       string   `json:"created"`  // ISO datetime
	Modified      string   `json:"modified"` // ISO datetime
	RepeatPattern *string  `json:"repeat_pattern"` // daily | weekly | monthly | null
}

// Source is a provider of foreign tasks. The real system would talk to a
// remote service here; this repository only ships a local stand-in.
type Source interface {
	FetchTasks() ([]Task, error)
}

// MemorySource is an in-memory Source used for demos and tests.
type MemorySource struct {
	tasks []Task
}

func NewMemorySource(tasks ...Task) *MemorySource {
	return &MemorySource{tasks: tasks}
}

func (s *MemorySource) Add(t Task) {
	s.tasks = append(s.tasks, t)
}

func (s *MemorySource) FetchTasks() ([]Task, error) {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out, nil
}
