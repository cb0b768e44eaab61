package economy

import (
	"fmt"
	"strings"

	"CampusHub/internal/model"
)

// AddTask appends a todo item.
func (e *Engine) AddTask(s model.State, title string) (model.State, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return s, fmt.Errorf("%w: empty task title", model.ErrInvalidArgument)
	}
	tasks := make([]model.Task, 0, len(s.Home.Tasks)+1)
	tasks = append(tasks, s.Home.Tasks...)
	s.Home.Tasks = append(tasks, model.Task{ID: e.NewID(), Title: title})
	return s, nil
}

// ToggleTask flips the done flag of one task.
func (e *Engine) ToggleTask(s model.State, id string) (model.State, error) {
	for i, t := range s.Home.Tasks {
		if t.ID != id {
			continue
		}
		tasks := make([]model.Task, len(s.Home.Tasks))
		copy(tasks, s.Home.Tasks)
		tasks[i].Done = !t.Done
		s.Home.Tasks = tasks
		return s, nil
	}
	return s, fmt.Errorf("%w: task %q", model.ErrNotFound, id)
}
