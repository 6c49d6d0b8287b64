package board

import (
	"github.com/julianstephens/dashlit/internal/constants"
	apperrors "github.com/julianstephens/dashlit/internal/errors"
	"github.com/julianstephens/dashlit/internal/models"
	"github.com/julianstephens/dashlit/internal/todos"
)

func (s *Service) loadTodos() ([]models.Todo, error) {
	var list []models.Todo
	if err := s.load(constants.KeyTodos, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *Service) Todos() ([]models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadTodos()
}

func (s *Service) AddTodo(text string) (models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.loadTodos()
	if err != nil {
		return models.Todo{}, err
	}
	now := s.now(s.settings())
	list, t, err := todos.Add(list, text, now)
	if err != nil {
		return models.Todo{}, err
	}
	s.save(constants.KeyTodos, list)
	s.record(models.CategoryTodo, "Task added", quoted(t.Text), now)
	return t, nil
}

// ToggleTodo flips a task between open and completed. The returned progress
// line is empty until at least one task is completed.
func (s *Service) ToggleTodo(ref string) (models.Todo, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.loadTodos()
	if err != nil {
		return models.Todo{}, "", err
	}
	i, err := todos.Find(list, ref)
	if err != nil {
		return models.Todo{}, "", err
	}
	list, t, err := todos.Toggle(list, list[i].ID)
	if err != nil {
		return models.Todo{}, "", err
	}
	s.save(constants.KeyTodos, list)

	action := "Task reopened"
	if t.Completed {
		action = "Task completed"
	}
	s.record(models.CategoryTodo, action, quoted(t.Text), s.now(s.settings()))
	return t, todos.ProgressLine(list), nil
}

func (s *Service) CommentTodo(ref, comment string) (models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.loadTodos()
	if err != nil {
		return models.Todo{}, err
	}
	i, err := todos.Find(list, ref)
	if err != nil {
		return models.Todo{}, err
	}
	list, t, err := todos.SetComment(list, list[i].ID, comment)
	if err != nil {
		return models.Todo{}, err
	}
	s.save(constants.KeyTodos, list)
	s.record(models.CategoryTodo, "Task comment updated", quoted(t.Text), s.now(s.settings()))
	return t, nil
}

func (s *Service) DeleteTodo(ref string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.loadTodos()
	if err != nil {
		return false, err
	}
	i, err := todos.Find(list, ref)
	if apperrors.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	t := list[i]
	list = todos.Delete(list, t.ID)
	s.save(constants.KeyTodos, list)
	s.record(models.CategoryTodo, "Task deleted", quoted(t.Text), s.now(s.settings()))
	return true, nil
}
