package board

import (
	"github.com/julianstephens/dashlit/internal/constants"
	apperrors "github.com/julianstephens/dashlit/internal/errors"
	"github.com/julianstephens/dashlit/internal/habits"
	"github.com/julianstephens/dashlit/internal/models"
)

func (s *Service) loadHabits(settings models.Settings) ([]models.Habit, error) {
	var list []models.Habit
	if err := s.load(constants.KeyHabits, &list); err != nil {
		return nil, err
	}
	return habits.RefreshDailyState(list, s.now(settings)), nil
}

// Habits returns every habit with CompletedToday recomputed for today.
func (s *Service) Habits() ([]models.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadHabits(s.settings())
}

func (s *Service) AddHabit(name string) (models.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings := s.settings()
	list, err := s.loadHabits(settings)
	if err != nil {
		return models.Habit{}, err
	}
	now := s.now(settings)
	h, err := habits.New(name, now)
	if err != nil {
		return models.Habit{}, err
	}
	list = append(list, h)
	s.save(constants.KeyHabits, list)
	s.record(models.CategoryHabit, "Habit added", quoted(h.Name), now)
	return h, nil
}

// ToggleHabit completes the habit for today or undoes today's completion.
func (s *Service) ToggleHabit(ref string) (models.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings := s.settings()
	list, err := s.loadHabits(settings)
	if err != nil {
		return models.Habit{}, err
	}
	i, err := habits.Find(list, ref)
	if err != nil {
		return models.Habit{}, err
	}

	now := s.now(settings)
	h, n := habits.ToggleCompletion(list[i], now)
	list = habits.Replace(list, h)
	s.save(constants.KeyHabits, list)

	if n != nil {
		s.record(models.CategoryHabit, "Habit completed", quoted(h.Name), now)
		s.notify(settings, *n)
	} else {
		s.record(models.CategoryHabit, "Habit unchecked", quoted(h.Name), now)
	}
	return h, nil
}

func (s *Service) RenameHabit(ref, name string) (models.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings := s.settings()
	list, err := s.loadHabits(settings)
	if err != nil {
		return models.Habit{}, err
	}
	i, err := habits.Find(list, ref)
	if err != nil {
		return models.Habit{}, err
	}
	old := list[i].Name
	h, err := habits.Rename(list[i], name)
	if err != nil {
		return models.Habit{}, err
	}
	list = habits.Replace(list, h)
	s.save(constants.KeyHabits, list)
	s.record(models.CategoryHabit, "Habit renamed", quoted(old)+" -> "+quoted(h.Name), s.now(settings))
	return h, nil
}

// DeleteHabit removes the habit matching ref. Deleting an unknown habit is a
// no-op and reports false.
func (s *Service) DeleteHabit(ref string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings := s.settings()
	list, err := s.loadHabits(settings)
	if err != nil {
		return false, err
	}
	i, err := habits.Find(list, ref)
	if apperrors.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	h := list[i]
	list = habits.Delete(list, h.ID)
	s.save(constants.KeyHabits, list)
	s.record(models.CategoryHabit, "Habit deleted", quoted(h.Name), s.now(settings))
	return true, nil
}
