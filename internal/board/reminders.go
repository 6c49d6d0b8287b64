package board

import (
	"time"

	"github.com/julianstephens/dashlit/internal/constants"
	apperrors "github.com/julianstephens/dashlit/internal/errors"
	"github.com/julianstephens/dashlit/internal/logger"
	"github.com/julianstephens/dashlit/internal/models"
	"github.com/julianstephens/dashlit/internal/reminders"
)

func (s *Service) loadReminders() ([]models.Reminder, error) {
	var list []models.Reminder
	if err := s.load(constants.KeyReminders, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Reminders returns the stored reminders without polling them.
func (s *Service) Reminders() ([]models.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadReminders()
}

// AddReminder schedules a reminder; dueAt must be in the future.
func (s *Service) AddReminder(text string, dueAt time.Time) (models.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings := s.settings()
	list, err := s.loadReminders()
	if err != nil {
		return models.Reminder{}, err
	}
	now := s.now(settings)
	list, r, err := reminders.Add(list, text, dueAt, now)
	if err != nil {
		return models.Reminder{}, err
	}
	s.save(constants.KeyReminders, list)
	s.record(models.CategoryReminder, "Reminder set", quoted(r.Text)+" at "+r.DueAt.In(now.Location()).Format(constants.DateTimeFormat), now)
	return r, nil
}

// PollReminders fires every due reminder once, prunes spent reminders and
// delivers a notification per fired reminder.
func (s *Service) PollReminders() ([]models.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings := s.settings()
	list, err := s.loadReminders()
	if err != nil {
		return nil, err
	}
	now := s.now(settings)
	updated, fired := reminders.Poll(list, now)
	s.save(constants.KeyReminders, updated)

	for _, r := range fired {
		s.record(models.CategoryReminder, "Reminder triggered", quoted(r.Text), now)
	}
	if len(fired) > 0 {
		logger.Info("Reminders fired", "count", len(fired))
	}
	s.notify(settings, reminders.Notifications(fired)...)
	return fired, nil
}

// DeleteReminder removes a reminder by id or unambiguous id prefix. Unknown
// ids are a no-op.
func (s *Service) DeleteReminder(ref string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.loadReminders()
	if err != nil {
		return false, err
	}
	i, err := reminders.Find(list, ref)
	if apperrors.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	r := list[i]
	list = reminders.Delete(list, r.ID)
	s.save(constants.KeyReminders, list)
	s.record(models.CategoryReminder, "Reminder deleted", quoted(r.Text), s.now(s.settings()))
	return true, nil
}
