package board

import (
	"github.com/julianstephens/dashlit/internal/constants"
	apperrors "github.com/julianstephens/dashlit/internal/errors"
	"github.com/julianstephens/dashlit/internal/models"
	"github.com/julianstephens/dashlit/internal/notes"
)

func (s *Service) loadNotes() ([]models.Note, error) {
	var list []models.Note
	if err := s.load(constants.KeyNotes, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Notes returns every note, most recently updated first.
func (s *Service) Notes() ([]models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.loadNotes()
	if err != nil {
		return nil, err
	}
	return notes.Sorted(list), nil
}

func (s *Service) Note(ref string) (models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.loadNotes()
	if err != nil {
		return models.Note{}, err
	}
	i, err := notes.Find(list, ref)
	if err != nil {
		return models.Note{}, err
	}
	return list[i], nil
}

func (s *Service) AddNote(title string) (models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.loadNotes()
	if err != nil {
		return models.Note{}, err
	}
	now := s.now(s.settings())
	list, n, err := notes.Add(list, title, now)
	if err != nil {
		return models.Note{}, err
	}
	s.save(constants.KeyNotes, list)
	s.record(models.CategoryNote, "Note created", quoted(n.Title), now)
	return n, nil
}

// UpdateNote replaces a note's title and Markdown body.
func (s *Service) UpdateNote(ref, title, markdown string) (models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.loadNotes()
	if err != nil {
		return models.Note{}, err
	}
	i, err := notes.Find(list, ref)
	if err != nil {
		return models.Note{}, err
	}
	now := s.now(s.settings())
	list, n, err := notes.Update(list, list[i].ID, title, markdown, now)
	if err != nil {
		return n, err
	}
	s.save(constants.KeyNotes, list)
	s.record(models.CategoryNote, "Note updated", quoted(n.Title), now)
	return n, nil
}

// RenameNote changes a note's title and keeps its body.
func (s *Service) RenameNote(ref, title string) (models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.loadNotes()
	if err != nil {
		return models.Note{}, err
	}
	i, err := notes.Find(list, ref)
	if err != nil {
		return models.Note{}, err
	}
	now := s.now(s.settings())
	list, n, err := notes.Retitle(list, list[i].ID, title, now)
	if err != nil {
		return n, err
	}
	s.save(constants.KeyNotes, list)
	s.record(models.CategoryNote, "Note updated", quoted(n.Title), now)
	return n, nil
}

func (s *Service) DeleteNote(ref string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.loadNotes()
	if err != nil {
		return false, err
	}
	i, err := notes.Find(list, ref)
	if apperrors.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	n := list[i]
	list = notes.Delete(list, n.ID)
	s.save(constants.KeyNotes, list)
	s.record(models.CategoryNote, "Note deleted", quoted(n.Title), s.now(s.settings()))
	return true, nil
}
