// Package app implements application business logic for the notes service.
package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"gonotes/internal/notes/domain/entities"
	"gonotes/internal/notes/ports/repositories"
	"gonotes/pkg/logger"
)

// Сообщения об ошибках хранилища.
const (
	ErrMsgListNotes  = "failed to list notes"
	ErrMsgCreateNote = "failed to create note"
	ErrMsgUpdateNote = "failed to update note"
	ErrMsgDeleteNote = "failed to delete note"
)

// NoteInput - данные клиента для создания и обновления заметки.
type NoteInput struct {
	Title       string
	Description string
	Category    string
}

// Clock возвращает текущее время.
type Clock func() time.Time

// NoteUseCase представляет собой бизнес-логику работы с заметками.
type NoteUseCase struct {
	noteRepo repositories.NoteRepository
	now      Clock
}

// Option настраивает NoteUseCase.
type Option func(*NoteUseCase)

// WithClock подменяет источник времени.
func WithClock(clock Clock) Option {
	return func(uc *NoteUseCase) {
		uc.now = clock
	}
}

// NewNoteUseCase создает новый экземпляр NoteUseCase.
func NewNoteUseCase(noteRepo repositories.NoteRepository, opts ...Option) *NoteUseCase {
	uc := &NoteUseCase{
		noteRepo: noteRepo,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// validate проверяет ввод и возвращает нормализованную категорию.
// Сначала проверяются обязательные поля, затем категория.
func validate(input NoteInput) (entities.Category, error) {
	if input.Title == "" || input.Description == "" {
		return entities.CategoryNone, entities.ErrTitleDescriptionRequired
	}

	category := entities.NormalizeCategory(input.Category)
	if category != entities.CategoryNone && !category.Valid() {
		return entities.CategoryNone, entities.ErrInvalidCategory
	}

	return category, nil
}

// ListNotes возвращает все заметки, начиная с самых новых.
func (uc *NoteUseCase) ListNotes(ctx context.Context) ([]*entities.Note, error) {
	notes, err := uc.noteRepo.List(ctx)
	if err != nil {
		return nil, entities.Internal(ErrMsgListNotes, err)
	}
	if notes == nil {
		notes = make([]*entities.Note, 0)
	}
	return notes, nil
}

// ListNotesByCategory возвращает заметки указанной категории.
// Пустой результат считается ошибкой поиска.
func (uc *NoteUseCase) ListNotesByCategory(ctx context.Context, rawCategory string) ([]*entities.Note, error) {
	category := entities.NormalizeCategory(rawCategory)

	notes, err := uc.noteRepo.ListByCategory(ctx, category)
	if err != nil {
		return nil, entities.Internal(ErrMsgListNotes, err)
	}
	if len(notes) == 0 {
		logger.Log(ctx).Debug(ctx, "no notes for category", zap.String("category", category.String()))
		return nil, entities.ErrNoNotesForCategory
	}

	return notes, nil
}

// CreateNote проверяет ввод и сохраняет новую заметку.
func (uc *NoteUseCase) CreateNote(ctx context.Context, input NoteInput) (*entities.Note, error) {
	category, err := validate(input)
	if err != nil {
		return nil, err
	}

	note := entities.NewNote(input.Title, input.Description, category, uc.now())
	if err := uc.noteRepo.Create(ctx, note); err != nil {
		return nil, entities.Internal(ErrMsgCreateNote, err)
	}

	return note, nil
}

// UpdateNote перезаписывает заметку по ID.
// Существование заметки не проверяется.
func (uc *NoteUseCase) UpdateNote(ctx context.Context, noteID string, input NoteInput) error {
	category, err := validate(input)
	if err != nil {
		return err
	}

	note := &entities.Note{
		ID:          noteID,
		Title:       input.Title,
		Description: input.Description,
		Category:    category,
		UpdatedAt:   uc.now().UTC(),
	}
	if err := uc.noteRepo.Update(ctx, note); err != nil {
		return entities.Internal(ErrMsgUpdateNote, err)
	}

	return nil
}

// DeleteNote удаляет заметку по ID.
func (uc *NoteUseCase) DeleteNote(ctx context.Context, noteID string) error {
	if err := uc.noteRepo.Delete(ctx, noteID); err != nil {
		return entities.Internal(ErrMsgDeleteNote, err)
	}
	return nil
}
