// Package api определяет входные порты сервиса заметок.
package api

import (
	"context"

	"gonotes/internal/notes/app"
	"gonotes/internal/notes/domain/entities"
)

// NoteUseCase определяет основной порт для операций с заметками.
type NoteUseCase interface {
	ListNotes(ctx context.Context) ([]*entities.Note, error)
	ListNotesByCategory(ctx context.Context, category string) ([]*entities.Note, error)
	CreateNote(ctx context.Context, input app.NoteInput) (*entities.Note, error)
	UpdateNote(ctx context.Context, noteID string, input app.NoteInput) error
	DeleteNote(ctx context.Context, noteID string) error
}

var _ NoteUseCase = (*app.NoteUseCase)(nil)
