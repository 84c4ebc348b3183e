// Package repositories defines repository interfaces for the notes service.
package repositories

import (
	"context"

	"gonotes/internal/notes/domain/entities"
)

// NoteRepository определяет интерфейс для работы с хранилищем заметок.
// Списки упорядочены по created_at от новых к старым.
type NoteRepository interface {
	Create(ctx context.Context, note *entities.Note) error
	List(ctx context.Context) ([]*entities.Note, error)
	ListByCategory(ctx context.Context, category entities.Category) ([]*entities.Note, error)
	// Update перезаписывает title, description, category и updated_at по ID.
	// Отсутствие заметки ошибкой не является.
	Update(ctx context.Context, note *entities.Note) error
	// Delete удаляет заметку по ID. Отсутствие заметки ошибкой не является.
	Delete(ctx context.Context, noteID string) error
}

// HealthChecker проверяет доступность хранилища.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
