// Package postgres provides PostgreSQL implementations of repositories.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"gonotes/internal/notes/domain/entities"
	"gonotes/internal/notes/ports/repositories"
	"gonotes/pkg/logger"
)

const (
	queryInsertNote = `INSERT INTO notes (id, title, description, category, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	querySelectNotes = `SELECT id, title, description, category, created_at, updated_at
		FROM notes ORDER BY created_at DESC`
	querySelectNotesByCategory = `SELECT id, title, description, category, created_at, updated_at
		FROM notes WHERE category = $1 ORDER BY created_at DESC`
	queryUpdateNote = `UPDATE notes SET title = $1, description = $2, category = $3, updated_at = $4
		WHERE id = $5`
	queryDeleteNote = `DELETE FROM notes WHERE id = $1`
)

// PgxPoolInterface - подмножество pgxpool.Pool, используемое репозиторием.
type PgxPoolInterface interface {
	Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error)
	Ping(ctx context.Context) error
}

// NoteRepository реализует интерфейс repositories.NoteRepository.
type NoteRepository struct {
	pool PgxPoolInterface
}

var (
	_ repositories.NoteRepository = (*NoteRepository)(nil)
	_ repositories.HealthChecker  = (*NoteRepository)(nil)
)

// NewNoteRepository создает новый репозиторий заметок.
func NewNoteRepository(pool PgxPoolInterface) *NoteRepository {
	return &NoteRepository{pool: pool}
}

// Create сохраняет новую заметку в БД.
func (r *NoteRepository) Create(ctx context.Context, note *entities.Note) error {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Create"))
	log.Debug(ctx, "creating new note", zap.String("noteID", note.ID))

	_, err := r.pool.Exec(ctx, queryInsertNote,
		note.ID, note.Title, note.Description, note.Category.String(), note.CreatedAt, note.UpdatedAt,
	)
	if err != nil {
		log.Error(ctx, "failed to create note", zap.Error(err))
		return fmt.Errorf("failed to create note: %w", err)
	}

	log.Debug(ctx, "note created", zap.String("noteID", note.ID))
	return nil
}

// List возвращает все заметки.
func (r *NoteRepository) List(ctx context.Context) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.List"))
	log.Debug(ctx, "listing notes")

	return r.queryNotes(ctx, log, querySelectNotes)
}

// ListByCategory возвращает заметки с точно совпадающей категорией.
func (r *NoteRepository) ListByCategory(ctx context.Context, category entities.Category) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.ListByCategory"))
	log.Debug(ctx, "listing notes by category", zap.String("category", category.String()))

	return r.queryNotes(ctx, log, querySelectNotesByCategory, category.String())
}

func (r *NoteRepository) queryNotes(ctx context.Context, log *logger.Logger, query string, args ...interface{}) ([]*entities.Note, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		log.Error(ctx, "failed to list notes", zap.Error(err))
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	notes := make([]*entities.Note, 0)
	for rows.Next() {
		var (
			note     entities.Note
			category string
		)
		if err := rows.Scan(&note.ID, &note.Title, &note.Description, &category, &note.CreatedAt, &note.UpdatedAt); err != nil {
			log.Error(ctx, "failed to scan note", zap.Error(err))
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		note.Category = entities.Category(category)
		notes = append(notes, &note)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	log.Debug(ctx, "notes listed", zap.Int("count", len(notes)))
	return notes, nil
}

// Update обновляет существующую заметку.
func (r *NoteRepository) Update(ctx context.Context, note *entities.Note) error {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Update"))
	log.Debug(ctx, "updating note", zap.String("noteID", note.ID))

	result, err := r.pool.Exec(ctx, queryUpdateNote,
		note.Title, note.Description, note.Category.String(), note.UpdatedAt, note.ID,
	)
	if err != nil {
		log.Error(ctx, "failed to update note", zap.Error(err))
		return fmt.Errorf("failed to update note: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "no note matched id", zap.String("noteID", note.ID))
	}

	return nil
}

// Delete удаляет заметку.
func (r *NoteRepository) Delete(ctx context.Context, noteID string) error {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Delete"))
	log.Debug(ctx, "deleting note", zap.String("noteID", noteID))

	result, err := r.pool.Exec(ctx, queryDeleteNote, noteID)
	if err != nil {
		log.Error(ctx, "failed to delete note", zap.Error(err))
		return fmt.Errorf("failed to delete note: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "no note matched id", zap.String("noteID", noteID))
	}

	return nil
}

// Ping проверяет соединение с БД.
func (r *NoteRepository) Ping(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}
