package cache

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"gonotes/internal/notes/domain/entities"
	"gonotes/internal/notes/ports/cache"
	"gonotes/internal/notes/ports/repositories"
	"gonotes/pkg/logger"
)

// Ключи кэша.
const (
	KeyListAll            = "notes:list:all"
	KeyListCategoryPrefix = "notes:list:category:"
)

// Сообщения logger.
const (
	LogCacheHit          = "notes cache hit"
	LogCacheMiss         = "notes cache miss"
	LogCacheDecodeFailed = "failed to decode cached notes"
	LogCacheEncodeFailed = "failed to encode notes for cache"
	LogCacheUnavailable  = "notes cache unavailable, reading from store"
	LogInvalidateFailed  = "failed to invalidate notes cache"
)

// CategoryKey возвращает ключ кэша для списка заметок категории.
func CategoryKey(category entities.Category) string {
	return KeyListCategoryPrefix + category.String()
}

// ListKeys возвращает все ключи списков, сбрасываемые при записи.
func ListKeys() []string {
	keys := []string{KeyListAll}
	for _, category := range entities.Categories() {
		keys = append(keys, CategoryKey(category))
	}
	return keys
}

// CachedNoteRepository кэширует списки заметок поверх другого репозитория.
// Любая запись сбрасывает все ключи списков. Ошибки кэша не прерывают запрос.
type CachedNoteRepository struct {
	next  repositories.NoteRepository
	cache cache.Cache
	ttl   time.Duration
}

var _ repositories.NoteRepository = (*CachedNoteRepository)(nil)

// NewCachedNoteRepository создает кэширующий репозиторий.
func NewCachedNoteRepository(next repositories.NoteRepository, c cache.Cache, ttl time.Duration) *CachedNoteRepository {
	return &CachedNoteRepository{next: next, cache: c, ttl: ttl}
}

// List возвращает все заметки, используя кэш.
func (r *CachedNoteRepository) List(ctx context.Context) ([]*entities.Note, error) {
	return r.cached(ctx, KeyListAll, true, r.next.List)
}

// ListByCategory возвращает заметки категории, используя кэш для допустимых категорий.
func (r *CachedNoteRepository) ListByCategory(ctx context.Context, category entities.Category) ([]*entities.Note, error) {
	load := func(ctx context.Context) ([]*entities.Note, error) {
		return r.next.ListByCategory(ctx, category)
	}
	if category == entities.CategoryNone || !category.Valid() {
		return load(ctx)
	}
	return r.cached(ctx, CategoryKey(category), false, load)
}

func (r *CachedNoteRepository) cached(
	ctx context.Context,
	key string,
	cacheEmpty bool,
	load func(context.Context) ([]*entities.Note, error),
) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("key", key))

	raw, ok, err := r.cache.Get(ctx, key)
	switch {
	case err != nil:
		log.Warn(ctx, LogCacheUnavailable, zap.Error(err))
	case ok:
		var notes []*entities.Note
		decodeErr := json.Unmarshal([]byte(raw), &notes)
		if decodeErr == nil {
			log.Debug(ctx, LogCacheHit, zap.Int("count", len(notes)))
			return notes, nil
		}
		log.Warn(ctx, LogCacheDecodeFailed, zap.Error(decodeErr))
	default:
		log.Debug(ctx, LogCacheMiss)
	}

	notes, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if len(notes) == 0 && !cacheEmpty {
		return notes, nil
	}
	if notes == nil {
		notes = make([]*entities.Note, 0)
	}

	payload, err := json.Marshal(notes)
	if err != nil {
		log.Warn(ctx, LogCacheEncodeFailed, zap.Error(err))
		return notes, nil
	}
	_ = r.cache.Set(ctx, key, string(payload), r.ttl)

	return notes, nil
}

// Create сохраняет заметку и сбрасывает кэш списков.
func (r *CachedNoteRepository) Create(ctx context.Context, note *entities.Note) error {
	if err := r.next.Create(ctx, note); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

// Update обновляет заметку и сбрасывает кэш списков.
func (r *CachedNoteRepository) Update(ctx context.Context, note *entities.Note) error {
	if err := r.next.Update(ctx, note); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

// Delete удаляет заметку и сбрасывает кэш списков.
func (r *CachedNoteRepository) Delete(ctx context.Context, noteID string) error {
	if err := r.next.Delete(ctx, noteID); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *CachedNoteRepository) invalidate(ctx context.Context) {
	if err := r.cache.Delete(ctx, ListKeys()...); err != nil {
		logger.Log(ctx).Warn(ctx, LogInvalidateFailed, zap.Error(err))
	}
}
