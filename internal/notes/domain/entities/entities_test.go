package entities_test

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"gonotes/internal/notes/domain/entities"
)

func TestNewNote(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.FixedZone("UTC+3", 3*3600))

	note := entities.NewNote("Buy milk", "2%", entities.CategoryPersonal, now)

	_, err := uuid.Parse(note.ID)
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", note.Title)
	assert.Equal(t, "2%", note.Description)
	assert.Equal(t, entities.CategoryPersonal, note.Category)
	assert.True(t, note.CreatedAt.Equal(now))
	assert.Equal(t, time.UTC, note.CreatedAt.Location())
	assert.Equal(t, note.CreatedAt, note.UpdatedAt)

	other := entities.NewNote("Buy milk", "2%", entities.CategoryPersonal, now)
	assert.NotEqual(t, note.ID, other.ID)
}

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		in    string
		want  entities.Category
		valid bool
	}{
		{"work", entities.CategoryWork, true},
		{"WORK", entities.CategoryWork, true},
		{"Personal", entities.CategoryPersonal, true},
		{"others", entities.CategoryOthers, true},
		{"Others", entities.CategoryOthers, true},
		{"", entities.CategoryNone, false},
		{"home", "HOME", false},
		{" work", " WORK", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := entities.NormalizeCategory(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.valid, got.Valid())
		})
	}
}

func testCategoryValidityMatchesUppercase(t *rapid.T) {
	raw := rapid.OneOf(
		rapid.String(),
		rapid.SampledFrom([]string{"work", "Work", "personal", "PERSONAL", "oThErS", "misc", "Others"}),
	).Draw(t, "raw")

	got := entities.NormalizeCategory(raw)
	want := slices.Contains(entities.Categories(), entities.Category(strings.ToUpper(raw)))

	if got.Valid() != want {
		t.Fatalf("Valid(%q) = %v, want %v", raw, got.Valid(), want)
	}
	if entities.NormalizeCategory(got.String()) != got {
		t.Fatalf("normalization is not idempotent for %q", raw)
	}
}

func TestCategoryValidityMatchesUppercase(t *testing.T) {
	t.Parallel()
	rapid.Check(t, testCategoryValidityMatchesUppercase)
}

func TestErrorClassification(t *testing.T) {
	storeErr := errors.New("connection refused")

	tests := []struct {
		name    string
		err     error
		code    entities.Code
		message string
	}{
		{"missing fields", entities.ErrTitleDescriptionRequired, entities.CodeInvalidArgument, entities.MsgTitleDescriptionRequired},
		{"invalid category", entities.ErrInvalidCategory, entities.CodeInvalidArgument, entities.MsgInvalidCategory},
		{"no notes", entities.ErrNoNotesForCategory, entities.CodeNotFound, entities.MsgNoNotesForCategory},
		{"wrapped validation", fmt.Errorf("create: %w", entities.ErrInvalidCategory), entities.CodeInvalidArgument, entities.MsgInvalidCategory},
		{"internal", entities.Internal("failed to list notes", storeErr), entities.CodeInternal, entities.MsgInternal},
		{"untyped", storeErr, entities.CodeInternal, entities.MsgInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, entities.CodeOf(tt.err))
			assert.Equal(t, tt.message, entities.MessageOf(tt.err))
		})
	}

	t.Run("internal keeps cause", func(t *testing.T) {
		err := entities.Internal("failed to list notes", storeErr)
		assert.ErrorIs(t, err, storeErr)
		assert.Equal(t, "failed to list notes: connection refused", err.Error())
	})
}
