package notes

import "gonotes/internal/notes/app"

// NoteRequest содержит данные для создания и обновления заметки.
type NoteRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

func (r *NoteRequest) toInput() app.NoteInput {
	return app.NoteInput{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
	}
}

// CreateNoteResponse - подтверждение создания заметки.
type CreateNoteResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// MessageResponse - подтверждение операции.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse - тело ответа с ошибкой.
type ErrorResponse struct {
	Error string `json:"error"`
}
