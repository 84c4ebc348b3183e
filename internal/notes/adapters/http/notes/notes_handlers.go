// Package notes содержит HTTP-обработчики для управления заметками.
package notes

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gonotes/internal/notes/adapters/http/middleware"
	"gonotes/internal/notes/domain/entities"
	"gonotes/internal/notes/ports/api"
	"gonotes/pkg/logger"
)

// Константы ошибок и сообщений для логирования.
const (
	LogHandlerListNotes           = "handling list notes request"
	LogHandlerListNotesByCategory = "handling list notes by category request"
	LogHandlerCreateNote          = "handling create note request"
	LogHandlerUpdateNote          = "handling update note request"
	LogHandlerDeleteNote          = "handling delete note request"

	ErrMsgInvalidRequestBody = "invalid request body"

	MsgNoteCreated = "Notes added Successfully"
	MsgNoteUpdated = "Notes Updated Successfully"
	MsgNoteDeleted = "Notes Deleted Successfully"
)

// Handler обработчик HTTP-запросов для работы с заметками.
type Handler struct {
	notes api.NoteUseCase
}

// NewHandler создает новый экземпляр обработчика заметок.
func NewHandler(notes api.NoteUseCase) *Handler {
	return &Handler{notes: notes}
}

// ListNotes обрабатывает запрос на получение всех заметок.
func (h *Handler) ListNotes(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.ListNotes"))
	log.Debug(requestCtx, LogHandlerListNotes)

	notes, err := h.notes.ListNotes(requestCtx)
	if err != nil {
		log.Error(requestCtx, "failed to list notes", zap.Error(err))
		return handleError(ctx, err)
	}

	return sendJSON(ctx, fiber.StatusOK, notes)
}

// ListNotesByCategory обрабатывает запрос на получение заметок категории.
func (h *Handler) ListNotesByCategory(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	category := ctx.Params("category")
	log := logger.Log(requestCtx).With(
		zap.String("handler", "Handler.ListNotesByCategory"),
		zap.String("category", category),
	)
	log.Debug(requestCtx, LogHandlerListNotesByCategory)

	notes, err := h.notes.ListNotesByCategory(requestCtx, category)
	if err != nil {
		log.Debug(requestCtx, "list notes by category failed", zap.Error(err))
		return handleError(ctx, err)
	}

	return sendJSON(ctx, fiber.StatusOK, notes)
}

// CreateNote обрабатывает запрос на создание новой заметки.
func (h *Handler) CreateNote(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.CreateNote"))
	log.Debug(requestCtx, LogHandlerCreateNote)

	var req NoteRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return sendJSON(ctx, fiber.StatusBadRequest, ErrorResponse{Error: ErrMsgInvalidRequestBody})
	}

	note, err := h.notes.CreateNote(requestCtx, req.toInput())
	if err != nil {
		log.Debug(requestCtx, "create note failed", zap.Error(err))
		return handleError(ctx, err)
	}

	return sendJSON(ctx, fiber.StatusOK, CreateNoteResponse{Message: MsgNoteCreated, ID: note.ID})
}

// UpdateNote обрабатывает запрос на обновление заметки.
func (h *Handler) UpdateNote(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	noteID := ctx.Params("id")
	log := logger.Log(requestCtx).With(
		zap.String("handler", "Handler.UpdateNote"),
		zap.String("noteID", noteID),
	)
	log.Debug(requestCtx, LogHandlerUpdateNote)

	var req NoteRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return sendJSON(ctx, fiber.StatusBadRequest, ErrorResponse{Error: ErrMsgInvalidRequestBody})
	}

	if err := h.notes.UpdateNote(requestCtx, noteID, req.toInput()); err != nil {
		log.Debug(requestCtx, "update note failed", zap.Error(err))
		return handleError(ctx, err)
	}

	return sendJSON(ctx, fiber.StatusOK, MessageResponse{Message: MsgNoteUpdated})
}

// DeleteNote обрабатывает запрос на удаление заметки.
func (h *Handler) DeleteNote(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	noteID := ctx.Params("id")
	log := logger.Log(requestCtx).With(
		zap.String("handler", "Handler.DeleteNote"),
		zap.String("noteID", noteID),
	)
	log.Debug(requestCtx, LogHandlerDeleteNote)

	if err := h.notes.DeleteNote(requestCtx, noteID); err != nil {
		log.Debug(requestCtx, "delete note failed", zap.Error(err))
		return handleError(ctx, err)
	}

	return sendJSON(ctx, fiber.StatusOK, MessageResponse{Message: MsgNoteDeleted})
}

// HTTPStatus возвращает HTTP-статус для класса ошибки.
func HTTPStatus(code entities.Code) int {
	switch code {
	case entities.CodeInvalidArgument:
		return fiber.StatusBadRequest
	case entities.CodeNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

func handleError(ctx fiber.Ctx, err error) error {
	return sendJSON(ctx, HTTPStatus(entities.CodeOf(err)), ErrorResponse{Error: entities.MessageOf(err)})
}

func sendJSON(ctx fiber.Ctx, status int, body any) error {
	if err := ctx.Status(status).JSON(body); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
