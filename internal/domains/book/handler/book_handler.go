package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Minerv04ka/lab7web2025/internal/domains/book/model"
	"github.com/Minerv04ka/lab7web2025/internal/domains/book/service"
	"github.com/Minerv04ka/lab7web2025/internal/shared/response"
)

// Handler - HTTP Handler (single file)
type Handler struct {
	service service.ServiceInterface
}

// NewHandler - Constructor with DI
func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// ListBooks - GET /books
func (h *Handler) ListBooks(c *gin.Context) {
	books, err := h.service.ListBooks(c.Request.Context())
	if model.HandleBookError(c, err) {
		return
	}

	c.JSON(http.StatusOK, books)
}

// GetBook - GET /books/:id
func (h *Handler) GetBook(c *gin.Context) {
	id, ok := parseBookID(c)
	if !ok {
		return
	}

	book, err := h.service.GetBookByID(c.Request.Context(), id)
	if model.HandleBookError(c, err) {
		return
	}

	c.JSON(http.StatusOK, book)
}

// CreateBook - POST /books
func (h *Handler) CreateBook(c *gin.Context) {
	var req model.BookRequest

	// 1. Bind request - type mismatches (vd: price không phải số) fail ở đây
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Info().Err(err).Msg("Invalid create book request")
		response.BadRequest(c, "Invalid request body")
		return
	}

	// 2. Structural validation - required fields phải có mặt
	if err := req.Validate(); err != nil {
		log.Info().Err(err).Msg("Create book validation failed")
		response.BadRequest(c, err.Error())
		return
	}

	// 3. Call service
	book, err := h.service.CreateBook(c.Request.Context(), req)
	if model.HandleBookError(c, err) {
		return
	}

	c.JSON(http.StatusOK, book)
}

// UpdateBook - PUT /books/:id
func (h *Handler) UpdateBook(c *gin.Context) {
	id, ok := parseBookID(c)
	if !ok {
		return
	}

	var req model.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Info().Err(err).Msg("Invalid update book request")
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		log.Info().Err(err).Msg("Update book validation failed")
		response.BadRequest(c, err.Error())
		return
	}

	book, err := h.service.UpdateBook(c.Request.Context(), id, req)
	if model.HandleBookError(c, err) {
		return
	}

	c.JSON(http.StatusOK, book)
}

// DeleteBook - DELETE /books/:id
// Trả về confirmation message, không trả về record đã xóa.
func (h *Handler) DeleteBook(c *gin.Context) {
	id, ok := parseBookID(c)
	if !ok {
		return
	}

	err := h.service.DeleteBook(c.Request.Context(), id)
	if model.HandleBookError(c, err) {
		return
	}

	response.Message(c, http.StatusOK, "Book deleted successfully")
}

// parseBookID đọc :id từ path. Non-integer id là client error;
// response đã được ghi khi ok == false.
func parseBookID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid book id")
		return 0, false
	}
	return id, true
}
