package model

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Minerv04ka/lab7web2025/internal/shared/response"
)

var (
	ErrBookNotFound = errors.New("book not found")
)

var bookErrorMap = map[error]struct {
	Status int
	Detail string
}{
	ErrBookNotFound: {
		Status: http.StatusNotFound,
		Detail: "Book not found",
	},
}

// HandleBookError map domain errors sang HTTP responses.
// Returns true nếu err đã được handle (caller phải return ngay).
func HandleBookError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	for sentinel, cfg := range bookErrorMap {
		if errors.Is(err, sentinel) {
			response.Error(c, cfg.Status, cfg.Detail)
			return true
		}
	}

	// Lỗi không xác định
	log.Error().
		Str("request_id", c.GetString("request_id")).
		Err(err).
		Msg("Unhandled book error")
	response.InternalServerError(c)
	return true
}
