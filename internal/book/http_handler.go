package book

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"libraryapi/internal/httpx"

	"go.uber.org/zap"
)

// HTTPHandler serves the book routes over a Service.
type HTTPHandler struct {
	service *Service
	logger  *zap.Logger
}

// NewHTTPHandler returns a handler for service. A nil logger discards output.
func NewHTTPHandler(service *Service, logger *zap.Logger) *HTTPHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPHandler{service: service, logger: logger}
}

// Register mounts the book routes on mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/books", h.Create)
	mux.HandleFunc("GET /api/books/{id}", h.Get)
	mux.HandleFunc("PUT /api/books/{id}", h.Update)
	mux.HandleFunc("DELETE /api/books/{id}", h.Delete)
}

// ValidatePayload trims p in place and returns one message per missing field.
func ValidatePayload(p *Payload) []string {
	p.Title = strings.TrimSpace(p.Title)
	p.Author = strings.TrimSpace(p.Author)
	p.ISBN = strings.TrimSpace(p.ISBN)

	errs := httpx.ValidateStruct(p)
	if len(errs) == 0 {
		return nil
	}
	return httpx.Messages(errs)
}

func decodePayload(r *http.Request) (Payload, error) {
	var p Payload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		return Payload{}, err
	}
	return p, nil
}

// Create handles POST /api/books
// @Summary Create a book
// @Tags books
// @Accept json
// @Produce json
// @Param request body Payload true "Book"
// @Success 201 {object} Payload
// @Failure 400 {object} httpx.ErrorResponse
// @Router /api/books [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	p, err := decodePayload(r)
	if err != nil {
		writeDecodeError(w, err)
		return
	}
	if msgs := ValidatePayload(&p); len(msgs) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, msgs...)
		return
	}

	saved, err := h.service.Save(r.Context(), p.ToBook())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httpx.JSONSuccessCreated(w, PayloadFrom(saved))
}

// Get handles GET /api/books/{id}
// @Summary Get a book by id
// @Tags books
// @Produce json
// @Param id path int true "Book id"
// @Success 200 {object} Payload
// @Failure 404
// @Router /api/books/{id} [get]
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	b, ok := h.lookup(w, r)
	if !ok {
		return
	}
	httpx.JSONSuccess(w, PayloadFrom(b))
}

// Update handles PUT /api/books/{id}
// @Summary Replace the title, author and isbn of a book
// @Tags books
// @Accept json
// @Produce json
// @Param id path int true "Book id"
// @Param request body Payload true "Book"
// @Success 200 {object} Payload
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404
// @Router /api/books/{id} [put]
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	current, ok := h.lookup(w, r)
	if !ok {
		return
	}

	p, err := decodePayload(r)
	if err != nil {
		writeDecodeError(w, err)
		return
	}
	if msgs := ValidatePayload(&p); len(msgs) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, msgs...)
		return
	}

	current.Title = p.Title
	current.Author = p.Author
	current.ISBN = p.ISBN

	updated, err := h.service.Update(r.Context(), current)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, PayloadFrom(updated))
}

// Delete handles DELETE /api/books/{id}
// @Summary Delete a book
// @Tags books
// @Param id path int true "Book id"
// @Success 204
// @Failure 404
// @Router /api/books/{id} [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	b, ok := h.lookup(w, r)
	if !ok {
		return
	}
	if err := h.service.Delete(r.Context(), b); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httpx.NoContent(w)
}

// lookup resolves the {id} path value to a stored book. When it returns false a
// response has already been written.
func (h *HTTPHandler) lookup(w http.ResponseWriter, r *http.Request) (Book, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		httpx.JSONError(w, http.StatusBadRequest, "id must be a positive integer")
		return Book{}, false
	}

	b, found, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return Book{}, false
	}
	if !found {
		httpx.Empty(w, http.StatusNotFound)
		return Book{}, false
	}
	return b, true
}

func writeDecodeError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		httpx.JSONError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}
	httpx.JSONError(w, http.StatusBadRequest, "invalid request body")
}

func (h *HTTPHandler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var be *BusinessError
	switch {
	case errors.As(err, &be):
		httpx.JSONError(w, http.StatusBadRequest, be.Message)
	case errors.Is(err, ErrNotFound):
		// The row vanished between lookup and write.
		httpx.Empty(w, http.StatusNotFound)
	default:
		h.logger.Error("book request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("request_id", httpx.RequestIDFrom(r)),
			zap.Error(err),
		)
		httpx.InternalError(w)
	}
}
