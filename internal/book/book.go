package book

import (
	"errors"
	"time"
)

// ErrNotFound is returned by the store when a write targets a book that does not exist.
var ErrNotFound = errors.New("book not found")

// BusinessError is a client-correctable rule violation.
type BusinessError struct {
	Message string
}

func (e *BusinessError) Error() string {
	return e.Message
}

// ErrDuplicateISBN is returned when the isbn already belongs to another book.
var ErrDuplicateISBN = &BusinessError{Message: "Isbn já cadastrado."}

// Book represents a book entity.
type Book struct {
	ID        int64
	Title     string
	Author    string
	ISBN      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Payload is the request/response representation of a Book.
type Payload struct {
	ID     *int64 `json:"id,omitempty"`
	Title  string `json:"title" validate:"required"`
	Author string `json:"author" validate:"required"`
	ISBN   string `json:"isbn" validate:"required"`
}

// ToBook builds a Book from the payload. The id is never taken from the client.
func (p Payload) ToBook() Book {
	return Book{
		Title:  p.Title,
		Author: p.Author,
		ISBN:   p.ISBN,
	}
}

// PayloadFrom converts a stored Book to its wire form.
func PayloadFrom(b Book) Payload {
	id := b.ID
	return Payload{
		ID:     &id,
		Title:  b.Title,
		Author: b.Author,
		ISBN:   b.ISBN,
	}
}
