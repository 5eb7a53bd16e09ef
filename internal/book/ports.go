package book

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=book

// Repository defines the contract for book data storage.
type Repository interface {
	Create(ctx context.Context, b Book) (Book, error)
	// GetByID reports false when no book has the id.
	GetByID(ctx context.Context, id int64) (Book, bool, error)
	ExistsByISBN(ctx context.Context, isbn string) (bool, error)
	Update(ctx context.Context, b Book) (Book, error)
	Delete(ctx context.Context, id int64) error
	Ping(ctx context.Context) error
}
