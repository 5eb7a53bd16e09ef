package book

import (
	"context"

	"go.uber.org/zap"
)

// Service provides book-related business logic.
type Service struct {
	repo   Repository
	logger *zap.Logger
}

// NewService creates a new book service.
func NewService(repo Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger}
}

// Save stores a new book. It fails with ErrDuplicateISBN when the isbn is
// already registered, in which case the store is not written to.
func (s *Service) Save(ctx context.Context, b Book) (Book, error) {
	exists, err := s.repo.ExistsByISBN(ctx, b.ISBN)
	if err != nil {
		return Book{}, err
	}
	if exists {
		s.logger.Debug("rejected duplicate isbn", zap.String("isbn", b.ISBN))
		return Book{}, ErrDuplicateISBN
	}
	return s.repo.Create(ctx, b)
}

// GetByID returns the book with the given id. The bool is false when it does not exist.
func (s *Service) GetByID(ctx context.Context, id int64) (Book, bool, error) {
	return s.repo.GetByID(ctx, id)
}

// Update writes b over the stored book with the same id. Callers fetch and
// merge before calling it.
func (s *Service) Update(ctx context.Context, b Book) (Book, error) {
	return s.repo.Update(ctx, b)
}

// Delete removes b from the store.
func (s *Service) Delete(ctx context.Context, b Book) error {
	return s.repo.Delete(ctx, b.ID)
}

// Ping reports whether the underlying store is reachable.
func (s *Service) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
