package book

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS books (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	title      TEXT NOT NULL,
	author     TEXT NOT NULL,
	isbn       TEXT NOT NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS books_isbn_key ON books (isbn);
`

// SQLiteRepo stores books in SQLite through modernc.org/sqlite.
type SQLiteRepo struct {
	db      *sql.DB
	timeout time.Duration
}

var _ Repository = (*SQLiteRepo)(nil)

func NewSQLiteRepo(db *sql.DB, timeout time.Duration) *SQLiteRepo {
	return &SQLiteRepo{db: db, timeout: timeout}
}

func (r *SQLiteRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

// Migrate creates the books table and its unique isbn index if missing.
func (r *SQLiteRepo) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, sqliteSchema); err != nil {
		return fmt.Errorf("create books schema: %w", err)
	}
	return nil
}

func (r *SQLiteRepo) Create(ctx context.Context, b Book) (Book, error) {
	now := time.Now().UTC()
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	res, err := r.db.ExecContext(timeoutCtx,
		`INSERT INTO books (title, author, isbn, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		b.Title, b.Author, b.ISBN, now, now,
	)
	if err != nil {
		return Book{}, translateSQLiteError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Book{}, err
	}
	b.ID = id
	b.CreatedAt = now
	b.UpdatedAt = now
	return b, nil
}

func (r *SQLiteRepo) GetByID(ctx context.Context, id int64) (Book, bool, error) {
	const query = `
	SELECT id, title, author, isbn, created_at, updated_at
	FROM books
	WHERE id = ?
	`
	var b Book
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRowContext(timeoutCtx, query, id).Scan(&b.ID, &b.Title, &b.Author, &b.ISBN, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Book{}, false, nil
		}
		return Book{}, false, err
	}
	return b, true, nil
}

func (r *SQLiteRepo) ExistsByISBN(ctx context.Context, isbn string) (bool, error) {
	var exists bool
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRowContext(timeoutCtx, `SELECT EXISTS (SELECT 1 FROM books WHERE isbn = ?)`, isbn).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *SQLiteRepo) Update(ctx context.Context, b Book) (Book, error) {
	now := time.Now().UTC()
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	res, err := r.db.ExecContext(timeoutCtx,
		`UPDATE books SET title = ?, author = ?, isbn = ?, updated_at = ? WHERE id = ?`,
		b.Title, b.Author, b.ISBN, now, b.ID,
	)
	if err != nil {
		return Book{}, translateSQLiteError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return Book{}, err
	}
	if n == 0 {
		return Book{}, ErrNotFound
	}
	b.UpdatedAt = now
	return b, nil
}

func (r *SQLiteRepo) Delete(ctx context.Context, id int64) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	res, err := r.db.ExecContext(timeoutCtx, `DELETE FROM books WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SQLiteRepo) Ping(ctx context.Context) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.db.PingContext(timeoutCtx)
}

func translateSQLiteError(err error) error {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
		return ErrDuplicateISBN
	}
	return err
}
