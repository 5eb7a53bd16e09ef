package main

import (
	"io/fs"
	"os"

	"libraryapi/db"
)

// migrationsSource returns the filesystem and directory goose reads from. An
// explicit MIGRATIONS_DIR points at files on disk; otherwise the embedded set is used.
func migrationsSource(dir string) (fs.FS, string) {
	if dir != "" {
		return nil, dir
	}
	return db.Migrations, db.MigrationsDir
}

// createDir is where new migration files are written.
func createDir(dir string) string {
	if dir != "" {
		return dir
	}
	if v := os.Getenv("MIGRATIONS_DIR"); v != "" {
		return v
	}
	return "db/migrations"
}
