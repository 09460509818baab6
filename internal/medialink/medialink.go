// Copyright (c) 2026 IRO.BY team
// SPDX-License-Identifier: GPL-3.0-or-later

// Package medialink writes media relation rows directly into the CMS
// database. The upload endpoint stores files but does not attach them
// to entries, so seeding links uploaded images to their entries through
// the polymorphic files_related_mph join table.
package medialink

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"regexp"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

// identRe restricts table names to plain SQL identifiers. Table names
// are interpolated into statements and cannot be bound as parameters.
var identRe = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Store links uploaded files to CMS entries through the database.
type Store struct {
	db       *sql.DB
	logger   *slog.Logger
	orderCol string // "order" quoted per driver dialect
}

// Open connects to the CMS database. Supported drivers are "sqlite"
// and "mysql".
func Open(driver, dsn string, logger *slog.Logger) (*Store, error) {
	if driver != "sqlite" && driver != "mysql" {
		return nil, fmt.Errorf("unsupported CMS database driver: %q", driver)
	}
	if dsn == "" {
		return nil, fmt.Errorf("CMS database DSN is required")
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening CMS database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to CMS database: %w", err)
	}

	if logger == nil {
		logger = slog.Default()
	}
	orderCol := `"order"`
	if driver == "mysql" {
		orderCol = "`order`"
	}
	return &Store{db: db, logger: logger, orderCol: orderCol}, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// EntryIDs returns the row ids of all locale rows sharing a document id
// in a content table. Each locale of an entry is a separate row with
// its own id, so attaching an image to a document means one join row
// per locale row.
func (s *Store) EntryIDs(ctx context.Context, table, documentID string) ([]int64, error) {
	if !identRe.MatchString(table) {
		return nil, fmt.Errorf("invalid table name: %q", table)
	}

	rows, err := s.db.QueryContext(ctx,
		fmt.Sprintf("SELECT id FROM %s WHERE document_id = ?", table), documentID)
	if err != nil {
		return nil, fmt.Errorf("querying %s rows: %w", table, err)
	}
	defer func() { _ = rows.Close() }()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning %s row: %w", table, err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// LinkFiles attaches uploaded files to every locale row of a document.
// relatedType is the CMS content type uid (e.g. "api::project.project")
// and field the media attribute name on that type. Linking is
// idempotent: rows already linked for the field are left untouched.
func (s *Store) LinkFiles(ctx context.Context, table, relatedType, field, documentID string, fileIDs []int) error {
	if len(fileIDs) == 0 {
		return nil
	}

	entryIDs, err := s.EntryIDs(ctx, table, documentID)
	if err != nil {
		return err
	}
	if len(entryIDs) == 0 {
		return fmt.Errorf("no %s rows for document %s", table, documentID)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	linked := 0
	for _, entryID := range entryIDs {
		var existing int
		err := tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM files_related_mph
			 WHERE related_id = ? AND related_type = ? AND field = ?`,
			entryID, relatedType, field).Scan(&existing)
		if err != nil {
			return fmt.Errorf("checking existing links: %w", err)
		}
		if existing > 0 {
			continue
		}

		insert := fmt.Sprintf(
			"INSERT INTO files_related_mph (file_id, related_id, related_type, field, %s) VALUES (?, ?, ?, ?, ?)",
			s.orderCol)
		for i, fileID := range fileIDs {
			_, err := tx.ExecContext(ctx, insert,
				fileID, entryID, relatedType, field, i+1)
			if err != nil {
				return fmt.Errorf("linking file %d to %s %d: %w", fileID, table, entryID, err)
			}
			linked++
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing links: %w", err)
	}

	if linked > 0 {
		s.logger.Info("linked media files",
			"table", table, "documentId", documentID, "field", field, "rows", linked)
	}
	return nil
}
