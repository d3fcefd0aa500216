package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

const putMetadata = `INSERT INTO upload.metadata (file_id, bucket) VALUES ($1, $2)
	ON CONFLICT (file_id) DO UPDATE SET
	bucket = EXCLUDED.bucket`

// Postgres stores records in the upload.metadata table.
//
//	CREATE TABLE upload.metadata (
//		file_id TEXT PRIMARY KEY,
//		bucket TEXT NOT NULL
//	);
type Postgres struct {
	put *sql.Stmt
}

// NewPostgres prepares the upsert statement on db.
func NewPostgres(db *sql.DB) (Postgres, error) {
	s, err := db.Prepare(putMetadata)
	if err != nil {
		return Postgres{}, fmt.Errorf("preparing putMetadata statement: %w", err)
	}

	return Postgres{put: s}, nil
}

// Put upserts r.
func (p Postgres) Put(ctx context.Context, r MetadataRecord) error {
	_, err := p.put.ExecContext(ctx, r.FileID, r.Bucket)
	return err
}
