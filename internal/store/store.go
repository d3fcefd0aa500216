// Package store is for persisting upload metadata records.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/GeoNet/upload-metadata/internal/config"
)

// MetadataRecord describes one uploaded object.
// FileID is the primary key; a Put with an existing FileID replaces the record.
type MetadataRecord struct {
	FileID string `dynamodbav:"file_id"`
	Bucket string `dynamodbav:"bucket"`
}

// Store upserts MetadataRecords keyed by FileID.
type Store interface {
	Put(ctx context.Context, r MetadataRecord) error
}

// Open returns the Store for the backend in c.
// The returned close func releases any connections and is never nil.
func Open(c config.Store) (Store, func() error, error) {
	switch c.Backend {
	case config.DynamoDB:
		d, err := NewDynamoDB(c.Table)
		if err != nil {
			return nil, nil, fmt.Errorf("creating DynamoDB client: %w", err)
		}
		return d, func() error { return nil }, nil
	case config.Postgres:
		db, err := sql.Open("postgres", c.Postgres.Connection())
		if err != nil {
			return nil, nil, fmt.Errorf("problem with DB config: %w", err)
		}

		db.SetMaxIdleConns(c.Postgres.MaxIdle)
		db.SetMaxOpenConns(c.Postgres.MaxOpen)

		if err = db.Ping(); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("problem pinging DB: %w", err)
		}

		p, err := NewPostgres(db)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		return p, db.Close, nil
	}

	return nil, nil, fmt.Errorf("unknown store backend: %q", c.Backend)
}
