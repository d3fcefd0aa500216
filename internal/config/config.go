// Package config is for reading service config from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/GeoNet/kit/cfg"
)

const (
	DynamoDB = "dynamodb"
	Postgres = "postgres"
)

// Store configures where metadata records are written.
type Store struct {
	Backend  string       // dynamodb or postgres, defaults to dynamodb [STORE_BACKEND].
	Table    string       // The DynamoDB table name [DYNAMODB_TABLE].
	Postgres cfg.Postgres // DB config when Backend is postgres [DB_*].
}

// StoreEnv returns a Store with configuration from the environment variables.
// Returns an error for missing config.
func StoreEnv() (Store, error) {
	s := Store{
		Backend: os.Getenv("STORE_BACKEND"),
		Table:   os.Getenv("DYNAMODB_TABLE"),
	}

	if s.Backend == "" {
		s.Backend = DynamoDB
	}

	switch s.Backend {
	case DynamoDB:
		if s.Table == "" {
			return Store{}, errors.New("DYNAMODB_TABLE env var must be set.")
		}
	case Postgres:
		p, err := cfg.PostgresEnv()
		if err != nil {
			return Store{}, err
		}
		s.Postgres = p
	default:
		return Store{}, fmt.Errorf("STORE_BACKEND invalid: %q", s.Backend)
	}

	return s, nil
}

// QueueEnv returns the SQS queue URL [SQS_QUEUE_URL].
func QueueEnv() (string, error) {
	u := os.Getenv("SQS_QUEUE_URL")
	if u == "" {
		return "", errors.New("SQS_QUEUE_URL env var must be set.")
	}

	return u, nil
}
