// Package recorder turns an S3 upload notification into a stored metadata record.
//
// Only the first record of a notification is used. Failures are returned to
// the caller without retrying; redelivery is left to Lambda or SQS.
package recorder

import (
	"context"
	"net/http"

	"github.com/GeoNet/upload-metadata/internal/store"
	"github.com/aws/aws-lambda-go/events"
)

// StoredMessage is the body of every success Response.
const StoredMessage = "Metadata stored successfully!"

// Response is returned to the Lambda runtime on success.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// Recorder writes one MetadataRecord per upload event to a Store.
type Recorder struct {
	store store.Store
}

// New returns a Recorder that writes to s.
func New(s store.Store) *Recorder {
	return &Recorder{store: s}
}

// Handle records e and returns the success Response.
// It is suitable for lambda.Start.
func (r *Recorder) Handle(ctx context.Context, e events.S3Event) (Response, error) {
	if _, err := r.Record(ctx, e); err != nil {
		return Response{}, err
	}

	return Response{StatusCode: http.StatusOK, Body: StoredMessage}, nil
}

// Record validates e, then makes exactly one write to the store.
func (r *Recorder) Record(ctx context.Context, e events.S3Event) (store.MetadataRecord, error) {
	m, err := FromEvent(e)
	if err != nil {
		return store.MetadataRecord{}, err
	}

	if err := r.store.Put(ctx, m); err != nil {
		return store.MetadataRecord{}, &StoreUnavailableError{FileID: m.FileID, Err: err}
	}

	return m, nil
}

// FromEvent returns the MetadataRecord for the first record in e.
// The object key is used as the file_id as is.
func FromEvent(e events.S3Event) (store.MetadataRecord, error) {
	if len(e.Records) == 0 {
		return store.MetadataRecord{}, &MalformedEventError{Reason: "no notification records"}
	}

	s := e.Records[0].S3

	switch "" {
	case s.Bucket.Name:
		return store.MetadataRecord{}, &MalformedEventError{Reason: "empty bucket name"}
	case s.Object.Key:
		return store.MetadataRecord{}, &MalformedEventError{Reason: "empty object key"}
	}

	return store.MetadataRecord{FileID: s.Object.Key, Bucket: s.Bucket.Name}, nil
}
