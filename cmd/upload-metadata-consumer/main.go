// upload-metadata-consumer receives notifications for the creation of objects
// in AWS S3.  Notifications are received from SQS.
// The bucket and key from the first record of each notification are upserted
// into the metadata store.  It is an alternative to running upload-metadata as
// a Lambda function.
package main

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/GeoNet/kit/aws/sqs"
	"github.com/GeoNet/kit/metrics"
	"github.com/GeoNet/upload-metadata/internal/config"
	"github.com/GeoNet/upload-metadata/internal/recorder"
	"github.com/GeoNet/upload-metadata/internal/store"
	"github.com/aws/aws-lambda-go/events"
)

const s3TestEvent = "s3:TestEvent"

// notification implements metrics.Processor for S3 event notifications.
type notification struct {
	rec *recorder.Recorder
}

func main() {
	queueURL, err := config.QueueEnv()
	if err != nil {
		log.Fatalf("error reading queue config from the environment vars: %s", err)
	}

	c, err := config.StoreEnv()
	if err != nil {
		log.Fatalf("error reading store config from the environment vars: %s", err)
	}

	s, closer, err := store.Open(c)
	if err != nil {
		log.Fatalf("error opening %s store: %s", c.Backend, err)
	}
	defer closer()

	sqsClient, err := sqs.NewWithMaxRetries(100)
	if err != nil {
		log.Fatalf("creating SQS client: %s", err)
	}

	n := notification{rec: recorder.New(s)}

	log.Println("listening for messages")

	var r sqs.Raw

	for {
		r, err = sqsClient.Receive(queueURL, 600)
		if err != nil {
			log.Printf("problem receiving message, backing off: %s", err)
			time.Sleep(time.Second * 20)
			continue
		}

		err = metrics.DoProcess(&n, []byte(r.Body))
		if err != nil {
			log.Printf("problem processing message, skipping deletion for redelivery: %s", err)
			continue
		}

		err = sqsClient.Delete(queueURL, r.ReceiptHandle)
		if err != nil {
			log.Printf("problem deleting message, continuing: %s", err)
		}
	}
}

// Process implements metrics.Processor for notification.
// Messages that return an error are left on the queue to go to the DLQ
// after redelivery; this will catch SNS subscriptions that are not raw messages.
func (n *notification) Process(msg []byte) error {
	var t events.S3TestEvent

	// S3 sends a test event when the notification config is saved.
	if err := json.Unmarshal(msg, &t); err == nil && t.Event == s3TestEvent {
		log.Printf("received %s for bucket %s, ignoring", t.Event, t.Bucket)
		return nil
	}

	var e events.S3Event

	if err := json.Unmarshal(msg, &e); err != nil {
		return err
	}

	m, err := n.rec.Record(context.Background(), e)
	if err != nil {
		return err
	}

	log.Printf("stored metadata for %s %s", m.Bucket, m.FileID)

	return nil
}
