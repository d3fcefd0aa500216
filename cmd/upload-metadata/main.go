// upload-metadata is an AWS Lambda function triggered by S3 object creation.
// The bucket name and object key from the first notification record are
// upserted into the metadata store (DynamoDB by default) keyed by the object key.
package main

import (
	"log"

	"github.com/GeoNet/upload-metadata/internal/config"
	"github.com/GeoNet/upload-metadata/internal/recorder"
	"github.com/GeoNet/upload-metadata/internal/store"
	"github.com/aws/aws-lambda-go/lambda"
)

func main() {
	c, err := config.StoreEnv()
	if err != nil {
		log.Fatalf("error reading store config from the environment vars: %s", err)
	}

	s, closer, err := store.Open(c)
	if err != nil {
		log.Fatalf("error opening %s store: %s", c.Backend, err)
	}
	defer closer()

	log.Printf("recording upload metadata to %s store", c.Backend)

	lambda.Start(handler{rec: recorder.New(s)}.handle)
}
