// upload-metadata-notify lists objects in an S3 bucket and sends an S3 object created
// notification for each one to SQS, so objects uploaded before the notification
// config existed are recorded by upload-metadata-consumer.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/GeoNet/kit/aws/s3"
	"github.com/GeoNet/kit/aws/sqs"
	"github.com/aws/aws-lambda-go/events"
)

var (
	bucketName string
	keyPrefix  string
	sqsUrl     string
)

func init() {
	flag.StringVar(&bucketName, "bucket-name", "", "S3 bucket name which holds the uploaded objects.")
	flag.StringVar(&keyPrefix, "key-prefix", "", "Key prefix to search in the S3 bucket.")
	flag.StringVar(&sqsUrl, "sqs-url", "", "SQS queue url to send notifications to. Omit this parameter to show the list of matched keys only.")
}

func main() {
	flag.Parse()

	if bucketName == "" {
		flag.Usage()
		return
	}

	s3Client, err := s3.NewWithMaxRetries(10)
	if err != nil {
		log.Fatalf("creating S3 client: %s", err)
	}

	var sqsClient sqs.SQS

	fmt.Println("Checking S3 bucket:", bucketName)
	fmt.Println("Search key prefix:", keyPrefix)
	if sqsUrl == "" {
		fmt.Println("No sqs-url specified. Displaying matched key only.")
	} else {
		fmt.Println("Send to SQS:", sqsUrl)

		sqsClient, err = sqs.NewWithMaxRetries(100)
		if err != nil {
			log.Fatalf("creating SQS client: %s", err)
		}
	}

	keys, err := s3Client.ListAll(bucketName, keyPrefix)
	if err != nil {
		log.Fatalf("listing s3 objects: %s", err)
	}

	cnt := 0
	for _, k := range objectKeys(keys) {
		fmt.Println("Key:", k)

		if sqsUrl != "" {
			b, err := json.Marshal(notification(bucketName, k))
			if err != nil {
				log.Fatal(err)
			}

			if err := sqsClient.Send(sqsUrl, string(b)); err != nil {
				log.Fatalf("sending notification for %s: %s", k, err)
			}
		}
		cnt++
	}

	fmt.Println("Total keys matched:", cnt)
}

// objectKeys drops the folder placeholders created by the S3 console.
func objectKeys(keys []string) []string {
	var o []string

	for _, k := range keys {
		if k == "" || strings.HasSuffix(k, "/") {
			continue
		}
		o = append(o, k)
	}

	return o
}

// notification returns a single record ObjectCreated:Put event for key in bucket.
func notification(bucket, key string) events.S3Event {
	return events.S3Event{
		Records: []events.S3EventRecord{
			{
				EventSource: "aws:s3",
				EventName:   "ObjectCreated:Put",
				S3: events.S3Entity{
					Bucket: events.S3Bucket{
						Name: bucket,
						Arn:  "arn:aws:s3:::" + bucket,
					},
					Object: events.S3Object{
						Key: key,
					},
				},
			},
		},
	}
}
