package store

import (
	"context"
	"errors"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// PutItemAPI is the part of the DynamoDB client used by DynamoDB.
type PutItemAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// DynamoDB stores records in a DynamoDB table with file_id as the partition key.
type DynamoDB struct {
	client PutItemAPI
	table  string
}

// NewDynamoDB returns a DynamoDB for table using the default AWS credentials chain.
// This consults (in order) environment vars, config files, EC2 and ECS roles.
// It is an error if the AWS_REGION environment variable is not set.
func NewDynamoDB(table string) (DynamoDB, error) {
	if table == "" {
		return DynamoDB{}, errors.New("empty DynamoDB table name")
	}

	if os.Getenv("AWS_REGION") == "" {
		return DynamoDB{}, errors.New("AWS_REGION is not set")
	}

	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return DynamoDB{}, err
	}

	return DynamoDB{client: dynamodb.NewFromConfig(cfg), table: table}, nil
}

// NewDynamoDBWithClient returns a DynamoDB that writes to table with client.
func NewDynamoDBWithClient(client PutItemAPI, table string) DynamoDB {
	return DynamoDB{client: client, table: table}
}

// Table returns the name of the table records are written to.
func (d DynamoDB) Table() string {
	return d.table
}

// Put writes r with a single PutItem. An existing item with the same file_id is replaced.
func (d DynamoDB) Put(ctx context.Context, r MetadataRecord) error {
	item, err := attributevalue.MarshalMap(r)
	if err != nil {
		return err
	}

	_, err = d.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(d.table),
		Item:      item,
	})

	return err
}
