package repository

import (
	"context"
	"strconv"
	"time"

	"techassist/internal/domain/entities"
	"techassist/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultEstimateArchiveTableName = "estimate_archive"

type estimateArchiveItem struct {
	ID          string `dynamodbav:"id"`
	JobID       string `dynamodbav:"job_id"`
	Status      string `dynamodbav:"status"`
	TotalAmount int64  `dynamodbav:"total_amount"`
	Locked      bool   `dynamodbav:"locked"`
	Created     string `dynamodbav:"created"`
	Notes       string `dynamodbav:"notes,omitempty"`
	ArchivedAt  string `dynamodbav:"archived_at"`
}

// EstimateArchiveDynamoRepository keeps a write-through copy of submitted
// estimates in DynamoDB so quoted prices survive a restart of the in-memory
// store.
//
// Table requirements:
//   - PK: id (string)
//
// Archiving is last-write-wins: resubmitting an estimate overwrites its
// archived row.
type EstimateArchiveDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateArchive = (*EstimateArchiveDynamoRepository)(nil)

func NewEstimateArchiveDynamoRepository(ddb *dynamodb.Client) *EstimateArchiveDynamoRepository {
	return &EstimateArchiveDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATE_ARCHIVE_TABLE", defaultEstimateArchiveTableName),
	}
}

func (r *EstimateArchiveDynamoRepository) ArchiveEstimate(ctx context.Context, e entities.Estimate) error {
	it := estimateArchiveItem{
		ID:          strconv.FormatInt(e.ID, 10),
		JobID:       strconv.FormatInt(e.JobID, 10),
		Status:      string(e.Status),
		TotalAmount: e.TotalAmount,
		Locked:      e.Locked,
		Created:     e.Created.UTC().Format(time.RFC3339Nano),
		Notes:       e.Notes,
		ArchivedAt:  time.Now().UTC().Format(time.RFC3339Nano),
	}

	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
