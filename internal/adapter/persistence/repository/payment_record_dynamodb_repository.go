package repository

import (
	"context"
	"time"

	"pagamentos_xpto/internal/domain/entities"
	"pagamentos_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPaymentRecordsTableName = "payment_records"

type paymentRecordItem struct {
	ID                 string `dynamodbav:"id"`
	Method             string `dynamodbav:"method"`
	Status             string `dynamodbav:"status"`
	Amount             int64  `dynamodbav:"amount"`
	Description        string `dynamodbav:"description,omitempty"`
	CustomerID         string `dynamodbav:"customer_id,omitempty"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
	RawProviderPayload string `dynamodbav:"raw_provider_payload,omitempty"`
}

// PaymentRecordDynamoRepository persists PaymentRecord snapshots in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Saves are upserts: each status observation overwrites the previous
// snapshot, and the orchestrator decides which transitions are legal before
// writing.

type PaymentRecordDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRecordRepository = (*PaymentRecordDynamoRepository)(nil)

func NewPaymentRecordDynamoRepository(ddb *dynamodb.Client) *PaymentRecordDynamoRepository {
	return &PaymentRecordDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_RECORDS_TABLE", defaultPaymentRecordsTableName),
	}
}

func (r *PaymentRecordDynamoRepository) Save(ctx context.Context, rec entities.PaymentRecord) error {
	av, err := attributevalue.MarshalMap(toPaymentRecordItem(rec))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *PaymentRecordDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentRecord{}, nil
	}

	var it paymentRecordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentRecord{}, err
	}
	return fromPaymentRecordItem(it), nil
}

func toPaymentRecordItem(rec entities.PaymentRecord) paymentRecordItem {
	return paymentRecordItem{
		ID:                 rec.ID,
		Method:             string(rec.Method),
		Status:             string(rec.Status),
		Amount:             rec.Amount,
		Description:        rec.Description,
		CustomerID:         rec.CustomerID,
		CreatedAt:          rec.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:          rec.UpdatedAt.UTC().Format(time.RFC3339Nano),
		RawProviderPayload: string(rec.RawProviderPayload),
	}
}

func fromPaymentRecordItem(it paymentRecordItem) entities.PaymentRecord {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.PaymentRecord{
		ID:                 it.ID,
		Method:             entities.PaymentMethod(it.Method),
		Status:             entities.CanonicalStatus(it.Status),
		Amount:             it.Amount,
		Description:        it.Description,
		CustomerID:         it.CustomerID,
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
		RawProviderPayload: []byte(it.RawProviderPayload),
	}
}
