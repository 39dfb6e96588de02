package repository

import (
	"context"

	"quotely/internal/domain/entities"
	"quotely/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultPaymentsTable     = "quotation_payments"
	paymentsQuotationIDIndex = "quotation_id-index"
)

type quotationPaymentItem struct {
	ID           string                 `dynamodbav:"id"`
	QuotationID  string                 `dynamodbav:"quotation_id"`
	Amount       string                 `dynamodbav:"amount"`
	Date         string                 `dynamodbav:"date"`
	Status       string                 `dynamodbav:"status"`
	MPPayload    map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// QuotationPaymentDynamoRepository persists quotation payments.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quotation_id-index (PK: quotation_id)
type QuotationPaymentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IQuotationPaymentRepository = (*QuotationPaymentDynamoRepository)(nil)

func NewQuotationPaymentDynamoRepository(ddb DynamoAPI, tableName string) *QuotationPaymentDynamoRepository {
	if tableName == "" {
		tableName = DefaultPaymentsTable
	}
	return &QuotationPaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *QuotationPaymentDynamoRepository) Create(ctx context.Context, p entities.QuotationPayment) (entities.QuotationPayment, error) {
	av, err := attributevalue.MarshalMap(toQuotationPaymentItem(p))
	if err != nil {
		return entities.QuotationPayment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.QuotationPayment{}, err
	}
	return p, nil
}

func (r *QuotationPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.QuotationPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.QuotationPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.QuotationPayment{}, nil
	}

	var it quotationPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.QuotationPayment{}, err
	}
	return fromQuotationPaymentItem(it), nil
}

func (r *QuotationPaymentDynamoRepository) ListByQuotationID(ctx context.Context, quotationID string) ([]entities.QuotationPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsQuotationIDIndex),
		KeyConditionExpression: aws.String("quotation_id = :qid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": &types.AttributeValueMemberS{Value: quotationID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.QuotationPayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it quotationPaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromQuotationPaymentItem(it))
	}
	return items, nil
}

func toQuotationPaymentItem(p entities.QuotationPayment) quotationPaymentItem {
	return quotationPaymentItem{
		ID:           p.ID,
		QuotationID:  p.QuotationID,
		Amount:       p.Amount,
		Date:         formatTime(p.Date),
		Status:       string(p.Status),
		MPPayload:    p.MPPayload,
		MPPayloadRaw: string(p.MPPayloadRaw),
	}
}

func fromQuotationPaymentItem(it quotationPaymentItem) entities.QuotationPayment {
	return entities.QuotationPayment{
		ID:           it.ID,
		QuotationID:  it.QuotationID,
		Amount:       it.Amount,
		Date:         parseTime(it.Date),
		Status:       entities.PaymentStatus(it.Status),
		MPPayload:    it.MPPayload,
		MPPayloadRaw: []byte(it.MPPayloadRaw),
	}
}
