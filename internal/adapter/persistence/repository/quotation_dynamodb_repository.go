package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"quotely/internal/domain/entities"
	"quotely/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const DefaultQuotationsTable = "quotations"

// Lines are stored as a JSON string so decimals keep their exact text form.
type quotationItem struct {
	ID             string `dynamodbav:"id"`
	FactoryID      string `dynamodbav:"factory_id"`
	Tenant         string `dynamodbav:"tenant,omitempty"`
	ClientName     string `dynamodbav:"client_name,omitempty"`
	ClientLogo     string `dynamodbav:"client_logo,omitempty"`
	SalesRep       string `dynamodbav:"sales_rep,omitempty"`
	Notes          string `dynamodbav:"notes,omitempty"`
	Lines          string `dynamodbav:"lines"`
	Subtotal       string `dynamodbav:"subtotal"`
	DiscountRate   string `dynamodbav:"discount_rate"`
	DiscountAmount string `dynamodbav:"discount_amount"`
	FinalTotal     string `dynamodbav:"final_total"`
	Status         string `dynamodbav:"status"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// QuotationDynamoRepository persists saved quotations.
//
// Table requirements:
//   - PK: id (string)
type QuotationDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IQuotationRepository = (*QuotationDynamoRepository)(nil)

func NewQuotationDynamoRepository(ddb DynamoAPI, tableName string) *QuotationDynamoRepository {
	if tableName == "" {
		tableName = DefaultQuotationsTable
	}
	return &QuotationDynamoRepository{ddb: ddb, tableName: tableName, now: time.Now}
}

func (r *QuotationDynamoRepository) Create(ctx context.Context, q entities.SavedQuotation) (entities.SavedQuotation, error) {
	it, err := toQuotationItem(q)
	if err != nil {
		return entities.SavedQuotation{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.SavedQuotation{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.SavedQuotation{}, err
	}
	return q, nil
}

func (r *QuotationDynamoRepository) GetByID(ctx context.Context, id string) (entities.SavedQuotation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.SavedQuotation{}, err
	}
	if len(out.Item) == 0 {
		return entities.SavedQuotation{}, nil
	}
	return unmarshalQuotation(out.Item)
}

// UpdateStatusByID returns a zero value when the id does not exist.
func (r *QuotationDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.QuotationStatus) (entities.SavedQuotation, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(r.now())},
		},
		ExpressionAttributeNames: mergeNames(
			map[string]string{"#status": "status", "#updated_at": "updated_at"},
			map[string]string{"#id": "id"},
		),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.SavedQuotation{}, nil
		}
		return entities.SavedQuotation{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.SavedQuotation{}, nil
	}
	return unmarshalQuotation(out.Attributes)
}

func unmarshalQuotation(av map[string]types.AttributeValue) (entities.SavedQuotation, error) {
	var it quotationItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.SavedQuotation{}, err
	}
	return fromQuotationItem(it)
}

func toQuotationItem(q entities.SavedQuotation) (quotationItem, error) {
	lines := q.Lines
	if lines == nil {
		lines = []entities.QuotationLine{}
	}
	raw, err := json.Marshal(lines)
	if err != nil {
		return quotationItem{}, err
	}
	return quotationItem{
		ID:             q.ID,
		FactoryID:      q.FactoryID,
		Tenant:         q.Tenant,
		ClientName:     q.Details.ClientName,
		ClientLogo:     q.Details.ClientLogo,
		SalesRep:       q.Details.SalesRep,
		Notes:          q.Details.Notes,
		Lines:          string(raw),
		Subtotal:       q.Subtotal.String(),
		DiscountRate:   q.DiscountRate.String(),
		DiscountAmount: q.DiscountAmount.String(),
		FinalTotal:     q.FinalTotal.String(),
		Status:         string(q.Status),
		CreatedAt:      formatTime(q.CreatedAt),
		UpdatedAt:      formatTime(q.UpdatedAt),
	}, nil
}

func fromQuotationItem(it quotationItem) (entities.SavedQuotation, error) {
	var lines []entities.QuotationLine
	if it.Lines != "" {
		if err := json.Unmarshal([]byte(it.Lines), &lines); err != nil {
			return entities.SavedQuotation{}, err
		}
	}
	return entities.SavedQuotation{
		ID:        it.ID,
		FactoryID: it.FactoryID,
		Tenant:    it.Tenant,
		Details: entities.QuotationDetails{
			ClientName: it.ClientName,
			ClientLogo: it.ClientLogo,
			SalesRep:   it.SalesRep,
			Notes:      it.Notes,
		},
		Lines:          lines,
		Subtotal:       parseDecimal(it.Subtotal),
		DiscountRate:   parseDecimal(it.DiscountRate),
		DiscountAmount: parseDecimal(it.DiscountAmount),
		FinalTotal:     parseDecimal(it.FinalTotal),
		Status:         entities.QuotationStatus(it.Status),
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}, nil
}

func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
