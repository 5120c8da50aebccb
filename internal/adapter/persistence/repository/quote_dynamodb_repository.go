package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"quote_relay/internal/domain/entities"
	"quote_relay/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultQuotesTableName = "quotes"

var ErrUnsupportedTotal = errors.New("quote total is neither a number nor a string")

// QuoteTableAPI is the subset of the DynamoDB client used by the repository.
type QuoteTableAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

// quoteItem mirrors the document written by the quoting app. total is decoded
// by hand because older documents store it as a string.
type quoteItem struct {
	ID        string `dynamodbav:"id"`
	CreatedBy string `dynamodbav:"createdBy,omitempty"`
	UserID    string `dynamodbav:"userId,omitempty"`
	Viewed    bool   `dynamodbav:"viewed"`
	ViewedAt  string `dynamodbav:"viewedAt,omitempty"`
}

// QuoteDynamoRepository reads quotes and records views in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Updates are conditioned on the item existing so a view never creates a quote.

type QuoteDynamoRepository struct {
	ddb       QuoteTableAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb QuoteTableAPI, tableName string) *QuoteDynamoRepository {
	if strings.TrimSpace(tableName) == "" {
		tableName = DefaultQuotesTableName
	}
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		now:       time.Now,
	}
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}
	return decodeQuote(out.Item)
}

// MarkViewed sets viewed=true and stamps viewedAt with the server clock.
// Every call overwrites viewedAt, so it reflects the latest view. The returned
// quote carries only id and the view fields; the rest of the item is not read.
func (r *QuoteDynamoRepository) MarkViewed(ctx context.Context, id string) (entities.Quote, error) {
	viewedAt := r.now().UTC()

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #viewed = :viewed, #viewed_at = :viewed_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":viewed":    &types.AttributeValueMemberBOOL{Value: true},
			":viewed_at": &types.AttributeValueMemberS{Value: viewedAt.Format(time.RFC3339Nano)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":        "id",
			"#viewed":    "viewed",
			"#viewed_at": "viewedAt",
		},
		ReturnValues: types.ReturnValueNone,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	return entities.Quote{ID: id, Viewed: true, ViewedAt: viewedAt}, nil
}

func decodeQuote(av map[string]types.AttributeValue) (entities.Quote, error) {
	var it quoteItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Quote{}, err
	}
	total, err := decodeTotal(av["total"])
	if err != nil {
		return entities.Quote{}, err
	}
	q := fromQuoteItem(it)
	q.Total = total
	return q, nil
}

func fromQuoteItem(it quoteItem) entities.Quote {
	viewedAt, _ := time.Parse(time.RFC3339Nano, it.ViewedAt)
	return entities.Quote{
		ID:        it.ID,
		CreatedBy: it.CreatedBy,
		UserID:    it.UserID,
		Viewed:    it.Viewed,
		ViewedAt:  viewedAt,
	}
}

// decodeTotal returns the stored total unparsed. N values keep their full
// precision and S values keep their formatting ("1,250.00").
func decodeTotal(av types.AttributeValue) (string, error) {
	switch v := av.(type) {
	case nil:
		return "", nil
	case *types.AttributeValueMemberN:
		return v.Value, nil
	case *types.AttributeValueMemberS:
		return v.Value, nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedTotal, av)
	}
}
