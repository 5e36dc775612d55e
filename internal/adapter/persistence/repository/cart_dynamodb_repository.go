package repository

import (
	"context"
	"time"

	"cianorte_vendas/internal/domain/entities"
	"cianorte_vendas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const defaultCartsTableName = "carts"

type cartLineItem struct {
	ProductID string `dynamodbav:"product_id"`
	Name      string `dynamodbav:"name"`
	UnitPrice string `dynamodbav:"unit_price"`
	Quantity  int    `dynamodbav:"quantity"`
	ImageURL  string `dynamodbav:"image_url,omitempty"`
}

type cartItemRecord struct {
	UserID    string         `dynamodbav:"user_id"`
	Items     []cartLineItem `dynamodbav:"items"`
	CreatedAt string         `dynamodbav:"created_at"`
	UpdatedAt string         `dynamodbav:"updated_at"`
}

// CartDynamoRepository persists carts in DynamoDB so they survive process
// restarts and the sign-in redirect.
//
// Table requirements:
//   - PK: user_id (string)
//
// Prices are stored as decimal strings to keep exact currency precision
// through the round-trip.

type CartDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICartRepository = (*CartDynamoRepository)(nil)

func NewCartDynamoRepository(ddb *dynamodb.Client) *CartDynamoRepository {
	return &CartDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CARTS_TABLE", defaultCartsTableName),
	}
}

func (r *CartDynamoRepository) Get(ctx context.Context, userID string) (entities.Cart, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Cart{}, err
	}
	if len(out.Item) == 0 {
		return entities.Cart{}, nil
	}

	var rec cartItemRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Cart{}, err
	}
	return fromCartRecord(rec)
}

func (r *CartDynamoRepository) Save(ctx context.Context, cart entities.Cart) (entities.Cart, error) {
	av, err := attributevalue.MarshalMap(toCartRecord(cart))
	if err != nil {
		return entities.Cart{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Cart{}, err
	}
	return cart, nil
}

func (r *CartDynamoRepository) Delete(ctx context.Context, userID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
	})
	return err
}

func toCartRecord(cart entities.Cart) cartItemRecord {
	rec := cartItemRecord{
		UserID:    cart.UserID,
		Items:     make([]cartLineItem, 0, len(cart.Items)),
		CreatedAt: cart.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: cart.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	for _, it := range cart.Items {
		rec.Items = append(rec.Items, cartLineItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice.String(),
			Quantity:  it.Quantity,
			ImageURL:  it.ImageURL,
		})
	}
	return rec
}

func fromCartRecord(rec cartItemRecord) (entities.Cart, error) {
	createdAt, _ := time.Parse(time.RFC3339Nano, rec.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, rec.UpdatedAt)
	cart := entities.Cart{
		UserID:    rec.UserID,
		Items:     make([]entities.CartItem, 0, len(rec.Items)),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
	for _, it := range rec.Items {
		price, err := decimal.NewFromString(it.UnitPrice)
		if err != nil {
			return entities.Cart{}, err
		}
		cart.Items = append(cart.Items, entities.CartItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: price,
			Quantity:  it.Quantity,
			ImageURL:  it.ImageURL,
		})
	}
	return cart, nil
}
