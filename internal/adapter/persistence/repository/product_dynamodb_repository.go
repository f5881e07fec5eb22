package repository

import (
	"context"
	"fmt"
	"sort"

	"seguro_xpto/internal/domain/entities"
	"seguro_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const DefaultProductsTableName = "products"

type productItem struct {
	Code      string `dynamodbav:"code"`
	Name      string `dynamodbav:"name"`
	Premium   string `dynamodbav:"premium"`
	IsActive  bool   `dynamodbav:"is_active"`
	UpdatedAt string `dynamodbav:"updated_at,omitempty"`
}

// ProductDynamoRepository persists Product entities in DynamoDB.
//
// Table requirements:
//   - PK: code (string)
//
// Premium is stored as a decimal string to avoid float rounding.

type ProductDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IProductRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb DynamoAPI, tableName string) *ProductDynamoRepository {
	if tableName == "" {
		tableName = DefaultProductsTableName
	}
	return &ProductDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ProductDynamoRepository) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	av, err := attributevalue.MarshalMap(toProductItem(p))
	if err != nil {
		return entities.Product{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#code)"),
		ExpressionAttributeNames: map[string]string{
			"#code": "code",
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Product{}, fmt.Errorf("product %s: %w", p.Code, interfaces.ErrAlreadyExists)
		}
		return entities.Product{}, err
	}
	return p, nil
}

func (r *ProductDynamoRepository) GetByCode(ctx context.Context, code string) (entities.Product, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"code": &types.AttributeValueMemberS{Value: code},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Product{}, err
	}
	if len(out.Item) == 0 {
		return entities.Product{}, nil
	}

	var it productItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}

func (r *ProductDynamoRepository) List(ctx context.Context) ([]entities.Product, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	products := make([]entities.Product, 0, len(raw))
	for _, av := range raw {
		var it productItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		products = append(products, fromProductItem(it))
	}
	sort.Slice(products, func(i, j int) bool { return products[i].Code < products[j].Code })
	return products, nil
}

// Save overwrites an existing product. A missing product yields a zero value.
func (r *ProductDynamoRepository) Save(ctx context.Context, p entities.Product) (entities.Product, error) {
	av, err := attributevalue.MarshalMap(toProductItem(p))
	if err != nil {
		return entities.Product{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#code)"),
		ExpressionAttributeNames: map[string]string{
			"#code": "code",
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Product{}, nil
		}
		return entities.Product{}, err
	}
	return p, nil
}

func toProductItem(p entities.Product) productItem {
	it := productItem{
		Code:     p.Code,
		Name:     p.Name,
		Premium:  p.Premium.String(),
		IsActive: p.IsActive,
	}
	if p.UpdatedAt != nil {
		it.UpdatedAt = formatTime(*p.UpdatedAt)
	}
	return it
}

func fromProductItem(it productItem) entities.Product {
	premium, _ := decimal.NewFromString(it.Premium)
	p := entities.Product{
		Code:     it.Code,
		Name:     it.Name,
		Premium:  premium,
		IsActive: it.IsActive,
	}
	if it.UpdatedAt != "" {
		t := parseTime(it.UpdatedAt)
		p.UpdatedAt = &t
	}
	return p
}
