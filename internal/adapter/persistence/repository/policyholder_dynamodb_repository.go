package repository

import (
	"context"
	"fmt"
	"time"

	"seguro_xpto/internal/domain/entities"
	"seguro_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultPolicyholdersTableName = "policyholders"

type policyholderItem struct {
	PolicyID string            `dynamodbav:"policy_id"`
	FullName string            `dynamodbav:"full_name"`
	Email    string            `dynamodbav:"email"`
	Status   string            `dynamodbav:"status"`
	Products map[string]string `dynamodbav:"products"`
}

// PolicyholderDynamoRepository persists Policyholder entities in DynamoDB.
//
// Table requirements:
//   - PK: policy_id (string)
//
// Enrollments live inside the item as a product_code -> start date map.

type PolicyholderDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPolicyholderRepository = (*PolicyholderDynamoRepository)(nil)

func NewPolicyholderDynamoRepository(ddb DynamoAPI, tableName string) *PolicyholderDynamoRepository {
	if tableName == "" {
		tableName = DefaultPolicyholdersTableName
	}
	return &PolicyholderDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PolicyholderDynamoRepository) Create(ctx context.Context, p entities.Policyholder) (entities.Policyholder, error) {
	created, err := r.put(ctx, p, "attribute_not_exists(#policy_id)")
	if err != nil && isConditionFailed(err) {
		return entities.Policyholder{}, fmt.Errorf("policyholder %s: %w", p.PolicyID, interfaces.ErrAlreadyExists)
	}
	return created, err
}

func (r *PolicyholderDynamoRepository) Save(ctx context.Context, p entities.Policyholder) (entities.Policyholder, error) {
	saved, err := r.put(ctx, p, "attribute_exists(#policy_id)")
	if err != nil && isConditionFailed(err) {
		return entities.Policyholder{}, nil
	}
	return saved, err
}

func (r *PolicyholderDynamoRepository) GetByPolicyID(ctx context.Context, policyID string) (entities.Policyholder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"policy_id": &types.AttributeValueMemberS{Value: policyID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Policyholder{}, err
	}
	if len(out.Item) == 0 {
		return entities.Policyholder{}, nil
	}

	var it policyholderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Policyholder{}, err
	}
	return fromPolicyholderItem(it), nil
}

func (r *PolicyholderDynamoRepository) put(ctx context.Context, p entities.Policyholder, condition string) (entities.Policyholder, error) {
	av, err := attributevalue.MarshalMap(toPolicyholderItem(p))
	if err != nil {
		return entities.Policyholder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String(condition),
		ExpressionAttributeNames: map[string]string{
			"#policy_id": "policy_id",
		},
	})
	if err != nil {
		return entities.Policyholder{}, err
	}
	return p, nil
}

func toPolicyholderItem(p entities.Policyholder) policyholderItem {
	products := make(map[string]string, len(p.Products))
	for code, start := range p.Products {
		products[code] = formatTime(start)
	}
	return policyholderItem{
		PolicyID: p.PolicyID,
		FullName: p.FullName,
		Email:    p.Email,
		Status:   string(p.Status),
		Products: products,
	}
}

func fromPolicyholderItem(it policyholderItem) entities.Policyholder {
	products := make(map[string]time.Time, len(it.Products))
	for code, start := range it.Products {
		products[code] = parseTime(start)
	}
	return entities.Policyholder{
		PolicyID: it.PolicyID,
		FullName: it.FullName,
		Email:    it.Email,
		Status:   entities.PolicyholderStatus(it.Status),
		Products: products,
	}
}
