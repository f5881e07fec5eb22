package repository

import (
	"context"
	"sort"

	"seguro_xpto/internal/domain/entities"
	"seguro_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/shopspring/decimal"
)

const DefaultPaymentsTableName = "payments"

type paymentRecordItem struct {
	ID                string `dynamodbav:"id"`
	Sequence          int64  `dynamodbav:"seq"`
	PolicyID          string `dynamodbav:"policy_id"`
	ProductCode       string `dynamodbav:"product_code"`
	Amount            string `dynamodbav:"amount"`
	PaidAt            string `dynamodbav:"paid_at"`
	DueDate           string `dynamodbav:"due_date"`
	PenaltyPolicy     string `dynamodbav:"penalty_policy"`
	PenaltyApplied    string `dynamodbav:"penalty_applied"`
	ProviderPaymentID string `dynamodbav:"provider_payment_id,omitempty"`
	ProviderStatus    string `dynamodbav:"provider_status,omitempty"`
}

// PaymentRecordDynamoRepository persists the payment history in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Records are never updated. List scans the table and restores insertion
// order from seq.

type PaymentRecordDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPaymentRecordRepository = (*PaymentRecordDynamoRepository)(nil)

func NewPaymentRecordDynamoRepository(ddb DynamoAPI, tableName string) *PaymentRecordDynamoRepository {
	if tableName == "" {
		tableName = DefaultPaymentsTableName
	}
	return &PaymentRecordDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PaymentRecordDynamoRepository) Append(ctx context.Context, rec entities.PaymentRecord) error {
	av, err := attributevalue.MarshalMap(toPaymentRecordItem(rec))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func (r *PaymentRecordDynamoRepository) List(ctx context.Context) ([]entities.PaymentRecord, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	records := make([]entities.PaymentRecord, 0, len(raw))
	for _, av := range raw {
		var it paymentRecordItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		records = append(records, fromPaymentRecordItem(it))
	}
	sort.SliceStable(records, func(i, j int) bool { return records[i].Sequence < records[j].Sequence })
	return records, nil
}

func toPaymentRecordItem(rec entities.PaymentRecord) paymentRecordItem {
	return paymentRecordItem{
		ID:                rec.ID,
		Sequence:          rec.Sequence,
		PolicyID:          rec.PolicyID,
		ProductCode:       rec.ProductCode,
		Amount:            rec.Amount.String(),
		PaidAt:            formatTime(rec.PaidAt),
		DueDate:           formatTime(rec.DueDate),
		PenaltyPolicy:     string(rec.PenaltyPolicy),
		PenaltyApplied:    rec.PenaltyApplied.String(),
		ProviderPaymentID: rec.ProviderPaymentID,
		ProviderStatus:    rec.ProviderStatus,
	}
}

func fromPaymentRecordItem(it paymentRecordItem) entities.PaymentRecord {
	amount, _ := decimal.NewFromString(it.Amount)
	penalty, _ := decimal.NewFromString(it.PenaltyApplied)
	return entities.PaymentRecord{
		ID:                it.ID,
		Sequence:          it.Sequence,
		PolicyID:          it.PolicyID,
		ProductCode:       it.ProductCode,
		Amount:            amount,
		PaidAt:            parseTime(it.PaidAt),
		DueDate:           parseTime(it.DueDate),
		PenaltyPolicy:     entities.PenaltyPolicy(it.PenaltyPolicy),
		PenaltyApplied:    penalty,
		ProviderPaymentID: it.ProviderPaymentID,
		ProviderStatus:    it.ProviderStatus,
	}
}
