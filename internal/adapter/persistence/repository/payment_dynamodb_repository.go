package repository

import (
	"context"
	"fmt"

	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type paymentItem struct {
	ID                 string                 `dynamodbav:"id"`
	WorkOrderID        string                 `dynamodbav:"work_order_id"`
	Amount             string                 `dynamodbav:"amount"`
	Date               string                 `dynamodbav:"date"`
	Status             string                 `dynamodbav:"status"`
	ProviderPayload    map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// PaymentDynamoRepository persists work order payments in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: work_order_id-index (PK: work_order_id, SK: id)
type PaymentDynamoRepository struct {
	ddb    DynamoDBAPI
	tables Tables
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb DynamoDBAPI, tables Tables) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{ddb: ddb, tables: tables}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tables.Payments),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Payment{}, fmt.Errorf("%w: payment %s", entities.ErrConflict, p.ID)
		}
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tables.Payments),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}
	return decodePayment(out.Item)
}

func (r *PaymentDynamoRepository) ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.Payment, error) {
	raws, err := queryAll(ctx, r.ddb, dynamodb.QueryInput{
		TableName:              aws.String(r.tables.Payments),
		IndexName:              aws.String(paymentsWorkOrderIDIndex),
		KeyConditionExpression: aws.String("work_order_id = :wid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":wid": &types.AttributeValueMemberS{Value: workOrderID},
		},
	})
	if err != nil {
		return nil, err
	}

	payments := make([]entities.Payment, 0, len(raws))
	for _, raw := range raws {
		p, err := decodePayment(raw)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, nil
}

func decodePayment(av map[string]types.AttributeValue) (entities.Payment, error) {
	var it paymentItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:                 p.ID,
		WorkOrderID:        p.WorkOrderID,
		Amount:             p.Amount.String(),
		Date:               formatTime(p.Date),
		Status:             string(p.Status),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	return entities.Payment{
		ID:                 it.ID,
		WorkOrderID:        it.WorkOrderID,
		Amount:             parseDecimal(it.Amount),
		Date:               parseTime(it.Date),
		Status:             entities.PaymentStatus(it.Status),
		ProviderPayload:    it.ProviderPayload,
		ProviderPayloadRaw: []byte(it.ProviderPayloadRaw),
	}
}
