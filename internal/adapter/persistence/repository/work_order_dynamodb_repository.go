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

type workOrderItem struct {
	ID             string `dynamodbav:"id"`
	CustomerID     string `dynamodbav:"customer_id"`
	VehicleID      string `dynamodbav:"vehicle_id"`
	Description    string `dynamodbav:"description"`
	Status         string `dynamodbav:"status"`
	OpenedAt       string `dynamodbav:"opened_at"`
	ClosedAt       string `dynamodbav:"closed_at,omitempty"`
	EstimatedValue string `dynamodbav:"estimated_value,omitempty"`
	FinalValue     string `dynamodbav:"final_value,omitempty"`
	Version        int64  `dynamodbav:"version"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// WorkOrderDynamoRepository persists work orders (PK: id). Every write after
// creation goes through the unit of work and is guarded by the version attribute.
type WorkOrderDynamoRepository struct {
	ddb    DynamoDBAPI
	tables Tables
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderDynamoRepository)(nil)

func NewWorkOrderDynamoRepository(ddb DynamoDBAPI, tables Tables) *WorkOrderDynamoRepository {
	return &WorkOrderDynamoRepository{ddb: ddb, tables: tables}
}

func (r *WorkOrderDynamoRepository) Create(ctx context.Context, wo entities.WorkOrder) (entities.WorkOrder, error) {
	av, err := attributevalue.MarshalMap(toWorkOrderItem(wo))
	if err != nil {
		return entities.WorkOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tables.WorkOrders),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.WorkOrder{}, fmt.Errorf("%w: work order %s", entities.ErrConflict, wo.ID)
		}
		return entities.WorkOrder{}, err
	}
	return wo, nil
}

func (r *WorkOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	return getWorkOrder(ctx, r.ddb, r.tables.WorkOrders, id)
}

func (r *WorkOrderDynamoRepository) ListVisible(ctx context.Context, page entities.PageRequest) (entities.Page[entities.WorkOrder], error) {
	return collectPage(ctx, page, []string{"id"}, scanFetch(r.ddb, dynamodb.ScanInput{
		TableName:                aws.String(r.tables.WorkOrders),
		FilterExpression:         aws.String("#status <> :cancelled"),
		ExpressionAttributeNames: map[string]string{"#status": "status"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cancelled": &types.AttributeValueMemberS{Value: string(entities.WorkOrderStatusCancelled)},
		},
		ConsistentRead: aws.Bool(true),
	}), decodeWorkOrder)
}

func getWorkOrder(ctx context.Context, ddb DynamoDBAPI, table, id string) (entities.WorkOrder, error) {
	out, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(table),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.WorkOrder{}, nil
	}
	return decodeWorkOrder(out.Item)
}

func decodeWorkOrder(av map[string]types.AttributeValue) (entities.WorkOrder, error) {
	var it workOrderItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.WorkOrder{}, err
	}
	return entities.WorkOrder{
		ID:             it.ID,
		CustomerID:     it.CustomerID,
		VehicleID:      it.VehicleID,
		Description:    it.Description,
		Status:         entities.WorkOrderStatus(it.Status),
		OpenedAt:       parseTime(it.OpenedAt),
		ClosedAt:       parseOptionalTime(it.ClosedAt),
		EstimatedValue: parseOptionalDecimal(it.EstimatedValue),
		FinalValue:     parseOptionalDecimal(it.FinalValue),
		Version:        it.Version,
		UpdatedAt:      parseTime(it.UpdatedAt),
	}, nil
}

func toWorkOrderItem(wo entities.WorkOrder) workOrderItem {
	return workOrderItem{
		ID:             wo.ID,
		CustomerID:     wo.CustomerID,
		VehicleID:      wo.VehicleID,
		Description:    wo.Description,
		Status:         string(wo.Status),
		OpenedAt:       formatTime(wo.OpenedAt),
		ClosedAt:       formatOptionalTime(wo.ClosedAt),
		EstimatedValue: formatOptionalDecimal(wo.EstimatedValue),
		FinalValue:     formatOptionalDecimal(wo.FinalValue),
		Version:        wo.Version,
		UpdatedAt:      formatTime(wo.UpdatedAt),
	}
}
