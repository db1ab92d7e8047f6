package repository

import (
	"context"

	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type lineItemItem struct {
	WorkOrderID    string `dynamodbav:"work_order_id"`
	ID             string `dynamodbav:"id"`
	CatalogEntryID string `dynamodbav:"service_id"`
	Quantity       int    `dynamodbav:"quantity"`
	UnitPrice      string `dynamodbav:"unit_price"`
	Active         bool   `dynamodbav:"active"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
	Version        int64  `dynamodbav:"version"`
}

var lineItemKeyAttrs = []string{"work_order_id", "id"}

// LineItemDynamoRepository reads line items. Writes go through the unit of work.
//
// Table requirements:
//   - PK: work_order_id (HASH) + id (RANGE)
//   - GSI: id-index (PK: id)
type LineItemDynamoRepository struct {
	ddb    DynamoDBAPI
	tables Tables
}

var _ interfaces.ILineItemRepository = (*LineItemDynamoRepository)(nil)

func NewLineItemDynamoRepository(ddb DynamoDBAPI, tables Tables) *LineItemDynamoRepository {
	return &LineItemDynamoRepository{ddb: ddb, tables: tables}
}

func (r *LineItemDynamoRepository) GetByID(ctx context.Context, id string) (entities.LineItem, error) {
	return getLineItem(ctx, r.ddb, r.tables.LineItems, id)
}

func (r *LineItemDynamoRepository) ListActive(ctx context.Context, page entities.PageRequest) (entities.Page[entities.LineItem], error) {
	return collectPage(ctx, page, lineItemKeyAttrs, scanFetch(r.ddb, dynamodb.ScanInput{
		TableName:                 aws.String(r.tables.LineItems),
		FilterExpression:          aws.String(activeFilter.expr),
		ExpressionAttributeNames:  activeFilter.names,
		ExpressionAttributeValues: activeFilter.values,
		ConsistentRead:            aws.Bool(true),
	}), decodeLineItem)
}

func (r *LineItemDynamoRepository) ListActiveByWorkOrderID(ctx context.Context, workOrderID string, page entities.PageRequest) (entities.Page[entities.LineItem], error) {
	return collectPage(ctx, page, lineItemKeyAttrs, queryFetch(r.ddb, dynamodb.QueryInput{
		TableName:                aws.String(r.tables.LineItems),
		KeyConditionExpression:   aws.String("work_order_id = :wid"),
		FilterExpression:         aws.String(activeFilter.expr),
		ExpressionAttributeNames: activeFilter.names,
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":wid":    &types.AttributeValueMemberS{Value: workOrderID},
			":active": &types.AttributeValueMemberBOOL{Value: true},
		},
		ConsistentRead: aws.Bool(true),
	}), decodeLineItem)
}

// getLineItem resolves the owning work order through id-index, then reads the
// item itself with a consistent GetItem. work_order_id never changes, so the
// eventually consistent index is only trusted for locating the item.
func getLineItem(ctx context.Context, ddb DynamoDBAPI, table, id string) (entities.LineItem, error) {
	out, err := ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(table),
		IndexName:              aws.String(lineItemsIDIndex),
		KeyConditionExpression: aws.String("id = :id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberS{Value: id},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.LineItem{}, err
	}
	if len(out.Items) == 0 {
		return entities.LineItem{}, nil
	}
	located, err := decodeLineItem(out.Items[0])
	if err != nil {
		return entities.LineItem{}, err
	}

	got, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"work_order_id": &types.AttributeValueMemberS{Value: located.WorkOrderID},
			"id":            &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.LineItem{}, err
	}
	if len(got.Item) == 0 {
		return entities.LineItem{}, nil
	}
	return decodeLineItem(got.Item)
}

// lineItemsOfWorkOrder returns every line item of the order, active or not.
func lineItemsOfWorkOrder(ctx context.Context, ddb DynamoDBAPI, table, workOrderID string) ([]entities.LineItem, error) {
	raws, err := queryAll(ctx, ddb, dynamodb.QueryInput{
		TableName:              aws.String(table),
		KeyConditionExpression: aws.String("work_order_id = :wid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":wid": &types.AttributeValueMemberS{Value: workOrderID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	items := make([]entities.LineItem, 0, len(raws))
	for _, raw := range raws {
		item, err := decodeLineItem(raw)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func decodeLineItem(av map[string]types.AttributeValue) (entities.LineItem, error) {
	var it lineItemItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.LineItem{}, err
	}
	return entities.LineItem{
		ID:             it.ID,
		WorkOrderID:    it.WorkOrderID,
		CatalogEntryID: it.CatalogEntryID,
		Quantity:       it.Quantity,
		UnitPrice:      parseDecimal(it.UnitPrice),
		Active:         it.Active,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
		Version:        it.Version,
	}, nil
}

func toLineItemItem(li entities.LineItem) lineItemItem {
	return lineItemItem{
		WorkOrderID:    li.WorkOrderID,
		ID:             li.ID,
		CatalogEntryID: li.CatalogEntryID,
		Quantity:       li.Quantity,
		UnitPrice:      li.UnitPrice.String(),
		Active:         li.Active,
		CreatedAt:      formatTime(li.CreatedAt),
		UpdatedAt:      formatTime(li.UpdatedAt),
		Version:        li.Version,
	}
}
