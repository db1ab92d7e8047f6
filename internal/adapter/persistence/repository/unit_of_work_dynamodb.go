package repository

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"

	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/samber/lo"
)

// DynamoUnitOfWork commits everything a transaction staged with a single
// TransactWriteItems call. Each staged work order and line item is written with
// "version = :expected" (new line items with "attribute_not_exists"), so two
// transactions that read the same row cannot both commit; the loser gets
// entities.ErrConflict and nothing of it is written.
type DynamoUnitOfWork struct {
	ddb    DynamoDBAPI
	tables Tables
}

var _ interfaces.IUnitOfWork = (*DynamoUnitOfWork)(nil)

func NewDynamoUnitOfWork(ddb DynamoDBAPI, tables Tables) *DynamoUnitOfWork {
	return &DynamoUnitOfWork{ddb: ddb, tables: tables}
}

func (u *DynamoUnitOfWork) WithinTransaction(ctx context.Context, fn func(ctx context.Context, tx interfaces.ITransaction) error) error {
	tx := &dynamoTransaction{
		ddb:        u.ddb,
		tables:     u.tables,
		workOrders: map[string]entities.WorkOrder{},
		lineItems:  map[string]entities.LineItem{},
	}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	return tx.commit(ctx)
}

type dynamoTransaction struct {
	ddb        DynamoDBAPI
	tables     Tables
	workOrders map[string]entities.WorkOrder
	lineItems  map[string]entities.LineItem
	// order keeps TransactItems in staging order.
	order []stagedWrite
}

type stagedWrite struct {
	workOrder bool
	id        string
}

var _ interfaces.ITransaction = (*dynamoTransaction)(nil)

func (t *dynamoTransaction) FindWorkOrderByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	if wo, ok := t.workOrders[id]; ok {
		return wo, nil
	}
	return getWorkOrder(ctx, t.ddb, t.tables.WorkOrders, id)
}

func (t *dynamoTransaction) FindLineItemByID(ctx context.Context, id string) (entities.LineItem, error) {
	if item, ok := t.lineItems[id]; ok {
		return item, nil
	}
	return getLineItem(ctx, t.ddb, t.tables.LineItems, id)
}

func (t *dynamoTransaction) FindActiveLineItemsByWorkOrder(ctx context.Context, workOrderID string) ([]entities.LineItem, error) {
	items, err := lineItemsOfWorkOrder(ctx, t.ddb, t.tables.LineItems, workOrderID)
	if err != nil {
		return nil, err
	}
	for _, staged := range t.lineItems {
		if staged.WorkOrderID == workOrderID {
			items = entities.MergeLineItem(items, staged)
		}
	}
	active := lo.Filter(items, func(it entities.LineItem, _ int) bool { return it.Active })
	slices.SortFunc(active, func(a, b entities.LineItem) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return active, nil
}

// SaveWorkOrder stages wo. A second save of the same order keeps the version the
// transaction first read, so the commit condition still refers to the stored row.
func (t *dynamoTransaction) SaveWorkOrder(_ context.Context, wo entities.WorkOrder) error {
	if staged, ok := t.workOrders[wo.ID]; ok {
		wo.Version = staged.Version
	} else {
		t.order = append(t.order, stagedWrite{workOrder: true, id: wo.ID})
	}
	t.workOrders[wo.ID] = wo
	return nil
}

// SaveLineItem stages item. Like SaveWorkOrder, the commit condition uses the
// version of the first save.
func (t *dynamoTransaction) SaveLineItem(_ context.Context, item entities.LineItem) error {
	if staged, ok := t.lineItems[item.ID]; ok {
		item.Version = staged.Version
	} else {
		t.order = append(t.order, stagedWrite{id: item.ID})
	}
	t.lineItems[item.ID] = item
	return nil
}

func (t *dynamoTransaction) commit(ctx context.Context) error {
	if len(t.order) == 0 {
		return nil
	}

	writes := make([]types.TransactWriteItem, 0, len(t.order))
	for _, ref := range t.order {
		var (
			w   types.TransactWriteItem
			err error
		)
		if ref.workOrder {
			w, err = t.workOrderWrite(t.workOrders[ref.id])
		} else {
			w, err = t.lineItemWrite(t.lineItems[ref.id])
		}
		if err != nil {
			return err
		}
		writes = append(writes, w)
	}

	_, err := t.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: writes})
	if err != nil {
		if codes, ok := cancellationCodes(err); ok && lo.SomeBy(codes, isConflictCode) {
			return fmt.Errorf("%w: transaction cancelled (%v)", entities.ErrConflict, codes)
		}
		return err
	}
	return nil
}

func (t *dynamoTransaction) workOrderWrite(wo entities.WorkOrder) (types.TransactWriteItem, error) {
	expected := wo.Version
	wo.Version++
	av, err := attributevalue.MarshalMap(toWorkOrderItem(wo))
	if err != nil {
		return types.TransactWriteItem{}, err
	}
	return types.TransactWriteItem{Put: &types.Put{
		TableName:           aws.String(t.tables.WorkOrders),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expected, 10)},
		},
	}}, nil
}

func (t *dynamoTransaction) lineItemWrite(item entities.LineItem) (types.TransactWriteItem, error) {
	expected := item.Version
	item.Version++
	av, err := attributevalue.MarshalMap(toLineItemItem(item))
	if err != nil {
		return types.TransactWriteItem{}, err
	}
	put := &types.Put{
		TableName:                aws.String(t.tables.LineItems),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	}
	if expected > 0 {
		put.ConditionExpression = aws.String("attribute_exists(#id) AND #version = :expected")
		put.ExpressionAttributeNames["#version"] = "version"
		put.ExpressionAttributeValues = map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expected, 10)},
		}
	}
	return types.TransactWriteItem{Put: put}, nil
}

func isConflictCode(code string) bool {
	return code == reasonConditionalCheckFailed || code == reasonTransactionConflict
}
