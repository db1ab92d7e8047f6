package repository

import (
	"context"
	"testing"
	"time"

	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/pkg/pagination"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cancelled(codes ...string) error {
	reasons := make([]types.CancellationReason, len(codes))
	for i, c := range codes {
		reasons[i] = types.CancellationReason{Code: aws.String(c)}
	}
	return &types.TransactionCanceledException{Message: aws.String("cancelled"), CancellationReasons: reasons}
}

func TestCustomerCreate_WritesEntityAndDocumentGuard(t *testing.T) {
	ddb := &fakeDynamo{transact: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
		return &dynamodb.TransactWriteItemsOutput{}, nil
	}}
	repo := NewCustomerDynamoRepository(ddb, DefaultTables())

	c := entities.Customer{ID: "c1", Name: "Maria", Phone: "11999990000", Document: "12345678901", Active: true}
	_, err := repo.Create(context.Background(), c)
	require.NoError(t, err)

	require.Len(t, ddb.transacts, 1)
	items := ddb.transacts[0].TransactItems
	require.Len(t, items, 2)
	assert.Equal(t, "customers", aws.ToString(items[0].Put.TableName))
	assert.Equal(t, "unique_keys", aws.ToString(items[1].Put.TableName))

	var guard uniqueKeyItem
	require.NoError(t, attributevalue.UnmarshalMap(items[1].Put.Item, &guard))
	assert.Equal(t, "customer#document#12345678901", guard.Key)
	assert.Equal(t, "c1", guard.OwnerID)
}

func TestCustomerCreate_DuplicateDocument(t *testing.T) {
	ddb := &fakeDynamo{transact: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
		return nil, cancelled("None", reasonConditionalCheckFailed)
	}}
	repo := NewCustomerDynamoRepository(ddb, DefaultTables())

	_, err := repo.Create(context.Background(), entities.Customer{ID: "c2", Document: "12345678901"})
	assert.ErrorIs(t, err, entities.ErrDocumentAlreadyRegistered)
}

func TestVehicleCreate_DuplicatePlate(t *testing.T) {
	ddb := &fakeDynamo{transact: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
		return nil, cancelled("None", reasonConditionalCheckFailed)
	}}
	repo := NewVehicleDynamoRepository(ddb, DefaultTables())

	_, err := repo.Create(context.Background(), entities.Vehicle{ID: "v1", Plate: "ABC1D23"})
	assert.ErrorIs(t, err, entities.ErrPlateAlreadyRegistered)
}

func TestCustomerUpdate_MissingRowReturnsZeroValue(t *testing.T) {
	ddb := &fakeDynamo{updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("missing")}
	}}
	repo := NewCustomerDynamoRepository(ddb, DefaultTables())

	got, err := repo.Update(context.Background(), entities.Customer{ID: "ghost"})
	require.NoError(t, err)
	assert.Empty(t, got.ID)
}

func TestListActive_FillsPageAcrossFilteredScans(t *testing.T) {
	mk := func(id string) map[string]types.AttributeValue {
		av, _ := attributevalue.MarshalMap(catalogEntryItem{ID: id, Name: "svc " + id, Price: "10.00", Active: true})
		return av
	}
	calls := 0
	ddb := &fakeDynamo{scan: func(in *dynamodb.ScanInput) (*dynamodb.ScanOutput, error) {
		calls++
		switch calls {
		case 1:
			return &dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{mk("a")}, LastEvaluatedKey: stringKey("id", "b")}, nil
		default:
			return &dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{mk("c"), mk("d")}}, nil
		}
	}}
	repo := NewCatalogEntryDynamoRepository(ddb, DefaultTables())

	page, err := repo.ListActive(context.Background(), entities.PageRequest{Size: 2})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "a", page.Items[0].ID)
	assert.Equal(t, "c", page.Items[1].ID)
	assert.Equal(t, "10", page.Items[0].Price.String())

	cursor, err := pagination.DecodeToken(page.NextPageToken)
	require.NoError(t, err)
	assert.Equal(t, pagination.Cursor{"id": "c"}, cursor)

	require.Len(t, ddb.scans, 2)
	assert.Nil(t, ddb.scans[0].ExclusiveStartKey)
	assert.Equal(t, stringKey("id", "b"), ddb.scans[1].ExclusiveStartKey)
}

func TestListActive_ResumesFromToken(t *testing.T) {
	ddb := &fakeDynamo{scan: func(*dynamodb.ScanInput) (*dynamodb.ScanOutput, error) {
		return &dynamodb.ScanOutput{}, nil
	}}
	repo := NewCustomerDynamoRepository(ddb, DefaultTables())
	token, err := pagination.EncodeToken(pagination.Cursor{"id": "c9"})
	require.NoError(t, err)

	page, err := repo.ListActive(context.Background(), entities.PageRequest{Token: token})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Empty(t, page.NextPageToken)
	require.Len(t, ddb.scans, 1)
	assert.Equal(t, stringKey("id", "c9"), ddb.scans[0].ExclusiveStartKey)
	assert.Equal(t, int32(pagination.DefaultPageSize), aws.ToInt32(ddb.scans[0].Limit))
}

func TestListActive_InvalidToken(t *testing.T) {
	repo := NewCustomerDynamoRepository(&fakeDynamo{}, DefaultTables())

	_, err := repo.ListActive(context.Background(), entities.PageRequest{Token: "%%%"})
	assert.ErrorIs(t, err, pagination.ErrInvalidPageToken)
}

func TestWorkOrderItem_KeepsExactMoneyAndOptionalFields(t *testing.T) {
	final := decimal.RequireFromString("159.80")
	opened := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	wo := entities.WorkOrder{
		ID:          "wo1",
		Status:      entities.WorkOrderStatusOpen,
		OpenedAt:    opened,
		FinalValue:  &final,
		Version:     7,
		Description: "Oil change",
	}

	av, err := attributevalue.MarshalMap(toWorkOrderItem(wo))
	require.NoError(t, err)
	assert.NotContains(t, av, "closed_at")
	assert.NotContains(t, av, "estimated_value")

	got, err := decodeWorkOrder(av)
	require.NoError(t, err)
	assert.Equal(t, "159.80", got.FinalValue.StringFixed(2))
	assert.True(t, got.FinalValue.Equal(final))
	assert.Nil(t, got.ClosedAt)
	assert.Nil(t, got.EstimatedValue)
	assert.Equal(t, int64(7), got.Version)
	assert.True(t, got.OpenedAt.Equal(opened))
}

func TestWorkOrderListVisible_FiltersCancelled(t *testing.T) {
	ddb := &fakeDynamo{scan: func(*dynamodb.ScanInput) (*dynamodb.ScanOutput, error) {
		return &dynamodb.ScanOutput{}, nil
	}}
	repo := NewWorkOrderDynamoRepository(ddb, DefaultTables())

	_, err := repo.ListVisible(context.Background(), entities.PageRequest{})
	require.NoError(t, err)
	require.Len(t, ddb.scans, 1)
	assert.Equal(t, "#status <> :cancelled", aws.ToString(ddb.scans[0].FilterExpression))
	assert.Equal(t, &types.AttributeValueMemberS{Value: "CANCELLED"}, ddb.scans[0].ExpressionAttributeValues[":cancelled"])
}

func TestPaymentListByWorkOrder_FollowsPages(t *testing.T) {
	mk := func(id string) map[string]types.AttributeValue {
		av, _ := attributevalue.MarshalMap(paymentItem{ID: id, WorkOrderID: "wo1", Amount: "159.80", Status: "approved"})
		return av
	}
	calls := 0
	ddb := &fakeDynamo{query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
		calls++
		if calls == 1 {
			return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{mk("p1")}, LastEvaluatedKey: stringKey("id", "p1")}, nil
		}
		return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{mk("p2")}}, nil
	}}
	repo := NewPaymentDynamoRepository(ddb, DefaultTables())

	payments, err := repo.ListByWorkOrderID(context.Background(), "wo1")
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, "159.8", payments[1].Amount.String())
	assert.Equal(t, paymentsWorkOrderIDIndex, aws.ToString(ddb.queries[0].IndexName))
}
