package repository

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAdmin struct {
	existing map[string]bool
	created  []*dynamodb.CreateTableInput
}

func (f *fakeAdmin) DescribeTable(_ context.Context, in *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	name := aws.ToString(in.TableName)
	if !f.existing[name] {
		return nil, &types.ResourceNotFoundException{Message: aws.String("no table " + name)}
	}
	return &dynamodb.DescribeTableOutput{Table: &types.TableDescription{
		TableName:   in.TableName,
		TableStatus: types.TableStatusActive,
	}}, nil
}

func (f *fakeAdmin) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	f.created = append(f.created, in)
	f.existing[aws.ToString(in.TableName)] = true
	return &dynamodb.CreateTableOutput{}, nil
}

func TestEnsureTables_CreatesOnlyMissingTables(t *testing.T) {
	tables := DefaultTables()
	admin := &fakeAdmin{existing: map[string]bool{
		tables.Customers:  true,
		tables.Vehicles:   true,
		tables.Services:   true,
		tables.WorkOrders: true,
		tables.Payments:   true,
		tables.UniqueKeys: true,
	}}

	require.NoError(t, EnsureTables(context.Background(), admin, tables))

	require.Len(t, admin.created, 1)
	lineItems := admin.created[0]
	assert.Equal(t, "line_items", aws.ToString(lineItems.TableName))
	require.Len(t, lineItems.KeySchema, 2)
	assert.Equal(t, "work_order_id", aws.ToString(lineItems.KeySchema[0].AttributeName))
	assert.Equal(t, types.KeyTypeRange, lineItems.KeySchema[1].KeyType)
	require.Len(t, lineItems.GlobalSecondaryIndexes, 1)
	assert.Equal(t, lineItemsIDIndex, aws.ToString(lineItems.GlobalSecondaryIndexes[0].IndexName))
	assert.Len(t, lineItems.AttributeDefinitions, 2)
}

func TestTableDefinitions_IndexesDeclareTheirAttributes(t *testing.T) {
	for _, def := range DefaultTables().definitions() {
		defined := map[string]bool{}
		for _, d := range def.AttributeDefinitions {
			defined[aws.ToString(d.AttributeName)] = true
		}
		for _, gsi := range def.GlobalSecondaryIndexes {
			for _, k := range gsi.KeySchema {
				assert.True(t, defined[aws.ToString(k.AttributeName)], "%s: %s", aws.ToString(def.TableName), aws.ToString(k.AttributeName))
			}
		}
	}
}
