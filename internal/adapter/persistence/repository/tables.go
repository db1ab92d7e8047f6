package repository

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	vehiclesCustomerIDIndex   = "customer_id-index"
	lineItemsIDIndex          = "id-index"
	paymentsWorkOrderIDIndex  = "work_order_id-index"
	tableCreationWaitDuration = 2 * time.Minute
)

// Tables names every DynamoDB table the service uses.
type Tables struct {
	Customers  string
	Vehicles   string
	Services   string
	LineItems  string
	WorkOrders string
	Payments   string
	UniqueKeys string
}

func DefaultTables() Tables {
	return Tables{
		Customers:  "customers",
		Vehicles:   "vehicles",
		Services:   "services",
		LineItems:  "line_items",
		WorkOrders: "work_orders",
		Payments:   "payments",
		UniqueKeys: "unique_keys",
	}
}

// TableAdmin is what EnsureTables needs from the client.
type TableAdmin interface {
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

// EnsureTables creates the missing tables and waits until they are active.
// Meant for local DynamoDB; production tables are provisioned outside the service.
func EnsureTables(ctx context.Context, admin TableAdmin, t Tables) error {
	for _, def := range t.definitions() {
		_, err := admin.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: def.TableName})
		if err == nil {
			continue
		}
		var notFound *types.ResourceNotFoundException
		if !errors.As(err, &notFound) {
			return err
		}
		if _, err := admin.CreateTable(ctx, def); err != nil {
			var inUse *types.ResourceInUseException
			if !errors.As(err, &inUse) {
				return err
			}
		}
		waiter := dynamodb.NewTableExistsWaiter(admin)
		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: def.TableName}, tableCreationWaitDuration); err != nil {
			return err
		}
	}
	return nil
}

func (t Tables) definitions() []*dynamodb.CreateTableInput {
	return []*dynamodb.CreateTableInput{
		hashTable(t.Customers, "id"),
		withIndex(hashTable(t.Vehicles, "id"), vehiclesCustomerIDIndex, "customer_id", "id"),
		hashTable(t.Services, "id"),
		withIndex(&dynamodb.CreateTableInput{
			TableName: aws.String(t.LineItems),
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String("work_order_id"), AttributeType: types.ScalarAttributeTypeS},
				{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("work_order_id"), KeyType: types.KeyTypeHash},
				{AttributeName: aws.String("id"), KeyType: types.KeyTypeRange},
			},
			BillingMode: types.BillingModePayPerRequest,
		}, lineItemsIDIndex, "id", ""),
		hashTable(t.WorkOrders, "id"),
		withIndex(hashTable(t.Payments, "id"), paymentsWorkOrderIDIndex, "work_order_id", "id"),
		hashTable(t.UniqueKeys, "key"),
	}
}

func hashTable(name, key string) *dynamodb.CreateTableInput {
	return &dynamodb.CreateTableInput{
		TableName: aws.String(name),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String(key), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(key), KeyType: types.KeyTypeHash},
		},
		BillingMode: types.BillingModePayPerRequest,
	}
}

// withIndex adds a GSI projecting all attributes. rangeKey may be empty.
func withIndex(in *dynamodb.CreateTableInput, name, hashKey, rangeKey string) *dynamodb.CreateTableInput {
	defined := map[string]bool{}
	for _, d := range in.AttributeDefinitions {
		defined[aws.ToString(d.AttributeName)] = true
	}
	schema := []types.KeySchemaElement{{AttributeName: aws.String(hashKey), KeyType: types.KeyTypeHash}}
	if rangeKey != "" {
		schema = append(schema, types.KeySchemaElement{AttributeName: aws.String(rangeKey), KeyType: types.KeyTypeRange})
	}
	for _, k := range schema {
		if !defined[aws.ToString(k.AttributeName)] {
			in.AttributeDefinitions = append(in.AttributeDefinitions, types.AttributeDefinition{
				AttributeName: k.AttributeName,
				AttributeType: types.ScalarAttributeTypeS,
			})
		}
	}
	in.GlobalSecondaryIndexes = append(in.GlobalSecondaryIndexes, types.GlobalSecondaryIndex{
		IndexName:  aws.String(name),
		KeySchema:  schema,
		Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
	})
	return in
}
