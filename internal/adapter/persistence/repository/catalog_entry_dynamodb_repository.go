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

type catalogEntryItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Price     string `dynamodbav:"price"`
	Active    bool   `dynamodbav:"active"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// CatalogEntryDynamoRepository persists the service catalog in the services table
// (PK: id).
type CatalogEntryDynamoRepository struct {
	ddb    DynamoDBAPI
	tables Tables
}

var _ interfaces.ICatalogEntryRepository = (*CatalogEntryDynamoRepository)(nil)

func NewCatalogEntryDynamoRepository(ddb DynamoDBAPI, tables Tables) *CatalogEntryDynamoRepository {
	return &CatalogEntryDynamoRepository{ddb: ddb, tables: tables}
}

func (r *CatalogEntryDynamoRepository) Create(ctx context.Context, e entities.CatalogEntry) (entities.CatalogEntry, error) {
	av, err := attributevalue.MarshalMap(toCatalogEntryItem(e))
	if err != nil {
		return entities.CatalogEntry{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tables.Services),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.CatalogEntry{}, fmt.Errorf("%w: service %s", entities.ErrConflict, e.ID)
		}
		return entities.CatalogEntry{}, err
	}
	return e, nil
}

func (r *CatalogEntryDynamoRepository) GetByID(ctx context.Context, id string) (entities.CatalogEntry, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tables.Services),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CatalogEntry{}, err
	}
	if len(out.Item) == 0 {
		return entities.CatalogEntry{}, nil
	}
	return decodeCatalogEntry(out.Item)
}

func (r *CatalogEntryDynamoRepository) Update(ctx context.Context, e entities.CatalogEntry) (entities.CatalogEntry, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tables.Services),
		Key:                 stringKey("id", e.ID),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #name = :name, #price = :price, #active = :active, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#name":       "name",
			"#price":      "price",
			"#active":     "active",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name":       &types.AttributeValueMemberS{Value: e.Name},
			":price":      &types.AttributeValueMemberS{Value: e.Price.String()},
			":active":     &types.AttributeValueMemberBOOL{Value: e.Active},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(e.UpdatedAt)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.CatalogEntry{}, nil
		}
		return entities.CatalogEntry{}, err
	}
	return decodeCatalogEntry(out.Attributes)
}

func (r *CatalogEntryDynamoRepository) ListActive(ctx context.Context, page entities.PageRequest) (entities.Page[entities.CatalogEntry], error) {
	return collectPage(ctx, page, []string{"id"}, scanFetch(r.ddb, dynamodb.ScanInput{
		TableName:                 aws.String(r.tables.Services),
		FilterExpression:          aws.String(activeFilter.expr),
		ExpressionAttributeNames:  activeFilter.names,
		ExpressionAttributeValues: activeFilter.values,
		ConsistentRead:            aws.Bool(true),
	}), decodeCatalogEntry)
}

func decodeCatalogEntry(av map[string]types.AttributeValue) (entities.CatalogEntry, error) {
	var it catalogEntryItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.CatalogEntry{}, err
	}
	return entities.CatalogEntry{
		ID:        it.ID,
		Name:      it.Name,
		Price:     parseDecimal(it.Price),
		Active:    it.Active,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}, nil
}

func toCatalogEntryItem(e entities.CatalogEntry) catalogEntryItem {
	return catalogEntryItem{
		ID:        e.ID,
		Name:      e.Name,
		Price:     e.Price.String(),
		Active:    e.Active,
		CreatedAt: formatTime(e.CreatedAt),
		UpdatedAt: formatTime(e.UpdatedAt),
	}
}
