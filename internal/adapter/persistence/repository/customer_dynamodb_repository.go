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

type customerItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Phone     string `dynamodbav:"phone"`
	Document  string `dynamodbav:"document"`
	Email     string `dynamodbav:"email,omitempty"`
	Active    bool   `dynamodbav:"active"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// uniqueKeyItem reserves a value that must be unique across a table.
type uniqueKeyItem struct {
	Key     string `dynamodbav:"key"`
	OwnerID string `dynamodbav:"owner_id"`
}

// CustomerDynamoRepository persists Customer entities in DynamoDB.
//
// Table requirements:
//   - customers PK: id (string)
//   - unique_keys PK: key (string), holding "customer#document#<document>"
type CustomerDynamoRepository struct {
	ddb    DynamoDBAPI
	tables Tables
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb DynamoDBAPI, tables Tables) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{ddb: ddb, tables: tables}
}

func (r *CustomerDynamoRepository) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	av, err := attributevalue.MarshalMap(toCustomerItem(c))
	if err != nil {
		return entities.Customer{}, err
	}
	guard, err := attributevalue.MarshalMap(uniqueKeyItem{Key: "customer#document#" + c.Document, OwnerID: c.ID})
	if err != nil {
		return entities.Customer{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tables.Customers),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			{Put: &types.Put{
				TableName:                aws.String(r.tables.UniqueKeys),
				Item:                     guard,
				ConditionExpression:      aws.String("attribute_not_exists(#key)"),
				ExpressionAttributeNames: map[string]string{"#key": "key"},
			}},
		},
	})
	if err != nil {
		if codes, ok := cancellationCodes(err); ok {
			if len(codes) > 1 && codes[1] == reasonConditionalCheckFailed {
				return entities.Customer{}, entities.ErrDocumentAlreadyRegistered
			}
			return entities.Customer{}, fmt.Errorf("%w: customer %s", entities.ErrConflict, c.ID)
		}
		return entities.Customer{}, err
	}
	return c, nil
}

func (r *CustomerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tables.Customers),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Customer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Customer{}, nil
	}
	return decodeCustomer(out.Item)
}

// Update rewrites the mutable fields. The document and creation time are never touched.
func (r *CustomerDynamoRepository) Update(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tables.Customers),
		Key:                 stringKey("id", c.ID),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #name = :name, #phone = :phone, #email = :email, #active = :active, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#name":       "name",
			"#phone":      "phone",
			"#email":      "email",
			"#active":     "active",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name":       &types.AttributeValueMemberS{Value: c.Name},
			":phone":      &types.AttributeValueMemberS{Value: c.Phone},
			":email":      &types.AttributeValueMemberS{Value: c.Email},
			":active":     &types.AttributeValueMemberBOOL{Value: c.Active},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(c.UpdatedAt)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Customer{}, nil
		}
		return entities.Customer{}, err
	}
	return decodeCustomer(out.Attributes)
}

func (r *CustomerDynamoRepository) ListActive(ctx context.Context, page entities.PageRequest) (entities.Page[entities.Customer], error) {
	return collectPage(ctx, page, []string{"id"}, scanFetch(r.ddb, dynamodb.ScanInput{
		TableName:                 aws.String(r.tables.Customers),
		FilterExpression:          aws.String(activeFilter.expr),
		ExpressionAttributeNames:  activeFilter.names,
		ExpressionAttributeValues: activeFilter.values,
		ConsistentRead:            aws.Bool(true),
	}), decodeCustomer)
}

func decodeCustomer(av map[string]types.AttributeValue) (entities.Customer, error) {
	var it customerItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

func toCustomerItem(c entities.Customer) customerItem {
	return customerItem{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Document:  c.Document,
		Email:     c.Email,
		Active:    c.Active,
		CreatedAt: formatTime(c.CreatedAt),
		UpdatedAt: formatTime(c.UpdatedAt),
	}
}

func fromCustomerItem(it customerItem) entities.Customer {
	return entities.Customer{
		ID:        it.ID,
		Name:      it.Name,
		Phone:     it.Phone,
		Document:  it.Document,
		Email:     it.Email,
		Active:    it.Active,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
