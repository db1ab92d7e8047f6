package repository

import (
	"context"
	"fmt"
	"strconv"

	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type vehicleItem struct {
	ID         string `dynamodbav:"id"`
	Plate      string `dynamodbav:"plate"`
	Model      string `dynamodbav:"model"`
	Brand      string `dynamodbav:"brand"`
	Year       int    `dynamodbav:"year"`
	Type       string `dynamodbav:"type"`
	CustomerID string `dynamodbav:"customer_id"`
	Active     bool   `dynamodbav:"active"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// VehicleDynamoRepository persists Vehicle entities in DynamoDB.
//
// Table requirements:
//   - vehicles PK: id (string)
//   - GSI: customer_id-index (PK: customer_id, SK: id)
//   - unique_keys item "vehicle#plate#<plate>"
type VehicleDynamoRepository struct {
	ddb    DynamoDBAPI
	tables Tables
}

var _ interfaces.IVehicleRepository = (*VehicleDynamoRepository)(nil)

func NewVehicleDynamoRepository(ddb DynamoDBAPI, tables Tables) *VehicleDynamoRepository {
	return &VehicleDynamoRepository{ddb: ddb, tables: tables}
}

func (r *VehicleDynamoRepository) Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	av, err := attributevalue.MarshalMap(toVehicleItem(v))
	if err != nil {
		return entities.Vehicle{}, err
	}
	guard, err := attributevalue.MarshalMap(uniqueKeyItem{Key: "vehicle#plate#" + v.Plate, OwnerID: v.ID})
	if err != nil {
		return entities.Vehicle{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tables.Vehicles),
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
				return entities.Vehicle{}, entities.ErrPlateAlreadyRegistered
			}
			return entities.Vehicle{}, fmt.Errorf("%w: vehicle %s", entities.ErrConflict, v.ID)
		}
		return entities.Vehicle{}, err
	}
	return v, nil
}

func (r *VehicleDynamoRepository) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tables.Vehicles),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Vehicle{}, err
	}
	if len(out.Item) == 0 {
		return entities.Vehicle{}, nil
	}
	return decodeVehicle(out.Item)
}

// Update rewrites the mutable fields; plate and owner are fixed at creation.
func (r *VehicleDynamoRepository) Update(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tables.Vehicles),
		Key:                 stringKey("id", v.ID),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #model = :model, #brand = :brand, #year = :year, #type = :type, #active = :active, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#model":      "model",
			"#brand":      "brand",
			"#year":       "year",
			"#type":       "type",
			"#active":     "active",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":model":      &types.AttributeValueMemberS{Value: v.Model},
			":brand":      &types.AttributeValueMemberS{Value: v.Brand},
			":year":       &types.AttributeValueMemberN{Value: strconv.Itoa(v.Year)},
			":type":       &types.AttributeValueMemberS{Value: string(v.Type)},
			":active":     &types.AttributeValueMemberBOOL{Value: v.Active},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(v.UpdatedAt)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Vehicle{}, nil
		}
		return entities.Vehicle{}, err
	}
	return decodeVehicle(out.Attributes)
}

func (r *VehicleDynamoRepository) ListActive(ctx context.Context, page entities.PageRequest) (entities.Page[entities.Vehicle], error) {
	return collectPage(ctx, page, []string{"id"}, scanFetch(r.ddb, dynamodb.ScanInput{
		TableName:                 aws.String(r.tables.Vehicles),
		FilterExpression:          aws.String(activeFilter.expr),
		ExpressionAttributeNames:  activeFilter.names,
		ExpressionAttributeValues: activeFilter.values,
		ConsistentRead:            aws.Bool(true),
	}), decodeVehicle)
}

func (r *VehicleDynamoRepository) ListActiveByCustomerID(ctx context.Context, customerID string, page entities.PageRequest) (entities.Page[entities.Vehicle], error) {
	return collectPage(ctx, page, []string{"customer_id", "id"}, queryFetch(r.ddb, dynamodb.QueryInput{
		TableName:                aws.String(r.tables.Vehicles),
		IndexName:                aws.String(vehiclesCustomerIDIndex),
		KeyConditionExpression:   aws.String("customer_id = :cid"),
		FilterExpression:         aws.String(activeFilter.expr),
		ExpressionAttributeNames: activeFilter.names,
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid":    &types.AttributeValueMemberS{Value: customerID},
			":active": &types.AttributeValueMemberBOOL{Value: true},
		},
	}), decodeVehicle)
}

func decodeVehicle(av map[string]types.AttributeValue) (entities.Vehicle, error) {
	var it vehicleItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Vehicle{}, err
	}
	return fromVehicleItem(it), nil
}

func toVehicleItem(v entities.Vehicle) vehicleItem {
	return vehicleItem{
		ID:         v.ID,
		Plate:      v.Plate,
		Model:      v.Model,
		Brand:      v.Brand,
		Year:       v.Year,
		Type:       string(v.Type),
		CustomerID: v.CustomerID,
		Active:     v.Active,
		CreatedAt:  formatTime(v.CreatedAt),
		UpdatedAt:  formatTime(v.UpdatedAt),
	}
}

func fromVehicleItem(it vehicleItem) entities.Vehicle {
	return entities.Vehicle{
		ID:         it.ID,
		Plate:      it.Plate,
		Model:      it.Model,
		Brand:      it.Brand,
		Year:       it.Year,
		Type:       entities.VehicleType(it.Type),
		CustomerID: it.CustomerID,
		Active:     it.Active,
		CreatedAt:  parseTime(it.CreatedAt),
		UpdatedAt:  parseTime(it.UpdatedAt),
	}
}
