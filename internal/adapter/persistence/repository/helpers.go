package repository

import (
	"context"
	"errors"
	"time"

	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/pkg/pagination"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// DynamoDBAPI is the part of *dynamodb.Client the repositories depend on.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ DynamoDBAPI = (*dynamodb.Client)(nil)

const (
	reasonConditionalCheckFailed = "ConditionalCheckFailed"
	reasonTransactionConflict    = "TransactionConflict"
)

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseOptionalTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t := parseTime(s)
	return &t
}

// Money is stored as a decimal string so no precision is lost in a float round trip.
func formatOptionalDecimal(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}

func parseDecimal(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func parseOptionalDecimal(s string) *decimal.Decimal {
	if s == "" {
		return nil
	}
	d := parseDecimal(s)
	return &d
}

func stringKey(name, value string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{name: &types.AttributeValueMemberS{Value: value}}
}

func isConditionalCheckFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

// cancellationCodes returns the per-item reason codes of a cancelled
// TransactWriteItems call, or false when err is not a cancellation.
func cancellationCodes(err error) ([]string, bool) {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return nil, false
	}
	codes := make([]string, len(tce.CancellationReasons))
	for i, r := range tce.CancellationReasons {
		codes[i] = aws.ToString(r.Code)
	}
	return codes, true
}

// fetchFunc reads one DynamoDB page starting after startKey.
type fetchFunc func(ctx context.Context, startKey map[string]types.AttributeValue, limit int32) (items []map[string]types.AttributeValue, lastKey map[string]types.AttributeValue, err error)

// collectPage fills one page of at most page.Size items. A FilterExpression is
// applied after Limit, so it keeps fetching until the page is full or the table is
// exhausted. The next token is the key of the last returned item.
func collectPage[T any](
	ctx context.Context,
	page entities.PageRequest,
	keyAttrs []string,
	fetch fetchFunc,
	decode func(map[string]types.AttributeValue) (T, error),
) (entities.Page[T], error) {
	cursor, err := pagination.DecodeToken(page.Token)
	if err != nil {
		return entities.Page[T]{}, err
	}
	size := pagination.NormalizeSize(page.Size)

	startKey := keyFromCursor(cursor, keyAttrs)
	var raws []map[string]types.AttributeValue
	var last map[string]types.AttributeValue
	for {
		items, lastKey, err := fetch(ctx, startKey, int32(size))
		if err != nil {
			return entities.Page[T]{}, err
		}
		raws = append(raws, items...)
		last = lastKey
		if len(last) == 0 || len(raws) >= size {
			break
		}
		startKey = last
	}

	hasMore := len(last) > 0 || len(raws) > size
	if len(raws) > size {
		raws = raws[:size]
	}

	out := entities.Page[T]{Items: make([]T, 0, len(raws))}
	for _, raw := range raws {
		v, err := decode(raw)
		if err != nil {
			return entities.Page[T]{}, err
		}
		out.Items = append(out.Items, v)
	}
	if hasMore && len(raws) > 0 {
		token, err := pagination.EncodeToken(cursorFromItem(raws[len(raws)-1], keyAttrs))
		if err != nil {
			return entities.Page[T]{}, err
		}
		out.NextPageToken = token
	}
	return out, nil
}

func keyFromCursor(cursor pagination.Cursor, keyAttrs []string) map[string]types.AttributeValue {
	if len(cursor) == 0 {
		return nil
	}
	key := make(map[string]types.AttributeValue, len(keyAttrs))
	for _, name := range keyAttrs {
		key[name] = &types.AttributeValueMemberS{Value: cursor[name]}
	}
	return key
}

func cursorFromItem(item map[string]types.AttributeValue, keyAttrs []string) pagination.Cursor {
	cursor := make(pagination.Cursor, len(keyAttrs))
	for _, name := range keyAttrs {
		if s, ok := item[name].(*types.AttributeValueMemberS); ok {
			cursor[name] = s.Value
		}
	}
	return cursor
}

func scanFetch(ddb DynamoDBAPI, input dynamodb.ScanInput) fetchFunc {
	return func(ctx context.Context, startKey map[string]types.AttributeValue, limit int32) ([]map[string]types.AttributeValue, map[string]types.AttributeValue, error) {
		in := input
		in.ExclusiveStartKey = startKey
		in.Limit = aws.Int32(limit)
		out, err := ddb.Scan(ctx, &in)
		if err != nil {
			return nil, nil, err
		}
		return out.Items, out.LastEvaluatedKey, nil
	}
}

func queryFetch(ddb DynamoDBAPI, input dynamodb.QueryInput) fetchFunc {
	return func(ctx context.Context, startKey map[string]types.AttributeValue, limit int32) ([]map[string]types.AttributeValue, map[string]types.AttributeValue, error) {
		in := input
		in.ExclusiveStartKey = startKey
		in.Limit = aws.Int32(limit)
		out, err := ddb.Query(ctx, &in)
		if err != nil {
			return nil, nil, err
		}
		return out.Items, out.LastEvaluatedKey, nil
	}
}

// queryAll follows LastEvaluatedKey until the query is exhausted.
func queryAll(ctx context.Context, ddb DynamoDBAPI, input dynamodb.QueryInput) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	for {
		out, err := ddb.Query(ctx, &input)
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

var activeFilter = struct {
	expr   string
	names  map[string]string
	values map[string]types.AttributeValue
}{
	expr:   "#active = :active",
	names:  map[string]string{"#active": "active"},
	values: map[string]types.AttributeValue{":active": &types.AttributeValueMemberBOOL{Value: true}},
}
