// Package memory is the in-process storage driver used for local runs and
// tests. It mirrors the DynamoDB driver's semantics: uniqueness guards, strongly
// consistent reads and optimistic versioning of work orders.
package memory

import (
	"cmp"
	"slices"
	"sync"

	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/pkg/pagination"
)

type Store struct {
	mu         sync.RWMutex
	customers  map[string]entities.Customer
	vehicles   map[string]entities.Vehicle
	catalog    map[string]entities.CatalogEntry
	lineItems  map[string]entities.LineItem
	workOrders map[string]entities.WorkOrder
	payments   map[string]entities.Payment
	// uniqueKeys maps a guarded value ("vehicle#plate#ABC1D23") to its owner id.
	uniqueKeys map[string]string
}

func NewStore() *Store {
	return &Store{
		customers:  map[string]entities.Customer{},
		vehicles:   map[string]entities.Vehicle{},
		catalog:    map[string]entities.CatalogEntry{},
		lineItems:  map[string]entities.LineItem{},
		workOrders: map[string]entities.WorkOrder{},
		payments:   map[string]entities.Payment{},
		uniqueKeys: map[string]string{},
	}
}

func documentKey(document string) string { return "customer#document#" + document }

func plateKey(plate string) string { return "vehicle#plate#" + plate }

// paginate orders items by id and returns the page after the token's cursor.
func paginate[T any](items []T, id func(T) string, page entities.PageRequest) (entities.Page[T], error) {
	cursor, err := pagination.DecodeToken(page.Token)
	if err != nil {
		return entities.Page[T]{}, err
	}
	size := pagination.NormalizeSize(page.Size)

	slices.SortFunc(items, func(a, b T) int { return cmp.Compare(id(a), id(b)) })
	start := 0
	if after := cursor["id"]; after != "" {
		start, _ = slices.BinarySearchFunc(items, after, func(it T, target string) int {
			if id(it) <= target {
				return -1
			}
			return 1
		})
	}
	end := min(start+size, len(items))

	out := entities.Page[T]{Items: slices.Clone(items[start:end])}
	if out.Items == nil {
		out.Items = []T{}
	}
	if end < len(items) {
		token, err := pagination.EncodeToken(pagination.Cursor{"id": id(items[end-1])})
		if err != nil {
			return entities.Page[T]{}, err
		}
		out.NextPageToken = token
	}
	return out, nil
}
