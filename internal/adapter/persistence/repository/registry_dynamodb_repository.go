package repository

import (
	"context"
	"fmt"
	"sort"

	"hotel_procurement/internal/domain/entities"
	"hotel_procurement/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

type catalogItem struct {
	NameKey       string `dynamodbav:"name_key"`
	Name          string `dynamodbav:"name"`
	Category      string `dynamodbav:"category"`
	Unit          string `dynamodbav:"unit"`
	EstimatedCost string `dynamodbav:"estimated_cost"`
}

type representativeItem struct {
	Name    string `dynamodbav:"name"`
	Contact string `dynamodbav:"contact"`
}

type supplierItem struct {
	NameKey         string               `dynamodbav:"name_key"`
	Name            string               `dynamodbav:"name"`
	Category        string               `dynamodbav:"category"`
	Contact         string               `dynamodbav:"contact,omitempty"`
	Representatives []representativeItem `dynamodbav:"representatives"`
	Branches        []string             `dynamodbav:"branches"`
	Website         string               `dynamodbav:"website,omitempty"`
	Notes           string               `dynamodbav:"notes,omitempty"`
}

// CatalogDynamoRepository reads the item catalog.
//
// Table requirements:
//   - PK: name_key (string)
type CatalogDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client, tableName string) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CatalogDynamoRepository) List(ctx context.Context) ([]entities.CatalogItem, error) {
	items, err := scanAll[catalogItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.CatalogItem, 0, len(items))
	for _, it := range items {
		out = append(out, fromCatalogItem(it))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out, nil
}

// GetByKeys batch-reads the entries for the given names. Unknown names are
// skipped.
func (r *CatalogDynamoRepository) GetByKeys(ctx context.Context, keys []string) ([]entities.CatalogItem, error) {
	seen := map[string]bool{}
	var pending []map[string]types.AttributeValue
	for _, k := range keys {
		k = entities.NormalizeKey(k)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		pending = append(pending, stringKey("name_key", k))
	}

	var out []entities.CatalogItem
	for len(pending) > 0 {
		n := min(len(pending), maxBatchGetKeys)
		batch := pending[:n]
		pending = pending[n:]

		res, err := r.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{
			RequestItems: map[string]types.KeysAndAttributes{
				r.tableName: {Keys: batch, ConsistentRead: aws.Bool(true)},
			},
		})
		if err != nil {
			return nil, fmt.Errorf("batch get catalog: %w", err)
		}
		var items []catalogItem
		if err := attributevalue.UnmarshalListOfMaps(res.Responses[r.tableName], &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromCatalogItem(it))
		}
		if unprocessed, ok := res.UnprocessedKeys[r.tableName]; ok {
			pending = append(pending, unprocessed.Keys...)
		}
	}
	return out, nil
}

// SupplierDynamoRepository persists suppliers.
//
// Table requirements:
//   - PK: name_key (string)
type SupplierDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.ISupplierRepository = (*SupplierDynamoRepository)(nil)

func NewSupplierDynamoRepository(ddb *dynamodb.Client, tableName string) *SupplierDynamoRepository {
	return &SupplierDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *SupplierDynamoRepository) List(ctx context.Context) ([]entities.Supplier, error) {
	items, err := scanAll[supplierItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Supplier, 0, len(items))
	for _, it := range items {
		out = append(out, fromSupplierItem(it))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out, nil
}

func (r *SupplierDynamoRepository) Get(ctx context.Context, name string) (*entities.Supplier, error) {
	it, err := getItem[supplierItem](ctx, r.ddb, r.tableName, stringKey("name_key", entities.NormalizeKey(name)))
	if err != nil || it == nil {
		return nil, err
	}
	s := fromSupplierItem(*it)
	return &s, nil
}

func (r *SupplierDynamoRepository) Put(ctx context.Context, s entities.Supplier) error {
	return putItem(ctx, r.ddb, r.tableName, toSupplierItem(s))
}

func toCatalogItem(c entities.CatalogItem) catalogItem {
	return catalogItem{
		NameKey:       c.Key(),
		Name:          c.Name,
		Category:      c.Category,
		Unit:          c.Unit,
		EstimatedCost: c.EstimatedCost.String(),
	}
}

func fromCatalogItem(it catalogItem) entities.CatalogItem {
	cost, _ := decimal.NewFromString(it.EstimatedCost)
	return entities.CatalogItem{
		Name:          it.Name,
		Category:      it.Category,
		Unit:          it.Unit,
		EstimatedCost: cost,
	}
}

func toSupplierItem(s entities.Supplier) supplierItem {
	reps := make([]representativeItem, 0, len(s.Representatives))
	for _, rep := range s.Representatives {
		reps = append(reps, representativeItem{Name: rep.Name, Contact: rep.Contact})
	}
	branches := s.Branches
	if branches == nil {
		branches = []string{}
	}
	return supplierItem{
		NameKey:         s.Key(),
		Name:            s.Name,
		Category:        s.Category,
		Contact:         s.Contact,
		Representatives: reps,
		Branches:        branches,
		Website:         s.Website,
		Notes:           s.Notes,
	}
}

func fromSupplierItem(it supplierItem) entities.Supplier {
	reps := make([]entities.SalesRepresentative, 0, len(it.Representatives))
	for _, rep := range it.Representatives {
		reps = append(reps, entities.SalesRepresentative{Name: rep.Name, Contact: rep.Contact})
	}
	branches := it.Branches
	if branches == nil {
		branches = []string{}
	}
	return entities.Supplier{
		Name:            it.Name,
		Category:        it.Category,
		Contact:         it.Contact,
		Representatives: reps,
		Branches:        branches,
		Website:         it.Website,
		Notes:           it.Notes,
	}
}
