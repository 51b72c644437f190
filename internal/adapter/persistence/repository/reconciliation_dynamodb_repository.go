package repository

import (
	"context"
	"fmt"
	"slices"

	"hotel_procurement/internal/domain/entities"
	"hotel_procurement/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ReconciliationDynamoRepository writes a confirmed invoice with a single
// TransactWriteItems call: catalog puts, the supplier put and the request put
// guarded by its version. The request is always the last item.
type ReconciliationDynamoRepository struct {
	ddb      dynamoAPI
	requests *PurchaseRequestDynamoRepository
	catalog  string
	supplier string
}

var _ interfaces.IReconciliationRepository = (*ReconciliationDynamoRepository)(nil)

func NewReconciliationDynamoRepository(ddb *dynamodb.Client, requests *PurchaseRequestDynamoRepository, catalogTable, suppliersTable string) *ReconciliationDynamoRepository {
	return &ReconciliationDynamoRepository{ddb: ddb, requests: requests, catalog: catalogTable, supplier: suppliersTable}
}

func (r *ReconciliationDynamoRepository) Commit(ctx context.Context, c interfaces.ReconciliationCommit) error {
	txn, err := r.buildCommit(c)
	if err != nil {
		return err
	}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: txn})
	if err != nil {
		if failed, ok := canceledAt(err); ok && slices.Contains(failed, len(txn)-1) {
			return entities.Conflictf("request %s was modified concurrently", c.Request.ID)
		}
		return fmt.Errorf("commit reconciliation for %s: %w", c.Request.ID, err)
	}
	c.Request.Version++
	return nil
}

func (r *ReconciliationDynamoRepository) buildCommit(c interfaces.ReconciliationCommit) ([]types.TransactWriteItem, error) {
	if c.Request.NeedsReferenceNumber() {
		return nil, entities.Validationf("request %s has no reference number", c.Request.ID)
	}
	if len(c.Catalog)+2 > maxTransactItems {
		return nil, entities.Validationf("invoice has too many distinct items (%d)", len(c.Catalog))
	}

	txn := make([]types.TransactWriteItem, 0, len(c.Catalog)+2)
	for _, it := range c.Catalog {
		av, err := attributevalue.MarshalMap(toCatalogItem(it))
		if err != nil {
			return nil, err
		}
		txn = append(txn, types.TransactWriteItem{Put: &types.Put{TableName: aws.String(r.catalog), Item: av}})
	}
	av, err := attributevalue.MarshalMap(toSupplierItem(c.Supplier))
	if err != nil {
		return nil, err
	}
	txn = append(txn, types.TransactWriteItem{Put: &types.Put{TableName: aws.String(r.supplier), Item: av}})

	next := c.Request.Clone()
	next.Version = c.Request.Version + 1
	put, err := r.requests.requestPut(next, c.Request.Version, false)
	if err != nil {
		return nil, err
	}
	txn = append(txn, types.TransactWriteItem{Put: put})
	return txn, nil
}
