package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"

	"hotel_procurement/internal/domain/entities"
	"hotel_procurement/internal/infrastructure/logging"
	"hotel_procurement/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sirupsen/logrus"
)

const (
	requestsBranchIndex   = "branch_id-index"
	referenceCounterName  = "purchase_request_reference"
	maxReferenceAttempts  = 5
	counterItemIndex      = 0
	requestItemIndexInTxn = 1
)

type purchaseRequestItem struct {
	ID              string `dynamodbav:"id"`
	ReferenceNumber int64  `dynamodbav:"reference_number,omitempty"`
	BranchID        string `dynamodbav:"branch_id"`
	Status          string `dynamodbav:"status"`
	InvoiceNumber   string `dynamodbav:"invoice_number,omitempty"`
	Version         int64  `dynamodbav:"version"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
	Payload         string `dynamodbav:"payload"`
}

type counterItem struct {
	Name  string `dynamodbav:"name"`
	Value int64  `dynamodbav:"value"`
}

// PurchaseRequestDynamoRepository persists the request aggregate in DynamoDB.
//
// Table requirements:
//   - requests: PK id (string), GSI branch_id-index (PK: branch_id)
//   - counters: PK name (string)
//
// Writes are conditional on the stored version. The first non-draft write
// claims the next reference number from the counters table in the same
// transaction, so numbers are never skipped or reused.
type PurchaseRequestDynamoRepository struct {
	ddb            dynamoAPI
	tableName      string
	countersTable  string
	referenceStart int64
}

var _ interfaces.IPurchaseRequestRepository = (*PurchaseRequestDynamoRepository)(nil)

func NewPurchaseRequestDynamoRepository(ddb *dynamodb.Client, tableName, countersTable string, referenceStart int64) *PurchaseRequestDynamoRepository {
	return &PurchaseRequestDynamoRepository{
		ddb:            ddb,
		tableName:      tableName,
		countersTable:  countersTable,
		referenceStart: referenceStart,
	}
}

func (r *PurchaseRequestDynamoRepository) Create(ctx context.Context, pr *entities.PurchaseRequest) error {
	return r.save(ctx, pr, true)
}

func (r *PurchaseRequestDynamoRepository) Update(ctx context.Context, pr *entities.PurchaseRequest) error {
	return r.save(ctx, pr, false)
}

func (r *PurchaseRequestDynamoRepository) GetByID(ctx context.Context, id string) (*entities.PurchaseRequest, error) {
	it, err := getItem[purchaseRequestItem](ctx, r.ddb, r.tableName, stringKey("id", id))
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, entities.NotFoundf("request %s", id)
	}
	return fromPurchaseRequestItem(*it)
}

func (r *PurchaseRequestDynamoRepository) List(ctx context.Context) ([]*entities.PurchaseRequest, error) {
	items, err := scanAll[purchaseRequestItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]*entities.PurchaseRequest, 0, len(items))
	for _, it := range items {
		pr, err := fromPurchaseRequestItem(it)
		if err != nil {
			return nil, err
		}
		out = append(out, pr)
	}
	return out, nil
}

func (r *PurchaseRequestDynamoRepository) InvoiceNumbersByBranch(ctx context.Context, branchID string) ([]string, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(requestsBranchIndex),
		KeyConditionExpression: aws.String("branch_id = :b"),
		FilterExpression:       aws.String("attribute_exists(invoice_number)"),
		ProjectionExpression:   aws.String("invoice_number"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":b": &types.AttributeValueMemberS{Value: branchID},
		},
	})
	var out []string
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("query invoice numbers: %w", err)
		}
		for _, raw := range page.Items {
			var it purchaseRequestItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			if it.InvoiceNumber != "" {
				out = append(out, it.InvoiceNumber)
			}
		}
	}
	slices.Sort(out)
	return out, nil
}

func (r *PurchaseRequestDynamoRepository) save(ctx context.Context, pr *entities.PurchaseRequest, create bool) error {
	next := pr.Clone()
	next.Version = pr.Version + 1

	if !pr.NeedsReferenceNumber() {
		put, err := r.requestPut(next, pr.Version, create)
		if err != nil {
			return err
		}
		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:                 put.TableName,
			Item:                      put.Item,
			ConditionExpression:       put.ConditionExpression,
			ExpressionAttributeNames:  put.ExpressionAttributeNames,
			ExpressionAttributeValues: put.ExpressionAttributeValues,
		})
		if isConditionFailed(err) {
			return writeConflict(pr, create)
		}
		if err != nil {
			return fmt.Errorf("put request %s: %w", pr.ID, err)
		}
		pr.Version = next.Version
		return nil
	}

	for attempt := 1; attempt <= maxReferenceAttempts; attempt++ {
		current, exists, err := r.currentReference(ctx)
		if err != nil {
			return err
		}
		next.ReferenceNumber = current + 1

		put, err := r.requestPut(next, pr.Version, create)
		if err != nil {
			return err
		}
		_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
			TransactItems: []types.TransactWriteItem{
				{Update: r.counterUpdate(current, next.ReferenceNumber, exists)},
				{Put: put},
			},
		})
		if err == nil {
			pr.Version = next.Version
			pr.ReferenceNumber = next.ReferenceNumber
			return nil
		}

		failed, canceled := canceledAt(err)
		if !canceled {
			return fmt.Errorf("write request %s: %w", pr.ID, err)
		}
		if slices.Contains(failed, requestItemIndexInTxn) {
			return writeConflict(pr, create)
		}
		if !slices.Contains(failed, counterItemIndex) {
			return fmt.Errorf("write request %s: %w", pr.ID, err)
		}
		logging.GetLogger().WithFields(logrus.Fields{
			"request_id": pr.ID,
			"attempt":    attempt,
		}).Debug("[requests][repository] reference counter moved, retrying")
	}
	return entities.Conflictf("could not allocate a reference number for request %s", pr.ID)
}

func (r *PurchaseRequestDynamoRepository) currentReference(ctx context.Context) (int64, bool, error) {
	it, err := getItem[counterItem](ctx, r.ddb, r.countersTable, stringKey("name", referenceCounterName))
	if err != nil {
		return 0, false, err
	}
	if it == nil {
		return r.referenceStart, false, nil
	}
	return it.Value, true, nil
}

func (r *PurchaseRequestDynamoRepository) counterUpdate(current, next int64, exists bool) *types.Update {
	u := &types.Update{
		TableName:                aws.String(r.countersTable),
		Key:                      stringKey("name", referenceCounterName),
		UpdateExpression:         aws.String("SET #v = :next"),
		ExpressionAttributeNames: map[string]string{"#v": "value"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":next": &types.AttributeValueMemberN{Value: strconv.FormatInt(next, 10)},
		},
		ConditionExpression: aws.String("attribute_not_exists(#v)"),
	}
	if exists {
		u.ConditionExpression = aws.String("#v = :current")
		u.ExpressionAttributeValues[":current"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(current, 10)}
	}
	return u
}

// requestPut builds the conditional put for next: create requires a new id,
// update requires the stored version to still be expectedVersion.
func (r *PurchaseRequestDynamoRepository) requestPut(next *entities.PurchaseRequest, expectedVersion int64, create bool) (*types.Put, error) {
	it, err := toPurchaseRequestItem(next)
	if err != nil {
		return nil, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return nil, err
	}
	put := &types.Put{
		TableName: aws.String(r.tableName),
		Item:      av,
	}
	if create {
		put.ConditionExpression = aws.String("attribute_not_exists(#id)")
		put.ExpressionAttributeNames = map[string]string{"#id": "id"}
		return put, nil
	}
	put.ConditionExpression = aws.String("#version = :expected")
	put.ExpressionAttributeNames = map[string]string{"#version": "version"}
	put.ExpressionAttributeValues = map[string]types.AttributeValue{
		":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
	}
	return put, nil
}

func writeConflict(pr *entities.PurchaseRequest, create bool) error {
	if create {
		return entities.Conflictf("request %s already exists", pr.ID)
	}
	return entities.Conflictf("request %s was modified concurrently (have version %d)", pr.ID, pr.Version)
}

func toPurchaseRequestItem(pr *entities.PurchaseRequest) (purchaseRequestItem, error) {
	payload, err := json.Marshal(pr)
	if err != nil {
		return purchaseRequestItem{}, err
	}
	it := purchaseRequestItem{
		ID:              pr.ID,
		ReferenceNumber: pr.ReferenceNumber,
		BranchID:        pr.Branch.ID,
		Status:          string(pr.Status),
		Version:         pr.Version,
		CreatedAt:       formatTime(pr.CreatedAt),
		UpdatedAt:       formatTime(pr.UpdatedAt),
		Payload:         string(payload),
	}
	if pr.Invoice != nil {
		it.InvoiceNumber = pr.Invoice.InvoiceNumber
	}
	return it, nil
}

func fromPurchaseRequestItem(it purchaseRequestItem) (*entities.PurchaseRequest, error) {
	var pr entities.PurchaseRequest
	if err := json.Unmarshal([]byte(it.Payload), &pr); err != nil {
		return nil, fmt.Errorf("decode request %s: %w", it.ID, err)
	}
	created, err := parseTime(it.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("decode request %s created_at: %w", it.ID, err)
	}
	updated, err := parseTime(it.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("decode request %s updated_at: %w", it.ID, err)
	}
	pr.Version = it.Version
	pr.ReferenceNumber = it.ReferenceNumber
	if !created.IsZero() {
		pr.CreatedAt = created
	}
	if !updated.IsZero() {
		pr.UpdatedAt = updated
	}
	return &pr, nil
}
