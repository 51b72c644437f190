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
)

const usersEmailIndex = "email_key-index"

type userItem struct {
	ID           string   `dynamodbav:"id"`
	Name         string   `dynamodbav:"name"`
	Email        string   `dynamodbav:"email"`
	EmailKey     string   `dynamodbav:"email_key"`
	PasswordHash string   `dynamodbav:"password_hash"`
	Role         string   `dynamodbav:"role"`
	Branches     []string `dynamodbav:"branches"`
}

type roleItem struct {
	Name        string   `dynamodbav:"name"`
	Permissions []string `dynamodbav:"permissions"`
}

type branchItem struct {
	ID   string `dynamodbav:"id"`
	Name string `dynamodbav:"name"`
	City string `dynamodbav:"city"`
}

// UserDynamoRepository persists users.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: email_key-index (PK: email_key)
type UserDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb *dynamodb.Client, tableName string) *UserDynamoRepository {
	return &UserDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *UserDynamoRepository) Create(ctx context.Context, u entities.User) error {
	return r.put(ctx, u, "attribute_not_exists(#id)", func() error {
		return entities.Conflictf("user %s already exists", u.ID)
	})
}

func (r *UserDynamoRepository) Update(ctx context.Context, u entities.User) error {
	return r.put(ctx, u, "attribute_exists(#id)", func() error {
		return entities.NotFoundf("user %s", u.ID)
	})
}

func (r *UserDynamoRepository) put(ctx context.Context, u entities.User, condition string, onFail func() error) error {
	av, err := attributevalue.MarshalMap(toUserItem(u))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String(condition),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if isConditionFailed(err) {
		return onFail()
	}
	if err != nil {
		return fmt.Errorf("put user %s: %w", u.ID, err)
	}
	return nil
}

func (r *UserDynamoRepository) Delete(ctx context.Context, id string) error {
	return deleteExisting(ctx, r.ddb, r.tableName, "id", id, "user")
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	it, err := getItem[userItem](ctx, r.ddb, r.tableName, stringKey("id", id))
	if err != nil {
		return entities.User{}, err
	}
	if it == nil {
		return entities.User{}, entities.NotFoundf("user %s", id)
	}
	return fromUserItem(*it), nil
}

func (r *UserDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	key := entities.NormalizeKey(email)
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(usersEmailIndex),
		KeyConditionExpression: aws.String("email_key = :e"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":e": &types.AttributeValueMemberS{Value: key},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.User{}, fmt.Errorf("query user by email: %w", err)
	}
	if len(out.Items) == 0 {
		return entities.User{}, entities.NotFoundf("user with email %s", key)
	}
	var it userItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) List(ctx context.Context) ([]entities.User, error) {
	items, err := scanAll[userItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.User, 0, len(items))
	for _, it := range items {
		out = append(out, fromUserItem(it))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

// RoleDynamoRepository persists role definitions.
//
// Table requirements:
//   - PK: name (string)
type RoleDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IRoleRepository = (*RoleDynamoRepository)(nil)

func NewRoleDynamoRepository(ddb *dynamodb.Client, tableName string) *RoleDynamoRepository {
	return &RoleDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *RoleDynamoRepository) Put(ctx context.Context, def entities.RoleDefinition) error {
	perms := make([]string, 0, len(def.Permissions))
	for _, s := range def.Permissions {
		perms = append(perms, string(s))
	}
	return putItem(ctx, r.ddb, r.tableName, roleItem{Name: string(def.Name), Permissions: perms})
}

func (r *RoleDynamoRepository) Delete(ctx context.Context, name entities.Role) error {
	return deleteExisting(ctx, r.ddb, r.tableName, "name", string(name), "role")
}

func (r *RoleDynamoRepository) Get(ctx context.Context, name entities.Role) (entities.RoleDefinition, error) {
	it, err := getItem[roleItem](ctx, r.ddb, r.tableName, stringKey("name", string(name)))
	if err != nil {
		return entities.RoleDefinition{}, err
	}
	if it == nil {
		return entities.RoleDefinition{}, entities.NotFoundf("role %s", name)
	}
	return fromRoleItem(*it), nil
}

func (r *RoleDynamoRepository) List(ctx context.Context) ([]entities.RoleDefinition, error) {
	items, err := scanAll[roleItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.RoleDefinition, 0, len(items))
	for _, it := range items {
		out = append(out, fromRoleItem(it))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// BranchDynamoRepository persists branches.
//
// Table requirements:
//   - PK: id (string)
type BranchDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IBranchRepository = (*BranchDynamoRepository)(nil)

func NewBranchDynamoRepository(ddb *dynamodb.Client, tableName string) *BranchDynamoRepository {
	return &BranchDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *BranchDynamoRepository) Put(ctx context.Context, b entities.Branch) error {
	return putItem(ctx, r.ddb, r.tableName, branchItem(b))
}

func (r *BranchDynamoRepository) Delete(ctx context.Context, id string) error {
	return deleteExisting(ctx, r.ddb, r.tableName, "id", id, "branch")
}

func (r *BranchDynamoRepository) Get(ctx context.Context, id string) (entities.Branch, error) {
	it, err := getItem[branchItem](ctx, r.ddb, r.tableName, stringKey("id", id))
	if err != nil {
		return entities.Branch{}, err
	}
	if it == nil {
		return entities.Branch{}, entities.NotFoundf("branch %s", id)
	}
	return entities.Branch(*it), nil
}

func (r *BranchDynamoRepository) List(ctx context.Context) ([]entities.Branch, error) {
	items, err := scanAll[branchItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Branch, 0, len(items))
	for _, it := range items {
		out = append(out, entities.Branch(it))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func toUserItem(u entities.User) userItem {
	branches := u.Branches
	if branches == nil {
		branches = []string{}
	}
	return userItem{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		EmailKey:     entities.NormalizeKey(u.Email),
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		Branches:     branches,
	}
}

func fromUserItem(it userItem) entities.User {
	branches := it.Branches
	if branches == nil {
		branches = []string{}
	}
	return entities.User{
		ID:           it.ID,
		Name:         it.Name,
		Email:        it.Email,
		PasswordHash: it.PasswordHash,
		Role:         entities.Role(it.Role),
		Branches:     branches,
	}
}

func fromRoleItem(it roleItem) entities.RoleDefinition {
	perms := make([]entities.RequestStatus, 0, len(it.Permissions))
	for _, p := range it.Permissions {
		perms = append(perms, entities.RequestStatus(p))
	}
	return entities.RoleDefinition{Name: entities.Role(it.Name), Permissions: perms}
}
