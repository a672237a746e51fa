package repository

import (
	"context"
	"fmt"
	"sort"

	"hvac_registry/internal/config"
	"hvac_registry/internal/domain/entities"
	"hvac_registry/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type referenceItem struct {
	ID   int64  `dynamodbav:"id"`
	Name string `dynamodbav:"nome"`
}

// ReferenceDynamoRepository persists the marcas and locais lists.
//
// Table requirements (both lists):
//   - PK: id (number)
type ReferenceDynamoRepository struct {
	ddb            DynamoDBAPI
	seq            sequence
	brandsTable    string
	locationsTable string
}

var _ interfaces.IReferenceStore = (*ReferenceDynamoRepository)(nil)

func NewReferenceDynamoRepository(ddb DynamoDBAPI, cfg config.DynamoDBConfig) *ReferenceDynamoRepository {
	return &ReferenceDynamoRepository{
		ddb:            ddb,
		seq:            sequence{ddb: ddb, table: cfg.CountersTable},
		brandsTable:    cfg.BrandsTable,
		locationsTable: cfg.LocationsTable,
	}
}

func (r *ReferenceDynamoRepository) ListOptions(ctx context.Context, kind entities.ReferenceKind) ([]entities.ReferenceOption, error) {
	table, err := tableFor(kind, r.brandsTable, r.locationsTable)
	if err != nil {
		return nil, err
	}
	raw, err := scanAll(ctx, r.ddb, table)
	if err != nil {
		return nil, err
	}

	var items []referenceItem
	if err := attributevalue.UnmarshalListOfMaps(raw, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", table, err)
	}

	out := make([]entities.ReferenceOption, 0, len(items))
	for _, it := range items {
		out = append(out, entities.ReferenceOption{ID: it.ID, Name: it.Name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ReferenceDynamoRepository) InsertOption(ctx context.Context, kind entities.ReferenceKind, name string) (int64, error) {
	table, err := tableFor(kind, r.brandsTable, r.locationsTable)
	if err != nil {
		return 0, err
	}
	id, err := r.seq.next(ctx, table)
	if err != nil {
		return 0, err
	}

	av, err := attributevalue.MarshalMap(referenceItem{ID: id, Name: name})
	if err != nil {
		return 0, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(table),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return 0, fmt.Errorf("insert %s: %w", table, err)
	}
	return id, nil
}

func (r *ReferenceDynamoRepository) DeleteOption(ctx context.Context, kind entities.ReferenceKind, id int64) error {
	table, err := tableFor(kind, r.brandsTable, r.locationsTable)
	if err != nil {
		return err
	}

	_, err = r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:                aws.String(table),
		Key:                      map[string]types.AttributeValue{"id": numberAttr(id)},
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return interfaces.ErrStoreNotFound
		}
		return fmt.Errorf("delete %s id=%d: %w", table, id, err)
	}
	return nil
}
