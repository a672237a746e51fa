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

type filterItem struct {
	RowID    string `dynamodbav:"row_id"`
	Model    string `dynamodbav:"modelo_filtro"`
	Size     string `dynamodbav:"tamanho_filtro"`
	Quantity int    `dynamodbav:"quantidade_filtro"`
}

type equipmentItem struct {
	ID                 int64        `dynamodbav:"id"`
	Tag                string       `dynamodbav:"tag"`
	Model              string       `dynamodbav:"modelo"`
	Brand              string       `dynamodbav:"marca"`
	Refrigerant        string       `dynamodbav:"fluido,omitempty"`
	Capacity           string       `dynamodbav:"capacidade,omitempty"`
	Location           string       `dynamodbav:"local,omitempty"`
	EvaporatorLocation string       `dynamodbav:"localEvaporadora,omitempty"`
	CondenserLocation  string       `dynamodbav:"localCondensadora,omitempty"`
	Current            string       `dynamodbav:"corrente,omitempty"`
	Voltage            string       `dynamodbav:"tensao,omitempty"`
	Reversal           string       `dynamodbav:"reversao,omitempty"`
	ThreePhase         string       `dynamodbav:"trifasico,omitempty"`
	BeltModel          string       `dynamodbav:"modelo_correia,omitempty"`
	BeltCount          int          `dynamodbav:"quantidade_correias,omitempty"`
	Filters            []filterItem `dynamodbav:"filtros,omitempty"`
}

// tagLockItem reserves a normalized tag for one equipment id.
type tagLockItem struct {
	Tag         string `dynamodbav:"tag"`
	EquipmentID int64  `dynamodbav:"equipment_id"`
}

// EquipmentDynamoRepository persists equipment in DynamoDB.
//
// Table requirements:
//   - equipamentos: PK id (number)
//   - equipamentos_tags: PK tag (string), one item per lower-cased tag
//   - contadores: PK nome (string), id sequences
//
// Every write that touches a tag goes through TransactWriteItems together
// with the tag item, so two records can never hold the same tag.
type EquipmentDynamoRepository struct {
	ddb         DynamoDBAPI
	seq         sequence
	tableName   string
	tagsTable   string
	sequenceKey string
}

var _ interfaces.IEquipmentStore = (*EquipmentDynamoRepository)(nil)

func NewEquipmentDynamoRepository(ddb DynamoDBAPI, cfg config.DynamoDBConfig) *EquipmentDynamoRepository {
	return &EquipmentDynamoRepository{
		ddb:         ddb,
		seq:         sequence{ddb: ddb, table: cfg.CountersTable},
		tableName:   cfg.EquipmentsTable,
		tagsTable:   cfg.TagsTable,
		sequenceKey: cfg.EquipmentsTable,
	}
}

func (r *EquipmentDynamoRepository) ListEquipments(ctx context.Context) ([]entities.Equipment, error) {
	raw, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}

	var items []equipmentItem
	if err := attributevalue.UnmarshalListOfMaps(raw, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.tableName, err)
	}

	out := make([]entities.Equipment, 0, len(items))
	for _, it := range items {
		out = append(out, fromEquipmentItem(it))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *EquipmentDynamoRepository) InsertEquipment(ctx context.Context, draft entities.EquipmentDraft) (int64, error) {
	id, err := r.seq.next(ctx, r.sequenceKey)
	if err != nil {
		return 0, err
	}

	item, err := attributevalue.MarshalMap(toEquipmentItem(id, draft))
	if err != nil {
		return 0, err
	}
	lock, err := attributevalue.MarshalMap(tagLockItem{Tag: tagKey(draft.Tag), EquipmentID: id})
	if err != nil {
		return 0, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     item,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			{Put: &types.Put{
				TableName:                aws.String(r.tagsTable),
				Item:                     lock,
				ConditionExpression:      aws.String("attribute_not_exists(#tag)"),
				ExpressionAttributeNames: map[string]string{"#tag": "tag"},
			}},
		},
	})
	if err != nil {
		if canceledAt(err, 1) {
			return 0, interfaces.ErrStoreConflict
		}
		return 0, fmt.Errorf("insert %s: %w", r.tableName, err)
	}
	return id, nil
}

// UpdateEquipment replaces the record. When the tag changes, the old tag item
// is released and the new one claimed in the same transaction.
func (r *EquipmentDynamoRepository) UpdateEquipment(ctx context.Context, id int64, draft entities.EquipmentDraft) error {
	current, err := r.get(ctx, id)
	if err != nil {
		return err
	}

	item, err := attributevalue.MarshalMap(toEquipmentItem(id, draft))
	if err != nil {
		return err
	}
	put := types.TransactWriteItem{Put: &types.Put{
		TableName:                aws.String(r.tableName),
		Item:                     item,
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	}}

	oldKey, newKey := tagKey(current.Tag), tagKey(draft.Tag)
	writes := []types.TransactWriteItem{put}
	if oldKey != newKey {
		lock, err := attributevalue.MarshalMap(tagLockItem{Tag: newKey, EquipmentID: id})
		if err != nil {
			return err
		}
		writes = append(writes,
			types.TransactWriteItem{Put: &types.Put{
				TableName:                aws.String(r.tagsTable),
				Item:                     lock,
				ConditionExpression:      aws.String("attribute_not_exists(#tag)"),
				ExpressionAttributeNames: map[string]string{"#tag": "tag"},
			}},
			types.TransactWriteItem{Delete: &types.Delete{
				TableName: aws.String(r.tagsTable),
				Key:       r.tagKeyAttr(oldKey),
			}},
		)
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: writes})
	switch {
	case err == nil:
		return nil
	case canceledAt(err, 0):
		return interfaces.ErrStoreNotFound
	case canceledAt(err, 1):
		return interfaces.ErrStoreConflict
	}
	return fmt.Errorf("update %s id=%d: %w", r.tableName, id, err)
}

func (r *EquipmentDynamoRepository) DeleteEquipment(ctx context.Context, id int64) error {
	current, err := r.get(ctx, id)
	if err != nil {
		return err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Delete: &types.Delete{
				TableName:                aws.String(r.tableName),
				Key:                      map[string]types.AttributeValue{"id": numberAttr(id)},
				ConditionExpression:      aws.String("attribute_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			{Delete: &types.Delete{
				TableName: aws.String(r.tagsTable),
				Key:       r.tagKeyAttr(tagKey(current.Tag)),
			}},
		},
	})
	if err != nil {
		if canceledAt(err, 0) {
			return interfaces.ErrStoreNotFound
		}
		return fmt.Errorf("delete %s id=%d: %w", r.tableName, id, err)
	}
	return nil
}

func (r *EquipmentDynamoRepository) get(ctx context.Context, id int64) (equipmentItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            map[string]types.AttributeValue{"id": numberAttr(id)},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return equipmentItem{}, fmt.Errorf("get %s id=%d: %w", r.tableName, id, err)
	}
	if len(out.Item) == 0 {
		return equipmentItem{}, interfaces.ErrStoreNotFound
	}

	var it equipmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return equipmentItem{}, err
	}
	return it, nil
}

func (r *EquipmentDynamoRepository) tagKeyAttr(key string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"tag": &types.AttributeValueMemberS{Value: key},
	}
}

func toEquipmentItem(id int64, d entities.EquipmentDraft) equipmentItem {
	it := equipmentItem{
		ID:                 id,
		Tag:                d.Tag,
		Model:              string(d.ModelFamily),
		Brand:              d.Brand,
		Refrigerant:        d.Refrigerant,
		Capacity:           d.CapacityBTU,
		Location:           d.InstallLocation,
		EvaporatorLocation: d.EvaporatorLocation,
		CondenserLocation:  d.CondenserLocation,
		Current:            d.CurrentAmps,
		Voltage:            d.Voltage,
		Reversal:           string(d.CycleReversal),
		ThreePhase:         string(d.ThreePhase),
		BeltModel:          d.BeltModel,
		BeltCount:          d.BeltCount,
	}
	for _, f := range d.Filters {
		it.Filters = append(it.Filters, filterItem(f))
	}
	return it
}

func fromEquipmentItem(it equipmentItem) entities.Equipment {
	e := entities.Equipment{
		ID: it.ID,
		EquipmentDraft: entities.EquipmentDraft{
			Tag:                it.Tag,
			ModelFamily:        entities.ModelFamily(it.Model),
			Brand:              it.Brand,
			Refrigerant:        it.Refrigerant,
			CapacityBTU:        it.Capacity,
			InstallLocation:    it.Location,
			EvaporatorLocation: it.EvaporatorLocation,
			CondenserLocation:  it.CondenserLocation,
			CurrentAmps:        it.Current,
			Voltage:            it.Voltage,
			CycleReversal:      entities.Answer(it.Reversal),
			ThreePhase:         entities.Answer(it.ThreePhase),
			BeltModel:          it.BeltModel,
			BeltCount:          it.BeltCount,
		},
	}
	for _, f := range it.Filters {
		e.Filters = append(e.Filters, entities.Filter(f))
	}
	return e
}
