package repository

import (
	"context"
	"errors"
	"testing"

	"hvac_registry/internal/config"
	"hvac_registry/internal/domain/entities"
	"hvac_registry/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDynamoConfig = config.DynamoDBConfig{
	EquipmentsTable: "equipamentos",
	BrandsTable:     "marcas",
	LocationsTable:  "locais",
	TagsTable:       "equipamentos_tags",
	CountersTable:   "contadores",
}

func counterReturning(id string) func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
	return func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
		return &dynamodb.UpdateItemOutput{Attributes: map[string]types.AttributeValue{
			"valor": &types.AttributeValueMemberN{Value: id},
		}}, nil
	}
}

func cancelled(codes ...string) error {
	reasons := make([]types.CancellationReason, len(codes))
	for i, c := range codes {
		reasons[i] = types.CancellationReason{Code: aws.String(c)}
	}
	return &types.TransactionCanceledException{CancellationReasons: reasons}
}

func storedItem(t *testing.T, id int64, d entities.EquipmentDraft) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(toEquipmentItem(id, d))
	require.NoError(t, err)
	return av
}

func beltDraft() entities.EquipmentDraft {
	return entities.EquipmentDraft{
		Tag:             "FC-01",
		ModelFamily:     entities.ModelFamilyFancoil,
		Brand:           "Carrier",
		InstallLocation: "Casa de Máquinas",
		BeltModel:       "A-42",
		BeltCount:       2,
		Filters: []entities.Filter{
			{RowID: "r1", Model: "G4", Size: "592x592", Quantity: 4},
		},
	}
}

func TestEquipmentItemRoundTrip(t *testing.T) {
	d := beltDraft()
	av, err := attributevalue.MarshalMap(toEquipmentItem(7, d))
	require.NoError(t, err)

	_, hasRefrigerant := av["fluido"]
	assert.False(t, hasRefrigerant, "empty optional attributes are omitted")

	var it equipmentItem
	require.NoError(t, attributevalue.UnmarshalMap(av, &it))
	assert.Equal(t, entities.Equipment{ID: 7, EquipmentDraft: d}, fromEquipmentItem(it))
}

func TestEquipmentDynamoRepository_List(t *testing.T) {
	fake := &fakeDynamo{}
	pages := [][]map[string]types.AttributeValue{
		{storedItem(t, 3, beltDraft())},
		{storedItem(t, 1, entities.EquipmentDraft{Tag: "HW-1", ModelFamily: entities.ModelFamilyHiwall})},
	}
	fake.scan = func(in *dynamodb.ScanInput) (*dynamodb.ScanOutput, error) {
		assert.Equal(t, "equipamentos", aws.ToString(in.TableName))
		if in.ExclusiveStartKey == nil {
			return &dynamodb.ScanOutput{
				Items:            pages[0],
				LastEvaluatedKey: map[string]types.AttributeValue{"id": numberAttr(3)},
			}, nil
		}
		return &dynamodb.ScanOutput{Items: pages[1]}, nil
	}

	repo := NewEquipmentDynamoRepository(fake, testDynamoConfig)
	got, err := repo.ListEquipments(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)
	assert.Equal(t, "592x592", got[1].Filters[0].Size)
}

func TestEquipmentDynamoRepository_Insert(t *testing.T) {
	t.Run("claims id and tag", func(t *testing.T) {
		fake := &fakeDynamo{update: counterReturning("12")}
		repo := NewEquipmentDynamoRepository(fake, testDynamoConfig)

		id, err := repo.InsertEquipment(context.Background(), beltDraft())
		require.NoError(t, err)
		assert.Equal(t, int64(12), id)

		require.Len(t, fake.transactCalls, 1)
		items := fake.transactCalls[0].TransactItems
		require.Len(t, items, 2)
		assert.Equal(t, "equipamentos", aws.ToString(items[0].Put.TableName))
		assert.Equal(t, "equipamentos_tags", aws.ToString(items[1].Put.TableName))
		assert.Equal(t, &types.AttributeValueMemberS{Value: "fc-01"}, items[1].Put.Item["tag"])
	})

	t.Run("tag taken", func(t *testing.T) {
		fake := &fakeDynamo{
			update: counterReturning("13"),
			transact: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
				return nil, cancelled("None", conditionalCheckFailed)
			},
		}
		repo := NewEquipmentDynamoRepository(fake, testDynamoConfig)

		_, err := repo.InsertEquipment(context.Background(), beltDraft())
		assert.ErrorIs(t, err, interfaces.ErrStoreConflict)
	})

	t.Run("counter failure", func(t *testing.T) {
		fake := &fakeDynamo{}
		repo := NewEquipmentDynamoRepository(fake, testDynamoConfig)

		_, err := repo.InsertEquipment(context.Background(), beltDraft())
		assert.ErrorIs(t, err, errNotStubbed)
		assert.Empty(t, fake.transactCalls)
	})
}

func TestEquipmentDynamoRepository_Update(t *testing.T) {
	t.Run("same tag writes only the record", func(t *testing.T) {
		fake := &fakeDynamo{get: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{Item: storedItem(t, 5, beltDraft())}, nil
		}}
		repo := NewEquipmentDynamoRepository(fake, testDynamoConfig)

		d := beltDraft()
		d.Tag = "fc-01"
		require.NoError(t, repo.UpdateEquipment(context.Background(), 5, d))
		require.Len(t, fake.transactCalls, 1)
		assert.Len(t, fake.transactCalls[0].TransactItems, 1)
	})

	t.Run("new tag swaps the lock", func(t *testing.T) {
		fake := &fakeDynamo{get: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{Item: storedItem(t, 5, beltDraft())}, nil
		}}
		repo := NewEquipmentDynamoRepository(fake, testDynamoConfig)

		d := beltDraft()
		d.Tag = "FC-02"
		require.NoError(t, repo.UpdateEquipment(context.Background(), 5, d))

		items := fake.transactCalls[0].TransactItems
		require.Len(t, items, 3)
		assert.Equal(t, &types.AttributeValueMemberS{Value: "fc-02"}, items[1].Put.Item["tag"])
		assert.Equal(t, &types.AttributeValueMemberS{Value: "fc-01"}, items[2].Delete.Key["tag"])
	})

	t.Run("new tag already taken", func(t *testing.T) {
		fake := &fakeDynamo{
			get: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
				return &dynamodb.GetItemOutput{Item: storedItem(t, 5, beltDraft())}, nil
			},
			transact: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
				return nil, cancelled("None", conditionalCheckFailed, "None")
			},
		}
		repo := NewEquipmentDynamoRepository(fake, testDynamoConfig)

		d := beltDraft()
		d.Tag = "HW-1"
		assert.ErrorIs(t, repo.UpdateEquipment(context.Background(), 5, d), interfaces.ErrStoreConflict)
	})

	t.Run("missing record", func(t *testing.T) {
		fake := &fakeDynamo{get: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{}, nil
		}}
		repo := NewEquipmentDynamoRepository(fake, testDynamoConfig)

		assert.ErrorIs(t, repo.UpdateEquipment(context.Background(), 5, beltDraft()), interfaces.ErrStoreNotFound)
		assert.Empty(t, fake.transactCalls)
	})
}

func TestEquipmentDynamoRepository_Delete(t *testing.T) {
	t.Run("releases tag", func(t *testing.T) {
		fake := &fakeDynamo{get: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{Item: storedItem(t, 9, beltDraft())}, nil
		}}
		repo := NewEquipmentDynamoRepository(fake, testDynamoConfig)

		require.NoError(t, repo.DeleteEquipment(context.Background(), 9))
		items := fake.transactCalls[0].TransactItems
		require.Len(t, items, 2)
		assert.Equal(t, &types.AttributeValueMemberN{Value: "9"}, items[0].Delete.Key["id"])
		assert.Equal(t, &types.AttributeValueMemberS{Value: "fc-01"}, items[1].Delete.Key["tag"])
	})

	t.Run("get failure", func(t *testing.T) {
		fake := &fakeDynamo{get: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return nil, errors.New("throttled")
		}}
		repo := NewEquipmentDynamoRepository(fake, testDynamoConfig)

		err := repo.DeleteEquipment(context.Background(), 9)
		require.Error(t, err)
		assert.NotErrorIs(t, err, interfaces.ErrStoreNotFound)
	})
}
