package repository

import (
	"context"
	"testing"

	"hvac_registry/internal/domain/entities"
	"hvac_registry/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceDynamoRepository_List(t *testing.T) {
	fake := &fakeDynamo{scan: func(in *dynamodb.ScanInput) (*dynamodb.ScanOutput, error) {
		assert.Equal(t, "locais", aws.ToString(in.TableName))
		return &dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{
			{"id": numberAttr(2), "nome": &types.AttributeValueMemberS{Value: "Telhado"}},
			{"id": numberAttr(1), "nome": &types.AttributeValueMemberS{Value: "Sala 5"}},
		}}, nil
	}}
	repo := NewReferenceDynamoRepository(fake, testDynamoConfig)

	got, err := repo.ListOptions(context.Background(), entities.ReferenceLocations)
	require.NoError(t, err)
	assert.Equal(t, []entities.ReferenceOption{{ID: 1, Name: "Sala 5"}, {ID: 2, Name: "Telhado"}}, got)
}

func TestReferenceDynamoRepository_Insert(t *testing.T) {
	var counterKey string
	fake := &fakeDynamo{
		update: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			counterKey = in.Key["nome"].(*types.AttributeValueMemberS).Value
			return counterReturning("4")(in)
		},
		put: func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			assert.Equal(t, "marcas", aws.ToString(in.TableName))
			assert.Equal(t, &types.AttributeValueMemberS{Value: "Midea"}, in.Item["nome"])
			return &dynamodb.PutItemOutput{}, nil
		},
	}
	repo := NewReferenceDynamoRepository(fake, testDynamoConfig)

	id, err := repo.InsertOption(context.Background(), entities.ReferenceBrands, "Midea")
	require.NoError(t, err)
	assert.Equal(t, int64(4), id)
	assert.Equal(t, "marcas", counterKey)
}

func TestReferenceDynamoRepository_Delete(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		fake := &fakeDynamo{del: func(*dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error) {
			return nil, &types.ConditionalCheckFailedException{}
		}}
		repo := NewReferenceDynamoRepository(fake, testDynamoConfig)
		assert.ErrorIs(t, repo.DeleteOption(context.Background(), entities.ReferenceBrands, 3), interfaces.ErrStoreNotFound)
	})

	t.Run("unknown kind", func(t *testing.T) {
		repo := NewReferenceDynamoRepository(&fakeDynamo{}, testDynamoConfig)
		assert.Error(t, repo.DeleteOption(context.Background(), "fabricantes", 3))
	})
}
