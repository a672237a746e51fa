package database

import (
	"context"
	"errors"
	"fmt"

	"hvac_registry/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// TableAPI is the part of *dynamodb.Client needed to bootstrap tables.
type TableAPI interface {
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

type tableSpec struct {
	name    string
	key     string
	keyType types.ScalarAttributeType
}

func registryTables(cfg config.DynamoDBConfig) []tableSpec {
	return []tableSpec{
		{cfg.EquipmentsTable, "id", types.ScalarAttributeTypeN},
		{cfg.BrandsTable, "id", types.ScalarAttributeTypeN},
		{cfg.LocationsTable, "id", types.ScalarAttributeTypeN},
		{cfg.TagsTable, "tag", types.ScalarAttributeTypeS},
		{cfg.CountersTable, "nome", types.ScalarAttributeTypeS},
	}
}

// EnsureTables creates every registry table that does not exist yet, with
// on-demand billing. Existing tables are left untouched. It returns the
// names of the tables it created.
func EnsureTables(ctx context.Context, api TableAPI, cfg config.DynamoDBConfig, logger *zap.Logger) ([]string, error) {
	var created []string
	for _, t := range registryTables(cfg) {
		_, err := api.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(t.name)})
		if err == nil {
			logger.Debug("table exists", zap.String("table", t.name))
			continue
		}
		var nf *types.ResourceNotFoundException
		if !errors.As(err, &nf) {
			return created, fmt.Errorf("describe %s: %w", t.name, err)
		}

		_, err = api.CreateTable(ctx, &dynamodb.CreateTableInput{
			TableName: aws.String(t.name),
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String(t.key), AttributeType: t.keyType},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String(t.key), KeyType: types.KeyTypeHash},
			},
			BillingMode: types.BillingModePayPerRequest,
		})
		if err != nil {
			return created, fmt.Errorf("create %s: %w", t.name, err)
		}
		logger.Info("table created", zap.String("table", t.name))
		created = append(created, t.name)
	}
	return created, nil
}
