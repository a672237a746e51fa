// Package app wires the remote store driver selected by STORE_DRIVER into the
// catalog use case. The API server and registryctl share it.
package app

import (
	"context"
	"fmt"

	"hvac_registry/internal/adapter/persistence/repository"
	"hvac_registry/internal/adapter/spreadsheet"
	"hvac_registry/internal/config"
	"hvac_registry/internal/infrastructure/database"
	"hvac_registry/internal/infrastructure/metrics"
	"hvac_registry/internal/infrastructure/rest"
	"hvac_registry/internal/usecase"
	"hvac_registry/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Stores holds the driver pair for the configured backend.
type Stores struct {
	Equipments interfaces.IEquipmentStore
	References interfaces.IReferenceStore

	closers []func()
}

// OpenStores connects to the configured backend. DynamoDB tables and
// Postgres migrations are not touched here; registryctl handles those.
func OpenStores(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Stores, error) {
	switch cfg.Store.Driver {
	case config.DriverDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, fmt.Errorf("connect dynamodb: %w", err)
		}
		return &Stores{
			Equipments: repository.NewEquipmentDynamoRepository(ddb, cfg.DynamoDB),
			References: repository.NewReferenceDynamoRepository(ddb, cfg.DynamoDB),
		}, nil

	case config.DriverPostgres:
		pool, err := database.ConnectPostgres(ctx, cfg.Postgres)
		if err != nil {
			return nil, err
		}
		return &Stores{
			Equipments: repository.NewEquipmentPostgresRepository(pool),
			References: repository.NewReferencePostgresRepository(pool),
			closers:    []func(){pool.Close},
		}, nil

	case config.DriverREST:
		client := rest.NewClient(cfg.REST)
		logger.Info("using PostgREST store", zap.String("base_url", client.BaseURL))
		return &Stores{
			Equipments: repository.NewEquipmentRestRepository(client),
			References: repository.NewReferenceRestRepository(client),
		}, nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}

func (s *Stores) Close() {
	for _, c := range s.closers {
		c()
	}
}

// NewCatalog builds the caches and the catalog use case. m may be nil, in
// which case store calls are not instrumented.
func NewCatalog(cfg *config.Config, stores *Stores, m *metrics.Metrics, logger *zap.Logger) *usecase.CatalogUseCase {
	equipmentStore := stores.Equipments
	referenceStore := stores.References
	if m != nil {
		equipmentStore = m.InstrumentEquipmentStore(equipmentStore)
		referenceStore = m.InstrumentReferenceStore(referenceStore)
	}

	policy := usecase.ReconcilePolicy(cfg.Store.ReconcilePolicy)
	equipments := usecase.NewEquipmentRepository(equipmentStore, logger, policy)
	options := usecase.NewReferenceListStore(referenceStore, logger, policy)
	return usecase.NewCatalogUseCase(equipments, options, spreadsheet.NewEquipmentSheet(), logger)
}
