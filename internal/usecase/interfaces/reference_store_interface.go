package interfaces

import (
	"context"

	"hvac_registry/internal/domain/entities"
)

// IReferenceStore is the CRUD contract shared by the marcas and locais tables.
//
//go:generate mockgen -source=reference_store_interface.go -destination=mocks/mock_reference_store.go -package=mock_interfaces

type IReferenceStore interface {
	// ListOptions returns the options of a list ordered by id ascending.
	ListOptions(ctx context.Context, kind entities.ReferenceKind) ([]entities.ReferenceOption, error)
	InsertOption(ctx context.Context, kind entities.ReferenceKind, name string) (int64, error)
	DeleteOption(ctx context.Context, kind entities.ReferenceKind, id int64) error
}
