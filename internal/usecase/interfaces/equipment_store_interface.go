package interfaces

import (
	"context"
	"errors"

	"hvac_registry/internal/domain/entities"
)

var (
	// ErrStoreNotFound is returned by store drivers when the addressed row
	// does not exist remotely.
	ErrStoreNotFound = errors.New("store: record not found")
	// ErrStoreConflict is returned when the store rejects a write because of
	// a uniqueness constraint.
	ErrStoreConflict = errors.New("store: unique constraint violated")
)

// IEquipmentStore is the CRUD contract of the remote equipamentos table.
//
// Implementations exist for DynamoDB, PostgreSQL and PostgREST endpoints.
// The local working copy lives in usecase.EquipmentRepository; stores keep
// no state of their own.
//
//go:generate mockgen -source=equipment_store_interface.go -destination=mocks/mock_equipment_store.go -package=mock_interfaces

type IEquipmentStore interface {
	// ListEquipments returns every record ordered by id ascending.
	ListEquipments(ctx context.Context) ([]entities.Equipment, error)
	// InsertEquipment stores a new record and returns the id assigned to it.
	InsertEquipment(ctx context.Context, draft entities.EquipmentDraft) (int64, error)
	// UpdateEquipment replaces the full record stored under id.
	UpdateEquipment(ctx context.Context, id int64, draft entities.EquipmentDraft) error
	DeleteEquipment(ctx context.Context, id int64) error
}
