package usecase

import (
	"context"
	"errors"
	"sort"
	"sync"

	"hvac_registry/internal/domain/entities"
	"hvac_registry/internal/domain/variant"
	"hvac_registry/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// ReconcilePolicy decides how a local cache catches up with the remote store
// after a delete. Inserts and updates always refetch the whole collection.
type ReconcilePolicy string

const (
	// ReconcileMixed filters deleted rows out of the cache without a refetch.
	ReconcileMixed ReconcilePolicy = "mixed"
	// ReconcileRefetch also refetches after a delete.
	ReconcileRefetch ReconcilePolicy = "refetch"
)

// EquipmentRepository owns the in-memory working copy of the equipment
// collection and keeps it in sync with the remote store.
//
//   - Refresh: fetch-all, replaces the cache.
//   - Add/Update: remote write, then fetch-all so server-assigned state (id) is
//     reflected locally.
//   - Delete: remote delete, then the id is filtered out of the cache.
//
// A failed remote call leaves the cache as it was. Nothing is retried.
type EquipmentRepository struct {
	store  interfaces.IEquipmentStore
	logger *zap.Logger
	policy ReconcilePolicy

	mu     sync.RWMutex
	items  []entities.Equipment
	loaded bool
}

func NewEquipmentRepository(store interfaces.IEquipmentStore, logger *zap.Logger, policy ReconcilePolicy) *EquipmentRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	if policy == "" {
		policy = ReconcileMixed
	}
	return &EquipmentRepository{
		store:  store,
		logger: logger.Named("equipment_repository"),
		policy: policy,
	}
}

func (r *EquipmentRepository) Refresh(ctx context.Context) error {
	items, err := r.fetch(ctx, "select equipamentos")
	if err != nil {
		return err
	}
	r.replace(items)
	return nil
}

// Loaded reports whether at least one fetch has succeeded.
func (r *EquipmentRepository) Loaded() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loaded
}

// List returns a snapshot of the cache ordered by id. Callers own the copy.
func (r *EquipmentRepository) List() []entities.Equipment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Equipment, len(r.items))
	for i, e := range r.items {
		out[i] = e.Clone()
	}
	return out
}

func (r *EquipmentRepository) Get(id int64) (entities.Equipment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.items {
		if e.ID == id {
			return e.Clone(), nil
		}
	}
	return entities.Equipment{}, ErrEquipmentNotFound
}

func (r *EquipmentRepository) Add(ctx context.Context, draft entities.EquipmentDraft) (entities.Equipment, error) {
	id, err := r.store.InsertEquipment(ctx, draft.Clone())
	if err != nil {
		return entities.Equipment{}, r.writeError("insert equipamentos", 0, err)
	}

	created, err := r.refetchAndFind(ctx, id)
	if err != nil {
		return entities.Equipment{}, err
	}
	r.logger.Info("equipment created", zap.Int64("id", id), zap.String("tag", created.Tag))
	return created, nil
}

// Update replaces the whole record stored under id.
func (r *EquipmentRepository) Update(ctx context.Context, id int64, draft entities.EquipmentDraft) (entities.Equipment, error) {
	if err := r.store.UpdateEquipment(ctx, id, draft.Clone()); err != nil {
		return entities.Equipment{}, r.writeError("update equipamentos", id, err)
	}

	updated, err := r.refetchAndFind(ctx, id)
	if err != nil {
		return entities.Equipment{}, err
	}
	r.logger.Info("equipment updated", zap.Int64("id", id), zap.String("tag", updated.Tag))
	return updated, nil
}

func (r *EquipmentRepository) Delete(ctx context.Context, id int64) error {
	if err := r.store.DeleteEquipment(ctx, id); err != nil {
		return r.writeError("delete equipamentos", id, err)
	}

	r.mu.Lock()
	kept := r.items[:0:0]
	for _, e := range r.items {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	r.items = kept
	r.mu.Unlock()
	r.logger.Info("equipment deleted", zap.Int64("id", id))

	if r.policy == ReconcileRefetch {
		// The delete already happened remotely; a failed refetch only means
		// the cache may miss concurrent changes until the next Refresh.
		if err := r.Refresh(ctx); err != nil {
			r.logger.Warn("refetch after delete failed", zap.Int64("id", id), zap.Error(err))
		}
	}
	return nil
}

// ReferencesOption counts the records that point at the named option.
func (r *EquipmentRepository) ReferencesOption(kind entities.ReferenceKind, name string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, e := range r.items {
		switch kind {
		case entities.ReferenceBrands:
			if sameName(e.Brand, name) {
				count++
			}
		case entities.ReferenceLocations:
			for _, l := range e.Locations() {
				if sameName(l, name) {
					count++
					break
				}
			}
		}
	}
	return count
}

func (r *EquipmentRepository) refetchAndFind(ctx context.Context, id int64) (entities.Equipment, error) {
	items, err := r.fetch(ctx, "refetch equipamentos")
	if err != nil {
		return entities.Equipment{}, err
	}
	r.replace(items)

	for _, e := range items {
		if e.ID == id {
			return e.Clone(), nil
		}
	}
	// Written, then removed by someone else before the refetch.
	return entities.Equipment{}, ErrEquipmentNotFound
}

func (r *EquipmentRepository) fetch(ctx context.Context, op string) ([]entities.Equipment, error) {
	items, err := r.store.ListEquipments(ctx)
	if err != nil {
		r.logger.Error("remote fetch failed", zap.String("op", op), zap.Error(err))
		return nil, &RemoteError{Op: op, Err: err}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	r.logger.Debug("equipment cache refreshed", zap.Int("count", len(items)))
	return items, nil
}

func (r *EquipmentRepository) replace(items []entities.Equipment) {
	r.mu.Lock()
	r.items = items
	r.loaded = true
	r.mu.Unlock()
}

func (r *EquipmentRepository) writeError(op string, id int64, err error) error {
	switch {
	case errors.Is(err, interfaces.ErrStoreNotFound):
		return ErrEquipmentNotFound
	case errors.Is(err, interfaces.ErrStoreConflict):
		return newValidationError(ValidationDuplicateTag, variant.FieldTag)
	}
	r.logger.Error("remote write failed", zap.String("op", op), zap.Int64("id", id), zap.Error(err))
	return &RemoteError{Op: op, Err: err}
}
