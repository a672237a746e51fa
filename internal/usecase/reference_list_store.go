package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"hvac_registry/internal/domain/entities"
	"hvac_registry/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// ReferenceListStore owns the brand and location lists. It follows the same
// discipline as EquipmentRepository: inserts refetch both lists, removals
// filter the local copy.
type ReferenceListStore struct {
	store  interfaces.IReferenceStore
	logger *zap.Logger
	policy ReconcilePolicy

	mu     sync.RWMutex
	lists  map[entities.ReferenceKind][]entities.ReferenceOption
	loaded bool
}

var referenceKinds = []entities.ReferenceKind{entities.ReferenceBrands, entities.ReferenceLocations}

func NewReferenceListStore(store interfaces.IReferenceStore, logger *zap.Logger, policy ReconcilePolicy) *ReferenceListStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	if policy == "" {
		policy = ReconcileMixed
	}
	return &ReferenceListStore{
		store:  store,
		logger: logger.Named("reference_list_store"),
		policy: policy,
		lists:  make(map[entities.ReferenceKind][]entities.ReferenceOption, len(referenceKinds)),
	}
}

// Refresh fetches both lists. Either both caches are replaced or neither is.
func (s *ReferenceListStore) Refresh(ctx context.Context) error {
	fetched := make(map[entities.ReferenceKind][]entities.ReferenceOption, len(referenceKinds))
	for _, kind := range referenceKinds {
		opts, err := s.store.ListOptions(ctx, kind)
		if err != nil {
			s.logger.Error("remote fetch failed", zap.String("table", string(kind)), zap.Error(err))
			return &RemoteError{Op: "select " + string(kind), Err: err}
		}
		sort.SliceStable(opts, func(i, j int) bool { return opts[i].ID < opts[j].ID })
		fetched[kind] = opts
	}

	s.mu.Lock()
	s.lists = fetched
	s.loaded = true
	s.mu.Unlock()
	s.logger.Debug("reference lists refreshed",
		zap.Int("brands", len(fetched[entities.ReferenceBrands])),
		zap.Int("locations", len(fetched[entities.ReferenceLocations])),
	)
	return nil
}

func (s *ReferenceListStore) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

func (s *ReferenceListStore) Brands() []entities.ReferenceOption {
	return s.Options(entities.ReferenceBrands)
}

func (s *ReferenceListStore) Locations() []entities.ReferenceOption {
	return s.Options(entities.ReferenceLocations)
}

func (s *ReferenceListStore) Options(kind entities.ReferenceKind) []entities.ReferenceOption {
	s.mu.RLock()
	defer s.mu.RUnlock()

	src := s.lists[kind]
	out := make([]entities.ReferenceOption, len(src))
	copy(out, src)
	return out
}

func (s *ReferenceListStore) FindBrand(name string) (entities.ReferenceOption, bool) {
	return s.findByName(entities.ReferenceBrands, name)
}

func (s *ReferenceListStore) FindLocation(name string) (entities.ReferenceOption, bool) {
	return s.findByName(entities.ReferenceLocations, name)
}

func (s *ReferenceListStore) FindByID(kind entities.ReferenceKind, id int64) (entities.ReferenceOption, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.lists[kind] {
		if o.ID == id {
			return o, true
		}
	}
	return entities.ReferenceOption{}, false
}

func (s *ReferenceListStore) AddBrand(ctx context.Context, name string) (entities.ReferenceOption, bool, error) {
	return s.add(ctx, entities.ReferenceBrands, name)
}

func (s *ReferenceListStore) AddLocation(ctx context.Context, name string) (entities.ReferenceOption, bool, error) {
	return s.add(ctx, entities.ReferenceLocations, name)
}

func (s *ReferenceListStore) RemoveBrand(ctx context.Context, id int64) error {
	return s.remove(ctx, entities.ReferenceBrands, id)
}

func (s *ReferenceListStore) RemoveLocation(ctx context.Context, id int64) error {
	return s.remove(ctx, entities.ReferenceLocations, id)
}

// add inserts name unless the cache already holds it (case-insensitive), in
// which case the existing option is returned and the store is not called.
// created is true only when this call inserted the row.
func (s *ReferenceListStore) add(ctx context.Context, kind entities.ReferenceKind, name string) (entities.ReferenceOption, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.ReferenceOption{}, false, ErrInvalidOptionName
	}
	if existing, ok := s.findByName(kind, name); ok {
		return existing, false, nil
	}

	id, err := s.store.InsertOption(ctx, kind, name)
	if err != nil {
		if errors.Is(err, interfaces.ErrStoreConflict) {
			// Inserted by another session since our last fetch.
			if rerr := s.Refresh(ctx); rerr != nil {
				return entities.ReferenceOption{}, false, rerr
			}
			if existing, ok := s.findByName(kind, name); ok {
				return existing, false, nil
			}
		}
		s.logger.Error("remote insert failed", zap.String("table", string(kind)), zap.String("nome", name), zap.Error(err))
		return entities.ReferenceOption{}, false, &RemoteError{Op: "insert " + string(kind), Err: err}
	}

	if err := s.Refresh(ctx); err != nil {
		return entities.ReferenceOption{}, false, err
	}
	s.logger.Info("reference option added", zap.String("table", string(kind)), zap.Int64("id", id), zap.String("nome", name))

	if created, ok := s.FindByID(kind, id); ok {
		return created, true, nil
	}
	return entities.ReferenceOption{ID: id, Name: name}, true, nil
}

func (s *ReferenceListStore) remove(ctx context.Context, kind entities.ReferenceKind, id int64) error {
	if err := s.store.DeleteOption(ctx, kind, id); err != nil {
		if errors.Is(err, interfaces.ErrStoreNotFound) {
			return ErrOptionNotFound
		}
		s.logger.Error("remote delete failed", zap.String("table", string(kind)), zap.Int64("id", id), zap.Error(err))
		return &RemoteError{Op: "delete " + string(kind), Err: err}
	}

	s.mu.Lock()
	src := s.lists[kind]
	kept := make([]entities.ReferenceOption, 0, len(src))
	for _, o := range src {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	s.lists[kind] = kept
	s.mu.Unlock()
	s.logger.Info("reference option removed", zap.String("table", string(kind)), zap.Int64("id", id))

	if s.policy == ReconcileRefetch {
		if err := s.Refresh(ctx); err != nil {
			s.logger.Warn("refetch after delete failed", zap.String("table", string(kind)), zap.Error(err))
		}
	}
	return nil
}

func (s *ReferenceListStore) findByName(kind entities.ReferenceKind, name string) (entities.ReferenceOption, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.lists[kind] {
		if sameName(o.Name, name) {
			return o, true
		}
	}
	return entities.ReferenceOption{}, false
}
