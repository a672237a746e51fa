package metrics

import (
	"context"
	"time"

	"hvac_registry/internal/domain/entities"
	"hvac_registry/internal/usecase/interfaces"
)

type equipmentStore struct {
	next interfaces.IEquipmentStore
	m    *Metrics
}

// InstrumentEquipmentStore wraps a store driver so every call is counted.
func (m *Metrics) InstrumentEquipmentStore(next interfaces.IEquipmentStore) interfaces.IEquipmentStore {
	return &equipmentStore{next: next, m: m}
}

func (s *equipmentStore) ListEquipments(ctx context.Context) (items []entities.Equipment, err error) {
	defer func(start time.Time) { s.m.observeStore("list_equipments", start, err) }(time.Now())
	return s.next.ListEquipments(ctx)
}

func (s *equipmentStore) InsertEquipment(ctx context.Context, draft entities.EquipmentDraft) (id int64, err error) {
	defer func(start time.Time) { s.m.observeStore("insert_equipment", start, err) }(time.Now())
	return s.next.InsertEquipment(ctx, draft)
}

func (s *equipmentStore) UpdateEquipment(ctx context.Context, id int64, draft entities.EquipmentDraft) (err error) {
	defer func(start time.Time) { s.m.observeStore("update_equipment", start, err) }(time.Now())
	return s.next.UpdateEquipment(ctx, id, draft)
}

func (s *equipmentStore) DeleteEquipment(ctx context.Context, id int64) (err error) {
	defer func(start time.Time) { s.m.observeStore("delete_equipment", start, err) }(time.Now())
	return s.next.DeleteEquipment(ctx, id)
}

type referenceStore struct {
	next interfaces.IReferenceStore
	m    *Metrics
}

func (m *Metrics) InstrumentReferenceStore(next interfaces.IReferenceStore) interfaces.IReferenceStore {
	return &referenceStore{next: next, m: m}
}

func (s *referenceStore) ListOptions(ctx context.Context, kind entities.ReferenceKind) (opts []entities.ReferenceOption, err error) {
	defer func(start time.Time) { s.m.observeStore("list_"+string(kind), start, err) }(time.Now())
	return s.next.ListOptions(ctx, kind)
}

func (s *referenceStore) InsertOption(ctx context.Context, kind entities.ReferenceKind, name string) (id int64, err error) {
	defer func(start time.Time) { s.m.observeStore("insert_"+string(kind), start, err) }(time.Now())
	return s.next.InsertOption(ctx, kind, name)
}

func (s *referenceStore) DeleteOption(ctx context.Context, kind entities.ReferenceKind, id int64) (err error) {
	defer func(start time.Time) { s.m.observeStore("delete_"+string(kind), start, err) }(time.Now())
	return s.next.DeleteOption(ctx, kind, id)
}
