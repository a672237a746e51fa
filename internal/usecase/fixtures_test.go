package usecase

import (
	"context"
	"testing"

	"hvac_registry/internal/domain/entities"
	mock_interfaces "hvac_registry/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	testBrands = []entities.ReferenceOption{
		{ID: 1, Name: "Daikin"},
		{ID: 2, Name: "Carrier"},
	}
	testLocations = []entities.ReferenceOption{
		{ID: 1, Name: "Sala 5"},
		{ID: 2, Name: "Telhado"},
		{ID: 3, Name: "Casa de Máquinas"},
	}
)

func hiwallDraft(tag string) entities.EquipmentDraft {
	return entities.EquipmentDraft{
		Tag:                tag,
		ModelFamily:        entities.ModelFamilyHiwall,
		Brand:              "Daikin",
		Refrigerant:        "R410A",
		CapacityBTU:        "18.000",
		EvaporatorLocation: "Sala 5",
		CondenserLocation:  "Telhado",
	}
}

func fancoilDraft(tag string) entities.EquipmentDraft {
	return entities.EquipmentDraft{
		Tag:             tag,
		ModelFamily:     entities.ModelFamilyFancoil,
		Brand:           "Carrier",
		InstallLocation: "Casa de Máquinas",
		BeltModel:       "A-42",
		BeltCount:       2,
	}
}

// loadedOptions returns a ReferenceListStore already filled with the test
// brands and locations.
func loadedOptions(t *testing.T, ctrl *gomock.Controller) (*ReferenceListStore, *mock_interfaces.MockIReferenceStore) {
	t.Helper()
	store := mock_interfaces.NewMockIReferenceStore(ctrl)
	store.EXPECT().ListOptions(gomock.Any(), entities.ReferenceBrands).Return(cloneOptions(testBrands), nil)
	store.EXPECT().ListOptions(gomock.Any(), entities.ReferenceLocations).Return(cloneOptions(testLocations), nil)

	s := NewReferenceListStore(store, nil, ReconcileMixed)
	require.NoError(t, s.Refresh(context.Background()), "refresh options")
	return s, store
}

// loadedEquipments returns an EquipmentRepository whose cache holds items.
func loadedEquipments(t *testing.T, ctrl *gomock.Controller, items ...entities.Equipment) (*EquipmentRepository, *mock_interfaces.MockIEquipmentStore) {
	t.Helper()
	store := mock_interfaces.NewMockIEquipmentStore(ctrl)
	store.EXPECT().ListEquipments(gomock.Any()).Return(cloneEquipments(items), nil)

	r := NewEquipmentRepository(store, nil, ReconcileMixed)
	require.NoError(t, r.Refresh(context.Background()), "refresh equipments")
	return r, store
}

func cloneOptions(in []entities.ReferenceOption) []entities.ReferenceOption {
	out := make([]entities.ReferenceOption, len(in))
	copy(out, in)
	return out
}

func cloneEquipments(in []entities.Equipment) []entities.Equipment {
	out := make([]entities.Equipment, len(in))
	for i, e := range in {
		out[i] = e.Clone()
	}
	return out
}
