package response

import (
	"testing"

	"hvac_registry/internal/domain/entities"
	"hvac_registry/internal/domain/variant"
	"hvac_registry/internal/usecase"
)

func TestFromEquipment(t *testing.T) {
	e := entities.Equipment{
		ID: 7,
		EquipmentDraft: entities.EquipmentDraft{
			Tag:             "fc-01",
			ModelFamily:     entities.ModelFamilyFancoil,
			Brand:           "Carrier",
			InstallLocation: "Casa de Máquinas",
			BeltModel:       "A-42",
			BeltCount:       2,
			Filters:         []entities.Filter{{RowID: "r1", Model: "G4", Size: "20x20", Quantity: 3}},
		},
	}

	got := FromEquipment(e)
	if got.ID != 7 || got.Tag != "FC-01" || got.ModelFamily != "Fancoil" {
		t.Fatalf("unexpected response: %+v", got)
	}
	if len(got.Filters) != 1 || got.Filters[0].RowID != "r1" || got.Filters[0].Quantity != 3 {
		t.Fatalf("unexpected filters: %+v", got.Filters)
	}
}

func TestFromEquipment_EmptyFilters(t *testing.T) {
	got := FromEquipment(entities.Equipment{ID: 1})
	if got.Filters == nil {
		t.Fatalf("filters must render as an empty list")
	}
}

func TestFromImportReport(t *testing.T) {
	r := usecase.ImportReport{
		Created: []entities.Equipment{{ID: 1, EquipmentDraft: entities.EquipmentDraft{Tag: "hw-1"}}},
		Failed: []usecase.ImportFailure{
			{Row: 3, Tag: "x", Error: "boom", Fields: []string{"marca"}},
		},
	}

	got := FromImportReport(r)
	if got.CreatedCount != 1 || got.FailedCount != 1 {
		t.Fatalf("unexpected counts: %+v", got)
	}
	if got.Created[0].Tag != "HW-1" {
		t.Fatalf("expected display tag, got %q", got.Created[0].Tag)
	}
	if got.Failed[0].Row != 3 || got.Failed[0].Fields[0] != "marca" {
		t.Fatalf("unexpected failure: %+v", got.Failed[0])
	}
}

func TestFromProfile(t *testing.T) {
	p, err := variant.Resolve(entities.ModelFamilyHiwall)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := FromProfile(entities.ModelFamilyHiwall, p)
	if got.ModelFamily != "Hiwall" || got.Profile.Kind != variant.KindSplit {
		t.Fatalf("unexpected profile: %+v", got)
	}
	if len(got.RequiredFields) == 0 || got.RequiredFields[0] != variant.FieldTag {
		t.Fatalf("unexpected required fields: %v", got.RequiredFields)
	}
}

func TestFromReferenceOptions(t *testing.T) {
	got := FromReferenceOptions(nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil list, got %v", got)
	}

	got = FromReferenceOptions([]entities.ReferenceOption{{ID: 2, Name: "Telhado"}})
	if got[0].ID != 2 || got[0].Name != "Telhado" {
		t.Fatalf("unexpected option: %+v", got[0])
	}
}
