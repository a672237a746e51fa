package repository

import (
	"context"

	"hvac_registry/internal/domain/entities"
	"hvac_registry/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
)

// restEquipmentRow is the PostgREST body for equipamentos. Fields are
// pointers without omitempty so that an update writes NULL over columns the
// new record no longer uses.
type restEquipmentRow struct {
	ID                 int64             `json:"id,omitempty"`
	Tag                string            `json:"tag"`
	Model              string            `json:"modelo"`
	Brand              string            `json:"marca"`
	Refrigerant        *string           `json:"fluido"`
	Capacity           *string           `json:"capacidade"`
	Location           *string           `json:"local"`
	EvaporatorLocation *string           `json:"localEvaporadora"`
	CondenserLocation  *string           `json:"localCondensadora"`
	Current            *string           `json:"corrente"`
	Voltage            *string           `json:"tensao"`
	Reversal           *string           `json:"reversao"`
	ThreePhase         *string           `json:"trifasico"`
	BeltModel          *string           `json:"modelo_correia"`
	BeltCount          *int              `json:"quantidade_correias"`
	Filters            []entities.Filter `json:"filtros"`
}

// EquipmentRestRepository talks to the equipamentos table through a
// PostgREST endpoint.
type EquipmentRestRepository struct {
	client *resty.Client
}

var _ interfaces.IEquipmentStore = (*EquipmentRestRepository)(nil)

func NewEquipmentRestRepository(client *resty.Client) *EquipmentRestRepository {
	return &EquipmentRestRepository{client: client}
}

func (r *EquipmentRestRepository) ListEquipments(ctx context.Context) ([]entities.Equipment, error) {
	var rows []restEquipmentRow
	resp, err := r.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{"select": "*", "order": "id.asc"}).
		SetResult(&rows).
		Get("/" + equipmentsTable)
	if err := restError("select", equipmentsTable, resp, err); err != nil {
		return nil, err
	}

	out := make([]entities.Equipment, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromRestEquipmentRow(row))
	}
	return out, nil
}

func (r *EquipmentRestRepository) InsertEquipment(ctx context.Context, draft entities.EquipmentDraft) (int64, error) {
	var created []idRow
	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("Prefer", preferRepresentation).
		SetQueryParam("select", "id").
		SetBody(toRestEquipmentRow(draft)).
		SetResult(&created).
		Post("/" + equipmentsTable)
	if err := restError("insert", equipmentsTable, resp, err); err != nil {
		return 0, err
	}
	if len(created) == 0 {
		return 0, restError("insert", equipmentsTable, resp, errEmptyRepresentation)
	}
	return created[0].ID, nil
}

func (r *EquipmentRestRepository) UpdateEquipment(ctx context.Context, id int64, draft entities.EquipmentDraft) error {
	var updated []idRow
	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("Prefer", preferRepresentation).
		SetQueryParams(map[string]string{"id": eqFilter(id), "select": "id"}).
		SetBody(toRestEquipmentRow(draft)).
		SetResult(&updated).
		Patch("/" + equipmentsTable)
	if err := restError("update", equipmentsTable, resp, err); err != nil {
		return err
	}
	if len(updated) == 0 {
		return interfaces.ErrStoreNotFound
	}
	return nil
}

func (r *EquipmentRestRepository) DeleteEquipment(ctx context.Context, id int64) error {
	var deleted []idRow
	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("Prefer", preferRepresentation).
		SetQueryParams(map[string]string{"id": eqFilter(id), "select": "id"}).
		SetResult(&deleted).
		Delete("/" + equipmentsTable)
	if err := restError("delete", equipmentsTable, resp, err); err != nil {
		return err
	}
	if len(deleted) == 0 {
		return interfaces.ErrStoreNotFound
	}
	return nil
}

func toRestEquipmentRow(d entities.EquipmentDraft) restEquipmentRow {
	row := restEquipmentRow{
		Tag:                d.Tag,
		Model:              string(d.ModelFamily),
		Brand:              d.Brand,
		Refrigerant:        strPtr(d.Refrigerant),
		Capacity:           strPtr(d.CapacityBTU),
		Location:           strPtr(d.InstallLocation),
		EvaporatorLocation: strPtr(d.EvaporatorLocation),
		CondenserLocation:  strPtr(d.CondenserLocation),
		Current:            strPtr(d.CurrentAmps),
		Voltage:            strPtr(d.Voltage),
		Reversal:           strPtr(string(d.CycleReversal)),
		ThreePhase:         strPtr(string(d.ThreePhase)),
		BeltModel:          strPtr(d.BeltModel),
		Filters:            d.Filters,
	}
	if d.BeltCount != 0 {
		n := d.BeltCount
		row.BeltCount = &n
	}
	return row
}

func fromRestEquipmentRow(row restEquipmentRow) entities.Equipment {
	e := entities.Equipment{
		ID: row.ID,
		EquipmentDraft: entities.EquipmentDraft{
			Tag:                row.Tag,
			ModelFamily:        entities.ModelFamily(row.Model),
			Brand:              row.Brand,
			Refrigerant:        deref(row.Refrigerant),
			CapacityBTU:        deref(row.Capacity),
			InstallLocation:    deref(row.Location),
			EvaporatorLocation: deref(row.EvaporatorLocation),
			CondenserLocation:  deref(row.CondenserLocation),
			CurrentAmps:        deref(row.Current),
			Voltage:            deref(row.Voltage),
			CycleReversal:      entities.Answer(deref(row.Reversal)),
			ThreePhase:         entities.Answer(deref(row.ThreePhase)),
			BeltModel:          deref(row.BeltModel),
		},
	}
	if row.BeltCount != nil {
		e.BeltCount = *row.BeltCount
	}
	if len(row.Filters) > 0 {
		e.Filters = row.Filters
	}
	return e
}
