package response

import (
	"hvac_registry/internal/domain/entities"
	"hvac_registry/internal/usecase"
)

type FilterResponse struct {
	RowID    string `json:"row_id"`
	Model    string `json:"modelo_filtro"`
	Size     string `json:"tamanho_filtro"`
	Quantity int    `json:"quantidade_filtro"`
}

type EquipmentResponse struct {
	ID                 int64            `json:"id"`
	Tag                string           `json:"tag"`
	ModelFamily        string           `json:"modelo"`
	Brand              string           `json:"marca"`
	Refrigerant        string           `json:"fluido,omitempty"`
	CapacityBTU        string           `json:"capacidade,omitempty"`
	InstallLocation    string           `json:"local,omitempty"`
	EvaporatorLocation string           `json:"localEvaporadora,omitempty"`
	CondenserLocation  string           `json:"localCondensadora,omitempty"`
	CurrentAmps        string           `json:"corrente,omitempty"`
	Voltage            string           `json:"tensao,omitempty"`
	CycleReversal      string           `json:"reversao,omitempty"`
	ThreePhase         string           `json:"trifasico,omitempty"`
	BeltModel          string           `json:"modelo_correia,omitempty"`
	BeltCount          int              `json:"quantidade_correias,omitempty"`
	Filters            []FilterResponse `json:"filtros"`
}

// FromEquipment renders the tag the way operators see it (upper case).
func FromEquipment(e entities.Equipment) EquipmentResponse {
	filters := make([]FilterResponse, 0, len(e.Filters))
	for _, f := range e.Filters {
		filters = append(filters, FilterResponse{
			RowID:    f.RowID,
			Model:    f.Model,
			Size:     f.Size,
			Quantity: f.Quantity,
		})
	}

	return EquipmentResponse{
		ID:                 e.ID,
		Tag:                e.DisplayTag(),
		ModelFamily:        string(e.ModelFamily),
		Brand:              e.Brand,
		Refrigerant:        e.Refrigerant,
		CapacityBTU:        e.CapacityBTU,
		InstallLocation:    e.InstallLocation,
		EvaporatorLocation: e.EvaporatorLocation,
		CondenserLocation:  e.CondenserLocation,
		CurrentAmps:        e.CurrentAmps,
		Voltage:            e.Voltage,
		CycleReversal:      string(e.CycleReversal),
		ThreePhase:         string(e.ThreePhase),
		BeltModel:          e.BeltModel,
		BeltCount:          e.BeltCount,
		Filters:            filters,
	}
}

func FromEquipments(items []entities.Equipment) []EquipmentResponse {
	out := make([]EquipmentResponse, 0, len(items))
	for _, e := range items {
		out = append(out, FromEquipment(e))
	}
	return out
}

type ImportFailureResponse struct {
	Row    int      `json:"row"`
	Tag    string   `json:"tag,omitempty"`
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

type ImportReportResponse struct {
	CreatedCount int                     `json:"created_count"`
	FailedCount  int                     `json:"failed_count"`
	Created      []EquipmentResponse     `json:"created"`
	Failed       []ImportFailureResponse `json:"failed"`
}

func FromImportReport(r usecase.ImportReport) ImportReportResponse {
	failed := make([]ImportFailureResponse, 0, len(r.Failed))
	for _, f := range r.Failed {
		failed = append(failed, ImportFailureResponse(f))
	}
	return ImportReportResponse{
		CreatedCount: len(r.Created),
		FailedCount:  len(r.Failed),
		Created:      FromEquipments(r.Created),
		Failed:       failed,
	}
}
