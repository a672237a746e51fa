package request

import (
	"strings"

	"hvac_registry/internal/domain/entities"
	"hvac_registry/internal/domain/variant"
)

type FilterRequest struct {
	RowID    string `json:"row_id"`
	Model    string `json:"modelo_filtro"`
	Size     string `json:"tamanho_filtro"`
	Quantity int    `json:"quantidade_filtro" binding:"min=0"`
}

// EquipmentRequest is the body of create and full-update calls. Only the
// shape is checked here; required fields depend on the model family and are
// reported by the use case.
type EquipmentRequest struct {
	Tag                string          `json:"tag"`
	ModelFamily        string          `json:"modelo" binding:"omitempty,model_family"`
	Brand              string          `json:"marca"`
	Refrigerant        string          `json:"fluido"`
	CapacityBTU        string          `json:"capacidade"`
	InstallLocation    string          `json:"local"`
	EvaporatorLocation string          `json:"localEvaporadora"`
	CondenserLocation  string          `json:"localCondensadora"`
	CurrentAmps        string          `json:"corrente"`
	Voltage            string          `json:"tensao"`
	CycleReversal      string          `json:"reversao" binding:"omitempty,answer"`
	ThreePhase         string          `json:"trifasico" binding:"omitempty,answer"`
	BeltModel          string          `json:"modelo_correia"`
	BeltCount          int             `json:"quantidade_correias" binding:"min=0"`
	Filters            []FilterRequest `json:"filtros" binding:"omitempty,dive"`
}

// ToDraft converts the payload. A family given in another spelling
// ("piso teto") is stored in its canonical form.
func (r EquipmentRequest) ToDraft() entities.EquipmentDraft {
	family := entities.ModelFamily(strings.TrimSpace(r.ModelFamily))
	if f, err := variant.ParseFamily(r.ModelFamily); err == nil {
		family = f
	}

	d := entities.EquipmentDraft{
		Tag:                r.Tag,
		ModelFamily:        family,
		Brand:              r.Brand,
		Refrigerant:        r.Refrigerant,
		CapacityBTU:        r.CapacityBTU,
		InstallLocation:    r.InstallLocation,
		EvaporatorLocation: r.EvaporatorLocation,
		CondenserLocation:  r.CondenserLocation,
		CurrentAmps:        r.CurrentAmps,
		Voltage:            r.Voltage,
		CycleReversal:      entities.Answer(r.CycleReversal),
		ThreePhase:         entities.Answer(r.ThreePhase),
		BeltModel:          r.BeltModel,
		BeltCount:          r.BeltCount,
	}
	for _, f := range r.Filters {
		d.Filters = append(d.Filters, entities.Filter{
			RowID:    strings.TrimSpace(f.RowID),
			Model:    f.Model,
			Size:     f.Size,
			Quantity: f.Quantity,
		})
	}
	return d
}

type ReferenceOptionRequest struct {
	Name string `json:"nome" binding:"required"`
}
