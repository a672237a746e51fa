package entities

import (
	"strings"
)

// ModelFamily is the equipment category. It decides which nameplate fields
// are required for a unit (see the variant package).
type ModelFamily string

const (
	ModelFamilyFancoil    ModelFamily = "Fancoil"
	ModelFamilyHiwall     ModelFamily = "Hiwall"
	ModelFamilyCassete    ModelFamily = "Cassete"
	ModelFamilyPisoTeto   ModelFamily = "Piso Teto"
	ModelFamilyExaustor   ModelFamily = "Exaustor"
	ModelFamilyVentilador ModelFamily = "Ventilador"
)

// Answer is the Sim/Não/N/A value used by cycle reversal and three-phase.
type Answer string

const (
	AnswerYes           Answer = "Sim"
	AnswerNo            Answer = "Não"
	AnswerNotApplicable Answer = "N/A"
)

func (a Answer) Valid() bool {
	switch a {
	case AnswerYes, AnswerNo, AnswerNotApplicable:
		return true
	}
	return false
}

var (
	Refrigerants = []string{"R22", "R32", "R410A", "R404A", "N/A"}
	Capacities   = []string{"9.000", "12.000", "18.000", "24.000", "30.000", "36.000", "42.000", "48.000", "58.000", "60.000", "N/A"}
)

// Filter is one row of the filter list carried by belt/fan units.
//
// RowID is generated when the row is created and never changes, so rows are
// addressed by identity rather than by position.
type Filter struct {
	RowID    string `json:"row_id"`
	Model    string `json:"modelo_filtro"`
	Size     string `json:"tamanho_filtro"`
	Quantity int    `json:"quantidade_filtro"`
}

// EquipmentDraft holds every equipment attribute except the store-assigned id.
//
// Storage columns (equipamentos):
//   - tag, modelo, marca, fluido, capacidade
//   - local | localEvaporadora + localCondensadora
//   - corrente, tensao, reversao, trifasico
//   - modelo_correia, quantidade_correias, filtros
type EquipmentDraft struct {
	Tag                string      `json:"tag"`
	ModelFamily        ModelFamily `json:"modelo"`
	Brand              string      `json:"marca"`
	Refrigerant        string      `json:"fluido,omitempty"`
	CapacityBTU        string      `json:"capacidade,omitempty"`
	InstallLocation    string      `json:"local,omitempty"`
	EvaporatorLocation string      `json:"localEvaporadora,omitempty"`
	CondenserLocation  string      `json:"localCondensadora,omitempty"`
	CurrentAmps        string      `json:"corrente,omitempty"`
	Voltage            string      `json:"tensao,omitempty"`
	CycleReversal      Answer      `json:"reversao,omitempty"`
	ThreePhase         Answer      `json:"trifasico,omitempty"`
	BeltModel          string      `json:"modelo_correia,omitempty"`
	BeltCount          int         `json:"quantidade_correias,omitempty"`
	Filters            []Filter    `json:"filtros,omitempty"`
}

// Equipment is a registered HVAC unit. ID is assigned by the remote store on
// creation and never changes afterwards.
type Equipment struct {
	ID int64 `json:"id"`
	EquipmentDraft
}

// DisplayTag is the tag as operators see it.
func (d EquipmentDraft) DisplayTag() string {
	return strings.ToUpper(strings.TrimSpace(d.Tag))
}

// Locations returns every non-empty location name the draft references.
func (d EquipmentDraft) Locations() []string {
	out := make([]string, 0, 3)
	for _, l := range []string{d.InstallLocation, d.EvaporatorLocation, d.CondenserLocation} {
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return out
}

// Clone returns a deep copy; the filter slice is not shared.
func (d EquipmentDraft) Clone() EquipmentDraft {
	cp := d
	if d.Filters != nil {
		cp.Filters = make([]Filter, len(d.Filters))
		copy(cp.Filters, d.Filters)
	}
	return cp
}

func (e Equipment) Clone() Equipment {
	return Equipment{ID: e.ID, EquipmentDraft: e.EquipmentDraft.Clone()}
}
