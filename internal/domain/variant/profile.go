// Package variant maps an equipment model family to the set of fields that
// family uses. It is the only place that knows which families are split-type
// and which are belt/fan-type.
package variant

import (
	"errors"
	"strings"

	"hvac_registry/internal/domain/entities"
)

var ErrUnknownModelFamily = errors.New("unknown model family")

type Kind string

const (
	KindSplit Kind = "split"
	KindBelt  Kind = "belt"
)

// Field names used in required-field reports. They match the store columns.
const (
	FieldTag                = "tag"
	FieldModelFamily        = "modelo"
	FieldBrand              = "marca"
	FieldRefrigerant        = "fluido"
	FieldCapacity           = "capacidade"
	FieldInstallLocation    = "local"
	FieldEvaporatorLocation = "localEvaporadora"
	FieldCondenserLocation  = "localCondensadora"
	FieldCycleReversal      = "reversao"
	FieldThreePhase         = "trifasico"
	FieldBeltModel          = "modelo_correia"
	FieldBeltCount          = "quantidade_correias"
	FieldFilters            = "filtros"
)

type Profile struct {
	Kind                   Kind `json:"kind"`
	RequiresRefrigerant    bool `json:"requires_refrigerant"`
	RequiresCapacity       bool `json:"requires_capacity"`
	RequiresReversalField  bool `json:"requires_reversal_field"`
	RequiresSplitLocations bool `json:"requires_split_locations"`
	RequiresBeltFields     bool `json:"requires_belt_fields"`
	AllowsFilters          bool `json:"allows_filters"`
}

var (
	splitProfile = Profile{
		Kind:                   KindSplit,
		RequiresRefrigerant:    true,
		RequiresCapacity:       true,
		RequiresReversalField:  true,
		RequiresSplitLocations: true,
	}
	beltProfile = Profile{
		Kind:               KindBelt,
		RequiresBeltFields: true,
		AllowsFilters:      true,
	}
)

var families = []entities.ModelFamily{
	entities.ModelFamilyFancoil,
	entities.ModelFamilyHiwall,
	entities.ModelFamilyCassete,
	entities.ModelFamilyPisoTeto,
	entities.ModelFamilyExaustor,
	entities.ModelFamilyVentilador,
}

// Families lists the known model families in display order.
func Families() []entities.ModelFamily {
	out := make([]entities.ModelFamily, len(families))
	copy(out, families)
	return out
}

// ParseFamily accepts the canonical spelling in any case; "PisoTeto" is
// accepted for "Piso Teto".
func ParseFamily(raw string) (entities.ModelFamily, error) {
	norm := strings.ToLower(strings.Join(strings.Fields(raw), ""))
	for _, f := range families {
		if strings.ToLower(strings.ReplaceAll(string(f), " ", "")) == norm {
			return f, nil
		}
	}
	return "", ErrUnknownModelFamily
}

func Resolve(family entities.ModelFamily) (Profile, error) {
	switch family {
	case entities.ModelFamilyHiwall, entities.ModelFamilyCassete, entities.ModelFamilyPisoTeto:
		return splitProfile, nil
	case entities.ModelFamilyFancoil, entities.ModelFamilyExaustor, entities.ModelFamilyVentilador:
		return beltProfile, nil
	}
	return Profile{}, ErrUnknownModelFamily
}

// RequiredFields returns the required field names in form order, including
// the ones every family requires. Cycle reversal is shown for split families
// but never required.
func (p Profile) RequiredFields() []string {
	fields := []string{FieldTag, FieldModelFamily, FieldBrand}
	if p.RequiresRefrigerant {
		fields = append(fields, FieldRefrigerant)
	}
	if p.RequiresCapacity {
		fields = append(fields, FieldCapacity)
	}
	if p.RequiresSplitLocations {
		fields = append(fields, FieldEvaporatorLocation, FieldCondenserLocation)
	} else {
		fields = append(fields, FieldInstallLocation)
	}
	if p.RequiresBeltFields {
		fields = append(fields, FieldBeltModel, FieldBeltCount)
	}
	return fields
}

// Missing reports which required fields are empty in d.
func (p Profile) Missing(d entities.EquipmentDraft) []string {
	var missing []string
	for _, f := range p.RequiredFields() {
		if isEmpty(f, d) {
			missing = append(missing, f)
		}
	}
	return missing
}

// Sanitize clears every field this profile does not use.
func (p Profile) Sanitize(d entities.EquipmentDraft) entities.EquipmentDraft {
	out := d.Clone()
	if !p.RequiresRefrigerant {
		out.Refrigerant = ""
	}
	if !p.RequiresCapacity {
		out.CapacityBTU = ""
	}
	if !p.RequiresReversalField {
		out.CycleReversal = ""
	}
	if p.RequiresSplitLocations {
		out.InstallLocation = ""
	} else {
		out.EvaporatorLocation = ""
		out.CondenserLocation = ""
	}
	if !p.RequiresBeltFields {
		out.BeltModel = ""
		out.BeltCount = 0
	}
	if !p.AllowsFilters {
		out.Filters = nil
	}
	return out
}

func isEmpty(field string, d entities.EquipmentDraft) bool {
	switch field {
	case FieldTag:
		return blank(d.Tag)
	case FieldModelFamily:
		return blank(string(d.ModelFamily))
	case FieldBrand:
		return blank(d.Brand)
	case FieldRefrigerant:
		return blank(d.Refrigerant)
	case FieldCapacity:
		return blank(d.CapacityBTU)
	case FieldInstallLocation:
		return blank(d.InstallLocation)
	case FieldEvaporatorLocation:
		return blank(d.EvaporatorLocation)
	case FieldCondenserLocation:
		return blank(d.CondenserLocation)
	case FieldCycleReversal:
		return blank(string(d.CycleReversal))
	case FieldBeltModel:
		return blank(d.BeltModel)
	case FieldBeltCount:
		return d.BeltCount <= 0
	}
	return false
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
