package usecase

import (
	"context"
	"slices"
	"strings"

	"hvac_registry/internal/domain/entities"
	"hvac_registry/internal/domain/variant"

	"github.com/google/uuid"
)

type equipmentCatalog interface {
	List() []entities.Equipment
	Get(id int64) (entities.Equipment, error)
	Add(ctx context.Context, draft entities.EquipmentDraft) (entities.Equipment, error)
	Update(ctx context.Context, id int64, draft entities.EquipmentDraft) (entities.Equipment, error)
}

type optionCatalog interface {
	FindBrand(name string) (entities.ReferenceOption, bool)
	FindLocation(name string) (entities.ReferenceOption, bool)
}

var (
	_ equipmentCatalog = (*EquipmentRepository)(nil)
	_ optionCatalog    = (*ReferenceListStore)(nil)
)

// EquipmentForm is the working draft behind a create or edit screen.
//
// The active variant.Profile is re-derived on every model family change and
// drives both validation and which fields are kept on submit.
type EquipmentForm struct {
	equipments equipmentCatalog
	options    optionCatalog

	editingID int64
	draft     entities.EquipmentDraft
	profile   *variant.Profile
	newRowID  func() string
}

func NewEquipmentForm(equipments equipmentCatalog, options optionCatalog) *EquipmentForm {
	return &EquipmentForm{
		equipments: equipments,
		options:    options,
		newRowID:   uuid.NewString,
	}
}

// EditEquipmentForm opens the record id from the equipment snapshot.
func EditEquipmentForm(equipments equipmentCatalog, options optionCatalog, id int64) (*EquipmentForm, error) {
	existing, err := equipments.Get(id)
	if err != nil {
		return nil, err
	}

	f := NewEquipmentForm(equipments, options)
	f.editingID = existing.ID
	f.draft = existing.EquipmentDraft.Clone()
	if p, err := variant.Resolve(f.draft.ModelFamily); err == nil {
		f.profile = &p
	}
	f.ensureRowIDs()
	return f, nil
}

func (f *EquipmentForm) IsEditing() bool  { return f.editingID != 0 }
func (f *EquipmentForm) EditingID() int64 { return f.editingID }

func (f *EquipmentForm) Draft() entities.EquipmentDraft {
	return f.draft.Clone()
}

// Profile returns the active profile; ok is false until a known model family
// has been chosen.
func (f *EquipmentForm) Profile() (variant.Profile, bool) {
	if f.profile == nil {
		return variant.Profile{}, false
	}
	return *f.profile, true
}

// SetModelFamily switches the draft to another family. The three location
// fields are always cleared, so no location picked for one layout survives
// into the other.
func (f *EquipmentForm) SetModelFamily(family entities.ModelFamily) error {
	p, err := variant.Resolve(family)
	if err != nil {
		return newValidationError(ValidationInvalidValue, variant.FieldModelFamily)
	}
	f.draft.ModelFamily = family
	f.profile = &p
	f.draft.InstallLocation = ""
	f.draft.EvaporatorLocation = ""
	f.draft.CondenserLocation = ""
	return nil
}

func (f *EquipmentForm) SetTag(tag string)                       { f.draft.Tag = tag }
func (f *EquipmentForm) SetBrand(brand string)                   { f.draft.Brand = brand }
func (f *EquipmentForm) SetRefrigerant(refrigerant string)       { f.draft.Refrigerant = refrigerant }
func (f *EquipmentForm) SetCapacity(capacity string)             { f.draft.CapacityBTU = capacity }
func (f *EquipmentForm) SetInstallLocation(location string)      { f.draft.InstallLocation = location }
func (f *EquipmentForm) SetEvaporatorLocation(location string)   { f.draft.EvaporatorLocation = location }
func (f *EquipmentForm) SetCondenserLocation(location string)    { f.draft.CondenserLocation = location }
func (f *EquipmentForm) SetCurrentAmps(amps string)              { f.draft.CurrentAmps = amps }
func (f *EquipmentForm) SetVoltage(voltage string)               { f.draft.Voltage = voltage }
func (f *EquipmentForm) SetCycleReversal(answer entities.Answer) { f.draft.CycleReversal = answer }
func (f *EquipmentForm) SetThreePhase(answer entities.Answer)    { f.draft.ThreePhase = answer }

func (f *EquipmentForm) SetBelt(model string, count int) {
	f.draft.BeltModel = model
	f.draft.BeltCount = count
}

// Load replaces the whole draft, as a full-record payload does. Unlike
// SetModelFamily it keeps the locations carried by the payload.
func (f *EquipmentForm) Load(draft entities.EquipmentDraft) error {
	f.profile = nil
	if strings.TrimSpace(string(draft.ModelFamily)) != "" {
		p, err := variant.Resolve(draft.ModelFamily)
		if err != nil {
			return newValidationError(ValidationInvalidValue, variant.FieldModelFamily)
		}
		f.profile = &p
	}
	f.draft = draft.Clone()
	f.ensureRowIDs()
	return nil
}

func (f *EquipmentForm) Filters() []entities.Filter {
	out := make([]entities.Filter, len(f.draft.Filters))
	copy(out, f.draft.Filters)
	return out
}

// AddFilter appends an empty row and returns its id.
func (f *EquipmentForm) AddFilter() (string, error) {
	if f.profile == nil || !f.profile.AllowsFilters {
		return "", ErrFiltersNotAllowed
	}
	id := f.newRowID()
	f.draft.Filters = append(f.draft.Filters, entities.Filter{RowID: id})
	return id, nil
}

func (f *EquipmentForm) UpdateFilter(rowID string, filter entities.Filter) error {
	i := f.filterIndex(rowID)
	if i < 0 {
		return ErrFilterRowNotFound
	}
	filter.RowID = rowID
	f.draft.Filters[i] = filter
	return nil
}

func (f *EquipmentForm) RemoveFilter(rowID string) error {
	i := f.filterIndex(rowID)
	if i < 0 {
		return ErrFilterRowNotFound
	}
	f.draft.Filters = slices.Delete(f.draft.Filters, i, i+1)
	return nil
}

// Validate runs, in order: required fields for the active profile, value
// checks, brand/location references, tag uniqueness against the current
// equipment snapshot. No remote call is made.
func (f *EquipmentForm) Validate() error {
	d := f.draft

	if f.profile == nil {
		if strings.TrimSpace(string(d.ModelFamily)) != "" {
			return newValidationError(ValidationInvalidValue, variant.FieldModelFamily)
		}
		missing := []string{}
		if strings.TrimSpace(d.Tag) == "" {
			missing = append(missing, variant.FieldTag)
		}
		missing = append(missing, variant.FieldModelFamily)
		if strings.TrimSpace(d.Brand) == "" {
			missing = append(missing, variant.FieldBrand)
		}
		return newValidationError(ValidationMissingField, missing...)
	}
	p := *f.profile

	if missing := p.Missing(d); len(missing) > 0 {
		return newValidationError(ValidationMissingField, missing...)
	}
	if invalid := invalidFields(p, d); len(invalid) > 0 {
		return newValidationError(ValidationInvalidValue, invalid...)
	}
	if unknown := f.unknownReferences(p, d); len(unknown) > 0 {
		return newValidationError(ValidationUnknownReference, unknown...)
	}
	if !IsTagUnique(d.Tag, f.editingID, f.equipments.List()) {
		return newValidationError(ValidationDuplicateTag, variant.FieldTag)
	}
	return nil
}

// Submit validates the draft, drops the fields the profile does not use and
// writes it through the repository: Add when creating, Update with the
// original id when editing.
func (f *EquipmentForm) Submit(ctx context.Context) (entities.Equipment, error) {
	if err := f.Validate(); err != nil {
		return entities.Equipment{}, err
	}

	out := f.profile.Sanitize(f.draft)
	out.Tag = strings.TrimSpace(out.Tag)
	f.canonicalizeReferences(&out)

	if f.IsEditing() {
		return f.equipments.Update(ctx, f.editingID, out)
	}
	return f.equipments.Add(ctx, out)
}

func (f *EquipmentForm) unknownReferences(p variant.Profile, d entities.EquipmentDraft) []string {
	var unknown []string
	if _, ok := f.options.FindBrand(d.Brand); !ok {
		unknown = append(unknown, variant.FieldBrand)
	}
	if p.RequiresSplitLocations {
		if _, ok := f.options.FindLocation(d.EvaporatorLocation); !ok {
			unknown = append(unknown, variant.FieldEvaporatorLocation)
		}
		if _, ok := f.options.FindLocation(d.CondenserLocation); !ok {
			unknown = append(unknown, variant.FieldCondenserLocation)
		}
	} else if _, ok := f.options.FindLocation(d.InstallLocation); !ok {
		unknown = append(unknown, variant.FieldInstallLocation)
	}
	return unknown
}

// canonicalizeReferences rewrites names to the spelling stored in the lists.
func (f *EquipmentForm) canonicalizeReferences(d *entities.EquipmentDraft) {
	if o, ok := f.options.FindBrand(d.Brand); ok {
		d.Brand = o.Name
	}
	for _, loc := range []*string{&d.InstallLocation, &d.EvaporatorLocation, &d.CondenserLocation} {
		if *loc == "" {
			continue
		}
		if o, ok := f.options.FindLocation(*loc); ok {
			*loc = o.Name
		}
	}
}

func (f *EquipmentForm) filterIndex(rowID string) int {
	for i, r := range f.draft.Filters {
		if r.RowID == rowID {
			return i
		}
	}
	return -1
}

func (f *EquipmentForm) ensureRowIDs() {
	for i := range f.draft.Filters {
		if f.draft.Filters[i].RowID == "" {
			f.draft.Filters[i].RowID = f.newRowID()
		}
	}
}

func invalidFields(p variant.Profile, d entities.EquipmentDraft) []string {
	var invalid []string
	if p.RequiresRefrigerant && !slices.Contains(entities.Refrigerants, d.Refrigerant) {
		invalid = append(invalid, variant.FieldRefrigerant)
	}
	if p.RequiresCapacity && !slices.Contains(entities.Capacities, d.CapacityBTU) {
		invalid = append(invalid, variant.FieldCapacity)
	}
	if p.RequiresReversalField && d.CycleReversal != "" && !d.CycleReversal.Valid() {
		invalid = append(invalid, variant.FieldCycleReversal)
	}
	if d.ThreePhase != "" && d.ThreePhase != entities.AnswerYes && d.ThreePhase != entities.AnswerNo {
		invalid = append(invalid, variant.FieldThreePhase)
	}
	if p.AllowsFilters {
		for _, r := range d.Filters {
			if r.Quantity < 0 {
				invalid = append(invalid, variant.FieldFilters)
				break
			}
		}
	}
	return invalid
}
