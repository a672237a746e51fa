package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"hvac_registry/internal/domain/entities"
	"hvac_registry/internal/domain/variant"
	"hvac_registry/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// ICatalogUseCase is the entry point used by the HTTP handlers and the CLI.
//
// It ties together the equipment cache, the reference lists and the form
// model:
//   - create/update go through an EquipmentForm, so validation is the same
//     whichever surface the draft came from
//   - reference options still used by a record cannot be removed
type ICatalogUseCase interface {
	Load(ctx context.Context) error

	ListEquipments(search string) []entities.Equipment
	GetEquipment(id int64) (entities.Equipment, error)
	CreateEquipment(ctx context.Context, draft entities.EquipmentDraft) (entities.Equipment, error)
	UpdateEquipment(ctx context.Context, id int64, draft entities.EquipmentDraft) (entities.Equipment, error)
	DeleteEquipment(ctx context.Context, id int64) error

	Profile(family string) (entities.ModelFamily, variant.Profile, error)

	ListBrands() []entities.ReferenceOption
	AddBrand(ctx context.Context, name string) (opt entities.ReferenceOption, created bool, err error)
	RemoveBrand(ctx context.Context, id int64) error
	ListLocations() []entities.ReferenceOption
	AddLocation(ctx context.Context, name string) (opt entities.ReferenceOption, created bool, err error)
	RemoveLocation(ctx context.Context, id int64) error

	ExportEquipments(w io.Writer) error
	ImportEquipments(ctx context.Context, r io.Reader) (ImportReport, error)
}

// ImportReport summarizes a spreadsheet import. Rows are independent: a
// rejected row does not stop the following ones.
type ImportReport struct {
	Created []entities.Equipment `json:"created"`
	Failed  []ImportFailure      `json:"failed"`
}

type ImportFailure struct {
	Row    int      `json:"row"`
	Tag    string   `json:"tag,omitempty"`
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

type CatalogUseCase struct {
	equipments *EquipmentRepository
	options    *ReferenceListStore
	sheet      interfaces.IEquipmentSheet
	logger     *zap.Logger
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(equipments *EquipmentRepository, options *ReferenceListStore, sheet interfaces.IEquipmentSheet, logger *zap.Logger) *CatalogUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogUseCase{
		equipments: equipments,
		options:    options,
		sheet:      sheet,
		logger:     logger.Named("catalog"),
	}
}

// Load refetches the reference lists and the equipment collection.
func (u *CatalogUseCase) Load(ctx context.Context) error {
	if err := u.options.Refresh(ctx); err != nil {
		return err
	}
	return u.equipments.Refresh(ctx)
}

// ListEquipments returns the snapshot, keeping only the records whose tag,
// model family or any location contains search (case-insensitive).
func (u *CatalogUseCase) ListEquipments(search string) []entities.Equipment {
	items := u.equipments.List()
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return items
	}

	out := items[:0]
	for _, e := range items {
		if matchesSearch(e, search) {
			out = append(out, e)
		}
	}
	return out
}

func (u *CatalogUseCase) GetEquipment(id int64) (entities.Equipment, error) {
	return u.equipments.Get(id)
}

func (u *CatalogUseCase) CreateEquipment(ctx context.Context, draft entities.EquipmentDraft) (entities.Equipment, error) {
	form := NewEquipmentForm(u.equipments, u.options)
	if err := form.Load(draft); err != nil {
		return entities.Equipment{}, err
	}
	return form.Submit(ctx)
}

func (u *CatalogUseCase) UpdateEquipment(ctx context.Context, id int64, draft entities.EquipmentDraft) (entities.Equipment, error) {
	form, err := EditEquipmentForm(u.equipments, u.options, id)
	if err != nil {
		return entities.Equipment{}, err
	}
	if err := form.Load(draft); err != nil {
		return entities.Equipment{}, err
	}
	return form.Submit(ctx)
}

func (u *CatalogUseCase) DeleteEquipment(ctx context.Context, id int64) error {
	if _, err := u.equipments.Get(id); err != nil {
		return err
	}
	return u.equipments.Delete(ctx, id)
}

// Profile resolves a family given in any case ("piso teto", "PisoTeto").
func (u *CatalogUseCase) Profile(family string) (entities.ModelFamily, variant.Profile, error) {
	f, err := variant.ParseFamily(family)
	if err != nil {
		return "", variant.Profile{}, err
	}
	p, err := variant.Resolve(f)
	return f, p, err
}

func (u *CatalogUseCase) ListBrands() []entities.ReferenceOption {
	return u.options.Brands()
}

func (u *CatalogUseCase) AddBrand(ctx context.Context, name string) (entities.ReferenceOption, bool, error) {
	return u.options.AddBrand(ctx, name)
}

func (u *CatalogUseCase) RemoveBrand(ctx context.Context, id int64) error {
	if err := u.checkRemovable(entities.ReferenceBrands, id); err != nil {
		return err
	}
	return u.options.RemoveBrand(ctx, id)
}

func (u *CatalogUseCase) ListLocations() []entities.ReferenceOption {
	return u.options.Locations()
}

func (u *CatalogUseCase) AddLocation(ctx context.Context, name string) (entities.ReferenceOption, bool, error) {
	return u.options.AddLocation(ctx, name)
}

func (u *CatalogUseCase) RemoveLocation(ctx context.Context, id int64) error {
	if err := u.checkRemovable(entities.ReferenceLocations, id); err != nil {
		return err
	}
	return u.options.RemoveLocation(ctx, id)
}

func (u *CatalogUseCase) ExportEquipments(w io.Writer) error {
	return u.sheet.Encode(w, u.equipments.List())
}

// ImportEquipments creates one record per sheet row. Only a workbook that
// cannot be read at all is returned as an error.
func (u *CatalogUseCase) ImportEquipments(ctx context.Context, r io.Reader) (ImportReport, error) {
	rows, err := u.sheet.Decode(r)
	if err != nil {
		return ImportReport{}, err
	}

	report := ImportReport{Created: []entities.Equipment{}, Failed: []ImportFailure{}}
	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if row.Err != nil {
			report.Failed = append(report.Failed, importFailure(row, row.Err))
			continue
		}

		created, err := u.CreateEquipment(ctx, row.Draft)
		if err != nil {
			report.Failed = append(report.Failed, importFailure(row, err))
			continue
		}
		report.Created = append(report.Created, created)
	}

	u.logger.Info("equipment import finished",
		zap.Int("rows", len(rows)),
		zap.Int("created", len(report.Created)),
		zap.Int("failed", len(report.Failed)),
	)
	return report, nil
}

// checkRemovable refuses to remove an option that a record still names.
func (u *CatalogUseCase) checkRemovable(kind entities.ReferenceKind, id int64) error {
	opt, ok := u.options.FindByID(kind, id)
	if !ok {
		return ErrOptionNotFound
	}
	if n := u.equipments.ReferencesOption(kind, opt.Name); n > 0 {
		return fmt.Errorf("%w: %q is used by %d equipment", ErrOptionInUse, opt.Name, n)
	}
	return nil
}

func matchesSearch(e entities.Equipment, needle string) bool {
	haystack := append([]string{e.Tag, string(e.ModelFamily)}, e.Locations()...)
	for _, s := range haystack {
		if strings.Contains(strings.ToLower(s), needle) {
			return true
		}
	}
	return false
}

func importFailure(row interfaces.SheetRow, err error) ImportFailure {
	f := ImportFailure{Row: row.Row, Tag: strings.TrimSpace(row.Draft.Tag), Error: err.Error()}
	var verr *ValidationError
	if errors.As(err, &verr) {
		f.Fields = verr.Fields
	}
	return f
}
