package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"hvac_registry/internal/domain/entities"
	"hvac_registry/internal/usecase/interfaces"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

const equipmentsTable = "equipamentos"

var equipmentColumns = []string{
	"id",
	"tag",
	"modelo",
	"marca",
	"COALESCE(fluido, '')",
	"COALESCE(capacidade, '')",
	"COALESCE(local, '')",
	`COALESCE("localEvaporadora", '')`,
	`COALESCE("localCondensadora", '')`,
	"COALESCE(corrente, '')",
	"COALESCE(tensao, '')",
	"COALESCE(reversao, '')",
	"COALESCE(trifasico, '')",
	"COALESCE(modelo_correia, '')",
	"COALESCE(quantidade_correias, 0)",
	"COALESCE(filtros, '[]'::jsonb)",
}

// EquipmentPostgresRepository persists equipment in PostgreSQL. Tag
// uniqueness is enforced by a unique index on lower(btrim(tag)), see the
// migrations.
type EquipmentPostgresRepository struct {
	db   querier
	psql sq.StatementBuilderType
}

var _ interfaces.IEquipmentStore = (*EquipmentPostgresRepository)(nil)

func NewEquipmentPostgresRepository(db querier) *EquipmentPostgresRepository {
	return &EquipmentPostgresRepository{
		db:   db,
		psql: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *EquipmentPostgresRepository) ListEquipments(ctx context.Context) ([]entities.Equipment, error) {
	query, args, err := r.psql.Select(equipmentColumns...).
		From(equipmentsTable).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", equipmentsTable, err)
	}
	defer rows.Close()

	out := []entities.Equipment{}
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("select %s: %w", equipmentsTable, err)
	}
	return out, nil
}

func (r *EquipmentPostgresRepository) InsertEquipment(ctx context.Context, draft entities.EquipmentDraft) (int64, error) {
	values, err := equipmentValues(draft)
	if err != nil {
		return 0, err
	}

	b := r.psql.Insert(equipmentsTable).Suffix("RETURNING id")
	cols := make([]string, 0, len(values))
	vals := make([]any, 0, len(values))
	for _, cv := range values {
		cols = append(cols, cv.column)
		vals = append(vals, cv.value)
	}
	query, args, err := b.Columns(cols...).Values(vals...).ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return 0, interfaces.ErrStoreConflict
		}
		return 0, fmt.Errorf("insert %s: %w", equipmentsTable, err)
	}
	return id, nil
}

func (r *EquipmentPostgresRepository) UpdateEquipment(ctx context.Context, id int64, draft entities.EquipmentDraft) error {
	values, err := equipmentValues(draft)
	if err != nil {
		return err
	}

	b := r.psql.Update(equipmentsTable).Where(sq.Eq{"id": id})
	for _, cv := range values {
		b = b.Set(cv.column, cv.value)
	}
	query, args, err := b.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return interfaces.ErrStoreConflict
		}
		return fmt.Errorf("update %s id=%d: %w", equipmentsTable, id, err)
	}
	if tag.RowsAffected() == 0 {
		return interfaces.ErrStoreNotFound
	}
	return nil
}

func (r *EquipmentPostgresRepository) DeleteEquipment(ctx context.Context, id int64) error {
	query, args, err := r.psql.Delete(equipmentsTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete %s id=%d: %w", equipmentsTable, id, err)
	}
	if tag.RowsAffected() == 0 {
		return interfaces.ErrStoreNotFound
	}
	return nil
}

type columnValue struct {
	column string
	value  any
}

// equipmentValues lists every writable column in table order. Updates set all
// of them, which is what makes an update a full-record replace.
func equipmentValues(d entities.EquipmentDraft) ([]columnValue, error) {
	var filters any
	if len(d.Filters) > 0 {
		raw, err := json.Marshal(d.Filters)
		if err != nil {
			return nil, fmt.Errorf("encode filtros: %w", err)
		}
		filters = string(raw)
	}

	return []columnValue{
		{"tag", d.Tag},
		{"modelo", string(d.ModelFamily)},
		{"marca", d.Brand},
		{"fluido", nullable(d.Refrigerant)},
		{"capacidade", nullable(d.CapacityBTU)},
		{"local", nullable(d.InstallLocation)},
		{`"localEvaporadora"`, nullable(d.EvaporatorLocation)},
		{`"localCondensadora"`, nullable(d.CondenserLocation)},
		{"corrente", nullable(d.CurrentAmps)},
		{"tensao", nullable(d.Voltage)},
		{"reversao", nullable(string(d.CycleReversal))},
		{"trifasico", nullable(string(d.ThreePhase))},
		{"modelo_correia", nullable(d.BeltModel)},
		{"quantidade_correias", nullableInt(d.BeltCount)},
		{"filtros", filters},
	}, nil
}

func scanEquipment(row pgx.Row) (entities.Equipment, error) {
	var (
		e                    entities.Equipment
		model, reversal, tri string
		filters              []byte
	)
	err := row.Scan(
		&e.ID, &e.Tag, &model, &e.Brand,
		&e.Refrigerant, &e.CapacityBTU,
		&e.InstallLocation, &e.EvaporatorLocation, &e.CondenserLocation,
		&e.CurrentAmps, &e.Voltage, &reversal, &tri,
		&e.BeltModel, &e.BeltCount, &filters,
	)
	if err != nil {
		return entities.Equipment{}, fmt.Errorf("scan %s: %w", equipmentsTable, err)
	}
	e.ModelFamily = entities.ModelFamily(model)
	e.CycleReversal = entities.Answer(reversal)
	e.ThreePhase = entities.Answer(tri)

	if len(filters) > 0 {
		if err := json.Unmarshal(filters, &e.Filters); err != nil {
			return entities.Equipment{}, fmt.Errorf("decode filtros id=%d: %w", e.ID, err)
		}
		if len(e.Filters) == 0 {
			e.Filters = nil
		}
	}
	return e, nil
}
