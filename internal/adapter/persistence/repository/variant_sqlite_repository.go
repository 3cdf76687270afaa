package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"rcp_tracker/internal/domain/entities"
	"rcp_tracker/internal/usecase/interfaces"
)

// VariantSQLiteRepository is the local copy of the variant/service catalog.
type VariantSQLiteRepository struct {
	db *sql.DB
}

var _ interfaces.IVariantRepository = (*VariantSQLiteRepository)(nil)

func NewVariantSQLiteRepository(db *sql.DB) *VariantSQLiteRepository {
	return &VariantSQLiteRepository{db: db}
}

func (r *VariantSQLiteRepository) GetByID(ctx context.Context, id string) (entities.Variant, error) {
	var v entities.Variant
	err := r.db.QueryRowContext(ctx, `SELECT id, name, product_name FROM variants WHERE id = ?`, id).Scan(&v.ID, &v.Name, &v.ProductName)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Variant{}, interfaces.ErrNotFound
	}
	if err != nil {
		return entities.Variant{}, err
	}
	if err := r.loadDetails(ctx, &v); err != nil {
		return entities.Variant{}, err
	}
	return v, nil
}

func (r *VariantSQLiteRepository) ListByWorkstation(ctx context.Context, workstationID string) ([]entities.Variant, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT v.id, v.name, v.product_name
		FROM variants v
		WHERE EXISTS (SELECT 1 FROM variant_workstations vw WHERE vw.variant_id = v.id AND vw.workstation_id = ?)
		   OR NOT EXISTS (SELECT 1 FROM variant_workstations vw WHERE vw.variant_id = v.id)
		ORDER BY v.product_name, v.name, v.id
	`, workstationID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Variant, 0)
	for rows.Next() {
		var v entities.Variant
		if err := rows.Scan(&v.ID, &v.Name, &v.ProductName); err != nil {
			_ = rows.Close()
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, err
	}
	_ = rows.Close()

	for i := range out {
		if err := r.loadDetails(ctx, &out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Upsert replaces a variant together with its services and workstations.
func (r *VariantSQLiteRepository) Upsert(ctx context.Context, v entities.Variant) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `
		INSERT INTO variants(id, name, product_name) VALUES(?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name, product_name = excluded.product_name
	`, v.ID, strings.TrimSpace(v.Name), strings.TrimSpace(v.ProductName)); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM variant_services WHERE variant_id = ?`, v.ID); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM variant_workstations WHERE variant_id = ?`, v.ID); err != nil {
		return err
	}
	for _, s := range v.Services {
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO variant_services(variant_id, service_id, name, estimated_time_hours) VALUES(?, ?, ?, ?)
		`, v.ID, s.ServiceID, s.Name, s.EstimatedTimeHours); err != nil {
			return err
		}
	}
	for _, ws := range v.WorkstationIDs {
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO variant_workstations(variant_id, workstation_id) VALUES(?, ?)
			ON CONFLICT(variant_id, workstation_id) DO NOTHING
		`, v.ID, ws); err != nil {
			return err
		}
	}

	err = tx.Commit()
	return err
}

func (r *VariantSQLiteRepository) loadDetails(ctx context.Context, v *entities.Variant) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT service_id, name, estimated_time_hours FROM variant_services WHERE variant_id = ? ORDER BY service_id
	`, v.ID)
	if err != nil {
		return err
	}
	v.Services = make([]entities.VariantService, 0)
	for rows.Next() {
		var s entities.VariantService
		if err := rows.Scan(&s.ServiceID, &s.Name, &s.EstimatedTimeHours); err != nil {
			_ = rows.Close()
			return err
		}
		v.Services = append(v.Services, s)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return err
	}
	_ = rows.Close()

	wsRows, err := r.db.QueryContext(ctx, `
		SELECT workstation_id FROM variant_workstations WHERE variant_id = ? ORDER BY workstation_id
	`, v.ID)
	if err != nil {
		return err
	}
	defer wsRows.Close()
	v.WorkstationIDs = make([]string, 0)
	for wsRows.Next() {
		var ws string
		if err := wsRows.Scan(&ws); err != nil {
			return err
		}
		v.WorkstationIDs = append(v.WorkstationIDs, ws)
	}
	return wsRows.Err()
}
