package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/gestion-boletas/internal/domain/entity"
	"github.com/tu-usuario/gestion-boletas/internal/domain/repository"
)

var _ repository.ProveedorRepository = (*ProveedorRepo)(nil)

const proveedorCols = `id_proveedor, ruc, razon_social, nombre_comercial, direccion, estado`

// ProveedorRepo implementación del puerto ProveedorRepository sobre PostgreSQL.
type ProveedorRepo struct {
	pool *pgxpool.Pool
}

// NewProveedorRepository construye el adaptador de persistencia para proveedores.
func NewProveedorRepository(pool *pgxpool.Pool) *ProveedorRepo {
	return &ProveedorRepo{pool: pool}
}

// Listar devuelve proveedores ordenados por nombre_comercial; estado vacío = todos.
func (r *ProveedorRepo) Listar(estado string) ([]entity.Proveedor, error) {
	query := `SELECT ` + proveedorCols + ` FROM oltp_proveedores`
	var args []any
	if estado != "" {
		query += ` WHERE estado = $1`
		args = append(args, estado)
	}
	query += ` ORDER BY nombre_comercial`

	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list proveedores: %w", err)
	}
	defer rows.Close()
	var list []entity.Proveedor
	for rows.Next() {
		var p entity.Proveedor
		if err := scanProveedor(rows, &p); err != nil {
			return nil, fmt.Errorf("scan proveedor: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// ObtenerPorID obtiene un proveedor por id; nil si no existe.
func (r *ProveedorRepo) ObtenerPorID(id int64) (*entity.Proveedor, error) {
	row := r.pool.QueryRow(context.Background(),
		`SELECT `+proveedorCols+` FROM oltp_proveedores WHERE id_proveedor = $1`, id)
	var p entity.Proveedor
	if err := scanProveedor(row, &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proveedor: %w", err)
	}
	return &p, nil
}

// Crear inserta y devuelve la fila con el id generado.
func (r *ProveedorRepo) Crear(p *entity.Proveedor) (*entity.Proveedor, error) {
	row := r.pool.QueryRow(context.Background(), `
		INSERT INTO oltp_proveedores (ruc, razon_social, nombre_comercial, direccion, estado)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+proveedorCols,
		p.RUC, p.RazonSocial, p.NombreComercial, p.Direccion, p.Estado,
	)
	var creado entity.Proveedor
	if err := scanProveedor(row, &creado); err != nil {
		return nil, fmt.Errorf("insert proveedor: %w", err)
	}
	return &creado, nil
}

// Actualizar reemplaza la fila completa; nil si el id no existe.
func (r *ProveedorRepo) Actualizar(p *entity.Proveedor) (*entity.Proveedor, error) {
	row := r.pool.QueryRow(context.Background(), `
		UPDATE oltp_proveedores
		SET ruc = $2, razon_social = $3, nombre_comercial = $4, direccion = $5, estado = $6
		WHERE id_proveedor = $1
		RETURNING `+proveedorCols,
		p.IDProveedor, p.RUC, p.RazonSocial, p.NombreComercial, p.Direccion, p.Estado,
	)
	var actualizado entity.Proveedor
	if err := scanProveedor(row, &actualizado); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update proveedor: %w", err)
	}
	return &actualizado, nil
}

// Desactivar cambia el estado a INACTIVO (borrado lógico).
func (r *ProveedorRepo) Desactivar(id int64) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE oltp_proveedores SET estado = $2 WHERE id_proveedor = $1`,
		id, entity.EstadoInactivo,
	)
	if err != nil {
		return fmt.Errorf("deactivate proveedor: %w", err)
	}
	return nil
}

func scanProveedor(row pgx.Row, p *entity.Proveedor) error {
	return row.Scan(&p.IDProveedor, &p.RUC, &p.RazonSocial, &p.NombreComercial, &p.Direccion, &p.Estado)
}
