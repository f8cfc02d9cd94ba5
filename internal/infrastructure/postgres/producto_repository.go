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

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

const productoCols = `id_producto, sku_producto, nombre_producto, categoria, unidad_medida, estado`

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL.
type ProductoRepo struct {
	pool *pgxpool.Pool
}

// NewProductoRepository construye el adaptador de persistencia para productos.
func NewProductoRepository(pool *pgxpool.Pool) *ProductoRepo {
	return &ProductoRepo{pool: pool}
}

// Listar devuelve productos ordenados por nombre_producto; estado vacío = todos.
func (r *ProductoRepo) Listar(estado string) ([]entity.Producto, error) {
	query := `SELECT ` + productoCols + ` FROM oltp_productos`
	var args []any
	if estado != "" {
		query += ` WHERE estado = $1`
		args = append(args, estado)
	}
	query += ` ORDER BY nombre_producto`

	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := scanProducto(rows, &p); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// ObtenerPorID obtiene un producto por id; nil si no existe. Los productos
// INACTIVO también se resuelven, para las líneas históricas.
func (r *ProductoRepo) ObtenerPorID(id int64) (*entity.Producto, error) {
	row := r.pool.QueryRow(context.Background(),
		`SELECT `+productoCols+` FROM oltp_productos WHERE id_producto = $1`, id)
	var p entity.Producto
	if err := scanProducto(row, &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// Crear inserta y devuelve la fila con el id generado.
func (r *ProductoRepo) Crear(p *entity.Producto) (*entity.Producto, error) {
	row := r.pool.QueryRow(context.Background(), `
		INSERT INTO oltp_productos (sku_producto, nombre_producto, categoria, unidad_medida, estado)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+productoCols,
		p.SKUProducto, p.NombreProducto, p.Categoria, p.UnidadMedida, p.Estado,
	)
	var creado entity.Producto
	if err := scanProducto(row, &creado); err != nil {
		return nil, fmt.Errorf("insert producto: %w", err)
	}
	return &creado, nil
}

// Actualizar reemplaza la fila completa; nil si el id no existe.
func (r *ProductoRepo) Actualizar(p *entity.Producto) (*entity.Producto, error) {
	row := r.pool.QueryRow(context.Background(), `
		UPDATE oltp_productos
		SET sku_producto = $2, nombre_producto = $3, categoria = $4, unidad_medida = $5, estado = $6
		WHERE id_producto = $1
		RETURNING `+productoCols,
		p.IDProducto, p.SKUProducto, p.NombreProducto, p.Categoria, p.UnidadMedida, p.Estado,
	)
	var actualizado entity.Producto
	if err := scanProducto(row, &actualizado); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update producto: %w", err)
	}
	return &actualizado, nil
}

// Desactivar cambia el estado a INACTIVO (borrado lógico).
func (r *ProductoRepo) Desactivar(id int64) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE oltp_productos SET estado = $2 WHERE id_producto = $1`,
		id, entity.EstadoInactivo,
	)
	if err != nil {
		return fmt.Errorf("deactivate producto: %w", err)
	}
	return nil
}

func scanProducto(row pgx.Row, p *entity.Producto) error {
	return row.Scan(&p.IDProducto, &p.SKUProducto, &p.NombreProducto, &p.Categoria, &p.UnidadMedida, &p.Estado)
}
