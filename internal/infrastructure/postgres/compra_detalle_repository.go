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

var _ repository.CompraDetalleRepository = (*CompraDetalleRepo)(nil)

const compraDetalleCols = `id_detalle, id_compra, numero_linea, id_producto, cantidad, precio_unitario, total_linea`

// CompraDetalleRepo implementación del puerto CompraDetalleRepository sobre PostgreSQL.
type CompraDetalleRepo struct {
	pool *pgxpool.Pool
}

// NewCompraDetalleRepository construye el adaptador de persistencia para líneas de compra.
func NewCompraDetalleRepository(pool *pgxpool.Pool) *CompraDetalleRepo {
	return &CompraDetalleRepo{pool: pool}
}

// Listar devuelve líneas con compra y producto anidados, ordenadas por
// id_detalle descendente; idCompra nil = sin filtro.
func (r *CompraDetalleRepo) Listar(idCompra *int64) ([]repository.CompraDetalleListado, error) {
	query := `
		SELECT d.id_detalle, d.id_compra, d.numero_linea, d.id_producto,
		       d.cantidad, d.precio_unitario, d.total_linea,
		       c.numero_documento, c.tipo_documento, COALESCE(c.fecha_compra::text, ''),
		       pr.sku_producto, pr.nombre_producto
		FROM oltp_compras_detalle d
		LEFT JOIN oltp_compras c ON c.id_compra = d.id_compra
		LEFT JOIN oltp_productos pr ON pr.id_producto = d.id_producto`
	var args []any
	if idCompra != nil {
		query += ` WHERE d.id_compra = $1`
		args = append(args, *idCompra)
	}
	query += ` ORDER BY d.id_detalle DESC`

	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list detalles de compra: %w", err)
	}
	defer rows.Close()

	var list []repository.CompraDetalleListado
	for rows.Next() {
		var d repository.CompraDetalleListado
		var numero, tipo *string
		var fecha string
		var sku, nombre *string
		if err := rows.Scan(&d.IDDetalle, &d.IDCompra, &d.NumeroLinea, &d.IDProducto,
			&d.Cantidad, &d.PrecioUnitario, &d.TotalLinea,
			&numero, &tipo, &fecha, &sku, &nombre); err != nil {
			return nil, fmt.Errorf("scan detalle de compra: %w", err)
		}
		if numero != nil {
			d.Compra = &repository.CompraResumen{
				NumeroDocumento: *numero,
				TipoDocumento:   derefString(tipo),
				FechaCompra:     fecha,
			}
		}
		if nombre != nil {
			d.Producto = &repository.ProductoResumen{NombreProducto: *nombre, SKUProducto: derefString(sku)}
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// ObtenerPorID obtiene una línea por id; nil si no existe.
func (r *CompraDetalleRepo) ObtenerPorID(id int64) (*entity.CompraDetalle, error) {
	row := r.pool.QueryRow(context.Background(),
		`SELECT `+compraDetalleCols+` FROM oltp_compras_detalle WHERE id_detalle = $1`, id)
	var d entity.CompraDetalle
	if err := scanCompraDetalle(row, &d); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get detalle de compra: %w", err)
	}
	return &d, nil
}

// Crear inserta y devuelve la fila con el id generado.
func (r *CompraDetalleRepo) Crear(d *entity.CompraDetalle) (*entity.CompraDetalle, error) {
	row := r.pool.QueryRow(context.Background(), `
		INSERT INTO oltp_compras_detalle (id_compra, numero_linea, id_producto, cantidad, precio_unitario, total_linea)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+compraDetalleCols,
		d.IDCompra, d.NumeroLinea, d.IDProducto, d.Cantidad, d.PrecioUnitario, d.TotalLinea,
	)
	var creado entity.CompraDetalle
	if err := scanCompraDetalle(row, &creado); err != nil {
		return nil, fmt.Errorf("insert detalle de compra: %w", err)
	}
	return &creado, nil
}

// Actualizar reemplaza la fila completa; nil si el id no existe.
func (r *CompraDetalleRepo) Actualizar(d *entity.CompraDetalle) (*entity.CompraDetalle, error) {
	row := r.pool.QueryRow(context.Background(), `
		UPDATE oltp_compras_detalle
		SET id_compra = $2, numero_linea = $3, id_producto = $4, cantidad = $5,
		    precio_unitario = $6, total_linea = $7
		WHERE id_detalle = $1
		RETURNING `+compraDetalleCols,
		d.IDDetalle, d.IDCompra, d.NumeroLinea, d.IDProducto, d.Cantidad, d.PrecioUnitario, d.TotalLinea,
	)
	var actualizado entity.CompraDetalle
	if err := scanCompraDetalle(row, &actualizado); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update detalle de compra: %w", err)
	}
	return &actualizado, nil
}

// Eliminar borra la línea (borrado físico directo).
func (r *CompraDetalleRepo) Eliminar(id int64) error {
	_, err := r.pool.Exec(context.Background(),
		`DELETE FROM oltp_compras_detalle WHERE id_detalle = $1`, id)
	if err != nil {
		return fmt.Errorf("delete detalle de compra: %w", err)
	}
	return nil
}

func scanCompraDetalle(row pgx.Row, d *entity.CompraDetalle) error {
	return row.Scan(&d.IDDetalle, &d.IDCompra, &d.NumeroLinea, &d.IDProducto,
		&d.Cantidad, &d.PrecioUnitario, &d.TotalLinea)
}
