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

var _ repository.VentaDetalleRepository = (*VentaDetalleRepo)(nil)

const ventaDetalleCols = `id_detalle, id_venta, numero_linea, id_producto, cantidad, precio_unitario, total_linea`

// VentaDetalleRepo implementación del puerto VentaDetalleRepository sobre PostgreSQL.
type VentaDetalleRepo struct {
	pool *pgxpool.Pool
}

// NewVentaDetalleRepository construye el adaptador de persistencia para líneas de venta.
func NewVentaDetalleRepository(pool *pgxpool.Pool) *VentaDetalleRepo {
	return &VentaDetalleRepo{pool: pool}
}

// Listar devuelve líneas con venta y producto anidados, ordenadas por
// id_detalle descendente; idVenta nil = sin filtro.
func (r *VentaDetalleRepo) Listar(idVenta *int64) ([]repository.VentaDetalleListado, error) {
	query := `
		SELECT d.id_detalle, d.id_venta, d.numero_linea, d.id_producto,
		       d.cantidad, d.precio_unitario, d.total_linea,
		       v.numero_documento, v.tipo_documento, COALESCE(v.fecha_venta::text, ''),
		       pr.sku_producto, pr.nombre_producto
		FROM oltp_ventas_detalle d
		LEFT JOIN oltp_ventas v ON v.id_venta = d.id_venta
		LEFT JOIN oltp_productos pr ON pr.id_producto = d.id_producto`
	var args []any
	if idVenta != nil {
		query += ` WHERE d.id_venta = $1`
		args = append(args, *idVenta)
	}
	query += ` ORDER BY d.id_detalle DESC`

	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list detalles de venta: %w", err)
	}
	defer rows.Close()

	var list []repository.VentaDetalleListado
	for rows.Next() {
		var d repository.VentaDetalleListado
		var numero, tipo *string
		var fecha string
		var sku, nombre *string
		if err := rows.Scan(&d.IDDetalle, &d.IDVenta, &d.NumeroLinea, &d.IDProducto,
			&d.Cantidad, &d.PrecioUnitario, &d.TotalLinea,
			&numero, &tipo, &fecha, &sku, &nombre); err != nil {
			return nil, fmt.Errorf("scan detalle de venta: %w", err)
		}
		if numero != nil {
			d.Venta = &repository.VentaResumen{
				NumeroDocumento: *numero,
				TipoDocumento:   derefString(tipo),
				FechaVenta:      fecha,
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
func (r *VentaDetalleRepo) ObtenerPorID(id int64) (*entity.VentaDetalle, error) {
	row := r.pool.QueryRow(context.Background(),
		`SELECT `+ventaDetalleCols+` FROM oltp_ventas_detalle WHERE id_detalle = $1`, id)
	var d entity.VentaDetalle
	if err := scanVentaDetalle(row, &d); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get detalle de venta: %w", err)
	}
	return &d, nil
}

// Crear inserta y devuelve la fila con el id generado.
func (r *VentaDetalleRepo) Crear(d *entity.VentaDetalle) (*entity.VentaDetalle, error) {
	row := r.pool.QueryRow(context.Background(), `
		INSERT INTO oltp_ventas_detalle (id_venta, numero_linea, id_producto, cantidad, precio_unitario, total_linea)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+ventaDetalleCols,
		d.IDVenta, d.NumeroLinea, d.IDProducto, d.Cantidad, d.PrecioUnitario, d.TotalLinea,
	)
	var creado entity.VentaDetalle
	if err := scanVentaDetalle(row, &creado); err != nil {
		return nil, fmt.Errorf("insert detalle de venta: %w", err)
	}
	return &creado, nil
}

// Actualizar reemplaza la fila completa; nil si el id no existe.
func (r *VentaDetalleRepo) Actualizar(d *entity.VentaDetalle) (*entity.VentaDetalle, error) {
	row := r.pool.QueryRow(context.Background(), `
		UPDATE oltp_ventas_detalle
		SET id_venta = $2, numero_linea = $3, id_producto = $4, cantidad = $5,
		    precio_unitario = $6, total_linea = $7
		WHERE id_detalle = $1
		RETURNING `+ventaDetalleCols,
		d.IDDetalle, d.IDVenta, d.NumeroLinea, d.IDProducto, d.Cantidad, d.PrecioUnitario, d.TotalLinea,
	)
	var actualizado entity.VentaDetalle
	if err := scanVentaDetalle(row, &actualizado); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update detalle de venta: %w", err)
	}
	return &actualizado, nil
}

// Eliminar borra la línea (borrado físico directo).
func (r *VentaDetalleRepo) Eliminar(id int64) error {
	_, err := r.pool.Exec(context.Background(),
		`DELETE FROM oltp_ventas_detalle WHERE id_detalle = $1`, id)
	if err != nil {
		return fmt.Errorf("delete detalle de venta: %w", err)
	}
	return nil
}

func scanVentaDetalle(row pgx.Row, d *entity.VentaDetalle) error {
	return row.Scan(&d.IDDetalle, &d.IDVenta, &d.NumeroLinea, &d.IDProducto,
		&d.Cantidad, &d.PrecioUnitario, &d.TotalLinea)
}
