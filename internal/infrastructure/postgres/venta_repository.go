package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/gestion-boletas/internal/domain"
	"github.com/tu-usuario/gestion-boletas/internal/domain/entity"
	"github.com/tu-usuario/gestion-boletas/internal/domain/repository"
)

var _ repository.VentaRepository = (*VentaRepo)(nil)

const ventaCols = `id_venta, numero_documento, tipo_documento, COALESCE(fecha_venta::text, ''), cliente_nombre, cliente_documento, total, observaciones`

// VentaRepo implementación del puerto VentaRepository sobre PostgreSQL.
type VentaRepo struct {
	pool *pgxpool.Pool
}

// NewVentaRepository construye el adaptador de persistencia para ventas.
func NewVentaRepository(pool *pgxpool.Pool) *VentaRepo {
	return &VentaRepo{pool: pool}
}

// Listar devuelve las ventas sin anidar, ordenadas por id descendente.
func (r *VentaRepo) Listar() ([]entity.Venta, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT `+ventaCols+` FROM oltp_ventas ORDER BY id_venta DESC`)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()
	var list []entity.Venta
	for rows.Next() {
		var v entity.Venta
		if err := scanVenta(rows, &v); err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

// ObtenerConDetalles devuelve una venta con sus líneas; nil si no existe.
func (r *VentaRepo) ObtenerConDetalles(id int64) (*repository.VentaConDetalles, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx,
		`SELECT `+ventaCols+` FROM oltp_ventas WHERE id_venta = $1`, id)
	var v repository.VentaConDetalles
	if err := scanVenta(row, &v.Venta); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	v.Detalles = []repository.VentaDetalleConProducto{}

	rows, err := r.pool.Query(ctx, `
		SELECT d.id_detalle, d.id_venta, d.numero_linea, d.id_producto,
		       d.cantidad, d.precio_unitario, d.total_linea,
		       pr.nombre_producto, pr.sku_producto
		FROM oltp_ventas_detalle d
		LEFT JOIN oltp_productos pr ON pr.id_producto = d.id_producto
		WHERE d.id_venta = $1
		ORDER BY d.id_detalle`, id)
	if err != nil {
		return nil, fmt.Errorf("list detalles de venta: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var d repository.VentaDetalleConProducto
		var nombre, sku *string
		if err := rows.Scan(&d.IDDetalle, &d.IDVenta, &d.NumeroLinea, &d.IDProducto,
			&d.Cantidad, &d.PrecioUnitario, &d.TotalLinea, &nombre, &sku); err != nil {
			return nil, fmt.Errorf("scan detalle de venta: %w", err)
		}
		if nombre != nil {
			d.Producto = &repository.ProductoResumen{NombreProducto: *nombre, SKUProducto: derefString(sku)}
		}
		v.Detalles = append(v.Detalles, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &v, nil
}

// Crear inserta y devuelve la fila con el id generado. Devuelve
// domain.ErrDuplicate si el numero_documento viola el constraint UNIQUE.
func (r *VentaRepo) Crear(v *entity.Venta) (*entity.Venta, error) {
	row := r.pool.QueryRow(context.Background(), `
		INSERT INTO oltp_ventas (numero_documento, tipo_documento, fecha_venta, cliente_nombre, cliente_documento, total, observaciones)
		VALUES ($1, $2, NULLIF($3, '')::date, $4, $5, $6, $7)
		RETURNING `+ventaCols,
		v.NumeroDocumento, v.TipoDocumento, v.FechaVenta, v.ClienteNombre, v.ClienteDocumento, v.Total, v.Observaciones,
	)
	var creada entity.Venta
	if err := scanVenta(row, &creada); err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("insert venta: %w", err)
	}
	return &creada, nil
}

// Actualizar reemplaza la fila completa; nil si el id no existe.
func (r *VentaRepo) Actualizar(v *entity.Venta) (*entity.Venta, error) {
	row := r.pool.QueryRow(context.Background(), `
		UPDATE oltp_ventas
		SET numero_documento = $2, tipo_documento = $3, fecha_venta = NULLIF($4, '')::date,
		    cliente_nombre = $5, cliente_documento = $6, total = $7, observaciones = $8
		WHERE id_venta = $1
		RETURNING `+ventaCols,
		v.IDVenta, v.NumeroDocumento, v.TipoDocumento, v.FechaVenta, v.ClienteNombre, v.ClienteDocumento, v.Total, v.Observaciones,
	)
	var actualizada entity.Venta
	if err := scanVenta(row, &actualizada); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("update venta: %w", err)
	}
	return &actualizada, nil
}

// EliminarConDetalles borra primero las líneas y luego la venta. Dos
// sentencias sin transacción.
func (r *VentaRepo) EliminarConDetalles(id int64) error {
	ctx := context.Background()
	if _, err := r.pool.Exec(ctx,
		`DELETE FROM oltp_ventas_detalle WHERE id_venta = $1`, id); err != nil {
		return fmt.Errorf("delete detalles de venta: %w", err)
	}
	if _, err := r.pool.Exec(ctx,
		`DELETE FROM oltp_ventas WHERE id_venta = $1`, id); err != nil {
		return fmt.Errorf("delete venta: %w", err)
	}
	return nil
}

// BuscarPorNumeroDocumento indica si ya existe una venta con ese número.
func (r *VentaRepo) BuscarPorNumeroDocumento(numero string) (int64, bool, error) {
	row := r.pool.QueryRow(context.Background(),
		`SELECT id_venta FROM oltp_ventas WHERE numero_documento = $1 LIMIT 1`, numero)
	var id int64
	if err := row.Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("check documento de venta: %w", err)
	}
	return id, true, nil
}

func scanVenta(row pgx.Row, v *entity.Venta) error {
	return row.Scan(&v.IDVenta, &v.NumeroDocumento, &v.TipoDocumento, &v.FechaVenta,
		&v.ClienteNombre, &v.ClienteDocumento, &v.Total, &v.Observaciones)
}
