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

var _ repository.CompraRepository = (*CompraRepo)(nil)

// Las fechas se leen como texto ISO y se escriben con NULLIF para aceptar
// cadena vacía como fecha ausente.
const compraCols = `id_compra, numero_documento, tipo_documento, COALESCE(fecha_compra::text, ''), id_proveedor, total, observaciones`

// CompraRepo implementación del puerto CompraRepository sobre PostgreSQL.
type CompraRepo struct {
	pool *pgxpool.Pool
}

// NewCompraRepository construye el adaptador de persistencia para compras.
func NewCompraRepository(pool *pgxpool.Pool) *CompraRepo {
	return &CompraRepo{pool: pool}
}

// ListarConDetalles devuelve todas las compras con proveedor y líneas,
// ordenadas por fecha descendente. El anidado se arma en memoria a partir
// de dos consultas (cabeceras y líneas).
func (r *CompraRepo) ListarConDetalles() ([]repository.CompraConDetalles, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT c.id_compra, c.numero_documento, c.tipo_documento, COALESCE(c.fecha_compra::text, ''),
		       c.id_proveedor, c.total, c.observaciones,
		       p.nombre_comercial, p.ruc
		FROM oltp_compras c
		LEFT JOIN oltp_proveedores p ON p.id_proveedor = c.id_proveedor
		ORDER BY c.fecha_compra DESC`)
	if err != nil {
		return nil, fmt.Errorf("list compras: %w", err)
	}
	defer rows.Close()

	var list []repository.CompraConDetalles
	indice := make(map[int64]int)
	var ids []int64
	for rows.Next() {
		var c repository.CompraConDetalles
		var nombre, ruc *string
		if err := rows.Scan(&c.IDCompra, &c.NumeroDocumento, &c.TipoDocumento, &c.FechaCompra,
			&c.IDProveedor, &c.Total, &c.Observaciones, &nombre, &ruc); err != nil {
			return nil, fmt.Errorf("scan compra: %w", err)
		}
		if nombre != nil {
			c.Proveedor = &repository.ProveedorResumen{NombreComercial: *nombre, RUC: derefString(ruc)}
		}
		c.Detalles = []repository.CompraDetalleConProducto{}
		indice[c.IDCompra] = len(list)
		ids = append(ids, c.IDCompra)
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return list, nil
	}

	detalles, err := r.detallesConProducto(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, d := range detalles {
		if i, ok := indice[d.IDCompra]; ok {
			list[i].Detalles = append(list[i].Detalles, d)
		}
	}
	return list, nil
}

// ObtenerConDetalles devuelve una compra con proveedor y líneas; nil si no existe.
func (r *CompraRepo) ObtenerConDetalles(id int64) (*repository.CompraConDetalles, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		SELECT c.id_compra, c.numero_documento, c.tipo_documento, COALESCE(c.fecha_compra::text, ''),
		       c.id_proveedor, c.total, c.observaciones,
		       p.nombre_comercial, p.ruc
		FROM oltp_compras c
		LEFT JOIN oltp_proveedores p ON p.id_proveedor = c.id_proveedor
		WHERE c.id_compra = $1`, id)

	var c repository.CompraConDetalles
	var nombre, ruc *string
	if err := row.Scan(&c.IDCompra, &c.NumeroDocumento, &c.TipoDocumento, &c.FechaCompra,
		&c.IDProveedor, &c.Total, &c.Observaciones, &nombre, &ruc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get compra: %w", err)
	}
	if nombre != nil {
		c.Proveedor = &repository.ProveedorResumen{NombreComercial: *nombre, RUC: derefString(ruc)}
	}
	c.Detalles = []repository.CompraDetalleConProducto{}

	detalles, err := r.detallesConProducto(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	c.Detalles = append(c.Detalles, detalles...)
	return &c, nil
}

func (r *CompraRepo) detallesConProducto(ctx context.Context, idsCompra []int64) ([]repository.CompraDetalleConProducto, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT d.id_detalle, d.id_compra, d.numero_linea, d.id_producto,
		       d.cantidad, d.precio_unitario, d.total_linea,
		       pr.nombre_producto, pr.sku_producto
		FROM oltp_compras_detalle d
		LEFT JOIN oltp_productos pr ON pr.id_producto = d.id_producto
		WHERE d.id_compra = ANY($1)
		ORDER BY d.id_detalle`, idsCompra)
	if err != nil {
		return nil, fmt.Errorf("list detalles de compra: %w", err)
	}
	defer rows.Close()

	var detalles []repository.CompraDetalleConProducto
	for rows.Next() {
		var d repository.CompraDetalleConProducto
		var nombre, sku *string
		if err := rows.Scan(&d.IDDetalle, &d.IDCompra, &d.NumeroLinea, &d.IDProducto,
			&d.Cantidad, &d.PrecioUnitario, &d.TotalLinea, &nombre, &sku); err != nil {
			return nil, fmt.Errorf("scan detalle de compra: %w", err)
		}
		if nombre != nil {
			d.Producto = &repository.ProductoResumen{NombreProducto: *nombre, SKUProducto: derefString(sku)}
		}
		detalles = append(detalles, d)
	}
	return detalles, rows.Err()
}

// Crear inserta y devuelve la fila con el id generado.
func (r *CompraRepo) Crear(c *entity.Compra) (*entity.Compra, error) {
	row := r.pool.QueryRow(context.Background(), `
		INSERT INTO oltp_compras (numero_documento, tipo_documento, fecha_compra, id_proveedor, total, observaciones)
		VALUES ($1, $2, NULLIF($3, '')::date, $4, $5, $6)
		RETURNING `+compraCols,
		c.NumeroDocumento, c.TipoDocumento, c.FechaCompra, c.IDProveedor, c.Total, c.Observaciones,
	)
	var creada entity.Compra
	if err := scanCompra(row, &creada); err != nil {
		return nil, fmt.Errorf("insert compra: %w", err)
	}
	return &creada, nil
}

// Actualizar reemplaza la fila completa; nil si el id no existe.
func (r *CompraRepo) Actualizar(c *entity.Compra) (*entity.Compra, error) {
	row := r.pool.QueryRow(context.Background(), `
		UPDATE oltp_compras
		SET numero_documento = $2, tipo_documento = $3, fecha_compra = NULLIF($4, '')::date,
		    id_proveedor = $5, total = $6, observaciones = $7
		WHERE id_compra = $1
		RETURNING `+compraCols,
		c.IDCompra, c.NumeroDocumento, c.TipoDocumento, c.FechaCompra, c.IDProveedor, c.Total, c.Observaciones,
	)
	var actualizada entity.Compra
	if err := scanCompra(row, &actualizada); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update compra: %w", err)
	}
	return &actualizada, nil
}

// EliminarConDetalles borra primero las líneas y luego la cabecera. Dos
// sentencias sin transacción: un fallo intermedio puede dejar la compra
// sin líneas.
func (r *CompraRepo) EliminarConDetalles(id int64) error {
	ctx := context.Background()
	if _, err := r.pool.Exec(ctx,
		`DELETE FROM oltp_compras_detalle WHERE id_compra = $1`, id); err != nil {
		return fmt.Errorf("delete detalles de compra: %w", err)
	}
	if _, err := r.pool.Exec(ctx,
		`DELETE FROM oltp_compras WHERE id_compra = $1`, id); err != nil {
		return fmt.Errorf("delete compra: %w", err)
	}
	return nil
}

// BuscarPorNumeroDocumento indica si ya existe una compra con ese número.
func (r *CompraRepo) BuscarPorNumeroDocumento(numero string) (int64, bool, error) {
	row := r.pool.QueryRow(context.Background(),
		`SELECT id_compra FROM oltp_compras WHERE numero_documento = $1 LIMIT 1`, numero)
	var id int64
	if err := row.Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("check documento de compra: %w", err)
	}
	return id, true, nil
}

func scanCompra(row pgx.Row, c *entity.Compra) error {
	return row.Scan(&c.IDCompra, &c.NumeroDocumento, &c.TipoDocumento, &c.FechaCompra,
		&c.IDProveedor, &c.Total, &c.Observaciones)
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
