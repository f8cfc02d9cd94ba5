package repository

import "github.com/tu-usuario/gestion-boletas/internal/domain/entity"

// ProveedorResumen son los campos del proveedor que se anidan en las compras.
type ProveedorResumen struct {
	NombreComercial string
	RUC             string
}

// ProductoResumen son los campos del producto que se anidan en los detalles.
type ProductoResumen struct {
	NombreProducto string
	SKUProducto    string
}

// CompraDetalleConProducto es una línea de compra con su producto anidado.
type CompraDetalleConProducto struct {
	entity.CompraDetalle
	Producto *ProductoResumen
}

// CompraConDetalles es el modelo de lectura de una compra con proveedor y líneas.
type CompraConDetalles struct {
	entity.Compra
	Proveedor *ProveedorResumen
	Detalles  []CompraDetalleConProducto
}

// CompraResumen son los campos de la compra que se anidan en el listado de detalles.
type CompraResumen struct {
	NumeroDocumento string
	TipoDocumento   string
	FechaCompra     string
}

// CompraDetalleListado es una línea de compra con compra y producto anidados.
type CompraDetalleListado struct {
	entity.CompraDetalle
	Compra   *CompraResumen
	Producto *ProductoResumen
}

// CompraRepository define el puerto de persistencia para Compra.
type CompraRepository interface {
	// ListarConDetalles devuelve todas las compras con proveedor y líneas,
	// ordenadas por fecha_compra descendente.
	ListarConDetalles() ([]CompraConDetalles, error)
	ObtenerConDetalles(id int64) (*CompraConDetalles, error)
	Crear(c *entity.Compra) (*entity.Compra, error)
	Actualizar(c *entity.Compra) (*entity.Compra, error)
	// EliminarConDetalles borra primero las líneas y luego la compra.
	// Son dos sentencias sin transacción: un fallo intermedio puede dejar
	// la compra sin líneas.
	EliminarConDetalles(id int64) error
	// BuscarPorNumeroDocumento indica si ya existe una compra con ese número.
	BuscarPorNumeroDocumento(numero string) (id int64, existe bool, err error)
}

// CompraDetalleRepository define el puerto de persistencia para CompraDetalle.
type CompraDetalleRepository interface {
	// Listar devuelve líneas ordenadas por id_detalle descendente;
	// idCompra nil = sin filtro.
	Listar(idCompra *int64) ([]CompraDetalleListado, error)
	ObtenerPorID(id int64) (*entity.CompraDetalle, error)
	Crear(d *entity.CompraDetalle) (*entity.CompraDetalle, error)
	Actualizar(d *entity.CompraDetalle) (*entity.CompraDetalle, error)
	Eliminar(id int64) error
}
