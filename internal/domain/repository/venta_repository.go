package repository

import "github.com/tu-usuario/gestion-boletas/internal/domain/entity"

// VentaDetalleConProducto es una línea de venta con su producto anidado.
type VentaDetalleConProducto struct {
	entity.VentaDetalle
	Producto *ProductoResumen
}

// VentaConDetalles es el modelo de lectura de una venta con sus líneas.
type VentaConDetalles struct {
	entity.Venta
	Detalles []VentaDetalleConProducto
}

// VentaResumen son los campos de la venta que se anidan en el listado de detalles.
type VentaResumen struct {
	NumeroDocumento string
	TipoDocumento   string
	FechaVenta      string
}

// VentaDetalleListado es una línea de venta con venta y producto anidados.
type VentaDetalleListado struct {
	entity.VentaDetalle
	Venta    *VentaResumen
	Producto *ProductoResumen
}

// VentaRepository define el puerto de persistencia para Venta.
type VentaRepository interface {
	// Listar devuelve las ventas sin anidar, ordenadas por id_venta descendente.
	Listar() ([]entity.Venta, error)
	ObtenerConDetalles(id int64) (*VentaConDetalles, error)
	// Crear devuelve domain.ErrDuplicate si el numero_documento ya existe
	// (constraint UNIQUE de la base).
	Crear(v *entity.Venta) (*entity.Venta, error)
	Actualizar(v *entity.Venta) (*entity.Venta, error)
	// EliminarConDetalles borra primero las líneas y luego la venta,
	// en dos sentencias sin transacción.
	EliminarConDetalles(id int64) error
	BuscarPorNumeroDocumento(numero string) (id int64, existe bool, err error)
}

// VentaDetalleRepository define el puerto de persistencia para VentaDetalle.
type VentaDetalleRepository interface {
	// Listar devuelve líneas ordenadas por id_detalle descendente;
	// idVenta nil = sin filtro.
	Listar(idVenta *int64) ([]VentaDetalleListado, error)
	ObtenerPorID(id int64) (*entity.VentaDetalle, error)
	Crear(d *entity.VentaDetalle) (*entity.VentaDetalle, error)
	Actualizar(d *entity.VentaDetalle) (*entity.VentaDetalle, error)
	Eliminar(id int64) error
}
