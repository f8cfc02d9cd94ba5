package dto

import "github.com/shopspring/decimal"

// VentaRequest entrada para crear o reemplazar una venta.
type VentaRequest struct {
	NumeroDocumento  string          `json:"numero_documento" validate:"required"`
	TipoDocumento    string          `json:"tipo_documento" validate:"required"`
	FechaVenta       string          `json:"fecha_venta" validate:"required"`
	ClienteNombre    string          `json:"cliente_nombre"`
	ClienteDocumento string          `json:"cliente_documento"`
	Total            decimal.Decimal `json:"total" validate:"required"`
	Observaciones    string          `json:"observaciones"`
}

// VentaResponse salida de una venta sin anidados.
type VentaResponse struct {
	IDVenta          int64           `json:"id_venta"`
	NumeroDocumento  string          `json:"numero_documento"`
	TipoDocumento    string          `json:"tipo_documento"`
	FechaVenta       string          `json:"fecha_venta"`
	ClienteNombre    string          `json:"cliente_nombre"`
	ClienteDocumento string          `json:"cliente_documento"`
	Total            decimal.Decimal `json:"total"`
	Observaciones    string          `json:"observaciones"`
}

// VentaDetalleAnidadoResponse línea de venta con su producto, anidada en la venta.
type VentaDetalleAnidadoResponse struct {
	VentaDetalleResponse
	Producto *ProductoResumenResponse `json:"oltp_productos"`
}

// VentaConDetallesResponse venta con sus líneas (GET por id).
type VentaConDetallesResponse struct {
	VentaResponse
	Detalles []VentaDetalleAnidadoResponse `json:"oltp_ventas_detalle"`
}

// VentaDetalleRequest entrada para crear o reemplazar una línea de venta.
type VentaDetalleRequest struct {
	IDVenta        int64           `json:"id_venta" validate:"required"`
	NumeroLinea    int             `json:"numero_linea"`
	IDProducto     int64           `json:"id_producto" validate:"required"`
	Cantidad       decimal.Decimal `json:"cantidad" validate:"required"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario" validate:"required"`
	TotalLinea     decimal.Decimal `json:"total_linea" validate:"required"`
}

// VentaDetalleResponse salida de una línea de venta.
type VentaDetalleResponse struct {
	IDDetalle      int64           `json:"id_detalle"`
	IDVenta        int64           `json:"id_venta"`
	NumeroLinea    int             `json:"numero_linea"`
	IDProducto     int64           `json:"id_producto"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	TotalLinea     decimal.Decimal `json:"total_linea"`
}

// VentaResumenResponse campos de la venta anidados en el listado de detalles.
type VentaResumenResponse struct {
	NumeroDocumento string `json:"numero_documento"`
	TipoDocumento   string `json:"tipo_documento"`
	FechaVenta      string `json:"fecha_venta"`
}

// VentaDetalleListadoResponse línea de venta con venta y producto anidados.
type VentaDetalleListadoResponse struct {
	VentaDetalleResponse
	Venta    *VentaResumenResponse    `json:"oltp_ventas"`
	Producto *ProductoResumenResponse `json:"oltp_productos"`
}
