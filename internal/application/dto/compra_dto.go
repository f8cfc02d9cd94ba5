package dto

import "github.com/shopspring/decimal"

// CompraRequest entrada para crear o reemplazar una compra.
type CompraRequest struct {
	NumeroDocumento string          `json:"numero_documento" validate:"required"`
	TipoDocumento   string          `json:"tipo_documento"`
	FechaCompra     string          `json:"fecha_compra"`
	IDProveedor     int64           `json:"id_proveedor" validate:"required"`
	Total           decimal.Decimal `json:"total" validate:"required"`
	Observaciones   string          `json:"observaciones"`
}

// CompraResponse salida de una compra sin anidados (POST/PUT).
type CompraResponse struct {
	IDCompra        int64           `json:"id_compra"`
	NumeroDocumento string          `json:"numero_documento"`
	TipoDocumento   string          `json:"tipo_documento"`
	FechaCompra     string          `json:"fecha_compra"`
	IDProveedor     int64           `json:"id_proveedor"`
	Total           decimal.Decimal `json:"total"`
	Observaciones   string          `json:"observaciones"`
}

// ProveedorResumenResponse campos del proveedor anidados en las compras.
// La clave JSON lleva el nombre de la tabla.
type ProveedorResumenResponse struct {
	NombreComercial string `json:"nombre_comercial"`
	RUC             string `json:"ruc"`
}

// CompraDetalleAnidadoResponse línea de compra con su producto, anidada en la compra.
type CompraDetalleAnidadoResponse struct {
	CompraDetalleResponse
	Producto *ProductoResumenResponse `json:"oltp_productos"`
}

// CompraConDetallesResponse compra con proveedor y líneas (GET).
type CompraConDetallesResponse struct {
	CompraResponse
	Proveedor *ProveedorResumenResponse      `json:"oltp_proveedores"`
	Detalles  []CompraDetalleAnidadoResponse `json:"oltp_compras_detalle"`
}

// CompraDetalleRequest entrada para crear o reemplazar una línea de compra.
type CompraDetalleRequest struct {
	IDCompra       int64           `json:"id_compra" validate:"required"`
	NumeroLinea    int             `json:"numero_linea"`
	IDProducto     int64           `json:"id_producto" validate:"required"`
	Cantidad       decimal.Decimal `json:"cantidad" validate:"required"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario" validate:"required"`
	TotalLinea     decimal.Decimal `json:"total_linea"`
}

// CompraDetalleResponse salida de una línea de compra.
type CompraDetalleResponse struct {
	IDDetalle      int64           `json:"id_detalle"`
	IDCompra       int64           `json:"id_compra"`
	NumeroLinea    int             `json:"numero_linea"`
	IDProducto     int64           `json:"id_producto"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	TotalLinea     decimal.Decimal `json:"total_linea"`
}

// CompraResumenResponse campos de la compra anidados en el listado de detalles.
type CompraResumenResponse struct {
	NumeroDocumento string `json:"numero_documento"`
	TipoDocumento   string `json:"tipo_documento"`
	FechaCompra     string `json:"fecha_compra"`
}

// CompraDetalleListadoResponse línea de compra con compra y producto anidados.
type CompraDetalleListadoResponse struct {
	CompraDetalleResponse
	Compra   *CompraResumenResponse   `json:"oltp_compras"`
	Producto *ProductoResumenResponse `json:"oltp_productos"`
}
