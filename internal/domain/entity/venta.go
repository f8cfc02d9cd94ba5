package entity

import "github.com/shopspring/decimal"

// Venta es el documento de venta (tabla oltp_ventas). NumeroDocumento tiene
// constraint UNIQUE en la base: un duplicado produce conflicto (409).
type Venta struct {
	IDVenta          int64
	NumeroDocumento  string
	TipoDocumento    string
	FechaVenta       string // fecha ISO (YYYY-MM-DD)
	ClienteNombre    string
	ClienteDocumento string
	Total            decimal.Decimal
	Observaciones    string
}

// VentaDetalle es una línea de venta (tabla oltp_ventas_detalle).
type VentaDetalle struct {
	IDDetalle      int64
	IDVenta        int64
	NumeroLinea    int
	IDProducto     int64
	Cantidad       decimal.Decimal
	PrecioUnitario decimal.Decimal
	TotalLinea     decimal.Decimal
}
