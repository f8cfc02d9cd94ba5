package entity

import "github.com/shopspring/decimal"

// Compra es el documento de compra (tabla oltp_compras). El total lo calcula
// el cliente como suma de sus líneas; el servidor no lo recalcula ni verifica.
type Compra struct {
	IDCompra        int64
	NumeroDocumento string
	TipoDocumento   string
	FechaCompra     string // fecha ISO (YYYY-MM-DD)
	IDProveedor     int64
	Total           decimal.Decimal
	Observaciones   string
}

// CompraDetalle es una línea de compra (tabla oltp_compras_detalle).
// TotalLinea = Cantidad × PrecioUnitario, calculado por el llamador.
type CompraDetalle struct {
	IDDetalle      int64
	IDCompra       int64
	NumeroLinea    int
	IDProducto     int64
	Cantidad       decimal.Decimal
	PrecioUnitario decimal.Decimal
	TotalLinea     decimal.Decimal
}
