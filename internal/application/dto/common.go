package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CheckDocumentoCompraResponse resultado de verificar un número de documento de compra.
type CheckDocumentoCompraResponse struct {
	Exists   bool   `json:"exists"`
	IDCompra *int64 `json:"id_compra"`
}

// CheckDocumentoVentaResponse resultado de verificar un número de documento de venta.
type CheckDocumentoVentaResponse struct {
	Exists  bool   `json:"exists"`
	IDVenta *int64 `json:"id_venta"`
}

// HealthResponse respuesta del health check.
type HealthResponse struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
}
