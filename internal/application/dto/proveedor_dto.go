package dto

// ProveedorRequest entrada para crear o reemplazar un proveedor.
// El PUT es reemplazo de fila completa, por eso comparte forma con el POST.
type ProveedorRequest struct {
	RUC             string `json:"ruc" validate:"required"`
	RazonSocial     string `json:"razon_social"`
	NombreComercial string `json:"nombre_comercial" validate:"required"`
	Direccion       string `json:"direccion"`
	Estado          string `json:"estado"`
}

// ProveedorResponse salida de un proveedor.
type ProveedorResponse struct {
	IDProveedor     int64  `json:"id_proveedor"`
	RUC             string `json:"ruc"`
	RazonSocial     string `json:"razon_social"`
	NombreComercial string `json:"nombre_comercial"`
	Direccion       string `json:"direccion"`
	Estado          string `json:"estado"`
}
