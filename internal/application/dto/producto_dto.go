package dto

// ProductoRequest entrada para crear o reemplazar un producto.
type ProductoRequest struct {
	SKUProducto    string `json:"sku_producto" validate:"required"`
	NombreProducto string `json:"nombre_producto" validate:"required"`
	Categoria      string `json:"categoria"`
	UnidadMedida   string `json:"unidad_medida" validate:"required"`
	Estado         string `json:"estado"`
}

// ProductoResponse salida de un producto.
type ProductoResponse struct {
	IDProducto     int64  `json:"id_producto"`
	SKUProducto    string `json:"sku_producto"`
	NombreProducto string `json:"nombre_producto"`
	Categoria      string `json:"categoria"`
	UnidadMedida   string `json:"unidad_medida"`
	Estado         string `json:"estado"`
}

// ProductoResumenResponse campos del producto anidados en detalles de documentos.
type ProductoResumenResponse struct {
	NombreProducto string `json:"nombre_producto"`
	SKUProducto    string `json:"sku_producto"`
}
