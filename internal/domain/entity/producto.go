package entity

// Producto representa un producto del catálogo (tabla oltp_productos).
// El SKU se sugiere desde las iniciales del nombre si el usuario no lo escribe.
type Producto struct {
	IDProducto     int64
	SKUProducto    string
	NombreProducto string
	Categoria      string
	UnidadMedida   string
	Estado         string
}
