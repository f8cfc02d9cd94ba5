package entity

// Estados posibles de proveedores y productos. El borrado es lógico:
// se cambia el estado a INACTIVO, nunca se elimina la fila.
const (
	EstadoActivo   = "ACTIVO"
	EstadoInactivo = "INACTIVO"
)

// Proveedor representa un proveedor registrado (tabla oltp_proveedores).
type Proveedor struct {
	IDProveedor     int64
	RUC             string
	RazonSocial     string
	NombreComercial string
	Direccion       string
	Estado          string
}
