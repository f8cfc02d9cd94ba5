// Package borrador arma documentos (compras o ventas) línea a línea antes de
// enviarlos a la API. Las líneas viven solo en memoria hasta el envío; cada
// una se identifica por un uuid local para poder quitarla sin renumerar.
package borrador

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/gestion-boletas/internal/application/dto"
	"github.com/tu-usuario/gestion-boletas/pkg/client"
)

// Clase distingue el tipo de documento del borrador.
type Clase string

const (
	ClaseCompra Clase = "compra"
	ClaseVenta  Clase = "venta"
)

// Errores de validación del borrador.
var (
	ErrSinLineas            = fmt.Errorf("el documento necesita al menos una línea con producto")
	ErrLineaIncompleta      = fmt.Errorf("cada línea con producto necesita cantidad y precio mayores a cero")
	ErrDocumentoDuplicado   = fmt.Errorf("el número de documento ya existe")
	ErrNumeroDocumentoVacio = fmt.Errorf("falta el número de documento")
)

// Linea es una fila del borrador. NumeroLinea conserva el orden de creación
// 1-based; quitar una línea deja hueco en la numeración, igual que en el
// documento impreso.
type Linea struct {
	LocalID        uuid.UUID
	NumeroLinea    int
	IDProducto     int64 // 0 mientras el usuario no seleccione producto
	Cantidad       decimal.Decimal
	PrecioUnitario decimal.Decimal
}

// TotalLinea es Cantidad × PrecioUnitario.
func (l Linea) TotalLinea() decimal.Decimal {
	return l.Cantidad.Mul(l.PrecioUnitario)
}

// Borrador es un documento en construcción.
type Borrador struct {
	Clase           Clase
	NumeroDocumento string
	TipoDocumento   string
	Fecha           string // ISO YYYY-MM-DD

	// Cabecera de compra
	IDProveedor int64

	// Cabecera de venta
	ClienteNombre    string
	ClienteDocumento string

	Observaciones string

	lineas         []Linea
	siguienteLinea int
}

// New crea un borrador vacío de la clase dada.
func New(clase Clase) *Borrador {
	return &Borrador{Clase: clase, siguienteLinea: 1}
}

// AgregarLinea añade una línea vacía al final y devuelve su id local.
func (b *Borrador) AgregarLinea() uuid.UUID {
	l := Linea{
		LocalID:     uuid.New(),
		NumeroLinea: b.siguienteLinea,
	}
	b.siguienteLinea++
	b.lineas = append(b.lineas, l)
	return l.LocalID
}

// QuitarLinea elimina la línea con ese id local. Las demás conservan su
// numero_linea.
func (b *Borrador) QuitarLinea(localID uuid.UUID) bool {
	for i, l := range b.lineas {
		if l.LocalID == localID {
			b.lineas = append(b.lineas[:i], b.lineas[i+1:]...)
			return true
		}
	}
	return false
}

// ModificarLinea aplica fn sobre la línea con ese id local.
func (b *Borrador) ModificarLinea(localID uuid.UUID, fn func(*Linea)) bool {
	for i := range b.lineas {
		if b.lineas[i].LocalID == localID {
			fn(&b.lineas[i])
			return true
		}
	}
	return false
}

// Lineas devuelve una copia de las líneas en orden de creación.
func (b *Borrador) Lineas() []Linea {
	out := make([]Linea, len(b.lineas))
	copy(out, b.lineas)
	return out
}

// Total suma cantidad × precio de las líneas con producto seleccionado.
// Las líneas sin producto no aportan al total.
func (b *Borrador) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range b.lineas {
		if l.IDProducto == 0 {
			continue
		}
		total = total.Add(l.TotalLinea())
	}
	return total
}

// TotalFormateado devuelve el total con dos decimales.
func (b *Borrador) TotalFormateado() string {
	return b.Total().StringFixed(2)
}

// lineasConProducto devuelve las líneas que tienen producto seleccionado.
// Son las únicas que se envían; las filas vacías se descartan sin error.
func (b *Borrador) lineasConProducto() []Linea {
	var out []Linea
	for _, l := range b.lineas {
		if l.IDProducto != 0 {
			out = append(out, l)
		}
	}
	return out
}

// validar comprueba las reglas mínimas antes del envío. Solo se revisan las
// líneas con producto; una fila sin producto no invalida el documento.
func (b *Borrador) validar() error {
	if b.NumeroDocumento == "" {
		return ErrNumeroDocumentoVacio
	}
	conProducto := b.lineasConProducto()
	if len(conProducto) == 0 {
		return ErrSinLineas
	}
	for _, l := range conProducto {
		if !l.Cantidad.IsPositive() || !l.PrecioUnitario.IsPositive() {
			return fmt.Errorf("%w (línea %d)", ErrLineaIncompleta, l.NumeroLinea)
		}
	}
	return nil
}

// Submit valida el borrador y lo envía: primero la cabecera, después las
// líneas con producto en paralelo. Las filas sin producto seleccionado se
// omiten. Si alguna línea falla, la cabecera ya quedó creada y se devuelve
// su id junto con el primer error; no hay rollback.
//
// Para las ventas se pre-verifica el número de documento; un fallo de red en
// esa verificación no bloquea el envío (el constraint UNIQUE decide).
func (b *Borrador) Submit(ctx context.Context, api *client.Client) (int64, error) {
	if err := b.validar(); err != nil {
		return 0, err
	}

	if b.Clase == ClaseVenta {
		if chk, err := api.CheckDocumentoVenta(ctx, b.NumeroDocumento); err == nil && chk.Exists {
			return 0, ErrDocumentoDuplicado
		}
	}

	idDoc, err := b.crearCabecera(ctx, api)
	if err != nil {
		return 0, err
	}

	lineas := b.lineasConProducto()
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		primerErr error
	)
	for _, l := range lineas {
		wg.Add(1)
		go func(l Linea) {
			defer wg.Done()
			if err := b.crearLinea(ctx, api, idDoc, l); err != nil {
				mu.Lock()
				if primerErr == nil {
					primerErr = fmt.Errorf("línea %d: %w", l.NumeroLinea, err)
				}
				mu.Unlock()
			}
		}(l)
	}
	wg.Wait()

	return idDoc, primerErr
}

func (b *Borrador) crearCabecera(ctx context.Context, api *client.Client) (int64, error) {
	switch b.Clase {
	case ClaseCompra:
		out, err := api.CrearCompra(ctx, dto.CompraRequest{
			NumeroDocumento: b.NumeroDocumento,
			TipoDocumento:   b.TipoDocumento,
			FechaCompra:     b.Fecha,
			IDProveedor:     b.IDProveedor,
			Total:           b.Total(),
			Observaciones:   b.Observaciones,
		})
		if err != nil {
			return 0, err
		}
		return out.IDCompra, nil
	case ClaseVenta:
		out, err := api.CrearVenta(ctx, dto.VentaRequest{
			NumeroDocumento:  b.NumeroDocumento,
			TipoDocumento:    b.TipoDocumento,
			FechaVenta:       b.Fecha,
			ClienteNombre:    b.ClienteNombre,
			ClienteDocumento: b.ClienteDocumento,
			Total:            b.Total(),
			Observaciones:    b.Observaciones,
		})
		if err != nil {
			return 0, err
		}
		return out.IDVenta, nil
	default:
		return 0, fmt.Errorf("clase de documento desconocida: %q", b.Clase)
	}
}

func (b *Borrador) crearLinea(ctx context.Context, api *client.Client, idDoc int64, l Linea) error {
	switch b.Clase {
	case ClaseCompra:
		_, err := api.CrearCompraDetalle(ctx, dto.CompraDetalleRequest{
			IDCompra:       idDoc,
			NumeroLinea:    l.NumeroLinea,
			IDProducto:     l.IDProducto,
			Cantidad:       l.Cantidad,
			PrecioUnitario: l.PrecioUnitario,
			TotalLinea:     l.TotalLinea(),
		})
		return err
	default:
		_, err := api.CrearVentaDetalle(ctx, dto.VentaDetalleRequest{
			IDVenta:        idDoc,
			NumeroLinea:    l.NumeroLinea,
			IDProducto:     l.IDProducto,
			Cantidad:       l.Cantidad,
			PrecioUnitario: l.PrecioUnitario,
			TotalLinea:     l.TotalLinea(),
		})
		return err
	}
}
