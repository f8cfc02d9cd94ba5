package borrador

import (
	"context"
	"sync"
	"time"
)

// RetardoVerificacion es la espera tras la última tecla antes de consultar
// el endpoint de verificación.
const RetardoVerificacion = 400 * time.Millisecond

// FuncVerificar consulta si un número de documento ya existe.
type FuncVerificar func(ctx context.Context, numero string) (existe bool, err error)

// VerificadorDocumento agrupa verificaciones rápidas y sucesivas: cada
// llamada reinicia el temporizador, de modo que solo el último número
// escrito llega a la API.
type VerificadorDocumento struct {
	verificar FuncVerificar
	retardo   time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// NewVerificadorDocumento construye el verificador con el retardo estándar.
func NewVerificadorDocumento(fn FuncVerificar) *VerificadorDocumento {
	return &VerificadorDocumento{verificar: fn, retardo: RetardoVerificacion}
}

// NewVerificadorDocumentoConRetardo permite ajustar el retardo, útil en tests.
func NewVerificadorDocumentoConRetardo(fn FuncVerificar, retardo time.Duration) *VerificadorDocumento {
	return &VerificadorDocumento{verificar: fn, retardo: retardo}
}

// Verificar programa la consulta de numero. Si llega otra llamada antes de
// que venza el retardo, la anterior se descarta. El resultado se entrega
// por callback desde una goroutine propia.
func (v *VerificadorDocumento) Verificar(ctx context.Context, numero string, callback func(existe bool, err error)) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.timer != nil {
		v.timer.Stop()
	}
	v.timer = time.AfterFunc(v.retardo, func() {
		existe, err := v.verificar(ctx, numero)
		callback(existe, err)
	})
}

// Detener cancela cualquier verificación pendiente.
func (v *VerificadorDocumento) Detener() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.timer != nil {
		v.timer.Stop()
		v.timer = nil
	}
}
