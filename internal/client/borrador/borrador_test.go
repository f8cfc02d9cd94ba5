package borrador_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/gestion-boletas/internal/application/dto"
	"github.com/tu-usuario/gestion-boletas/internal/client/borrador"
	"github.com/tu-usuario/gestion-boletas/pkg/client"
)

// ──────────────────────────────────────────────────────────────────────────────
// Numeración de líneas
// ──────────────────────────────────────────────────────────────────────────────

func TestQuitarLinea_DejaHuecoEnNumeracion(t *testing.T) {
	b := borrador.New(borrador.ClaseVenta)

	id1 := b.AgregarLinea()
	id2 := b.AgregarLinea()
	id3 := b.AgregarLinea()
	_ = id1
	_ = id3

	require.True(t, b.QuitarLinea(id2))

	lineas := b.Lineas()
	require.Len(t, lineas, 2)
	assert.Equal(t, 1, lineas[0].NumeroLinea)
	assert.Equal(t, 3, lineas[1].NumeroLinea, "quitar la línea 2 no renumera la 3")

	// La siguiente línea continúa la secuencia, no rellena el hueco.
	id4 := b.AgregarLinea()
	var cuarta *borrador.Linea
	for _, l := range b.Lineas() {
		if l.LocalID == id4 {
			cuarta = &l
			break
		}
	}
	require.NotNil(t, cuarta)
	assert.Equal(t, 4, cuarta.NumeroLinea)
}

func TestQuitarLinea_IDDesconocido(t *testing.T) {
	b := borrador.New(borrador.ClaseCompra)
	id := b.AgregarLinea()
	require.True(t, b.QuitarLinea(id))
	assert.False(t, b.QuitarLinea(id), "un id ya quitado no vuelve a quitar nada")
}

// ──────────────────────────────────────────────────────────────────────────────
// Total
// ──────────────────────────────────────────────────────────────────────────────

func TestTotal_SoloLineasConProducto(t *testing.T) {
	b := borrador.New(borrador.ClaseVenta)

	conProducto := b.AgregarLinea()
	b.ModificarLinea(conProducto, func(l *borrador.Linea) {
		l.IDProducto = 10
		l.Cantidad = decimal.NewFromInt(3)
		l.PrecioUnitario = decimal.RequireFromString("2.50")
	})

	// Línea a medio rellenar: sin producto seleccionado, no suma.
	sinProducto := b.AgregarLinea()
	b.ModificarLinea(sinProducto, func(l *borrador.Linea) {
		l.Cantidad = decimal.NewFromInt(100)
		l.PrecioUnitario = decimal.NewFromInt(100)
	})

	assert.True(t, b.Total().Equal(decimal.RequireFromString("7.5")))
	assert.Equal(t, "7.50", b.TotalFormateado())
}

func TestTotal_BorradorVacio(t *testing.T) {
	b := borrador.New(borrador.ClaseCompra)
	assert.Equal(t, "0.00", b.TotalFormateado())
}

// ──────────────────────────────────────────────────────────────────────────────
// Submit
// ──────────────────────────────────────────────────────────────────────────────

func lineaCompleta(b *borrador.Borrador, idProducto int64, cantidad, precio string) {
	id := b.AgregarLinea()
	b.ModificarLinea(id, func(l *borrador.Linea) {
		l.IDProducto = idProducto
		l.Cantidad = decimal.RequireFromString(cantidad)
		l.PrecioUnitario = decimal.RequireFromString(precio)
	})
}

func TestSubmit_SinLineas(t *testing.T) {
	b := borrador.New(borrador.ClaseVenta)
	b.NumeroDocumento = "B001-00000001"

	_, err := b.Submit(context.Background(), client.New("http://127.0.0.1:0"))
	assert.ErrorIs(t, err, borrador.ErrSinLineas)
}

func TestSubmit_SoloFilasVacias(t *testing.T) {
	b := borrador.New(borrador.ClaseVenta)
	b.NumeroDocumento = "B001-00000001"
	b.AgregarLinea() // fila sin producto ni cantidades

	_, err := b.Submit(context.Background(), client.New("http://127.0.0.1:0"))
	assert.ErrorIs(t, err, borrador.ErrSinLineas)
}

func TestSubmit_LineaIncompleta(t *testing.T) {
	b := borrador.New(borrador.ClaseVenta)
	b.NumeroDocumento = "B001-00000001"
	id := b.AgregarLinea()
	b.ModificarLinea(id, func(l *borrador.Linea) {
		l.IDProducto = 7 // producto elegido pero sin cantidad ni precio
	})

	_, err := b.Submit(context.Background(), client.New("http://127.0.0.1:0"))
	assert.ErrorIs(t, err, borrador.ErrLineaIncompleta)
}

func TestSubmit_OmiteFilasSinProducto(t *testing.T) {
	var lineasRecibidas atomic.Int64
	var mu sync.Mutex
	numerosLinea := map[int]bool{}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/ventas/check-documento/", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(dto.CheckDocumentoVentaResponse{Exists: false})
	})
	mux.HandleFunc("POST /api/ventas", func(w http.ResponseWriter, r *http.Request) {
		var in dto.VentaRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "10.00", in.Total.StringFixed(2), "la fila vacía no suma al total")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(dto.VentaResponse{IDVenta: 7, NumeroDocumento: in.NumeroDocumento})
	})
	mux.HandleFunc("POST /api/ventas-detalles", func(w http.ResponseWriter, r *http.Request) {
		var in dto.VentaDetalleRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		mu.Lock()
		numerosLinea[in.NumeroLinea] = true
		mu.Unlock()
		lineasRecibidas.Add(1)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(dto.VentaDetalleResponse{IDDetalle: 1})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	b := borrador.New(borrador.ClaseVenta)
	b.NumeroDocumento = "B001-00000007"
	lineaCompleta(b, 3, "2", "5.00")
	b.AgregarLinea() // fila agregada y nunca rellenada

	id, err := b.Submit(context.Background(), client.New(srv.URL))
	require.NoError(t, err, "una fila vacía no bloquea el envío")
	assert.Equal(t, int64(7), id)
	assert.Equal(t, int64(1), lineasRecibidas.Load(), "solo se envían las líneas con producto")
	assert.Equal(t, map[int]bool{1: true}, numerosLinea)
}

func TestSubmit_EnviaCabeceraYLineas(t *testing.T) {
	var lineasRecibidas atomic.Int64
	var mu sync.Mutex
	numerosLinea := map[int]bool{}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/ventas/check-documento/", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(dto.CheckDocumentoVentaResponse{Exists: false})
	})
	mux.HandleFunc("POST /api/ventas", func(w http.ResponseWriter, r *http.Request) {
		var in dto.VentaRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "25.00", in.Total.StringFixed(2))
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(dto.VentaResponse{IDVenta: 42, NumeroDocumento: in.NumeroDocumento})
	})
	mux.HandleFunc("POST /api/ventas-detalles", func(w http.ResponseWriter, r *http.Request) {
		var in dto.VentaDetalleRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, int64(42), in.IDVenta)
		mu.Lock()
		numerosLinea[in.NumeroLinea] = true
		mu.Unlock()
		lineasRecibidas.Add(1)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(dto.VentaDetalleResponse{IDDetalle: int64(in.NumeroLinea)})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	b := borrador.New(borrador.ClaseVenta)
	b.NumeroDocumento = "B001-00000042"
	b.TipoDocumento = "BOLETA"
	b.Fecha = "2026-08-30"
	lineaCompleta(b, 1, "2", "5.00")
	lineaCompleta(b, 2, "3", "5.00")

	id, err := b.Submit(context.Background(), client.New(srv.URL))
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, int64(2), lineasRecibidas.Load())
	assert.Equal(t, map[int]bool{1: true, 2: true}, numerosLinea)
}

func TestSubmit_DocumentoDuplicadoNoEnvia(t *testing.T) {
	var posts atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/ventas/check-documento/", func(w http.ResponseWriter, r *http.Request) {
		id := int64(9)
		_ = json.NewEncoder(w).Encode(dto.CheckDocumentoVentaResponse{Exists: true, IDVenta: &id})
	})
	mux.HandleFunc("POST /api/ventas", func(w http.ResponseWriter, r *http.Request) {
		posts.Add(1)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(dto.VentaResponse{IDVenta: 99})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	b := borrador.New(borrador.ClaseVenta)
	b.NumeroDocumento = "B001-00000009"
	lineaCompleta(b, 1, "1", "1.00")

	_, err := b.Submit(context.Background(), client.New(srv.URL))
	assert.ErrorIs(t, err, borrador.ErrDocumentoDuplicado)
	assert.Equal(t, int64(0), posts.Load(), "no debe crear la venta si el número ya existe")
}

func TestSubmit_FalloDeLineaDevuelveIDYError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/ventas/check-documento/", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(dto.CheckDocumentoVentaResponse{Exists: false})
	})
	mux.HandleFunc("POST /api/ventas", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(dto.VentaResponse{IDVenta: 5})
	})
	mux.HandleFunc("POST /api/ventas-detalles", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(dto.ErrorResponse{Code: "INTERNAL", Message: "Error creando detalle de venta"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	b := borrador.New(borrador.ClaseVenta)
	b.NumeroDocumento = "B001-00000005"
	lineaCompleta(b, 1, "1", "1.00")

	id, err := b.Submit(context.Background(), client.New(srv.URL))
	assert.Equal(t, int64(5), id, "la cabecera queda creada aunque fallen las líneas")
	require.Error(t, err)

	var apiErr *client.APIError
	assert.ErrorAs(t, err, &apiErr)
}

// ──────────────────────────────────────────────────────────────────────────────
// Verificador con retardo
// ──────────────────────────────────────────────────────────────────────────────

func TestVerificador_AgrupaLlamadasRapidas(t *testing.T) {
	var consultas atomic.Int64
	var ultimo atomic.Value

	v := borrador.NewVerificadorDocumentoConRetardo(
		func(ctx context.Context, numero string) (bool, error) {
			consultas.Add(1)
			ultimo.Store(numero)
			return false, nil
		},
		20*time.Millisecond,
	)

	hecho := make(chan struct{})
	ctx := context.Background()
	v.Verificar(ctx, "B", func(bool, error) {})
	v.Verificar(ctx, "B0", func(bool, error) {})
	v.Verificar(ctx, "B001", func(bool, error) { close(hecho) })

	select {
	case <-hecho:
	case <-time.After(time.Second):
		t.Fatal("la verificación nunca se ejecutó")
	}

	assert.Equal(t, int64(1), consultas.Load(), "solo el último número llega a la API")
	assert.Equal(t, "B001", ultimo.Load())
}

func TestVerificador_Detener(t *testing.T) {
	var consultas atomic.Int64
	v := borrador.NewVerificadorDocumentoConRetardo(
		func(ctx context.Context, numero string) (bool, error) {
			consultas.Add(1)
			return false, nil
		},
		20*time.Millisecond,
	)

	v.Verificar(context.Background(), "B001", func(bool, error) {})
	v.Detener()

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int64(0), consultas.Load())
}
