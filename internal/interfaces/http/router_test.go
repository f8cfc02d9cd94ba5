package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/gestion-boletas/internal/application/dto"
	"github.com/tu-usuario/gestion-boletas/internal/application/usecase"
	"github.com/tu-usuario/gestion-boletas/internal/domain"
	"github.com/tu-usuario/gestion-boletas/internal/domain/entity"
	"github.com/tu-usuario/gestion-boletas/internal/domain/repository"
	apphttp "github.com/tu-usuario/gestion-boletas/internal/interfaces/http"
	"github.com/tu-usuario/gestion-boletas/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Base de datos falsa en memoria
// ──────────────────────────────────────────────────────────────────────────────

type bdFalsa struct {
	proveedores    map[int64]entity.Proveedor
	productos      map[int64]entity.Producto
	compras        map[int64]entity.Compra
	comprasDetalle map[int64]entity.CompraDetalle
	ventas         map[int64]entity.Venta
	ventasDetalle  map[int64]entity.VentaDetalle
	sig            int64
}

func nuevaBDFalsa() *bdFalsa {
	return &bdFalsa{
		proveedores:    map[int64]entity.Proveedor{},
		productos:      map[int64]entity.Producto{},
		compras:        map[int64]entity.Compra{},
		comprasDetalle: map[int64]entity.CompraDetalle{},
		ventas:         map[int64]entity.Venta{},
		ventasDetalle:  map[int64]entity.VentaDetalle{},
	}
}

func (b *bdFalsa) siguiente() int64 {
	b.sig++
	return b.sig
}

func (b *bdFalsa) productoResumen(id int64) *repository.ProductoResumen {
	p, ok := b.productos[id]
	if !ok {
		return nil
	}
	return &repository.ProductoResumen{NombreProducto: p.NombreProducto, SKUProducto: p.SKUProducto}
}

// ── Proveedores ───────────────────────────────────────────────────────────────

type proveedorRepoFalso struct{ bd *bdFalsa }

func (r *proveedorRepoFalso) Listar(estado string) ([]entity.Proveedor, error) {
	var out []entity.Proveedor
	for _, p := range r.bd.proveedores {
		if estado == "" || p.Estado == estado {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NombreComercial < out[j].NombreComercial })
	return out, nil
}

func (r *proveedorRepoFalso) ObtenerPorID(id int64) (*entity.Proveedor, error) {
	p, ok := r.bd.proveedores[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *proveedorRepoFalso) Crear(p *entity.Proveedor) (*entity.Proveedor, error) {
	creado := *p
	creado.IDProveedor = r.bd.siguiente()
	r.bd.proveedores[creado.IDProveedor] = creado
	return &creado, nil
}

func (r *proveedorRepoFalso) Actualizar(p *entity.Proveedor) (*entity.Proveedor, error) {
	if _, ok := r.bd.proveedores[p.IDProveedor]; !ok {
		return nil, nil
	}
	r.bd.proveedores[p.IDProveedor] = *p
	return p, nil
}

func (r *proveedorRepoFalso) Desactivar(id int64) error {
	p, ok := r.bd.proveedores[id]
	if !ok {
		return nil
	}
	p.Estado = entity.EstadoInactivo
	r.bd.proveedores[id] = p
	return nil
}

// ── Productos ─────────────────────────────────────────────────────────────────

type productoRepoFalso struct{ bd *bdFalsa }

func (r *productoRepoFalso) Listar(estado string) ([]entity.Producto, error) {
	var out []entity.Producto
	for _, p := range r.bd.productos {
		if estado == "" || p.Estado == estado {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NombreProducto < out[j].NombreProducto })
	return out, nil
}

func (r *productoRepoFalso) ObtenerPorID(id int64) (*entity.Producto, error) {
	p, ok := r.bd.productos[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *productoRepoFalso) Crear(p *entity.Producto) (*entity.Producto, error) {
	creado := *p
	creado.IDProducto = r.bd.siguiente()
	r.bd.productos[creado.IDProducto] = creado
	return &creado, nil
}

func (r *productoRepoFalso) Actualizar(p *entity.Producto) (*entity.Producto, error) {
	if _, ok := r.bd.productos[p.IDProducto]; !ok {
		return nil, nil
	}
	r.bd.productos[p.IDProducto] = *p
	return p, nil
}

func (r *productoRepoFalso) Desactivar(id int64) error {
	p, ok := r.bd.productos[id]
	if !ok {
		return nil
	}
	p.Estado = entity.EstadoInactivo
	r.bd.productos[id] = p
	return nil
}

// ── Compras ───────────────────────────────────────────────────────────────────

type compraRepoFalso struct{ bd *bdFalsa }

func (r *compraRepoFalso) conDetalles(c entity.Compra) repository.CompraConDetalles {
	out := repository.CompraConDetalles{Compra: c}
	if p, ok := r.bd.proveedores[c.IDProveedor]; ok {
		out.Proveedor = &repository.ProveedorResumen{NombreComercial: p.NombreComercial, RUC: p.RUC}
	}
	for _, d := range r.bd.comprasDetalle {
		if d.IDCompra == c.IDCompra {
			out.Detalles = append(out.Detalles, repository.CompraDetalleConProducto{
				CompraDetalle: d,
				Producto:      r.bd.productoResumen(d.IDProducto),
			})
		}
	}
	sort.Slice(out.Detalles, func(i, j int) bool { return out.Detalles[i].IDDetalle > out.Detalles[j].IDDetalle })
	return out
}

func (r *compraRepoFalso) ListarConDetalles() ([]repository.CompraConDetalles, error) {
	var out []repository.CompraConDetalles
	for _, c := range r.bd.compras {
		out = append(out, r.conDetalles(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FechaCompra > out[j].FechaCompra })
	return out, nil
}

func (r *compraRepoFalso) ObtenerConDetalles(id int64) (*repository.CompraConDetalles, error) {
	c, ok := r.bd.compras[id]
	if !ok {
		return nil, nil
	}
	out := r.conDetalles(c)
	return &out, nil
}

func (r *compraRepoFalso) Crear(c *entity.Compra) (*entity.Compra, error) {
	creada := *c
	creada.IDCompra = r.bd.siguiente()
	r.bd.compras[creada.IDCompra] = creada
	return &creada, nil
}

func (r *compraRepoFalso) Actualizar(c *entity.Compra) (*entity.Compra, error) {
	if _, ok := r.bd.compras[c.IDCompra]; !ok {
		return nil, nil
	}
	r.bd.compras[c.IDCompra] = *c
	return c, nil
}

func (r *compraRepoFalso) EliminarConDetalles(id int64) error {
	for idDetalle, d := range r.bd.comprasDetalle {
		if d.IDCompra == id {
			delete(r.bd.comprasDetalle, idDetalle)
		}
	}
	delete(r.bd.compras, id)
	return nil
}

func (r *compraRepoFalso) BuscarPorNumeroDocumento(numero string) (int64, bool, error) {
	for _, c := range r.bd.compras {
		if c.NumeroDocumento == numero {
			return c.IDCompra, true, nil
		}
	}
	return 0, false, nil
}

type compraDetalleRepoFalso struct{ bd *bdFalsa }

func (r *compraDetalleRepoFalso) Listar(idCompra *int64) ([]repository.CompraDetalleListado, error) {
	var out []repository.CompraDetalleListado
	for _, d := range r.bd.comprasDetalle {
		if idCompra != nil && d.IDCompra != *idCompra {
			continue
		}
		item := repository.CompraDetalleListado{
			CompraDetalle: d,
			Producto:      r.bd.productoResumen(d.IDProducto),
		}
		if c, ok := r.bd.compras[d.IDCompra]; ok {
			item.Compra = &repository.CompraResumen{
				NumeroDocumento: c.NumeroDocumento,
				TipoDocumento:   c.TipoDocumento,
				FechaCompra:     c.FechaCompra,
			}
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IDDetalle > out[j].IDDetalle })
	return out, nil
}

func (r *compraDetalleRepoFalso) ObtenerPorID(id int64) (*entity.CompraDetalle, error) {
	d, ok := r.bd.comprasDetalle[id]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (r *compraDetalleRepoFalso) Crear(d *entity.CompraDetalle) (*entity.CompraDetalle, error) {
	creado := *d
	creado.IDDetalle = r.bd.siguiente()
	r.bd.comprasDetalle[creado.IDDetalle] = creado
	return &creado, nil
}

func (r *compraDetalleRepoFalso) Actualizar(d *entity.CompraDetalle) (*entity.CompraDetalle, error) {
	if _, ok := r.bd.comprasDetalle[d.IDDetalle]; !ok {
		return nil, nil
	}
	r.bd.comprasDetalle[d.IDDetalle] = *d
	return d, nil
}

func (r *compraDetalleRepoFalso) Eliminar(id int64) error {
	delete(r.bd.comprasDetalle, id)
	return nil
}

// ── Ventas ────────────────────────────────────────────────────────────────────

type ventaRepoFalso struct{ bd *bdFalsa }

func (r *ventaRepoFalso) Listar() ([]entity.Venta, error) {
	var out []entity.Venta
	for _, v := range r.bd.ventas {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IDVenta > out[j].IDVenta })
	return out, nil
}

func (r *ventaRepoFalso) ObtenerConDetalles(id int64) (*repository.VentaConDetalles, error) {
	v, ok := r.bd.ventas[id]
	if !ok {
		return nil, nil
	}
	out := repository.VentaConDetalles{Venta: v}
	for _, d := range r.bd.ventasDetalle {
		if d.IDVenta == id {
			out.Detalles = append(out.Detalles, repository.VentaDetalleConProducto{
				VentaDetalle: d,
				Producto:     r.bd.productoResumen(d.IDProducto),
			})
		}
	}
	sort.Slice(out.Detalles, func(i, j int) bool { return out.Detalles[i].IDDetalle > out.Detalles[j].IDDetalle })
	return &out, nil
}

func (r *ventaRepoFalso) Crear(v *entity.Venta) (*entity.Venta, error) {
	for _, otra := range r.bd.ventas {
		if otra.NumeroDocumento == v.NumeroDocumento {
			return nil, fmt.Errorf("numero_documento %q: %w", v.NumeroDocumento, domain.ErrDuplicate)
		}
	}
	creada := *v
	creada.IDVenta = r.bd.siguiente()
	r.bd.ventas[creada.IDVenta] = creada
	return &creada, nil
}

func (r *ventaRepoFalso) Actualizar(v *entity.Venta) (*entity.Venta, error) {
	if _, ok := r.bd.ventas[v.IDVenta]; !ok {
		return nil, nil
	}
	for _, otra := range r.bd.ventas {
		if otra.IDVenta != v.IDVenta && otra.NumeroDocumento == v.NumeroDocumento {
			return nil, fmt.Errorf("numero_documento %q: %w", v.NumeroDocumento, domain.ErrDuplicate)
		}
	}
	r.bd.ventas[v.IDVenta] = *v
	return v, nil
}

func (r *ventaRepoFalso) EliminarConDetalles(id int64) error {
	for idDetalle, d := range r.bd.ventasDetalle {
		if d.IDVenta == id {
			delete(r.bd.ventasDetalle, idDetalle)
		}
	}
	delete(r.bd.ventas, id)
	return nil
}

func (r *ventaRepoFalso) BuscarPorNumeroDocumento(numero string) (int64, bool, error) {
	for _, v := range r.bd.ventas {
		if v.NumeroDocumento == numero {
			return v.IDVenta, true, nil
		}
	}
	return 0, false, nil
}

type ventaDetalleRepoFalso struct{ bd *bdFalsa }

func (r *ventaDetalleRepoFalso) Listar(idVenta *int64) ([]repository.VentaDetalleListado, error) {
	var out []repository.VentaDetalleListado
	for _, d := range r.bd.ventasDetalle {
		if idVenta != nil && d.IDVenta != *idVenta {
			continue
		}
		item := repository.VentaDetalleListado{
			VentaDetalle: d,
			Producto:     r.bd.productoResumen(d.IDProducto),
		}
		if v, ok := r.bd.ventas[d.IDVenta]; ok {
			item.Venta = &repository.VentaResumen{
				NumeroDocumento: v.NumeroDocumento,
				TipoDocumento:   v.TipoDocumento,
				FechaVenta:      v.FechaVenta,
			}
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IDDetalle > out[j].IDDetalle })
	return out, nil
}

func (r *ventaDetalleRepoFalso) ObtenerPorID(id int64) (*entity.VentaDetalle, error) {
	d, ok := r.bd.ventasDetalle[id]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (r *ventaDetalleRepoFalso) Crear(d *entity.VentaDetalle) (*entity.VentaDetalle, error) {
	creado := *d
	creado.IDDetalle = r.bd.siguiente()
	r.bd.ventasDetalle[creado.IDDetalle] = creado
	return &creado, nil
}

func (r *ventaDetalleRepoFalso) Actualizar(d *entity.VentaDetalle) (*entity.VentaDetalle, error) {
	if _, ok := r.bd.ventasDetalle[d.IDDetalle]; !ok {
		return nil, nil
	}
	r.bd.ventasDetalle[d.IDDetalle] = *d
	return d, nil
}

func (r *ventaDetalleRepoFalso) Eliminar(id int64) error {
	delete(r.bd.ventasDetalle, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func appDePruebas(t *testing.T) (*fiber.App, *bdFalsa) {
	t.Helper()
	bd := nuevaBDFalsa()
	log := logger.New(logger.Config{Env: "production", Level: "error"})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProveedorUC:     usecase.NewProveedorUseCase(&proveedorRepoFalso{bd}),
		ProductoUC:      usecase.NewProductoUseCase(&productoRepoFalso{bd}),
		CompraUC:        usecase.NewCompraUseCase(&compraRepoFalso{bd}),
		CompraDetalleUC: usecase.NewCompraDetalleUseCase(&compraDetalleRepoFalso{bd}),
		VentaUC:         usecase.NewVentaUseCase(&ventaRepoFalso{bd}),
		VentaDetalleUC:  usecase.NewVentaDetalleUseCase(&ventaDetalleRepoFalso{bd}),
		Log:             log,
		Env:             "test",
		Debug:           false,
	})
	return app, bd
}

func peticionJSON(t *testing.T, method, path string, body interface{}) *http.Request {
	t.Helper()
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func decodificar(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProducto_CrearYObtener(t *testing.T) {
	app, _ := appDePruebas(t)

	resp, err := app.Test(peticionJSON(t, http.MethodPost, "/api/productos", dto.ProductoRequest{
		SKUProducto:    "CAF-001",
		NombreProducto: "Café molido",
		UnidadMedida:   "KG",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var creado dto.ProductoResponse
	decodificar(t, resp, &creado)
	assert.NotZero(t, creado.IDProducto)
	assert.Equal(t, "ACTIVO", creado.Estado, "el estado por defecto es ACTIVO")

	resp, err = app.Test(peticionJSON(t, http.MethodGet, fmt.Sprintf("/api/productos/%d", creado.IDProducto), nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var obtenido dto.ProductoResponse
	decodificar(t, resp, &obtenido)
	assert.Equal(t, "Café molido", obtenido.NombreProducto)
}

func TestProducto_CamposObligatorios(t *testing.T) {
	app, _ := appDePruebas(t)

	resp, err := app.Test(peticionJSON(t, http.MethodPost, "/api/productos", dto.ProductoRequest{
		NombreProducto: "Sin SKU",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp dto.ErrorResponse
	decodificar(t, resp, &errResp)
	assert.Equal(t, "VALIDATION", errResp.Code)
}

func TestProducto_BorradoLogico(t *testing.T) {
	app, bd := appDePruebas(t)
	bd.productos[1] = entity.Producto{IDProducto: 1, SKUProducto: "X", NombreProducto: "Uno", Estado: entity.EstadoActivo}
	bd.sig = 1

	resp, err := app.Test(peticionJSON(t, http.MethodDelete, "/api/productos/1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	// La fila sigue existiendo, solo cambia el estado.
	resp, err = app.Test(peticionJSON(t, http.MethodGet, "/api/productos/1", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var p dto.ProductoResponse
	decodificar(t, resp, &p)
	assert.Equal(t, "INACTIVO", p.Estado)
}

func TestProducto_FiltroEstado(t *testing.T) {
	app, bd := appDePruebas(t)
	bd.productos[1] = entity.Producto{IDProducto: 1, NombreProducto: "Activo", Estado: entity.EstadoActivo}
	bd.productos[2] = entity.Producto{IDProducto: 2, NombreProducto: "Inactivo", Estado: entity.EstadoInactivo}
	bd.sig = 2

	resp, err := app.Test(peticionJSON(t, http.MethodGet, "/api/productos?estado=ACTIVO", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var productos []dto.ProductoResponse
	decodificar(t, resp, &productos)
	require.Len(t, productos, 1)
	assert.Equal(t, "Activo", productos[0].NombreProducto)
}

func TestProducto_IDNoNumerico(t *testing.T) {
	app, _ := appDePruebas(t)

	resp, err := app.Test(peticionJSON(t, http.MethodGet, "/api/productos/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp dto.ErrorResponse
	decodificar(t, resp, &errResp)
	assert.Equal(t, "INVALID_ID", errResp.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Compras
// ──────────────────────────────────────────────────────────────────────────────

func TestCompra_TotalEnCeroEsFaltante(t *testing.T) {
	app, bd := appDePruebas(t)
	bd.proveedores[1] = entity.Proveedor{IDProveedor: 1, NombreComercial: "Prov", RUC: "20100100100"}
	bd.sig = 1

	resp, err := app.Test(peticionJSON(t, http.MethodPost, "/api/compras", dto.CompraRequest{
		NumeroDocumento: "F001-00000001",
		IDProveedor:     1,
		Total:           decimal.Zero,
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp dto.ErrorResponse
	decodificar(t, resp, &errResp)
	assert.Equal(t, "VALIDATION", errResp.Code)
}

func TestCompra_ListadoAnidaProveedorYDetalles(t *testing.T) {
	app, bd := appDePruebas(t)
	bd.proveedores[1] = entity.Proveedor{IDProveedor: 1, NombreComercial: "Distribuidora", RUC: "20100100100"}
	bd.productos[2] = entity.Producto{IDProducto: 2, SKUProducto: "CAF", NombreProducto: "Café"}
	bd.compras[3] = entity.Compra{IDCompra: 3, NumeroDocumento: "F001-1", FechaCompra: "2026-08-01", IDProveedor: 1, Total: decimal.NewFromInt(10)}
	bd.comprasDetalle[4] = entity.CompraDetalle{IDDetalle: 4, IDCompra: 3, NumeroLinea: 1, IDProducto: 2,
		Cantidad: decimal.NewFromInt(2), PrecioUnitario: decimal.NewFromInt(5), TotalLinea: decimal.NewFromInt(10)}
	bd.sig = 4

	resp, err := app.Test(peticionJSON(t, http.MethodGet, "/api/compras", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var compras []dto.CompraConDetallesResponse
	decodificar(t, resp, &compras)
	require.Len(t, compras, 1)
	require.NotNil(t, compras[0].Proveedor)
	assert.Equal(t, "Distribuidora", compras[0].Proveedor.NombreComercial)
	require.Len(t, compras[0].Detalles, 1)
	require.NotNil(t, compras[0].Detalles[0].Producto)
	assert.Equal(t, "CAF", compras[0].Detalles[0].Producto.SKUProducto)
}

func TestCompra_CheckDocumento(t *testing.T) {
	app, bd := appDePruebas(t)
	bd.compras[7] = entity.Compra{IDCompra: 7, NumeroDocumento: "F001-7"}
	bd.sig = 7

	resp, err := app.Test(peticionJSON(t, http.MethodGet, "/api/compras/check-documento/F001-7", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.CheckDocumentoCompraResponse
	decodificar(t, resp, &out)
	assert.True(t, out.Exists)
	require.NotNil(t, out.IDCompra)
	assert.Equal(t, int64(7), *out.IDCompra)

	resp, err = app.Test(peticionJSON(t, http.MethodGet, "/api/compras/check-documento/NO-EXISTE", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodificar(t, resp, &out)
	assert.False(t, out.Exists)
	assert.Nil(t, out.IDCompra)
}

func TestCompraDetalle_FiltroNoNumerico(t *testing.T) {
	app, _ := appDePruebas(t)

	resp, err := app.Test(peticionJSON(t, http.MethodGet, "/api/compras-detalles?id_compra=abc", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventas
// ──────────────────────────────────────────────────────────────────────────────

func ventaValida(numero string) dto.VentaRequest {
	return dto.VentaRequest{
		NumeroDocumento: numero,
		TipoDocumento:   "BOLETA",
		FechaVenta:      "2026-08-30",
		ClienteNombre:   "Cliente Final",
		Total:           decimal.RequireFromString("25.50"),
	}
}

func TestVenta_DocumentoDuplicado(t *testing.T) {
	app, _ := appDePruebas(t)

	resp, err := app.Test(peticionJSON(t, http.MethodPost, "/api/ventas", ventaValida("B001-1")))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = app.Test(peticionJSON(t, http.MethodPost, "/api/ventas", ventaValida("B001-1")))
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var errResp dto.ErrorResponse
	decodificar(t, resp, &errResp)
	assert.Equal(t, "DUPLICATE", errResp.Code)
	assert.Equal(t, "El número de documento ya existe. Debe ser único.", errResp.Message)
}

func TestVenta_EliminarEnCascada(t *testing.T) {
	app, bd := appDePruebas(t)
	bd.ventas[1] = entity.Venta{IDVenta: 1, NumeroDocumento: "B001-1"}
	bd.ventasDetalle[2] = entity.VentaDetalle{IDDetalle: 2, IDVenta: 1, NumeroLinea: 1, IDProducto: 1}
	bd.ventasDetalle[3] = entity.VentaDetalle{IDDetalle: 3, IDVenta: 1, NumeroLinea: 2, IDProducto: 1}
	bd.sig = 3

	resp, err := app.Test(peticionJSON(t, http.MethodDelete, "/api/ventas/1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	assert.Empty(t, bd.ventasDetalle, "las líneas se borran junto con la venta")

	resp, err = app.Test(peticionJSON(t, http.MethodGet, "/api/ventas/1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestVenta_ObtenerAnidaDetalles(t *testing.T) {
	app, bd := appDePruebas(t)
	bd.productos[1] = entity.Producto{IDProducto: 1, SKUProducto: "CAF", NombreProducto: "Café"}
	bd.ventas[2] = entity.Venta{IDVenta: 2, NumeroDocumento: "B001-2", Total: decimal.NewFromInt(5)}
	bd.ventasDetalle[3] = entity.VentaDetalle{IDDetalle: 3, IDVenta: 2, NumeroLinea: 1, IDProducto: 1,
		Cantidad: decimal.NewFromInt(1), PrecioUnitario: decimal.NewFromInt(5), TotalLinea: decimal.NewFromInt(5)}
	bd.sig = 3

	resp, err := app.Test(peticionJSON(t, http.MethodGet, "/api/ventas/2", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var v dto.VentaConDetallesResponse
	decodificar(t, resp, &v)
	require.Len(t, v.Detalles, 1)
	require.NotNil(t, v.Detalles[0].Producto)
	assert.Equal(t, "Café", v.Detalles[0].Producto.NombreProducto)
}

func TestVenta_ListadoSinAnidar(t *testing.T) {
	app, bd := appDePruebas(t)
	bd.ventas[1] = entity.Venta{IDVenta: 1, NumeroDocumento: "B001-1"}
	bd.ventas[2] = entity.Venta{IDVenta: 2, NumeroDocumento: "B001-2"}
	bd.sig = 2

	resp, err := app.Test(peticionJSON(t, http.MethodGet, "/api/ventas", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var ventas []dto.VentaResponse
	decodificar(t, resp, &ventas)
	require.Len(t, ventas, 2)
	assert.Equal(t, int64(2), ventas[0].IDVenta, "más recientes primero")
}

// ──────────────────────────────────────────────────────────────────────────────
// Rutas generales
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	app, _ := appDePruebas(t)

	for _, ruta := range []string{"/health", "/api/health"} {
		resp, err := app.Test(peticionJSON(t, http.MethodGet, ruta, nil))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode, ruta)

		var out dto.HealthResponse
		decodificar(t, resp, &out)
		assert.Equal(t, "OK", out.Status)
		assert.Equal(t, "test", out.Environment)
	}
}

func TestEndpointDesconocido(t *testing.T) {
	app, _ := appDePruebas(t)

	resp, err := app.Test(peticionJSON(t, http.MethodGet, "/api/no-existe", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var errResp dto.ErrorResponse
	decodificar(t, resp, &errResp)
	assert.Equal(t, "Endpoint no encontrado", errResp.Message)
}
