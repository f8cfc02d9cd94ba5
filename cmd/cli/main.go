// cli es el cliente de terminal de la API de gestión de boletas.
//
// Uso: go run ./cmd/cli [-base URL] <comando> [argumentos]
//
// Comandos:
//
//	proveedores                     lista los proveedores
//	productos                       lista los productos
//	buscar <texto>                  sugiere productos activos por SKU o nombre
//	sku <nombre>                    sugiere un SKU desde las iniciales del nombre
//	compras                         lista las compras con sus detalles
//	ventas                          lista las ventas
//	venta <id>                      muestra una venta con sus detalles
//	check-venta <numero>            verifica si un número de documento existe
//	nueva-venta                     crea una venta de ejemplo desde flags
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/gestion-boletas/internal/client/almacen"
	"github.com/tu-usuario/gestion-boletas/internal/client/borrador"
	clibusqueda "github.com/tu-usuario/gestion-boletas/internal/client/busqueda"
	"github.com/tu-usuario/gestion-boletas/internal/domain/busqueda"
	"github.com/tu-usuario/gestion-boletas/pkg/client"
)

func main() {
	baseURL := flag.String("base", "http://localhost:3000", "URL base de la API")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	api := client.New(*baseURL)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var err error
	switch args[0] {
	case "proveedores":
		err = listarProveedores(ctx, api)
	case "productos":
		err = listarProductos(ctx, api)
	case "buscar":
		err = buscarProductos(ctx, api, strings.Join(args[1:], " "))
	case "sku":
		fmt.Println(busqueda.SugerirSKU(strings.Join(args[1:], " ")))
	case "compras":
		err = listarCompras(ctx, api)
	case "ventas":
		err = listarVentas(ctx, api)
	case "venta":
		err = mostrarVenta(ctx, api, args[1:])
	case "check-venta":
		err = checkVenta(ctx, api, args[1:])
	case "nueva-venta":
		err = nuevaVenta(ctx, api, args[1:])
	default:
		fmt.Fprintf(os.Stderr, "comando desconocido: %s\n", args[0])
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func listarProveedores(ctx context.Context, api *client.Client) error {
	proveedores, err := api.ListarProveedores(ctx)
	if err != nil {
		return err
	}
	for _, p := range proveedores {
		fmt.Printf("%d\t%s\t%s\t%s\n", p.IDProveedor, p.RUC, p.NombreComercial, p.Estado)
	}
	return nil
}

func listarProductos(ctx context.Context, api *client.Client) error {
	productos, err := api.ListarProductos(ctx)
	if err != nil {
		return err
	}
	for _, p := range productos {
		fmt.Printf("%d\t%s\t%s\t%s\t%s\n", p.IDProducto, p.SKUProducto, p.NombreProducto, p.UnidadMedida, p.Estado)
	}
	return nil
}

// buscarProductos carga el catálogo y muestra las sugerencias del buscador,
// la misma lista que vería el usuario en el autocompletado.
func buscarProductos(ctx context.Context, api *client.Client, consulta string) error {
	alm := almacen.New(api)
	if err := alm.RefrescarProductos(ctx); err != nil {
		return err
	}
	resolver := clibusqueda.NewResolver(alm.ProductosEntidad())
	for _, s := range resolver.Sugerencias(consulta) {
		fmt.Println(s)
	}
	return nil
}

func listarCompras(ctx context.Context, api *client.Client) error {
	compras, err := api.ListarCompras(ctx)
	if err != nil {
		return err
	}
	for _, c := range compras {
		proveedor := ""
		if c.Proveedor != nil {
			proveedor = c.Proveedor.NombreComercial
		}
		fmt.Printf("%d\t%s\t%s\t%s\t%s\t(%d líneas)\n",
			c.IDCompra, c.NumeroDocumento, c.FechaCompra, proveedor, c.Total.StringFixed(2), len(c.Detalles))
	}
	return nil
}

func listarVentas(ctx context.Context, api *client.Client) error {
	ventas, err := api.ListarVentas(ctx)
	if err != nil {
		return err
	}
	for _, v := range ventas {
		fmt.Printf("%d\t%s\t%s\t%s\t%s\n", v.IDVenta, v.NumeroDocumento, v.FechaVenta, v.ClienteNombre, v.Total.StringFixed(2))
	}
	return nil
}

func mostrarVenta(ctx context.Context, api *client.Client, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("uso: venta <id>")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("id inválido: %s", args[0])
	}
	v, err := api.ObtenerVenta(ctx, id)
	if err != nil {
		return err
	}
	fmt.Printf("%s %s\t%s\t%s\ttotal %s\n", v.TipoDocumento, v.NumeroDocumento, v.FechaVenta, v.ClienteNombre, v.Total.StringFixed(2))
	for _, d := range v.Detalles {
		nombre := ""
		if d.Producto != nil {
			nombre = d.Producto.NombreProducto
		}
		fmt.Printf("  %d\t%s\t%s x %s = %s\n", d.NumeroLinea, nombre, d.Cantidad.String(), d.PrecioUnitario.StringFixed(2), d.TotalLinea.StringFixed(2))
	}
	return nil
}

func checkVenta(ctx context.Context, api *client.Client, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("uso: check-venta <numero>")
	}
	out, err := api.CheckDocumentoVenta(ctx, args[0])
	if err != nil {
		return err
	}
	if out.Exists {
		fmt.Printf("existe (id_venta=%d)\n", *out.IDVenta)
	} else {
		fmt.Println("disponible")
	}
	return nil
}

// nuevaVenta arma un borrador desde flags y lo envía. Cada -linea tiene la
// forma id_producto:cantidad:precio.
func nuevaVenta(ctx context.Context, api *client.Client, args []string) error {
	fs := flag.NewFlagSet("nueva-venta", flag.ExitOnError)
	numero := fs.String("numero", "", "número de documento")
	tipo := fs.String("tipo", "BOLETA", "tipo de documento")
	fecha := fs.String("fecha", time.Now().Format("2006-01-02"), "fecha ISO")
	cliente := fs.String("cliente", "", "nombre del cliente")
	documento := fs.String("documento", "", "documento del cliente")
	var lineas multiFlag
	fs.Var(&lineas, "linea", "línea id_producto:cantidad:precio (repetible)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	b := borrador.New(borrador.ClaseVenta)
	b.NumeroDocumento = *numero
	b.TipoDocumento = *tipo
	b.Fecha = *fecha
	b.ClienteNombre = *cliente
	b.ClienteDocumento = *documento

	for _, raw := range lineas {
		partes := strings.SplitN(raw, ":", 3)
		if len(partes) != 3 {
			return fmt.Errorf("línea inválida %q, se espera id_producto:cantidad:precio", raw)
		}
		idProducto, err := strconv.ParseInt(partes[0], 10, 64)
		if err != nil {
			return fmt.Errorf("id_producto inválido en %q", raw)
		}
		cantidad, err := decimal.NewFromString(partes[1])
		if err != nil {
			return fmt.Errorf("cantidad inválida en %q", raw)
		}
		precio, err := decimal.NewFromString(partes[2])
		if err != nil {
			return fmt.Errorf("precio inválido en %q", raw)
		}
		localID := b.AgregarLinea()
		b.ModificarLinea(localID, func(l *borrador.Linea) {
			l.IDProducto = idProducto
			l.Cantidad = cantidad
			l.PrecioUnitario = precio
		})
	}

	fmt.Printf("total calculado: %s\n", b.TotalFormateado())
	id, err := b.Submit(ctx, api)
	if err != nil {
		if id != 0 {
			return fmt.Errorf("venta %d creada pero con líneas fallidas: %w", id, err)
		}
		return err
	}
	fmt.Printf("venta creada: id_venta=%d\n", id)
	return nil
}

// multiFlag acumula ocurrencias repetidas de un flag.
type multiFlag []string

func (m *multiFlag) String() string     { return strings.Join(*m, ",") }
func (m *multiFlag) Set(s string) error { *m = append(*m, s); return nil }
