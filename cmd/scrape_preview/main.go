// scrape_preview ejecuta el extractor de productos sobre una página del proveedor
// guardada en disco e imprime los pares (SKU, nombre) como JSON.
// Sirve para ajustar la heurística sin tocar la base de datos.
//
// Uso: go run ./cmd/scrape_preview [-latin1] [-max N] [ruta/catalogo.html]
// Por defecto lee catalogo.html en el directorio actual.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/fieldstock-api/internal/application/dto"
	"github.com/jhoicas/fieldstock-api/internal/infrastructure/scraper"
)

func main() {
	latin1 := flag.Bool("latin1", false, "la página está en ISO-8859-1")
	maxItems := flag.Int("max", dto.DefaultMaxItems, "máximo de productos a mostrar (0 = todos)")
	flag.Parse()

	htmlPath := "catalogo.html"
	if flag.NArg() > 0 {
		htmlPath = flag.Arg(0)
	}
	f, err := os.Open(htmlPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir HTML: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	var r io.Reader = f
	if *latin1 {
		r = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	}

	products, err := scraper.ParseProducts(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Interpretar HTML: %v\n", err)
		os.Exit(1)
	}
	total := len(products)
	if *maxItems > 0 && len(products) > *maxItems {
		products = products[:*maxItems]
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(products); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir JSON: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "%d productos encontrados en %s (%d mostrados)\n", total, htmlPath, len(products))
}
