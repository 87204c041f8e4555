package scraper

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"

	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
)

const (
	maxNameRunes = 200
	maxSKURunes  = 64
)

// Atributos donde algunas tiendas publican el número de artículo, en orden de preferencia.
var skuAttributes = []string{"data-sku", "data-article", "data-code"}

// Palabras clave que preceden al SKU en el texto de la tarjeta. Se prueban en orden
// y sin distinguir mayúsculas; gana la primera que aparezca.
var skuKeywords = []string{"SKU", "Artikel", "Art.", "Code"}

// ParseProducts extrae pares (SKU, nombre) de las tarjetas de producto de una página.
// Candidato es todo elemento cuya clase contenga "product"; las tarjetas anidadas también cuentan.
// Es una heurística: en páginas con otra estructura puede no extraer nada o extraer de más.
func ParseProducts(r io.Reader) ([]entity.SupplierProduct, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	products := make([]entity.SupplierProduct, 0)
	doc.Find("[class]").Each(func(_ int, card *goquery.Selection) {
		class, _ := card.Attr("class")
		if !strings.Contains(strings.ToLower(class), "product") {
			return
		}
		name := truncateRunes(collapseSpaces(card.Text()), maxNameRunes)
		sku := skuFromAttributes(card)
		if sku == "" {
			sku = skuFromText(spacedText(card))
		}
		if name == "" || sku == "" {
			return
		}
		products = append(products, entity.SupplierProduct{SKU: sku, Name: name})
	})
	return products, nil
}

func skuFromAttributes(card *goquery.Selection) string {
	for _, attr := range skuAttributes {
		if v, ok := card.Attr(attr); ok {
			if v = strings.TrimSpace(v); v != "" {
				return truncateRunes(v, maxSKURunes)
			}
		}
	}
	return ""
}

// spacedText une los nodos de texto descendientes con un espacio, para que
// elementos contiguos como <span>Code</span><span>ABC-1</span> no se peguen.
func spacedText(card *goquery.Selection) string {
	var parts []string
	var walk func(*goquery.Selection)
	walk = func(sel *goquery.Selection) {
		sel.Contents().Each(func(_ int, n *goquery.Selection) {
			if goquery.NodeName(n) == "#text" {
				if t := strings.TrimSpace(n.Text()); t != "" {
					parts = append(parts, t)
				}
				return
			}
			walk(n)
		})
	}
	walk(card)
	return collapseSpaces(strings.Join(parts, " "))
}

func skuFromText(text string) string {
	for _, key := range skuKeywords {
		idx := indexFold(text, key)
		if idx < 0 {
			continue
		}
		rest := strings.TrimLeftFunc(text[idx+len(key):], func(r rune) bool {
			return unicode.IsSpace(r) || strings.ContainsRune(":#.-", r)
		})
		fields := strings.Fields(rest)
		if len(fields) == 0 {
			continue
		}
		return truncateRunes(fields[0], maxSKURunes)
	}
	return ""
}

// indexFold como strings.Index pero sin distinguir mayúsculas; key es ASCII.
func indexFold(s, key string) int {
	for i := 0; i+len(key) <= len(s); i++ {
		if strings.EqualFold(s[i:i+len(key)], key) {
			return i
		}
	}
	return -1
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
