// Package templates holds the preview page and its stylesheet.
package templates

import (
	"embed"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed *.html
var FS embed.FS

//go:embed style.css
var stylesheet []byte

// NewEngine returns the html engine over the embedded pages. Pages are named
// by file name without extension, e.g. "preview".
func NewEngine() *html.Engine {
	return html.NewFileSystem(http.FS(FS), ".html")
}

// Stylesheet returns the CSS inlined into every page.
func Stylesheet() []byte {
	out := make([]byte, len(stylesheet))
	copy(out, stylesheet)
	return out
}
