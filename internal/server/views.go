package server

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed views
var viewsFS embed.FS

// NewViewEngine returns the HTML template engine over the embedded views.
// Templates receive plain maps from the handlers; stored text is already
// escaped at write time, so templates render it verbatim.
func NewViewEngine() *html.Engine {
	sub, err := fs.Sub(viewsFS, "views")
	if err != nil {
		panic(err)
	}
	return html.NewFileSystem(http.FS(sub), ".html")
}
