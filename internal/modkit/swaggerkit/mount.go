// Package swaggerkit serves the OpenAPI document and swagger ui under /api/docs
package swaggerkit

import (
	"net/http"

	phttp "datesieve/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

const (
	docsRoot = "/api/docs"
	docJSON  = docsRoot + "/doc.json"
)

// Mount adds the docs routes to r when enabled
// /api/docs redirects to the ui, which loads the document from doc.json
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	r.Get(docsRoot, func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, docsRoot+"/", http.StatusPermanentRedirect)
	})
	r.Get(docJSON, serveDocJSON())
	r.Handle(docsRoot+"/*", httpSwagger.Handler(
		httpSwagger.InstanceName("api"),
		httpSwagger.URL(docJSON),
		httpSwagger.DocExpansion("list"),
	))
}
