package modkit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	phttp "datesieve/internal/platform/net/http"
)

func TestBuild_LaterOptionsWin(t *testing.T) {
	b := Build(WithName("dates"), WithPrefix("dates/"), WithSwagger(true), WithPrefix(" /scan/ "))
	if b.Name != "dates" || b.Prefix != "/scan" || !b.SwaggerOn {
		t.Fatalf("Build = %+v", b)
	}
}

func TestBuild_PanicsWithoutNameOrPrefix(t *testing.T) {
	for name, opts := range map[string][]Option{
		"no name":   {WithPrefix("/dates")},
		"no prefix": {WithName("dates")},
		"root":      {WithName("dates"), WithPrefix("/")},
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("expected panic")
				}
			}()
			Build(opts...)
		})
	}
}

func TestBuilt_MountAppliesMiddlewares(t *testing.T) {
	var order []string
	mark := func(tag string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, tag)
				next.ServeHTTP(w, r)
			})
		}
	}
	b := Build(WithName("dates"), WithPrefix("/dates"), WithMiddlewares(mark("a")), WithMiddlewares(mark("b")))

	root := phttp.AdaptChi(chi.NewRouter())
	b.Mount(root, func(r phttp.Router) {
		r.Get("/formats", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusTeapot) })
	})

	rec := httptest.NewRecorder()
	root.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dates/formats", nil))
	if rec.Code != http.StatusTeapot {
		t.Fatalf("status = %d", rec.Code)
	}
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("middleware order = %v", order)
	}
}
