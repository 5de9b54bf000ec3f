package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// pathParam binds the chi URL parameter name into dst with OpenAPI "simple"
// style, which also unescapes percent-encoded values.
func pathParam(r *http.Request, name string, dst any) error {
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), dst,
		runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
	if err != nil {
		return badRequest("Invalid format for parameter %s: %v", name, err)
	}
	return nil
}

// tripID binds the {id} path parameter.
func tripID(r *http.Request) (int64, error) {
	var id int64
	if err := pathParam(r, "id", &id); err != nil {
		return 0, err
	}
	return id, nil
}

// queryParam binds a "form" style query parameter into dst. For optional
// parameters dst must point to a pointer, which stays nil when absent.
func queryParam(r *http.Request, name string, required bool, dst any) error {
	if err := runtime.BindQueryParameter("form", true, required, name, r.URL.Query(), dst); err != nil {
		return badRequest("Invalid format for parameter %s: %v", name, err)
	}
	return nil
}
