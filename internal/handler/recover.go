package handler

import (
	"errors"
	"fmt"
	"net/http"
)

// Recoverer is middleware that turns a panic anywhere below it into the
// standard 500 response: an error log line with an error_id and a JSON body
// carrying the same id. http.ErrAbortHandler is re-raised so net/http can
// abort the connection as it expects.
//
// Mount it inside the request logger so the 500 is logged too.
func (s *Server) Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}
			s.writeError(w, r, panicError{value: rec})
		}()
		next.ServeHTTP(w, r)
	})
}

// panicError carries a recovered value through writeError. It wraps
// nothing, so a panic always maps to 500.
type panicError struct {
	value any
}

func (e panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}
