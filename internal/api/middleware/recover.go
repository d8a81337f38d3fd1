package middleware

import (
	"fmt"
	"net/http"

	"github.com/phrazzld/flashdeck/internal/api/shared"
)

// Recoverer turns a panic in a handler into a JSON 500 response in the same
// shape as every other error. http.ErrAbortHandler is re-raised.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			err := fmt.Errorf("handler panicked: %v", rec)
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Internal Server Error", err)
		}()

		next.ServeHTTP(w, r)
	})
}
