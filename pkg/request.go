package pkg

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// PathIntVar reads an integer mux path variable. On failure it writes a 400
// response and returns false.
func PathIntVar(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	valStr := mux.Vars(r)[name]
	if valStr == "" {
		WriteBadRequest(w, "error, "+name+" empty")
		return 0, false
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		WriteBadRequest(w, "error, "+name+" NaN")
		return 0, false
	}
	return val, true
}
