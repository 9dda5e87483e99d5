package handler

import (
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

const (
	// DataStarAcceptHeader marks a request issued by a Datastar @get/@post action.
	DataStarAcceptHeader = "text/event-stream"

	// DataStarQueryParam carries signals on Datastar GET requests.
	DataStarQueryParam = "datastar"
)

// PatchPrepend inserts a fragment as the first child of the target. Toasts use
// it so the newest notification shows on top.
const PatchPrepend = datastar.ElementPatchModePrepend

// IsDataStar reports whether the request came from Datastar and expects an
// event stream of element patches instead of a full page.
func IsDataStar(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), DataStarAcceptHeader) {
		return true
	}
	return r.URL.Query().Has(DataStarQueryParam)
}

// NewSSE opens the event stream for a Datastar response.
func NewSSE(w http.ResponseWriter, r *http.Request) *datastar.ServerSentEventGenerator {
	return datastar.NewSSE(w, r)
}
