package http

import (
	"net/http"
	"strings"
)

const (
	headerRequestID   = "x-request-id"
	headerContentType = "content-type"

	contentTypeText = "text/plain; charset=utf-8"
)

// Query parameters of GET /reports/{kind}. They mirror the command-line flags.
const (
	urlParamKind = "kind"

	queryFrom = "from"
	queryTo   = "to"
	queryFor  = "for"
	queryCode = "code"
	queryMax  = "max"
)

func requestID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerRequestID))
}

func setRequestID(r *http.Request, requestID string) {
	r.Header.Set(headerRequestID, requestID)
}
