package models

import (
	"strconv"
	"time"
)

// LogRecord is one parsed load-balancer access-log entry. It is built once by the record
// parser and never mutated afterwards.
//
// Example raw line (one line, wrapped here):
//
//	http 2017-10-15T12:00:00.123456Z myelb 10.0.0.1:443 10.0.0.2:80 0.001 0.002 0.003 404 404 100 200
//	"GET http://example.com/foo?x=1 HTTP/1.1" "curl/7.0" - - arn:aws:... Root=1-abc
//
// decodes to Method "GET", RequestProtocol "http", RequestHost "example.com", Path "/foo",
// QueryString "x=1" and Timestamp 2017-10-15 12:00:00 UTC.
type LogRecord struct {
	Type      string
	Timestamp time.Time
	ELBName   string

	ClientPort string
	TargetPort string

	RequestProcessingTime  float64
	TargetProcessingTime   float64
	ResponseProcessingTime float64

	ELBStatusCode    string
	TargetStatusCode string

	ReceivedBytes int64
	SentBytes     int64

	Request         string
	Method          string
	RequestProtocol string
	RequestHost     string
	Path            string
	QueryString     string

	UserAgent      string
	SSLCipher      string
	SSLProtocol    string
	TargetGroupARN string
	TraceID        string
}

// ELBStatus returns the load balancer status code as an int.
// ok is false when the code is empty, "-" or otherwise non-numeric.
func (r *LogRecord) ELBStatus() (code int, ok bool) {
	code, err := strconv.Atoi(r.ELBStatusCode)
	if err != nil {
		return 0, false
	}
	return code, true
}

// TotalProcessingTime sums the three processing times. Sentinel values (-1) are summed as-is.
func (r *LogRecord) TotalProcessingTime() float64 {
	return r.RequestProcessingTime + r.TargetProcessingTime + r.ResponseProcessingTime
}
