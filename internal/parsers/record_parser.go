package parsers

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"elb-log-reports/internal/models"
)

// Positional fields of an access-log line. Newer load balancers append more fields after
// trace_id; those are ignored.
const (
	fieldType = iota
	fieldTimestamp
	fieldELBName
	fieldClientPort
	fieldTargetPort
	fieldRequestProcessingTime
	fieldTargetProcessingTime
	fieldResponseProcessingTime
	fieldELBStatusCode
	fieldTargetStatusCode
	fieldReceivedBytes
	fieldSentBytes
	fieldRequest
	fieldUserAgent
	fieldSSLCipher
	fieldSSLProtocol
	fieldTargetGroupARN
	fieldTraceID

	minFields
)

var fieldNames = [minFields]string{
	"type",
	"timestamp",
	"elb",
	"client_port",
	"target_port",
	"request_processing_time",
	"target_processing_time",
	"response_processing_time",
	"elb_status_code",
	"target_status_code",
	"received_bytes",
	"sent_bytes",
	"request",
	"user_agent",
	"ssl_cipher",
	"ssl_protocol",
	"target_group_arn",
	"trace_id",
}

const timestampLayout = "2006-01-02 15:04:05"

//go:generate mockgen -source=record_parser.go -destination=./mocks/record_parser_mock.go -package=mocks
type RecordParser interface {
	// Parse converts one raw line into a LogRecord, or returns a *ParseError.
	Parse(line string) (*models.LogRecord, error)
}

type recordParser struct{}

func NewRecordParser() RecordParser {
	return &recordParser{}
}

func (p *recordParser) Parse(line string) (*models.LogRecord, error) {
	fields := Tokenize(line)
	if len(fields) < minFields {
		return nil, errTruncated(len(fields))
	}

	timestamp, err := parseTimestamp(fields[fieldTimestamp])
	if err != nil {
		return nil, err
	}

	var times [3]float64
	for i, field := range []int{fieldRequestProcessingTime, fieldTargetProcessingTime, fieldResponseProcessingTime} {
		v, err := strconv.ParseFloat(fields[field], 64)
		if err != nil {
			return nil, errBadNumber(field, fields[field], err)
		}
		times[i] = v
	}

	var sizes [2]int64
	for i, field := range []int{fieldReceivedBytes, fieldSentBytes} {
		v, err := strconv.ParseInt(fields[field], 10, 64)
		if err != nil {
			return nil, errBadNumber(field, fields[field], err)
		}
		sizes[i] = v
	}

	request := fields[fieldRequest]
	method, rawURL := splitRequest(request)
	target := decomposeURL(rawURL)

	return &models.LogRecord{
		Type:                   fields[fieldType],
		Timestamp:              timestamp,
		ELBName:                fields[fieldELBName],
		ClientPort:             fields[fieldClientPort],
		TargetPort:             fields[fieldTargetPort],
		RequestProcessingTime:  times[0],
		TargetProcessingTime:   times[1],
		ResponseProcessingTime: times[2],
		ELBStatusCode:          fields[fieldELBStatusCode],
		TargetStatusCode:       fields[fieldTargetStatusCode],
		ReceivedBytes:          sizes[0],
		SentBytes:              sizes[1],
		Request:                request,
		Method:                 method,
		RequestProtocol:        target.protocol,
		RequestHost:            target.host,
		Path:                   target.path,
		QueryString:            target.query,
		UserAgent:              fields[fieldUserAgent],
		SSLCipher:              fields[fieldSSLCipher],
		SSLProtocol:            fields[fieldSSLProtocol],
		TargetGroupARN:         fields[fieldTargetGroupARN],
		TraceID:                fields[fieldTraceID],
	}, nil
}

// parseTimestamp turns 2017-10-15T12:00:00.123456Z into 2017-10-15 12:00:00 UTC.
// Fractional seconds and the zone suffix are dropped.
func parseTimestamp(raw string) (time.Time, error) {
	date, clock, found := strings.Cut(raw, "T")
	if !found {
		return time.Time{}, errBadTimestamp(raw, nil)
	}
	clock, _, _ = strings.Cut(clock, ".")
	clock = strings.TrimSuffix(clock, "Z")

	ts, err := time.ParseInLocation(timestampLayout, date+" "+clock, time.UTC)
	if err != nil {
		return time.Time{}, errBadTimestamp(raw, err)
	}
	return ts, nil
}

// splitRequest returns the method and the URL from "GET https://host/path?q HTTP/1.1".
func splitRequest(request string) (method, rawURL string) {
	method, rest, _ := strings.Cut(request, " ")
	rawURL, _, _ = strings.Cut(rest, " ")
	return method, rawURL
}

type urlParts struct {
	protocol string
	host     string
	path     string
	query    string
}

// decomposeURL never fails: malformed URLs are common in hostile traffic and simply yield
// empty parts.
func decomposeURL(rawURL string) urlParts {
	if rawURL == "" {
		return urlParts{}
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return urlParts{}
	}
	return urlParts{
		protocol: u.Scheme,
		host:     strings.ToLower(u.Hostname()),
		path:     u.Path,
		query:    u.RawQuery,
	}
}
