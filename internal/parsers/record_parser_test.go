package parsers

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLine = `http 2017-10-15T12:00:00.123456Z myelb 10.0.0.1:443 10.0.0.2:80 0.001 0.002 0.003 404 404 100 200 "GET http://example.com/foo?x=1 HTTP/1.1" "curl/7.0" - - arn:aws:elasticloadbalancing:us-west-2:1:targetgroup/tg/abc trace1`

// lineWith replaces the field at index in sampleLine's token list and rebuilds a line,
// quoting the request and user agent fields.
func lineWith(index int, value string) string {
	fields := Tokenize(sampleLine)
	fields[index] = value
	for _, quoted := range []int{fieldRequest, fieldUserAgent} {
		fields[quoted] = `"` + fields[quoted] + `"`
	}
	return strings.Join(fields, " ")
}

func TestRecordParser_Parse_SampleLine(t *testing.T) {
	t.Parallel()

	record, err := NewRecordParser().Parse(sampleLine)
	require.NoError(t, err)

	assert.Equal(t, "http", record.Type)
	assert.Equal(t, time.Date(2017, 10, 15, 12, 0, 0, 0, time.UTC), record.Timestamp)
	assert.Equal(t, "myelb", record.ELBName)
	assert.Equal(t, "10.0.0.1:443", record.ClientPort)
	assert.Equal(t, "10.0.0.2:80", record.TargetPort)
	assert.InDelta(t, 0.001, record.RequestProcessingTime, 1e-9)
	assert.InDelta(t, 0.002, record.TargetProcessingTime, 1e-9)
	assert.InDelta(t, 0.003, record.ResponseProcessingTime, 1e-9)
	assert.Equal(t, "404", record.ELBStatusCode)
	assert.Equal(t, "404", record.TargetStatusCode)
	assert.Equal(t, int64(100), record.ReceivedBytes)
	assert.Equal(t, int64(200), record.SentBytes)
	assert.Equal(t, "GET http://example.com/foo?x=1 HTTP/1.1", record.Request)
	assert.Equal(t, "GET", record.Method)
	assert.Equal(t, "http", record.RequestProtocol)
	assert.Equal(t, "example.com", record.RequestHost)
	assert.Equal(t, "/foo", record.Path)
	assert.Equal(t, "x=1", record.QueryString)
	assert.Equal(t, "curl/7.0", record.UserAgent)
	assert.Equal(t, "-", record.SSLCipher)
	assert.Equal(t, "-", record.SSLProtocol)
	assert.Equal(t, "arn:aws:elasticloadbalancing:us-west-2:1:targetgroup/tg/abc", record.TargetGroupARN)
	assert.Equal(t, "trace1", record.TraceID)
}

func TestRecordParser_Parse_IsDeterministic(t *testing.T) {
	t.Parallel()

	parser := NewRecordParser()
	first, err := parser.Parse(sampleLine)
	require.NoError(t, err)
	second, err := parser.Parse(sampleLine)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRecordParser_Parse_ExtraTrailingFieldsIgnored(t *testing.T) {
	t.Parallel()

	line := sampleLine + ` "example.com" "arn:cert" 0 2017-10-15T11:59:59.000000Z "forward" "-" "-" "10.0.0.2:80" "404"`
	record, err := NewRecordParser().Parse(line)
	require.NoError(t, err)
	assert.Equal(t, "trace1", record.TraceID)
}

func TestRecordParser_Parse_NegativeSentinelsPreserved(t *testing.T) {
	t.Parallel()

	line := `http 2017-10-15T12:00:00.000000Z myelb 10.0.0.1:443 - -1 -1 -1 503 - 0 0 "GET http://example.com/ HTTP/1.1" "-" - - - -`
	record, err := NewRecordParser().Parse(line)
	require.NoError(t, err)
	assert.Equal(t, -1.0, record.RequestProcessingTime)
	assert.Equal(t, -1.0, record.TargetProcessingTime)
	assert.Equal(t, -1.0, record.ResponseProcessingTime)
	assert.Equal(t, "-", record.TargetStatusCode)
	assert.Equal(t, "-", record.TargetPort)
}

func TestRecordParser_Parse_QuotedRequestWithInternalSpace(t *testing.T) {
	t.Parallel()

	record, err := NewRecordParser().Parse(lineWith(fieldRequest, "GET /a b HTTP/1.1"))
	require.NoError(t, err)
	assert.Equal(t, "GET /a b HTTP/1.1", record.Request)
	assert.Equal(t, "GET", record.Method)
	assert.Equal(t, "/a", record.Path)
	assert.Equal(t, "", record.RequestHost)
	assert.Equal(t, "curl/7.0", record.UserAgent, "fields after the request keep their positions")
}

func TestRecordParser_Parse_URLDecomposition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		request  string
		protocol string
		host     string
		path     string
		query    string
	}{
		{
			name:     "https with port and query",
			request:  "POST https://API.Example.com:443/v1/items?id=7&x=y HTTP/2.0",
			protocol: "https",
			host:     "api.example.com",
			path:     "/v1/items",
			query:    "id=7&x=y",
		},
		{
			name:    "path only",
			request: "GET /health HTTP/1.1",
			path:    "/health",
		},
		{
			name:    "invalid percent escape yields empty parts",
			request: "GET http://example.com/%zz HTTP/1.1",
		},
		{
			name:    "unterminated ipv6 host yields empty parts",
			request: "GET http://[fe80::1/index.html HTTP/1.1",
		},
		{
			name:    "missing url",
			request: "-",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			record, err := NewRecordParser().Parse(lineWith(fieldRequest, tt.request))
			require.NoError(t, err, "malformed urls never fail the record")
			assert.Equal(t, tt.request, record.Request)
			assert.Equal(t, tt.protocol, record.RequestProtocol)
			assert.Equal(t, tt.host, record.RequestHost)
			assert.Equal(t, tt.path, record.Path)
			assert.Equal(t, tt.query, record.QueryString)
		})
	}
}

func TestRecordParser_Parse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		line  string
		kind  ParseErrorKind
		field string
	}{
		{
			name: "truncated line",
			line: `http 2017-10-15T12:00:00.123456Z myelb 10.0.0.1:443`,
			kind: KindTruncated,
		},
		{
			name: "empty line",
			line: "",
			kind: KindTruncated,
		},
		{
			name:  "timestamp without T",
			line:  lineWith(fieldTimestamp, "2017-10-15"),
			kind:  KindBadTimestamp,
			field: "timestamp",
		},
		{
			name:  "timestamp with bad clock",
			line:  lineWith(fieldTimestamp, "2017-10-15T25:00:00.000000Z"),
			kind:  KindBadTimestamp,
			field: "timestamp",
		},
		{
			name:  "bad processing time",
			line:  lineWith(fieldTargetProcessingTime, "fast"),
			kind:  KindBadNumber,
			field: "target_processing_time",
		},
		{
			name:  "bad received bytes",
			line:  lineWith(fieldReceivedBytes, "1.5"),
			kind:  KindBadNumber,
			field: "received_bytes",
		},
		{
			name:  "bad sent bytes",
			line:  lineWith(fieldSentBytes, "-"),
			kind:  KindBadNumber,
			field: "sent_bytes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			record, err := NewRecordParser().Parse(tt.line)
			require.Error(t, err)
			assert.Nil(t, record, "no partial record on failure")

			parseErr, ok := AsParseError(err)
			require.True(t, ok, "expected ParseError")
			assert.Equal(t, tt.kind, parseErr.Kind)
			assert.Equal(t, tt.field, parseErr.Field)
		})
	}
}

func TestRecordParser_Parse_TimestampWithoutFraction(t *testing.T) {
	t.Parallel()

	record, err := NewRecordParser().Parse(lineWith(fieldTimestamp, "2017-10-15T23:59:59Z"))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2017, 10, 15, 23, 59, 59, 0, time.UTC), record.Timestamp)
}
