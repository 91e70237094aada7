package reports

import (
	"fmt"
	"strings"

	"elb-log-reports/internal/models"

	"github.com/mileusna/useragent"
)

// Formatter renders one report line, without the trailing newline.
type Formatter func(record *models.LogRecord) string

const separator = " - "

var formatters = map[models.ReportKind]Formatter{
	// 404 - 404 - 2017-10-15 12:00:00 - GET http://example.com/foo?x=1 HTTP/1.1
	models.ReportGetCodes: func(record *models.LogRecord) string {
		return strings.Join([]string{
			record.ELBStatusCode,
			record.TargetStatusCode,
			timestamp(record),
			record.Request,
		}, separator)
	},
	// 2017-10-15 12:00:00 - GET - http://example.com/foo?x=1
	models.ReportGetURLs: func(record *models.LogRecord) string {
		return strings.Join([]string{
			timestamp(record),
			record.Method,
			requestURL(record),
		}, separator)
	},
	// 2017-10-15 12:00:00 - Chrome - Mozilla/5.0 (...) Chrome/90.0 Safari/537.36
	models.ReportGetUAs: func(record *models.LogRecord) string {
		return strings.Join([]string{
			timestamp(record),
			userAgentFamily(record.UserAgent),
			record.UserAgent,
		}, separator)
	},
	// 2017-10-15 12:00:00 - myelb - 10.0.0.1:443 - 404 - 404 - 0.006000 - GET http://... HTTP/1.1
	models.ReportGetReport: func(record *models.LogRecord) string {
		return strings.Join([]string{
			timestamp(record),
			record.ELBName,
			record.ClientPort,
			record.ELBStatusCode,
			record.TargetStatusCode,
			fmt.Sprintf("%.6f", record.TotalProcessingTime()),
			record.Request,
		}, separator)
	},
}

func timestamp(record *models.LogRecord) string {
	return record.Timestamp.UTC().Format(models.TimestampLayout)
}

// requestURL rebuilds the URL from its decomposed parts so hosts come out lower-cased.
func requestURL(record *models.LogRecord) string {
	var b strings.Builder
	if record.RequestProtocol != "" {
		b.WriteString(record.RequestProtocol)
		b.WriteString("://")
		b.WriteString(record.RequestHost)
	}
	b.WriteString(record.Path)
	if record.QueryString != "" {
		b.WriteByte('?')
		b.WriteString(record.QueryString)
	}
	return b.String()
}

// userAgentFamily returns the browser or client name, "-" when the agent is not recognised.
func userAgentFamily(ua string) string {
	parsed := useragent.Parse(ua)
	if parsed.Name != "" {
		return parsed.Name
	}
	return "-"
}
