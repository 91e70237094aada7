package models

import (
	"strings"
	"time"
)

// PartitionLayout locates the day partitions the load balancer writes its logs under:
//
//	<prefix>/AWSLogs/<account-id>/elasticloadbalancing/<region>/YYYY/MM/DD
//
// For example, prefix "webservices", account "158469572311" and region "us-west-2" give
// "webservices/AWSLogs/158469572311/elasticloadbalancing/us-west-2/2017/10/15" for 2017-10-15.
type PartitionLayout struct {
	Prefix    string
	AccountID string
	Region    string
}

// DayKey returns the partition key for the calendar day of t (UTC). Empty segments are skipped.
func (l PartitionLayout) DayKey(t time.Time) string {
	segments := make([]string, 0, 6)
	if p := strings.Trim(l.Prefix, "/"); p != "" {
		segments = append(segments, p)
	}
	segments = append(segments, "AWSLogs")
	if l.AccountID != "" {
		segments = append(segments, l.AccountID)
	}
	segments = append(segments, "elasticloadbalancing")
	if l.Region != "" {
		segments = append(segments, l.Region)
	}
	segments = append(segments, t.UTC().Format("2006/01/02"))
	return strings.Join(segments, "/")
}
