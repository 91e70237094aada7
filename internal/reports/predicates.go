package reports

import (
	"elb-log-reports/internal/models"
)

// Predicate decides whether a record in the window produces a report line.
type Predicate func(record *models.LogRecord, req *models.ReportRequest) bool

// predicates is the emission table. Every kind goes through the same count and max handling;
// only the decision differs. With --code set, every kind narrows to that load balancer status.
var predicates = map[models.ReportKind]Predicate{
	models.ReportGetCodes: func(record *models.LogRecord, req *models.ReportRequest) bool {
		status, ok := record.ELBStatus()
		if !ok {
			return false
		}
		if req.Code != nil {
			return status == *req.Code
		}
		return status >= 400
	},
	models.ReportGetURLs: func(record *models.LogRecord, req *models.ReportRequest) bool {
		return record.Path != "" && matchesCode(record, req.Code)
	},
	models.ReportGetUAs: func(record *models.LogRecord, req *models.ReportRequest) bool {
		return record.UserAgent != "" && record.UserAgent != "-" && matchesCode(record, req.Code)
	},
	models.ReportGetReport: func(record *models.LogRecord, req *models.ReportRequest) bool {
		return matchesCode(record, req.Code)
	},
}

func matchesCode(record *models.LogRecord, code *int) bool {
	if code == nil {
		return true
	}
	status, ok := record.ELBStatus()
	return ok && status == *code
}
