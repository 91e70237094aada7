package models

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

type ReportKind string

const (
	ReportGetCodes  ReportKind = "getcodes"
	ReportGetURLs   ReportKind = "geturls"
	ReportGetUAs    ReportKind = "getUAs"
	ReportGetReport ReportKind = "getreport"
)

var allReportKinds = []ReportKind{ReportGetCodes, ReportGetURLs, ReportGetUAs, ReportGetReport}

// ValidReportKinds lists the report names accepted on the command line.
func ValidReportKinds() []string {
	return lo.Map(allReportKinds, func(k ReportKind, _ int) string { return string(k) })
}

// NewReportKindFromString parses a report name. Names are case-sensitive ("getUAs").
func NewReportKindFromString(s string) (ReportKind, error) {
	kind := ReportKind(strings.TrimSpace(s))
	if !lo.Contains(allReportKinds, kind) {
		return "", fmt.Errorf("invalid report %q: must be one of %v", s, ValidReportKinds())
	}
	return kind, nil
}

// Unbounded is the Max value meaning "no cap on emitted lines".
const Unbounded = -1

// ReportRequest is the read-only description of one report run.
type ReportRequest struct {
	Kind  ReportKind `validate:"required,oneof=getcodes geturls getUAs getreport"`
	Code  *int       `validate:"omitempty,min=100,max=599"`
	Range TimeRange
	Max   int
}

// IsBounded reports whether the run stops after Max emitted lines.
func (r *ReportRequest) IsBounded() bool {
	return r.Max >= 0
}
