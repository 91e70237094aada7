package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReportKindFromString(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"getcodes", "geturls", "getUAs", "getreport"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			kind, err := NewReportKindFromString(name)
			require.NoError(t, err)
			assert.Equal(t, ReportKind(name), kind)
		})
	}

	_, err := NewReportKindFromString("getuas")
	assert.Error(t, err, "report names are case-sensitive")

	_, err = NewReportKindFromString("getstuff")
	assert.Error(t, err)
}

func TestReportRequest_IsBounded(t *testing.T) {
	t.Parallel()

	assert.False(t, (&ReportRequest{Max: Unbounded}).IsBounded())
	assert.False(t, (&ReportRequest{Max: -7}).IsBounded())
	assert.True(t, (&ReportRequest{Max: 0}).IsBounded())
	assert.True(t, (&ReportRequest{Max: 5}).IsBounded())
}

func TestLogRecord_ELBStatus(t *testing.T) {
	t.Parallel()

	code, ok := (&LogRecord{ELBStatusCode: "502"}).ELBStatus()
	assert.True(t, ok)
	assert.Equal(t, 502, code)

	_, ok = (&LogRecord{ELBStatusCode: "-"}).ELBStatus()
	assert.False(t, ok)

	_, ok = (&LogRecord{ELBStatusCode: ""}).ELBStatus()
	assert.False(t, ok)
}
