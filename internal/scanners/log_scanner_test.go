package scanners_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"elb-log-reports/internal/models"
	objectsourcemocks "elb-log-reports/internal/objectsources/mocks"
	"elb-log-reports/internal/parsers"
	parsermocks "elb-log-reports/internal/parsers/mocks"
	"elb-log-reports/internal/scanners"
	"elb-log-reports/internal/shared/svcerrors"
	"elb-log-reports/internal/streams"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func logLine(timestamp, status, path string) string {
	return fmt.Sprintf(`http %s myelb 10.0.0.1:443 10.0.0.2:80 0.001 0.002 0.003 %s %s 100 200 "GET http://example.com%s HTTP/1.1" "curl/7.0" - - arn:aws:elasticloadbalancing:us-west-2:1:targetgroup/tg/abc Root=1-abc`,
		timestamp, status, status, path)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustRange(t *testing.T, from, to string) models.TimeRange {
	t.Helper()
	tr, err := models.NewAbsoluteTimeRange(from, to)
	require.NoError(t, err)
	return tr
}

func newScanner(source *objectsourcemocks.MockObjectSource, opts scanners.Options) scanners.LogScanner {
	return scanners.NewLogScanner(source, streams.NewOrderedFetcher(source, 1), parsers.NewRecordParser(), opts)
}

func paths(t *testing.T, seq func(yield func(*models.LogRecord, error) bool)) ([]string, []error) {
	t.Helper()
	var got []string
	var errs []error
	for record, err := range seq {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		got = append(got, record.Path)
	}
	return got, errs
}

func TestLogScanner_CanonicalOrder(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	source := objectsourcemocks.NewMockObjectSource(ctrl)

	gomock.InOrder(
		source.EXPECT().DayObjects(gomock.Any(), day(2017, 10, 15)).Return([]string{"d15/a", "d15/b"}, nil),
		source.EXPECT().DayObjects(gomock.Any(), day(2017, 10, 16)).Return([]string{"d16/a"}, nil),
	)
	source.EXPECT().ReadObject(gomock.Any(), "d15/a").Return([]byte(
		logLine("2017-10-15T10:00:00.000000Z", "200", "/1")+"\n"+
			logLine("2017-10-15T09:00:00.000000Z", "200", "/2")+"\n"), nil)
	source.EXPECT().ReadObject(gomock.Any(), "d15/b").Return([]byte(
		"\n   \n"+logLine("2017-10-15T08:00:00.000000Z", "200", "/3")), nil)
	source.EXPECT().ReadObject(gomock.Any(), "d16/a").Return([]byte(
		logLine("2017-10-16T00:00:00.000000Z", "200", "/4")+"\r\n"), nil)

	scanner := newScanner(source, scanners.Options{})
	got, errs := paths(t, scanner.Records(context.Background(), mustRange(t, "2017/10/15", "2017/10/16")))

	assert.Empty(t, errs)
	// File order is kept; records are never re-sorted by timestamp.
	assert.Equal(t, []string{"/1", "/2", "/3", "/4"}, got)
}

func TestLogScanner_ParseErrorsAreYieldedAndScanningContinues(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	source := objectsourcemocks.NewMockObjectSource(ctrl)

	source.EXPECT().DayObjects(gomock.Any(), day(2017, 10, 15)).Return([]string{"obj"}, nil)
	source.EXPECT().ReadObject(gomock.Any(), "obj").Return([]byte(strings.Join([]string{
		logLine("2017-10-15T10:00:00.000000Z", "200", "/ok1"),
		"http truncated line",
		logLine("not-a-timestamp", "200", "/bad"),
		logLine("2017-10-15T11:00:00.000000Z", "200", "/ok2"),
	}, "\n")), nil)

	scanner := newScanner(source, scanners.Options{})
	got, errs := paths(t, scanner.Records(context.Background(), mustRange(t, "2017/10/15", "2017/10/15")))

	assert.Equal(t, []string{"/ok1", "/ok2"}, got)
	require.Len(t, errs, 2)

	lineErr, ok := scanners.AsLineError(errs[0])
	require.True(t, ok)
	assert.Equal(t, "obj", lineErr.ObjectKey)
	assert.Equal(t, 2, lineErr.LineNumber)
	parseErr, ok := parsers.AsParseError(errs[0])
	require.True(t, ok)
	assert.Equal(t, parsers.KindTruncated, parseErr.Kind)

	lineErr, ok = scanners.AsLineError(errs[1])
	require.True(t, ok)
	assert.Equal(t, 3, lineErr.LineNumber)
	parseErr, ok = parsers.AsParseError(errs[1])
	require.True(t, ok)
	assert.Equal(t, parsers.KindBadTimestamp, parseErr.Kind)
}

func TestLogScanner_UsesInjectedParser(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	source := objectsourcemocks.NewMockObjectSource(ctrl)
	parser := parsermocks.NewMockRecordParser(ctrl)

	source.EXPECT().DayObjects(gomock.Any(), gomock.Any()).Return([]string{"obj"}, nil)
	source.EXPECT().ReadObject(gomock.Any(), "obj").Return([]byte("first\nsecond\n"), nil)
	parser.EXPECT().Parse("first").Return(&models.LogRecord{Path: "/first"}, nil)
	parser.EXPECT().Parse("second").Return(nil, &parsers.ParseError{Kind: parsers.KindBadNumber, Field: "sent_bytes"})

	scanner := scanners.NewLogScanner(source, streams.NewOrderedFetcher(source, 1), parser, scanners.Options{})
	got, errs := paths(t, scanner.Records(context.Background(), mustRange(t, "2017/10/15", "2017/10/15")))

	assert.Equal(t, []string{"/first"}, got)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "obj:2")
}

func TestLogScanner_StopAfterFirstRecordFetchesNothingMore(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	source := objectsourcemocks.NewMockObjectSource(ctrl)

	source.EXPECT().DayObjects(gomock.Any(), day(2017, 10, 15)).Return([]string{"a", "b", "c"}, nil)
	source.EXPECT().ReadObject(gomock.Any(), "a").Return([]byte(
		logLine("2017-10-15T10:00:00.000000Z", "500", "/1")+"\n"+
			logLine("2017-10-15T10:00:01.000000Z", "500", "/2")+"\n"), nil)
	// Objects after the one holding the last wanted record are never read, nor is the second day listed.
	source.EXPECT().ReadObject(gomock.Any(), gomock.Not("a")).Times(0)

	scanner := newScanner(source, scanners.Options{})

	var got []string
	for record, err := range scanner.Records(context.Background(), mustRange(t, "2017/10/15", "2017/10/16")) {
		require.NoError(t, err)
		got = append(got, record.Path)
		break
	}
	assert.Equal(t, []string{"/1"}, got)
}

func TestLogScanner_SourceErrorsEndTheSequence(t *testing.T) {
	t.Parallel()

	listErr := svcerrors.NewUnavailableError("SRC_9000", "could not list", errors.New("denied"))
	readErr := svcerrors.NewUnavailableError("SRC_9001", "could not read", errors.New("gone"))

	t.Run("list failure", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		source := objectsourcemocks.NewMockObjectSource(ctrl)
		source.EXPECT().DayObjects(gomock.Any(), day(2017, 10, 15)).Return(nil, listErr)

		scanner := newScanner(source, scanners.Options{SkipUnreadableObjects: true})
		got, errs := paths(t, scanner.Records(context.Background(), mustRange(t, "2017/10/15", "2017/10/16")))

		assert.Empty(t, got)
		require.Len(t, errs, 1)
		assert.ErrorIs(t, errs[0], listErr)
	})

	t.Run("read failure", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		source := objectsourcemocks.NewMockObjectSource(ctrl)
		source.EXPECT().DayObjects(gomock.Any(), day(2017, 10, 15)).Return([]string{"a", "b"}, nil)
		source.EXPECT().ReadObject(gomock.Any(), "a").Return(nil, readErr)
		source.EXPECT().ReadObject(gomock.Any(), "b").Return([]byte(logLine("2017-10-15T10:00:00Z", "200", "/b")), nil).MaxTimes(1)

		scanner := newScanner(source, scanners.Options{})
		got, errs := paths(t, scanner.Records(context.Background(), mustRange(t, "2017/10/15", "2017/10/15")))

		assert.Empty(t, got)
		require.Len(t, errs, 1)
		assert.ErrorIs(t, errs[0], readErr)
	})
}

func TestLogScanner_SkipUnreadableObjects(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	source := objectsourcemocks.NewMockObjectSource(ctrl)

	readErr := svcerrors.NewUnavailableError("SRC_9003", "could not decompress", errors.New("bad gzip"))
	source.EXPECT().DayObjects(gomock.Any(), day(2017, 10, 15)).Return([]string{"a", "b"}, nil)
	source.EXPECT().ReadObject(gomock.Any(), "a").Return(nil, readErr)
	source.EXPECT().ReadObject(gomock.Any(), "b").Return([]byte(logLine("2017-10-15T10:00:00.000000Z", "200", "/b")), nil)

	scanner := newScanner(source, scanners.Options{SkipUnreadableObjects: true})
	got, errs := paths(t, scanner.Records(context.Background(), mustRange(t, "2017/10/15", "2017/10/15")))

	assert.Empty(t, errs)
	assert.Equal(t, []string{"/b"}, got)
}

func TestLogScanner_CancelledContext(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	source := objectsourcemocks.NewMockObjectSource(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	scanner := newScanner(source, scanners.Options{})
	got, errs := paths(t, scanner.Records(ctx, mustRange(t, "2017/10/15", "2017/10/15")))

	assert.Empty(t, got)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], context.Canceled)
}
