package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testLine = `http 2017-10-15T12:00:00.123456Z myelb 10.0.0.1:443 10.0.0.2:80 0.001 0.002 0.003 404 404 100 200 "GET http://example.com/foo?x=1 HTTP/1.1" "curl/7.68.0" - - arn:aws:elasticloadbalancing:us-west-2:1:targetgroup/tg/abc trace1`

// writeLocalBucket lays out one gzip object under the 2017/10/15 partition and a config
// pointing the local backend at it.
func writeLocalBucket(t *testing.T, rootDir string) string {
	t.Helper()

	key := filepath.Join(rootDir, "webservices", "AWSLogs", "1", "elasticloadbalancing", "us-west-2", "2017", "10", "15", "a.log.gz")
	require.NoError(t, os.MkdirAll(filepath.Dir(key), 0o755))

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(testLine + "\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, os.WriteFile(key, buf.Bytes(), 0o644))

	configPath := filepath.Join(t.TempDir(), "configs.yml")
	config := "log:\n  level: error\n  format: json\n" +
		"source:\n  backend: local\n  root_dir: " + rootDir + "\n  prefix: webservices\n  account_id: \"1\"\n  region: us-west-2\n"
	require.NoError(t, os.WriteFile(configPath, []byte(config), 0o644))
	return configPath
}

func run(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestExecute_GetCodesFromLocalBucket(t *testing.T) {
	t.Parallel()

	configPath := writeLocalBucket(t, t.TempDir())

	code, stdout, _ := run("getcodes", "--from", "2017/10/15", "--to", "2017/10/15", "--config", configPath)

	assert.Equal(t, exitOK, code)
	assert.Equal(t, "404 - 404 - 2017-10-15 12:00:00 - GET http://example.com/foo?x=1 HTTP/1.1\n", stdout)
}

func TestExecute_NoDataInRange(t *testing.T) {
	t.Parallel()

	configPath := writeLocalBucket(t, t.TempDir())

	code, stdout, _ := run("getcodes", "--from", "2019/01/01", "--to", "2019/01/01", "--config", configPath)

	assert.Equal(t, exitOK, code)
	assert.Empty(t, stdout)
}

func TestExecute_UsageErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{name: "no report", args: []string{"--for", "1", "days"}},
		{name: "unknown report", args: []string{"getall", "--for", "1", "days"}},
		{name: "no time range", args: []string{"getcodes"}},
		{name: "from without to", args: []string{"getcodes", "--from", "2017/10/15"}},
		{name: "unknown unit", args: []string{"getcodes", "--for", "1", "weeks"}},
		{name: "stray argument", args: []string{"getcodes", "extra", "--from", "2017/10/15", "--to", "2017/10/15"}},
		{name: "unknown flag", args: []string{"getcodes", "--verbose"}},
		{name: "non numeric max", args: []string{"getcodes", "--for", "1", "days", "--max", "ten"}},
		{name: "missing config file", args: []string{"getcodes", "--for", "1", "days", "--config", "/nonexistent/configs.yml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			code, stdout, stderr := run(tt.args...)

			assert.Equal(t, exitUsageError, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, "elbreport: ")
		})
	}
}

func TestExecute_SourceUnavailable(t *testing.T) {
	t.Parallel()

	missingRoot := filepath.Join(t.TempDir(), "gone")
	config := "log:\n  level: error\nsource:\n  backend: local\n  root_dir: " + missingRoot + "\n"
	configPath := filepath.Join(t.TempDir(), "configs.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(config), 0o644))

	code, stdout, stderr := run("getcodes", "--for", "1", "days", "--config", configPath)

	assert.Equal(t, exitSourceError, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "SRC_9002")
}

func TestRequestParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		wantFor  string
		wantCode *int
		wantMax  *int
	}{
		{name: "value and unit as two words", args: []string{"getcodes", "--for", "7", "days"}, wantFor: "7 days"},
		{name: "quoted", args: []string{"getcodes", "--for", "7 days"}, wantFor: "7 days"},
		{name: "code and max", args: []string{"getcodes", "--for", "1", "hours", "--code", "503", "--max", "10"}, wantFor: "1 hours", wantCode: intPtr(503), wantMax: intPtr(10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cmd := newRootCmd()
			require.NoError(t, cmd.ParseFlags(tt.args))
			opts := optionsOf(t, cmd.Flags())

			params, err := requestParams(cmd.Flags(), opts, cmd.Flags().Args())
			require.NoError(t, err)
			assert.Equal(t, "getcodes", params.Report)
			assert.Equal(t, tt.wantFor, params.For)
			assert.Equal(t, tt.wantCode, params.Code)
			assert.Equal(t, tt.wantMax, params.Max)
		})
	}
}

func optionsOf(t *testing.T, flags *pflag.FlagSet) *reportOptions {
	t.Helper()
	opts := &reportOptions{}
	var err error
	opts.forValue, err = flags.GetString("for")
	require.NoError(t, err)
	opts.code, err = flags.GetInt("code")
	require.NoError(t, err)
	opts.max, err = flags.GetInt("max")
	require.NoError(t, err)
	return opts
}

func intPtr(v int) *int { return &v }
