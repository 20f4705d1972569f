package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bjaus/jsontab"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const ordersJSON = `[{"id":1,"items":[{"k":"a"},{"k":"b"}]},{"id":2,"items":[]}]`

const ordersCSV = "id,items\n,k\n1,a\n,b\n2,\n"

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// resetFlags restores the global flag state after a test.
func resetFlags(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	oldFormat, oldFrom, oldOutput, oldConfig, oldLogger := format, from, output, configPath, logger
	t.Cleanup(func() {
		format, from, output, configPath, logger = oldFormat, oldFrom, oldOutput, oldConfig, oldLogger
	})
	format, from, output, configPath = string(jsontab.CSV), "", "", ""
	core, logs := observer.New(zapcore.DebugLevel)
	logger = zap.New(core)
	return logs
}

func newCommand(stdin string) (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{}
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	return cmd, &out
}

func TestConvertFileToStdout(t *testing.T) {
	src := writeFile(t, "orders.json", ordersJSON)
	var out bytes.Buffer
	rep, err := convertFile(nil, &out, src, "", jsontab.CSV, jsontab.JSON, jsontab.CSVOptions())
	require.NoError(t, err)
	assert.Equal(t, ordersCSV, out.String())
	assert.Equal(t, report{Output: "-", InputBytes: len(ordersJSON), OutputBytes: len(ordersCSV)}, rep)
}

func TestConvertFileFromStdin(t *testing.T) {
	var out bytes.Buffer
	rep, err := convertFile(strings.NewReader("a: x\n"), &out, "-", "-", jsontab.CSV, jsontab.YAML, jsontab.CSVOptions())
	require.NoError(t, err)
	assert.Equal(t, "a\nx\n", out.String())
	assert.Equal(t, "-", rep.Output)
}

func TestConvertFileToFile(t *testing.T) {
	src := writeFile(t, "orders.json", ordersJSON)
	dst := filepath.Join(t.TempDir(), "nested", "orders.csv")
	var out bytes.Buffer
	rep, err := convertFile(nil, &out, src, dst, jsontab.CSV, jsontab.JSON, jsontab.CSVOptions())
	require.NoError(t, err)
	assert.Empty(t, out.String())
	assert.Equal(t, dst, rep.Output)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, ordersCSV, string(data))
}

func TestConvertFileHTML(t *testing.T) {
	var out bytes.Buffer
	_, err := convertFile(strings.NewReader(`{"a":"<b>"}`), &out, "-", "", jsontab.HTML, jsontab.JSON, jsontab.HTML.Options())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "<th>a</th>")
	assert.Contains(t, out.String(), "<td>&lt;b&gt;</td>")
}

func TestConvertFileErrors(t *testing.T) {
	tests := map[string]struct {
		src    func(t *testing.T) string
		target error
		msg    string
	}{
		"missing input": {
			src:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "absent.json") },
			target: os.ErrNotExist,
			msg:    "read ",
		},
		"invalid json": {
			src:    func(t *testing.T) string { return writeFile(t, "bad.json", `{"a":`) },
			target: jsontab.ErrInvalidInput,
			msg:    "parse ",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			_, err := convertFile(nil, &out, tt.src(t), "", jsontab.CSV, jsontab.JSON, jsontab.CSVOptions())
			require.ErrorIs(t, err, tt.target)
			assert.Contains(t, err.Error(), tt.msg)
			assert.Empty(t, out.String())
		})
	}
}

func TestLoadOptions(t *testing.T) {
	path := writeFile(t, "opts.yaml", "column_delimiter: \";\"\nescape_triggers: [\";\"]\n")
	opts, err := loadOptions(path, jsontab.CSVOptions())
	require.NoError(t, err)
	assert.Equal(t, ";", opts.ColumnDelimiter)
	assert.Equal(t, []string{";"}, opts.EscapeTriggers)
	// Keys absent from the file keep the preset's values.
	assert.Equal(t, `"`, opts.CellLeftDelimiter)
	assert.True(t, opts.DeduplicateHeaders)
}

func TestLoadOptionsErrors(t *testing.T) {
	_, err := loadOptions(filepath.Join(t.TempDir(), "absent.yaml"), jsontab.CSVOptions())
	require.ErrorIs(t, err, os.ErrNotExist)

	path := writeFile(t, "bad.yaml", "pad_cells: [\n")
	_, err = loadOptions(path, jsontab.CSVOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestRunConvert(t *testing.T) {
	logs := resetFlags(t)
	cmd, out := newCommand(ordersJSON)
	require.NoError(t, runConvert(cmd, nil))
	assert.Equal(t, ordersCSV, out.String())

	entries := logs.FilterMessage("converted").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "-", fields["input"])
	assert.Equal(t, "-", fields["output"])
	assert.Equal(t, "csv", fields["format"])
	assert.Equal(t, int64(len(ordersJSON)), fields["input_bytes"])
	assert.Equal(t, int64(len(ordersCSV)), fields["output_bytes"])
}

func TestRunConvertWithConfig(t *testing.T) {
	logs := resetFlags(t)
	format = string(jsontab.Table)
	from = "jsonl"
	configPath = writeFile(t, "opts.yaml", "column_delimiter: \" | \"\nheader_separator: \"=\"\n")
	cmd, out := newCommand("{\"a\":\"x\",\"b\":\"yy\"}\n")
	require.NoError(t, runConvert(cmd, nil))
	assert.Equal(t, "a | b \n======\nx | yy\n", out.String())
	assert.Equal(t, 1, logs.FilterMessage("loaded options").Len())
}

func TestRunConvertHTMLWithConfig(t *testing.T) {
	resetFlags(t)
	format = string(jsontab.HTML)
	configPath = writeFile(t, "opts.yaml", "deduplicate_headers: false\n")
	cmd, out := newCommand(`{"o":{"k":"v"}}`)
	require.NoError(t, runConvert(cmd, nil))
	assert.Contains(t, out.String(), "<th>o.k</th>")
}

func TestRunConvertFileArgument(t *testing.T) {
	resetFlags(t)
	src := writeFile(t, "doc.yaml", "- k: v\n")
	output = filepath.Join(t.TempDir(), "out.tsv")
	format = string(jsontab.TSV)
	cmd, out := newCommand("")
	require.NoError(t, runConvert(cmd, []string{src}))
	assert.Empty(t, out.String())

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "k\nv\n", string(data))
}

func TestRunConvertErrors(t *testing.T) {
	tests := map[string]struct {
		setup  func()
		stdin  string
		target error
	}{
		"bad format": {
			setup:  func() { format = "xml" },
			target: jsontab.ErrUnsupportedFormat,
		},
		"bad syntax": {
			setup:  func() { from = "toml" },
			target: jsontab.ErrUnsupportedSyntax,
		},
		"bad input": {
			setup:  func() {},
			stdin:  "[1,",
			target: jsontab.ErrInvalidInput,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			logs := resetFlags(t)
			tt.setup()
			cmd, out := newCommand(tt.stdin)
			err := runConvert(cmd, nil)
			require.ErrorIs(t, err, tt.target)
			assert.Empty(t, out.String())
			assert.Equal(t, 0, logs.FilterMessage("converted").Len())
		})
	}
}

func TestRunConvertLogsFailure(t *testing.T) {
	logs := resetFlags(t)
	cmd, _ := newCommand("{")
	require.Error(t, runConvert(cmd, nil))
	entries := logs.FilterMessage("conversion failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
}
