package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bjaus/jsontab"
	"gopkg.in/yaml.v3"
)

const stdio = "-"

// report describes one file-mode conversion.
type report struct {
	Output      string
	InputBytes  int
	OutputBytes int
}

// convertFile reads src (stdin for "-"), converts it and writes the result
// to dst (stdout for "" or "-").
func convertFile(stdin io.Reader, stdout io.Writer, src, dst string, f jsontab.Format, s jsontab.Syntax, o jsontab.Options) (report, error) {
	data, err := readInput(stdin, src)
	if err != nil {
		return report{}, err
	}
	v, err := jsontab.Parse(bytes.NewReader(data), s)
	if err != nil {
		return report{}, fmt.Errorf("parse %s: %w", src, err)
	}

	var buf bytes.Buffer
	if f == jsontab.HTML {
		if err := jsontab.RenderHTML(&buf, jsontab.Flatten(v), o); err != nil {
			return report{}, err
		}
	} else {
		buf.WriteString(jsontab.Convert(v, o))
	}

	rep := report{Output: dst, InputBytes: len(data), OutputBytes: buf.Len()}
	if dst == "" || dst == stdio {
		rep.Output = stdio
		if _, err := stdout.Write(buf.Bytes()); err != nil {
			return report{}, fmt.Errorf("write output: %w", err)
		}
		return rep, nil
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return report{}, fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(dst, buf.Bytes(), 0o644); err != nil {
		return report{}, fmt.Errorf("write %s: %w", dst, err)
	}
	return rep, nil
}

func readInput(stdin io.Reader, src string) ([]byte, error) {
	if src == stdio {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", src, err)
	}
	return data, nil
}

// loadOptions overlays the YAML file at path on base. Keys missing from
// the file keep base's values.
func loadOptions(path string, base jsontab.Options) (jsontab.Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &base); err != nil {
		return base, fmt.Errorf("parse config %s: %w", path, err)
	}
	return base, nil
}
