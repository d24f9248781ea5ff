package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-yaml"
)

const (
	formatYAML  = "yaml"
	formatJSON  = "json"
	formatTable = "table"
)

// tabular renders a value as aligned rows for the table format.
type tabular interface {
	header() []string
	rows() [][]string
}

func write(w io.Writer, format string, v any) error {
	switch format {
	case formatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		_, err = w.Write(data)
		return err
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatTable:
		t, ok := v.(tabular)
		if !ok {
			return fmt.Errorf("table format not supported for this command")
		}
		return writeTable(w, t)
	}
	return fmt.Errorf("unknown format: %q (must be yaml, json or table)", format)
}

func writeTable(w io.Writer, t tabular) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(t.header(), "\t"))
	for _, row := range t.rows() {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

func flag(b bool) string {
	if b {
		return "yes"
	}
	return ""
}
