// Package report renders exercise results for the terminal, machines and documents.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/atlas/internal/presentation/chart"
	"github.com/aretw0/atlas/internal/presentation/tui"
	"github.com/aretw0/atlas/pkg/domain"
	"github.com/aretw0/atlas/pkg/exercise"
	"gopkg.in/yaml.v3"
)

// Formats accepted by New.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatMarkdown = "markdown"
)

// Renderer turns one result into output text.
type Renderer func(exercise.Result) (string, error)

// Options tune the renderers.
type Options struct {
	// Color enables ANSI styling in text output and glamour rendering of markdown.
	Color bool
	// Markdown renders a markdown document to its final form. Nil keeps raw markdown.
	Markdown func(string) (string, error)
}

// New returns the renderer for a format.
func New(format string, opts Options) (Renderer, error) {
	switch format {
	case "", FormatText:
		return func(r exercise.Result) (string, error) { return Text(r, opts.Color), nil }, nil
	case FormatJSON:
		return JSON, nil
	case FormatYAML:
		return YAML, nil
	case FormatMarkdown:
		return func(r exercise.Result) (string, error) {
			md := Markdown(r)
			if opts.Markdown == nil {
				return md, nil
			}
			return opts.Markdown(md)
		}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// envelope is the machine-readable shape of a result.
type envelope struct {
	Name  string `json:"name" yaml:"name"`
	Title string `json:"title" yaml:"title"`
	Value any    `json:"value,omitempty" yaml:"value,omitempty"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

func wrap(r exercise.Result) envelope {
	e := envelope{Name: r.Name, Title: r.Title, Value: r.Value}
	if r.Err != nil {
		e.Error = r.Err.Error()
	}
	return e
}

// JSON renders one result per line (NDJSON).
func JSON(r exercise.Result) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(wrap(r)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// YAML renders one result as a YAML document.
func YAML(r exercise.Result) (string, error) {
	var buf bytes.Buffer
	buf.WriteString("---\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(wrap(r)); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Text renders a result the way the exercises ask for it to be printed.
func Text(r exercise.Result, color bool) string {
	var sb strings.Builder
	sb.WriteString(tui.Heading(fmt.Sprintf("== %s: %s", r.Name, r.Title), color))
	sb.WriteString("\n")

	if r.Err != nil {
		sb.WriteString(tui.ErrorText("error: "+r.Err.Error(), color))
		sb.WriteString("\n\n")
		return sb.String()
	}

	switch v := r.Value.(type) {
	case []string:
		for _, s := range v {
			sb.WriteString(sanitize(s))
			sb.WriteString("\n")
		}
	case []domain.Record:
		for _, rec := range v {
			sb.WriteString(compactJSON(rec))
			sb.WriteString("\n")
		}
	case map[string]int:
		for _, k := range sortedKeys(v) {
			fmt.Fprintf(&sb, "%s: %d\n", sanitize(k), v[k])
		}
	default:
		sb.WriteString(sanitize(fmt.Sprint(v)))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	return sb.String()
}

// Markdown renders a result as a markdown section.
// Records become tables and histograms a Mermaid pie chart plus a table.
func Markdown(r exercise.Result) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## %s\n\n_%s_\n\n", r.Name, escapeCell(r.Title))

	if r.Err != nil {
		fmt.Fprintf(&sb, "> **error:** %s\n\n", r.Err)
		return sb.String()
	}

	switch v := r.Value.(type) {
	case []string:
		for _, s := range v {
			fmt.Fprintf(&sb, "- %s\n", sanitize(s))
		}
	case []domain.Record:
		writeTable(&sb, v)
	case map[string]int:
		sb.WriteString("```mermaid\n")
		sb.WriteString(chart.GeneratePie(r.Title, v))
		sb.WriteString("```\n\n")
		sb.WriteString("| Key | Count |\n|---|---|\n")
		for _, k := range sortedKeys(v) {
			fmt.Fprintf(&sb, "| %s | %d |\n", escapeCell(k), v[k])
		}
	default:
		fmt.Fprintf(&sb, "```\n%v\n```\n", v)
	}
	sb.WriteString("\n")
	return sb.String()
}

func writeTable(sb *strings.Builder, records []domain.Record) {
	if len(records) == 0 {
		sb.WriteString("_no records_\n")
		return
	}

	seen := make(map[string]struct{})
	var columns []string
	for _, rec := range records {
		for k := range rec {
			if _, ok := seen[k]; !ok {
				seen[k] = struct{}{}
				columns = append(columns, k)
			}
		}
	}
	sort.Strings(columns)

	sb.WriteString("| " + strings.Join(columns, " | ") + " |\n")
	sb.WriteString("|" + strings.Repeat("---|", len(columns)) + "\n")
	for _, rec := range records {
		cells := make([]string, len(columns))
		for i, c := range columns {
			if v, ok := rec[c]; ok && v != nil {
				cells[i] = escapeCell(fmt.Sprint(v))
			}
		}
		sb.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}
}

func escapeCell(s string) string {
	return strings.NewReplacer("|", `\|`, "\n", " ", "\r", "").Replace(sanitize(s))
}

func compactJSON(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Sprint(v)
	}
	return strings.TrimRight(buf.String(), "\n")
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
