// Package feed reads ordered sensor records from text and YAML sources.
package feed

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"
	"gopkg.in/yaml.v3"

	"github.com/ayoisaiah/fittrack/internal/activity"
	"github.com/ayoisaiah/fittrack/internal/apperr"
)

// Format is the encoding of a feed.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

var (
	errReadFeed = &apperr.Error{
		Message: "reading feed %s failed",
	}

	errInvalidToken = &apperr.Error{
		Message: "%q is not a number",
	}
)

// Record is a single sensor package: a type code and its positional
// readings. Err is set when the record could not be decoded; such records
// are kept so that callers can report them in order.
type Record struct {
	Err    error     `json:"-"`
	Source string    `json:"source"`
	Code   string    `json:"type"`
	Args   []float64 `json:"data"`
	Line   int       `json:"line"`
}

// Position returns a human readable location of the record.
func (r Record) Position() string {
	if r.Source == "" {
		return fmt.Sprintf("record %d", r.Line)
	}

	return fmt.Sprintf("%s:%d", r.Source, r.Line)
}

// DetectFormat infers the feed format from a file name.
func DetectFormat(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yml", ".yaml":
		return FormatYAML
	}

	return FormatText
}

// Read decodes all records in r.
func Read(r io.Reader, source string, format Format) ([]Record, error) {
	if format == FormatYAML {
		return readYAML(r, source)
	}

	return readText(r, source)
}

// readText parses one record per line. Tokens are split shell-style, commas
// act as separators, and blank lines and # comments are skipped.
func readText(r io.Reader, source string) ([]Record, error) {
	var records []Record

	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		rec := Record{Source: source, Line: lineNo}

		tokens, err := shellquote.Split(strings.ReplaceAll(line, ",", " "))
		if err != nil {
			rec.Err = fmt.Errorf("%s: %w", rec.Position(), err)
			records = append(records, rec)

			continue
		}

		if len(tokens) == 0 {
			continue
		}

		rec.Code = tokens[0]
		rec.Args, rec.Err = parseArgs(rec.Code, tokens[1:])

		if rec.Err != nil {
			rec.Err = fmt.Errorf("%s: %w", rec.Position(), rec.Err)
		}

		records = append(records, rec)
	}

	if err := scanner.Err(); err != nil {
		return records, errReadFeed.Fmt(source).Wrap(err)
	}

	return records, nil
}

type yamlPackage struct {
	Type string   `yaml:"type"`
	Data []string `yaml:"data"`
}

// readYAML decodes a list of {type, data} packages. Records carry the line
// of their list item.
func readYAML(r io.Reader, source string) ([]Record, error) {
	var doc yaml.Node

	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}

		return nil, errReadFeed.Fmt(source).Wrap(err)
	}

	if len(doc.Content) == 0 {
		return nil, nil
	}

	list := doc.Content[0]

	var packages []yamlPackage

	if err := list.Decode(&packages); err != nil {
		return nil, errReadFeed.Fmt(source).Wrap(err)
	}

	records := make([]Record, len(packages))

	for i, p := range packages {
		rec := Record{
			Source: source,
			Line:   list.Content[i].Line,
			Code:   p.Type,
		}

		rec.Args, rec.Err = parseArgs(p.Type, p.Data)
		if rec.Err != nil {
			rec.Err = fmt.Errorf("%s: %w", rec.Position(), rec.Err)
		}

		records[i] = rec
	}

	return records, nil
}

func parseArgs(code string, tokens []string) ([]float64, error) {
	args := make([]float64, len(tokens))

	for i, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, activity.ErrMalformedSensorData.Fmt(
				code,
				errInvalidToken.Fmt(tok).Error(),
			)
		}

		args[i] = v
	}

	return args, nil
}
