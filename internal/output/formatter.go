package output

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rgehrsitz/yieldcalc/internal/domain"
)

var errNoResult = errors.New("no result to format")

// Formatter renders a calculator result
type Formatter interface {
	Name() string
	Format(result *domain.CalculatorResult) ([]byte, error)
}

// FormatterFunc adapts a function to the Formatter interface
type FormatterFunc struct {
	ID string
	F  func(result *domain.CalculatorResult) ([]byte, error)
}

// Name returns the formatter identifier
func (f FormatterFunc) Name() string { return f.ID }

// Format calls the wrapped function
func (f FormatterFunc) Format(result *domain.CalculatorResult) ([]byte, error) {
	return f.F(result)
}

// FormatterNames lists the names accepted by GetFormatterByName
func FormatterNames() []string {
	return []string{"table", "csv", "json", "yaml", "html"}
}

// GetFormatterByName returns the named formatter, or nil if unknown.
// locale only affects table and html output.
func GetFormatterByName(name, locale string) Formatter {
	switch strings.ToLower(name) {
	case "table", "console", "":
		return &TableFormatter{Locale: locale}
	case "csv":
		return &CSVFormatter{}
	case "json":
		return &JSONFormatter{Pretty: true}
	case "yaml", "yml":
		return &YAMLFormatter{}
	case "html":
		return &HTMLFormatter{Locale: locale}
	default:
		return nil
	}
}

// WriteFormatted formats result and writes it to filename
func WriteFormatted(f Formatter, result *domain.CalculatorResult, filename string) error {
	data, err := f.Format(result)
	if err != nil {
		return fmt.Errorf("format %s: %w", f.Name(), err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	return nil
}
