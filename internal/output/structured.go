package output

import (
	"encoding/json"

	"github.com/rgehrsitz/yieldcalc/internal/domain"
	"gopkg.in/yaml.v3"
)

// JSONFormatter formats calculator results as JSON
type JSONFormatter struct {
	Pretty bool // If true, format with indentation
}

// Name returns the formatter identifier
func (jf *JSONFormatter) Name() string { return "json" }

// Format generates JSON output for a calculator result
func (jf *JSONFormatter) Format(result *domain.CalculatorResult) ([]byte, error) {
	if result == nil {
		return nil, errNoResult
	}
	if jf.Pretty {
		return json.MarshalIndent(result, "", "  ")
	}
	return json.Marshal(result)
}

// YAMLFormatter formats calculator results as YAML
type YAMLFormatter struct{}

// Name returns the formatter identifier
func (yf *YAMLFormatter) Name() string { return "yaml" }

// Format generates YAML output for a calculator result
func (yf *YAMLFormatter) Format(result *domain.CalculatorResult) ([]byte, error) {
	if result == nil {
		return nil, errNoResult
	}
	return yaml.Marshal(result)
}
