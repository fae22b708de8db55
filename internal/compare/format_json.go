package compare

import (
	"encoding/json"
)

// JSONFormatter formats a comparison summary as JSON
type JSONFormatter struct {
	Pretty bool // If true, format with indentation
}

// Format generates JSON output for a comparison summary
func (jf *JSONFormatter) Format(summary *ComparisonSummary) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(summary, "", "  ")
	} else {
		data, err = json.Marshal(summary)
	}

	if err != nil {
		return "", err
	}

	return string(data), nil
}
