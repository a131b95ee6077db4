package compare

import "encoding/json"

// JSONFormatter renders a strategy comparison as indented JSON.
type JSONFormatter struct{}

// Format marshals the comparison for machine consumption.
func (jf *JSONFormatter) Format(sc *StrategyComparison) (string, error) {
	data, err := json.MarshalIndent(sc, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}
