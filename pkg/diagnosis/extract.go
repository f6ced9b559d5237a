package diagnosis

import (
	"encoding/json"
	"fmt"

	"Gardener-Assistant-Backend/domain"
)

// ParseRemedyReport parses the raw model output. Direct parse first; if the
// model wrapped the document in prose or a markdown fence, the first balanced
// {...} block is extracted and parsed instead.
func ParseRemedyReport(raw string) (domain.RemedyReport, error) {
	var report domain.RemedyReport
	if err := json.Unmarshal([]byte(raw), &report); err == nil {
		return report, nil
	}

	block := extractBalancedJSON(raw)
	if block == "" {
		return domain.RemedyReport{}, fmt.Errorf("%w: no JSON object found", domain.ErrResponseNotParseable)
	}
	if err := json.Unmarshal([]byte(block), &report); err != nil {
		return domain.RemedyReport{}, fmt.Errorf("%w: %v", domain.ErrResponseNotParseable, err)
	}
	return report, nil
}

// extractBalancedJSON returns the first balanced {...} block in s, tracking
// string literals and escapes so braces inside values do not miscount.
func extractBalancedJSON(s string) string {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		if start >= 0 && inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '{':
			if start < 0 {
				start = i
			}
			depth++
		case '}':
			if start >= 0 {
				depth--
				if depth == 0 {
					return s[start : i+1]
				}
			}
		case '"':
			if start >= 0 {
				inString = true
			}
		}
	}
	return ""
}
