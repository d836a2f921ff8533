package vision

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/closingdesk/contract-extract/internal/schema"
)

// NormalizeAndSanitizeJSON cleans a model response before validation:
// removes keys not in the group's catalogue (strict additionalProperties
// friendliness), drops nulls and empty strings, coerces numeric amounts to
// strings and trims string values. Returns the cleaned document plus the
// list of touched keys.
func NormalizeAndSanitizeJSON(raw []byte, specs []schema.FieldSpec, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	allowed := make(map[string]schema.FieldSpec, len(specs))
	for _, f := range specs {
		allowed[f.Name] = f
	}

	dropped := make([]string, 0, 8)
	for k, v := range m {
		f, ok := allowed[k]
		if !ok {
			delete(m, k)
			dropped = append(dropped, k+"(unknown)")
			continue
		}
		switch t := v.(type) {
		case nil:
			delete(m, k)
			dropped = append(dropped, k+"(null)")
		case string:
			s := strings.TrimSpace(t)
			if s == "" || strings.EqualFold(s, "null") || strings.EqualFold(s, "n/a") {
				delete(m, k)
				dropped = append(dropped, k+"(empty)")
			} else {
				m[k] = s
			}
		case float64:
			if f.Type == schema.TypeNumber {
				m[k] = fmt.Sprintf("%.2f", t)
				dropped = append(dropped, k+"(coerced)")
			} else {
				delete(m, k)
				dropped = append(dropped, k+"(type)")
			}
		case []any:
			if len(t) == 0 {
				delete(m, k)
				dropped = append(dropped, k+"(empty)")
			}
		case bool:
			// fine as-is
		default:
			delete(m, k)
			dropped = append(dropped, k+"(type)")
		}
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	if len(dropped) > 0 {
		logger.Warn("vision.extract.sanitize", "touched", dropped)
	}
	return out, dropped, nil
}
