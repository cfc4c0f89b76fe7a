package coingecko

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Params holds named request parameters for a single call. Values are
// serialized to their canonical query form: list values are comma-joined in
// the given order, booleans become lowercase true/false, numbers use plain
// decimal notation. Nil values and empty strings/lists are treated as unset
// and omitted from the request.
type Params map[string]interface{}

// serializeParamValue renders a value in its canonical query form.
// The second result is false when the value is unset and must be omitted.
func serializeParamValue(value interface{}) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, v != ""
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case []string:
		if len(v) == 0 {
			return "", false
		}
		return strings.Join(v, ","), true
	case fmt.Stringer:
		return v.String(), true
	default:
		return fmt.Sprintf("%v", v), true
	}
}

// resolveParams validates params against the endpoint descriptor and splits
// them into the expanded path and serialized query parameters. It fails
// before any network I/O on unknown or missing parameters.
func resolveParams(endpoint Endpoint, params Params) (string, map[string]string, error) {
	for name := range params {
		if !endpoint.allows(name) {
			return "", nil, &InvalidParameterError{
				Endpoint: endpoint.Name,
				Name:     name,
				Reason:   "not in the endpoint's allowed parameter set",
			}
		}
	}

	serialized := make(map[string]string, len(params))
	for name, value := range params {
		if s, ok := serializeParamValue(value); ok {
			serialized[name] = s
		}
	}

	for _, name := range endpoint.Required {
		if _, ok := serialized[name]; !ok {
			return "", nil, &InvalidParameterError{
				Endpoint: endpoint.Name,
				Name:     name,
				Reason:   "required parameter is missing",
			}
		}
	}

	path := endpoint.Path
	for _, name := range endpoint.Required {
		placeholder := "{" + name + "}"
		if strings.Contains(path, placeholder) {
			path = strings.ReplaceAll(path, placeholder, url.PathEscape(serialized[name]))
			delete(serialized, name)
		}
	}

	return path, serialized, nil
}
