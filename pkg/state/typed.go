package state

// Typed accessors. State values arrive from the browser as JSON, so
// numbers decode as float64 regardless of the Go type that seeded them.
// These helpers normalize the common cases the examples read.

// Int returns the value for key coerced to int, or 0 if unset or not
// numeric.
func (s *Store) Int(key string) int {
	switch v := s.values[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case float32:
		return int(v)
	default:
		return 0
	}
}

// Float returns the value for key coerced to float64, or 0 if unset or
// not numeric.
func (s *Store) Float(key string) float64 {
	switch v := s.values[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return 0
	}
}

// String returns the value for key as a string, or "" if unset or not
// a string.
func (s *Store) String(key string) string {
	if v, ok := s.values[key].(string); ok {
		return v
	}
	return ""
}

// Bool returns the value for key as a bool, or false if unset or not a
// bool.
func (s *Store) Bool(key string) bool {
	if v, ok := s.values[key].(bool); ok {
		return v
	}
	return false
}

// Strings returns the value for key as a string slice. JSON lists
// decode as []any, so both representations are accepted.
func (s *Store) Strings(key string) []string {
	switch v := s.values[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if str, ok := item.(string); ok {
				out = append(out, str)
			}
		}
		return out
	default:
		return nil
	}
}

// Ints returns the value for key as an int slice, coercing JSON
// float64 elements.
func (s *Store) Ints(key string) []int {
	switch v := s.values[key].(type) {
	case []int:
		return v
	case []any:
		out := make([]int, 0, len(v))
		for _, item := range v {
			switch n := item.(type) {
			case int:
				out = append(out, n)
			case float64:
				out = append(out, int(n))
			}
		}
		return out
	default:
		return nil
	}
}
