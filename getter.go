// File: mixincfg/getter.go
package mixincfg

import (
	"fmt"
	"reflect"
	"strconv"
)

// lookup navigates to a value inside key's merged configuration.
func (s *MemoryStore) lookup(key, path string) (any, bool) {
	cfg := s.Get(key, false)
	if cfg == nil {
		return nil, false
	}
	return navigateToPath(cfg, path)
}

// String retrieves a string value at the dot-separated path under key's
// merged configuration, converting from common types when needed.
func (s *MemoryStore) String(key, path string) (string, error) {
	val, found := s.lookup(key, path)
	if !found {
		return "", fmt.Errorf("path not found: %s %s", key, path)
	}
	if val == nil {
		return "", nil // Treat nil as empty string for convenience
	}

	if strVal, ok := val.(string); ok {
		return strVal, nil
	}

	switch v := val.(type) {
	case fmt.Stringer:
		return v.String(), nil
	case []byte:
		return string(v), nil
	case int, int8, int16, int32, int64:
		return strconv.FormatInt(reflect.ValueOf(val).Int(), 10), nil
	case uint, uint8, uint16, uint32, uint64:
		return strconv.FormatUint(reflect.ValueOf(val).Uint(), 10), nil
	case float32, float64:
		return strconv.FormatFloat(reflect.ValueOf(val).Float(), 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	default:
		return "", fmt.Errorf("cannot convert type %T to string for %s %s", val, key, path)
	}
}

// Int64 retrieves an int64 value at the dot-separated path under key's
// merged configuration, converting from numeric types, parsable strings,
// and booleans.
func (s *MemoryStore) Int64(key, path string) (int64, error) {
	val, found := s.lookup(key, path)
	if !found {
		return 0, fmt.Errorf("path not found: %s %s", key, path)
	}
	if val == nil {
		return 0, fmt.Errorf("value at %s %s is nil, cannot convert to int64", key, path)
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := v.Uint()
		maxInt64 := int64(^uint64(0) >> 1)
		if u > uint64(maxInt64) {
			return 0, fmt.Errorf("cannot convert unsigned integer %d to int64 for %s %s: overflow", u, key, path)
		}
		return int64(u), nil
	case reflect.Float32, reflect.Float64:
		return int64(v.Float()), nil
	case reflect.String:
		str := v.String()
		if i, err := strconv.ParseInt(str, 0, 64); err == nil {
			return i, nil
		} else if f, ferr := strconv.ParseFloat(str, 64); ferr == nil {
			return int64(f), nil // Truncate
		} else {
			return 0, fmt.Errorf("cannot convert string %q to int64 for %s %s: %w", str, key, path, err)
		}
	case reflect.Bool:
		if v.Bool() {
			return 1, nil
		}
		return 0, nil
	}

	return 0, fmt.Errorf("cannot convert type %T to int64 for %s %s", val, key, path)
}

// Bool retrieves a boolean value at the dot-separated path under key's
// merged configuration. Numbers read as 0=false, non-zero=true.
func (s *MemoryStore) Bool(key, path string) (bool, error) {
	val, found := s.lookup(key, path)
	if !found {
		return false, fmt.Errorf("path not found: %s %s", key, path)
	}
	if val == nil {
		return false, fmt.Errorf("value at %s %s is nil, cannot convert to bool", key, path)
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Bool:
		return v.Bool(), nil
	case reflect.String:
		str := v.String()
		if b, err := strconv.ParseBool(str); err == nil {
			return b, nil
		} else {
			return false, fmt.Errorf("cannot convert string %q to bool for %s %s: %w", str, key, path, err)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() != 0, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() != 0, nil
	case reflect.Float32, reflect.Float64:
		return v.Float() != 0, nil
	}

	return false, fmt.Errorf("cannot convert type %T to bool for %s %s", val, key, path)
}

// Float64 retrieves a float64 value at the dot-separated path under key's
// merged configuration.
func (s *MemoryStore) Float64(key, path string) (float64, error) {
	val, found := s.lookup(key, path)
	if !found {
		return 0.0, fmt.Errorf("path not found: %s %s", key, path)
	}
	if val == nil {
		return 0.0, fmt.Errorf("value at %s %s is nil, cannot convert to float64", key, path)
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return v.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), nil
	case reflect.String:
		str := v.String()
		if f, err := strconv.ParseFloat(str, 64); err == nil {
			return f, nil
		} else {
			return 0.0, fmt.Errorf("cannot convert string %q to float64 for %s %s: %w", str, key, path, err)
		}
	case reflect.Bool:
		if v.Bool() {
			return 1.0, nil
		}
		return 0.0, nil
	}

	return 0.0, fmt.Errorf("cannot convert type %T to float64 for %s %s", val, key, path)
}
