package rackcorp

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// firstValue returns the value of the first key present in data
// with a non-null value.
func firstValue(data map[string]any, keys ...string) (value any, ok bool) {
	for _, key := range keys {
		value, ok = data[key]
		if ok && value != nil {
			return value, true
		}
	}
	return nil, false
}

// stringValue stringifies a decoded JSON value. The API is not
// consistent on whether ids come back as strings or numbers.
func stringValue(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case json.Number:
		return typed.String()
	default:
		return fmt.Sprint(typed)
	}
}

func stringPtr(data map[string]any, key string) *string {
	value, ok := data[key]
	if !ok || value == nil {
		return nil
	}
	s := stringValue(value)
	return &s
}

func firstStringPtr(data map[string]any, keys ...string) *string {
	value, ok := firstValue(data, keys...)
	if !ok {
		return nil
	}
	s := stringValue(value)
	return &s
}

func uint32Ptr(data map[string]any, key string) *uint32 {
	value, ok := data[key]
	if !ok || value == nil {
		return nil
	}

	var n uint64
	var err error
	switch typed := value.(type) {
	case float64:
		n = uint64(typed)
	case json.Number:
		n, err = strconv.ParseUint(typed.String(), 10, 32)
	case string:
		n, err = strconv.ParseUint(typed, 10, 32)
	default:
		return nil
	}
	if err != nil {
		return nil
	}

	converted := uint32(n)
	return &converted
}

func int64Value(value any) int64 {
	switch typed := value.(type) {
	case float64:
		return int64(typed)
	case json.Number:
		n, err := typed.Int64()
		if err != nil {
			return 0
		}
		return n
	case string:
		n, err := strconv.ParseInt(typed, 10, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}
