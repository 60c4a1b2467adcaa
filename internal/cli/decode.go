package cli

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"rentorbuy/internal/simulation"
)

// strictNumbers stops mapstructure from truncating 2.7 into an int field.
var strictNumbers = viper.DecodeHook(mapstructure.DecodeHookFuncType(rejectFractionalInts))

func rejectFractionalInts(_ reflect.Type, to reflect.Type, data any) (any, error) {
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
	default:
		return data, nil
	}

	var f float64
	switch d := data.(type) {
	case float64:
		f = d
	case float32:
		f = float64(d)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(d), 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", d)
		}
		f = parsed
	default:
		return data, nil
	}

	if f != math.Trunc(f) {
		return nil, fmt.Errorf("%v is not a whole number", data)
	}
	if math.Abs(f) > 1<<53 {
		return nil, fmt.Errorf("%v is out of range", data)
	}
	return int64(f), nil
}

// decodeScenario unmarshals the scenario keys of v into dst. Keys are first
// decoded one by one so a malformed value is reported by its name.
func decodeScenario(v *viper.Viper, dst any, filter map[string]bool) error {
	var fields []simulation.FieldError
	for _, f := range scenarioFlags {
		if filter != nil && !filter[f.key] {
			continue
		}

		var err error
		reason := "must be a number"
		if f.isInt {
			var n int
			err = v.UnmarshalKey(f.key, &n, strictNumbers)
			reason = "must be a whole number"
		} else {
			var x float64
			err = v.UnmarshalKey(f.key, &x, strictNumbers)
		}
		if err != nil {
			fields = append(fields, simulation.FieldError{Field: f.key, Reason: reason})
		}
	}
	if len(fields) > 0 {
		return simulation.NewInvalidInputError(fields...)
	}

	if err := v.Unmarshal(dst, strictNumbers); err != nil {
		return fmt.Errorf("failed to decode scenario: %w", err)
	}
	return nil
}
