// Package validator provides the validation engine shared by Gin's request
// binding and the simulation core.
package validator

import (
	"math"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// rules lists the custom validation tags understood by every engine built here.
var rules = map[string]validator.Func{
	"finite":  validateFinite,
	"percent": validatePercent,
}

// New returns a validator engine with the custom rules registered and field
// names reported by their JSON tag. The returned engine is safe for concurrent use.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(JSONFieldName)
	for tag, fn := range rules {
		_ = v.RegisterValidation(tag, fn)
	}
	return v
}

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(JSONFieldName)
		for tag, fn := range rules {
			_ = v.RegisterValidation(tag, fn)
		}
	}
}

// JSONFieldName returns the JSON name of a struct field, falling back to the Go name.
func JSONFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}

func validateFinite(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		f := field.Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	}
	return true
}

// validatePercent accepts whole-number percentages in [0, 100].
func validatePercent(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		f := field.Float()
		return f >= 0 && f <= 100
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := field.Int()
		return i >= 0 && i <= 100
	}
	return false
}
