// Package validation configures go-playground/validator the same way for gin request
// binding and for services that are called without going through gin.
package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// TagName is the struct tag gin reads for binding rules.
const TagName = "binding"

// New returns a validator reading `binding` tags that understands decimal.Decimal fields.
func New() *validator.Validate {
	v := validator.New()
	v.SetTagName(TagName)
	Register(v)
	return v
}

// Register teaches v to compare decimal.Decimal fields numerically (gt, gte, required)
// and to report fields by their JSON name.
func Register(v *validator.Validate) {
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	v.RegisterTagNameFunc(jsonFieldName)
}

func decimalValue(field reflect.Value) any {
	d, ok := field.Interface().(decimal.Decimal)
	if !ok {
		return nil
	}
	f, _ := d.Float64()
	return f
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}
