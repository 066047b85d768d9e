package dto

import (
	"reflect"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterCustomValidations teaches gin's validator about decimal.Decimal so
// numeric tags (gte, gt, lte) apply to money fields. Call once at startup.
func RegisterCustomValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterCustomTypeFunc(decimalToFloat, decimal.Decimal{})
}

// decimalToFloat exposes decimals to the validator as float64. Precision loss
// here only affects validation thresholds, never stored values.
func decimalToFloat(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}
