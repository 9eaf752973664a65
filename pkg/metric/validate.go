package metric

import (
	stderrors "errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/matzehuels/datanate/pkg/errors"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// validatorInstance returns the shared validator, reporting fields by their
// JSON name so messages match the definition file.
func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// ApplyDefaults fills optional fields the definition file may omit:
// display_name falls back to the key, chart_type to line, time_dimension to
// monthly and file to <key>.csv.
func ApplyDefaults(key string, d *Definition) {
	if d.DisplayName == "" {
		d.DisplayName = key
	}
	if d.ChartType == "" {
		d.ChartType = ChartLine
	}
	if d.TimeDimension == "" {
		d.TimeDimension = Monthly
	}
	if d.File == "" {
		d.File = key + ".csv"
	}
}

// Validate checks a definition and returns an INVALID_METRIC error naming
// the metric and the first offending field.
func Validate(key string, d Definition) error {
	err := validatorInstance().Struct(d)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) || len(verrs) == 0 {
		return errors.Wrap(errors.ErrCodeInvalidMetric, err, "metric %q", key)
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return errors.New(errors.ErrCodeInvalidMetric, "metric %q: %s is required", key, fe.Field())
	case "oneof":
		return errors.New(errors.ErrCodeInvalidMetric, "metric %q: %s must be one of [%s], got %q",
			key, fe.Field(), fe.Param(), fe.Value())
	default:
		return errors.New(errors.ErrCodeInvalidMetric, "metric %q: invalid %s", key, fe.Field())
	}
}
