package args

import (
	"fmt"
	"strconv"
	"time"

	"github.com/araddon/dateparse"

	"github.com/ThePreviousOne/args-parser/parse"
)

// Option is a named argument which consumes exactly one following value
// token. "--out dist" and "--out=dist" are equivalent: the engine re-injects
// the "=value" half into the cursor before delegating here.
type Option struct {
	baseArg
	value        string
	defaultValue string
}

// NewOption declares an option under its primary name and optional aliases,
// marker characters included, e.g. NewOption("--out", true, "-o").
func NewOption(name string, required bool, aliases ...string) *Option {
	return &Option{
		baseArg: baseArg{
			name:     name,
			aliases:  aliases,
			required: required,
		},
	}
}

func (o *Option) Type() ArgType {
	return ArgTypeOption
}

func (o *Option) IsWithValue() bool {
	return true
}

// SetDefault sets the value reported by Value when the option is not matched.
func (o *Option) SetDefault(value string) {
	o.defaultValue = value
}

// Process consumes the option's value from the cursor.
func (o *Option) Process(s parse.State) error {
	value, err := s.Next()
	if err != nil {
		return fmt.Errorf("%w: %q", ErrMissingValue, o.name)
	}

	o.value = value
	o.defined = true

	return nil
}

// Value returns the parsed value, or the default when the option was not
// matched.
func (o *Option) Value() string {
	if !o.defined {
		return o.defaultValue
	}

	return o.value
}

// Bool converts the option's value to a boolean.
func (o *Option) Bool() (bool, error) {
	return strconv.ParseBool(o.Value())
}

// Int converts the option's value to an int64.
func (o *Option) Int() (int64, error) {
	return strconv.ParseInt(o.Value(), 10, 64)
}

// Float converts the option's value to a float64.
func (o *Option) Float() (float64, error) {
	return strconv.ParseFloat(o.Value(), 64)
}

// Time converts the option's value to a time.Time, accepting any of the
// formats dateparse recognizes.
func (o *Option) Time() (time.Time, error) {
	return dateparse.ParseAny(o.Value())
}
