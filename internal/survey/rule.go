package survey

import (
	"fmt"

	"github.com/natlarsen/arab-spring-analysis/internal/model"
	"github.com/natlarsen/arab-spring-analysis/pkg/utils"
)

// ValidateRule rejects rules that are neither a range nor a label set,
// or that try to be both at once.
func ValidateRule(r model.Rule) error {
	switch {
	case r.IsRange() && r.IsSet():
		return fmt.Errorf("rule sets both a numeric range and an accept list")
	case r.IsRange():
		if *r.Min > *r.Max {
			return fmt.Errorf("rule range is inverted: min %v > max %v", *r.Min, *r.Max)
		}
		return nil
	case r.IsSet():
		return nil
	default:
		return fmt.Errorf("rule sets neither a numeric range nor an accept list")
	}
}

// Classify reports whether a non-missing response value is favorable
// under the rule. A range rule applied to a non-numeric value, or a
// set rule applied to a non-string value, is a caller-configuration
// bug and fails immediately.
func Classify(r model.Rule, v interface{}) (bool, error) {
	switch {
	case r.IsRange():
		if !utils.IsNumeric(v) {
			return false, fmt.Errorf("range rule applied to non-numeric value %v (%T)", v, v)
		}
		n := utils.Numeric(v)
		return n >= *r.Min && n <= *r.Max, nil
	case r.IsSet():
		s, ok := v.(string)
		if !ok {
			return false, fmt.Errorf("set rule applied to non-string value %v (%T)", v, v)
		}
		for _, accept := range r.Accept {
			if s == accept {
				return true, nil
			}
		}
		return false, nil
	default:
		return false, fmt.Errorf("rule sets neither a numeric range nor an accept list")
	}
}
