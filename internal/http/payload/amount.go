package payload

import (
	"errors"
	"regexp"
	"strings"

	"github.com/jellydator/validation"
)

// Amounts travel as decimal strings so precision survives the trip; the
// pattern allows at most nine fractional digits, the chain's resolution.
var amountPattern = regexp.MustCompile(`^\d+(\.\d{1,9})?$`)

func amountRules() []validation.Rule {
	return []validation.Rule{
		validation.Required,
		validation.Match(amountPattern).Error("must be a decimal number"),
		validation.By(positiveAmount),
	}
}

func positiveAmount(value any) error {
	amount, _ := value.(string)
	if amount == "" {
		return nil
	}
	if strings.Trim(amount, "0.") == "" {
		return errors.New("must be greater than zero")
	}
	return nil
}
