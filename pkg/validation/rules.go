package validation

import (
	"regexp"

	"gearguard/pkg/constants"

	"github.com/go-playground/validator/v10"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func registerRules(v *validator.Validate) error {
	rules := map[string]validator.Func{
		"request_status":   enumRule(constants.IsValidStatus),
		"request_type":     enumRule(constants.IsValidRequestType),
		"request_priority": enumRule(constants.IsValidPriority),
		"user_role":        enumRule(constants.IsValidRole),
		"custom_email":     isGoodEmailFormat,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

func enumRule(valid func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return valid(fl.Field().String())
	}
}

func isGoodEmailFormat(fl validator.FieldLevel) bool {
	return emailRegex.MatchString(fl.Field().String())
}
