package validation

import (
	"reflect"
	"strings"

	"stayhub/internal/domain/payment"
	"stayhub/internal/domain/pricing"
	"stayhub/internal/domain/user"
	"stayhub/internal/pkg/errs"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var errUnexpectedEngine = errs.New("gin binding validator is not go-playground/validator")

// Register installs the request tags on gin's validator and reports fields
// by their JSON names.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errUnexpectedEngine
	}
	return RegisterOn(v)
}

func RegisterOn(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonName)

	rules := map[string]validator.Func{
		"money":          isMoney,
		"payment_method": isPaymentMethod,
		"signup_role":    isSignupRole,
		"notblank":       isNotBlank,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return errs.Wrapf(err, "register %s", tag)
		}
	}
	return nil
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

func isMoney(fl validator.FieldLevel) bool {
	_, err := pricing.ParsePositive(fl.Field().String())
	return err == nil
}

func isPaymentMethod(fl validator.FieldLevel) bool {
	_, err := payment.NewMethod(fl.Field().String())
	return err == nil
}

func isSignupRole(fl validator.FieldLevel) bool {
	_, err := user.NewSignupRole(fl.Field().String())
	return err == nil
}

func isNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
