// Package validator wraps go-playground/validator with the tags the bridge
// needs for configuration and network descriptors.
//
// Besides the stock tags it registers:
//
//   - hexkey: a 32-byte secp256k1 private key in hex, with or without 0x.
//   - rpcurl: an endpoint URL with an http, https, ws or wss scheme. Template
//     placeholders such as {INFURA_API_KEY} are allowed.
package validator

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is the first error of the chain returned by Validate.
var ErrValidationFailed = errors.New("struct validation failed")

// errStringFormat describes a single field failure. Values of fields tagged
// hexkey are never printed.
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

var validator = newValidate()

func newValidate() *gvalidator.Validate {
	v := gvalidator.New(gvalidator.WithRequiredStructEnabled())

	// Registration only fails on empty tags or nil funcs.
	_ = v.RegisterValidation("hexkey", isHexKey)
	_ = v.RegisterValidation("rpcurl", isRPCURL)

	return v
}

func isHexKey(fl gvalidator.FieldLevel) bool {
	s := fl.Field().String()
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}

	b, err := hexutil.Decode(s)
	return err == nil && len(b) == 32
}

func isRPCURL(fl gvalidator.FieldLevel) bool {
	// Braces are not valid in a URL host, so placeholders are swapped out
	// before parsing.
	s := strings.NewReplacer("{", "", "}", "").Replace(fl.Field().String())

	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return false
	}

	switch u.Scheme {
	case "http", "https", "ws", "wss":
		return true
	default:
		return false
	}
}

// formatError turns validator errors into a joined error rooted at
// ErrValidationFailed. Other errors are returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, fieldErr := range validationErrors {
		value := fieldErr.Value()
		if fieldErr.Tag() == "hexkey" {
			value = "<redacted>"
		}

		errs = append(errs, fmt.Errorf(errStringFormat, fieldErr.Namespace(), value, fieldErr.Tag()))
	}

	return errors.Join(errs...)
}

// Validate checks v against its validate tags.
//
//	if err := validator.Validate(cfg); errors.Is(err, validator.ErrValidationFailed) {
//	    // report err
//	}
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}

// Var validates a single value against tag.
func Var(v any, tag string) error {
	if err := validator.Var(v, tag); err != nil {
		return formatError(err)
	}

	return nil
}
