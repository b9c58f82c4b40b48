// Package bind decodes request bodies and validates them with go-playground/validator
// Failures come back as platform errors: malformed bodies are ErrorCodeJSON,
// rule violations are ErrorCodeValidation carrying the offending json field
package bind

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	perr "datesieve/internal/platform/errors"
	"datesieve/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// FieldLevel aliases validator.FieldLevel for custom rules
type FieldLevel = validator.FieldLevel

// Validator pairs the validator with its english translator
type Validator struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

var (
	vOnce sync.Once
	vSvc  *Validator

	jsonMore = func(dec *json.Decoder) bool { return dec.More() }
)

// messages are registered for rules modules add later
var messages = map[string]string{
	"min":          "{0} must be at least {1}",
	"max":          "{0} must be at most {1}",
	"date_format":  "{0} must name a known date format",
	"date_formats": "{0} must only name known date formats",
}

// Get returns the process validator, building it on first use
func Get() *Validator {
	vOnce.Do(func() {
		loc := en.New()
		trans, _ := ut.New(loc, loc).GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonName)
		_ = en_translations.RegisterDefaultTranslations(v, trans)
		for tag, text := range messages {
			registerMessage(v, trans, tag, text)
		}
		vSvc = &Validator{Validate: v, Translator: trans}
	})
	return vSvc
}

// jsonName reports fields by their json name so errors match the request body
func jsonName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return fld.Name
	}
	return name
}

// RegisterValidation adds or replaces a custom rule
func RegisterValidation(tag string, fn validator.Func) error {
	return Get().Validate.RegisterValidation(tag, fn)
}

// Options controls decoding
type Options struct {
	MaxBytes        int64 // 0 means unlimited
	DisallowUnknown bool
	AllowEmptyBody  bool
}

// DefaultOptions caps bodies at 1 MiB and rejects unknown fields
var DefaultOptions = Options{MaxBytes: 1 << 20, DisallowUnknown: true}

// ParseJSON decodes the body into T and validates it
// An empty body is a JSON error unless opt allows it or the method has no body
func ParseJSON[T any](r *http.Request, opts ...Options) (T, error) {
	var zero T
	o := DefaultOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.C(r.Context()).Warn().Err(err).Msg("close request body")
		}
	}()

	var body io.Reader = r.Body
	if !o.AllowEmptyBody {
		first := make([]byte, 1)
		n, _ := io.ReadFull(r.Body, first)
		if n == 0 {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodDelete, http.MethodOptions:
				return zero, nil
			}
			return zero, perr.JSONErrf("empty body")
		}
		body = io.MultiReader(bytes.NewReader(first), r.Body)
	}
	if o.MaxBytes > 0 {
		body = io.LimitReader(body, o.MaxBytes)
	}

	dec := json.NewDecoder(body)
	if o.DisallowUnknown {
		dec.DisallowUnknownFields()
	}
	var dst T
	if err := dec.Decode(&dst); err != nil {
		if o.AllowEmptyBody && errors.Is(err, io.EOF) {
			return dst, nil
		}
		return zero, perr.JSONErrf("invalid JSON: %v", err)
	}
	if jsonMore(dec) {
		return zero, perr.JSONErrf("unexpected trailing data")
	}

	if err := Get().Validate.Struct(dst); err != nil {
		var inv *validator.InvalidValidationError
		if errors.As(err, &inv) {
			logger.C(r.Context()).Error().Err(inv).Msg("validator misuse")
			return zero, perr.JSONErrf("validation error")
		}
		field, msg := FieldAndMessage(err)
		return zero, perr.WithField(perr.New(perr.ErrorCodeValidation, msg), field)
	}
	return dst, nil
}

// FieldAndMessage returns the first failing field and its translated message
func FieldAndMessage(err error) (field, message string) {
	if err == nil {
		return "", ""
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Field(), verrs[0].Translate(Get().Translator)
	}
	return "", err.Error()
}

func registerMessage(v *validator.Validate, trans ut.Translator, tag, text string) {
	_ = v.RegisterTranslation(tag, trans,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}
