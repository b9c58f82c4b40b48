package http

import (
	"strings"

	"datesieve/internal/core/dateformat"
	"datesieve/internal/platform/net/http/bind"
)

// RegisterValidators installs the date_format and date_formats tags against cat
func RegisterValidators(cat *dateformat.Catalog) error {
	known := func(s string) bool {
		_, err := cat.Lookup(dateformat.Name(strings.TrimSpace(s)))
		return err == nil
	}
	if err := bind.RegisterValidation("date_format", func(fl bind.FieldLevel) bool {
		s, ok := fl.Field().Interface().(string)
		return ok && known(s)
	}); err != nil {
		return err
	}
	return bind.RegisterValidation("date_formats", func(fl bind.FieldLevel) bool {
		list, ok := fl.Field().Interface().([]string)
		if !ok {
			return false
		}
		for _, s := range list {
			if !known(s) {
				return false
			}
		}
		return true
	})
}
