package dto

import (
	"html"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	phoneNumberRe    = regexp.MustCompile(`^\d{9,10}$`)
	documentNumberRe = regexp.MustCompile(`^\d{8,12}$`)
	imeiRe           = regexp.MustCompile(`^\d{15}$`)
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("phone_number", validatePhoneNumber)
		_ = v.RegisterValidation("document_number", validateDocumentNumber)
		_ = v.RegisterValidation("imei", validateImei)
	}
}

// validatePhoneNumber accepts 9 or 10 digits.
func validatePhoneNumber(fl validator.FieldLevel) bool {
	return phoneNumberRe.MatchString(fl.Field().String())
}

// validateDocumentNumber accepts 8 to 12 digits.
func validateDocumentNumber(fl validator.FieldLevel) bool {
	return documentNumberRe.MatchString(fl.Field().String())
}

// validateImei accepts exactly 15 digits.
func validateImei(fl validator.FieldLevel) bool {
	return imeiRe.MatchString(fl.Field().String())
}

// SanitizeStruct trims whitespace and HTML-escapes every exported string
// field (including *string) of a struct pointer.
func SanitizeStruct(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	sanitizeFields(rv.Elem())
}

func sanitizeFields(rv reflect.Value) {
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		switch f.Kind() {
		case reflect.String:
			f.SetString(sanitize(f.String()))
		case reflect.Ptr:
			if f.IsNil() {
				continue
			}
			elem := f.Elem()
			if elem.Kind() == reflect.String {
				s := sanitize(elem.String())
				elem.SetString(s)
			}
		}
	}
}

func sanitize(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}
