package handlers

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// ValidationError тело запроса не прошло проверку тегов validate
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	validatorOnce sync.Once
	validate      *validator.Validate
	translator    ut.Translator
)

func initValidator() {
	validatorOnce.Do(func() {
		enLocale := en.New()
		uni := ut.New(enLocale, enLocale)
		translator, _ = uni.GetTranslator("en")

		validate = validator.New(validator.WithRequiredStructEnabled())

		// в сообщениях используем имена полей из json тегов
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("json")
			if tag == "" || tag == "-" {
				return fld.Name
			}
			name, _, _ := strings.Cut(tag, ",")
			return name
		})

		_ = enTranslations.RegisterDefaultTranslations(validate, translator)
	})
}

// Validate проверяет структуру по тегам validate
func Validate(v interface{}) error {
	initValidator()

	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &ValidationError{Field: verrs[0].Field(), Message: verrs[0].Translate(translator)}
	}
	return err
}

// DecodeAndValidate декодирует JSON и проверяет его.
// Ошибки декодирования и проверки пишутся в ответ как 400, возвращается false.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := DecodeJSON(r, dst); err != nil {
		RespondBadRequest(w, "invalid request body")
		return false
	}

	if err := Validate(dst); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			RespondBadRequest(w, verr.Message)
			return false
		}
		RespondBadRequest(w, "invalid request body")
		return false
	}
	return true
}
