package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/grachmannico95/casedesk-be/internal/domain"
)

// requestValidate checks request DTO tags. Field names come from the json tag.
var requestValidate = newRequestValidate()

func newRequestValidate() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// requestError is a rejected request body. It unwraps to the sentinel that
// decides the status code and carries one FieldError per failed tag.
type requestError struct {
	err    error
	fields []domain.FieldError
}

func (e *requestError) Error() string { return e.err.Error() }
func (e *requestError) Unwrap() error { return e.err }

// checkRequest validates dto and picks missing as the sentinel when any
// required field is absent.
func checkRequest(dto interface{}, missing error) error {
	err := requestValidate.Struct(dto)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &requestError{err: domain.ErrInvalidRequest}
	for _, fe := range verrs {
		out.fields = append(out.fields, domain.FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
		switch {
		case fe.Tag() == "required":
			out.err = missing
		case fe.Tag() == "min" && fe.Field() == "password" && out.err != missing:
			out.err = domain.ErrWeakPassword
		}
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Invalid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
