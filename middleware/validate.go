package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/anjiri1684/error_paper/utils"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/gofiber/fiber/v2"
)

// Target selects the part of the request a validator inspects.
type Target int

const (
	Body Target = iota
	Params
	Query
)

func (t Target) String() string {
	switch t {
	case Params:
		return "params"
	case Query:
		return "query"
	default:
		return "body"
	}
}

func (t Target) localsKey() string {
	return "validated." + t.String()
}

var (
	validate *validator.Validate
	trans    ut.Translator
)

func init() {
	validate = validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ = uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		panic(fmt.Sprintf("register validator translations: %v", err))
	}

	// Report fields by the name the client sent them under.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query", "params"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})
}

// Validate parses the selected request part into T, validates it and stores
// it for the handler. Invalid input ends the chain with a 400.
func Validate[T any](target Target) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req T
		if err := parse(c, target, &req); err != nil {
			return utils.ValidationError(parseMessage(err))
		}
		if err := validate.Struct(req); err != nil {
			return utils.ValidationError(firstMessage(err))
		}
		c.Locals(target.localsKey(), req)
		return c.Next()
	}
}

// Validated returns the value stored by Validate for the same target.
func Validated[T any](c *fiber.Ctx, target Target) T {
	req, _ := c.Locals(target.localsKey()).(T)
	return req
}

func parse(c *fiber.Ctx, target Target, out any) error {
	switch target {
	case Params:
		return c.ParamsParser(out)
	case Query:
		return c.QueryParser(out)
	default:
		if len(c.Body()) == 0 {
			return nil
		}
		return json.Unmarshal(c.Body(), out)
	}
}

func parseMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type.String())
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return "request body must be valid JSON"
	}
	return err.Error()
}

func firstMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Translate(trans)
	}
	return err.Error()
}
