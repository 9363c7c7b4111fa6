package persona

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"

	domain "persona-registry/internal/domain/persona"
	pkgerrors "persona-registry/pkg/errors"
)

// Validation messages, reported in this order.
const (
	MsgNameRequired    = "a name is required."
	MsgSurnameRequired = "surname is required."
	MsgAgeRequired     = "age is required."
	MsgAgeNumeric      = "age must be numeric."
	MsgAgeRange        = "age must be between 0 and 120."
)

var requiredMessages = map[string]string{
	"Name":    MsgNameRequired,
	"Surname": MsgSurnameRequired,
	"Age":     MsgAgeRequired,
}

// ageRule is applied to the parsed age.
var ageRule = fmt.Sprintf("gte=%d,lte=%d", domain.MinAge, domain.MaxAge)

// FieldValidator turns raw form text into a Persona or the full list of
// problems with it. Every rule runs; nothing short-circuits except the numeric
// and range checks, which need a non-empty age.
type FieldValidator struct {
	validate *validator.Validate
}

// NewFieldValidator creates a FieldValidator.
func NewFieldValidator() *FieldValidator {
	return &FieldValidator{validate: validator.New()}
}

// Validate returns either a Persona or a *pkgerrors.ValidationError, never both.
func (v *FieldValidator) Validate(in PersonaInput) (domain.Persona, error) {
	var messages []string

	if err := v.validate.Struct(in); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return domain.Persona{}, pkgerrors.NewInternalError("failed to validate persona", err)
		}
		for _, fe := range fieldErrs {
			if msg, ok := requiredMessages[fe.Field()]; ok {
				messages = append(messages, msg)
			}
		}
	}

	var age int
	if in.Age != "" {
		// ASCII digits in 32-bit range; anything else is not a number a form accepts.
		parsed, err := strconv.ParseInt(in.Age, 10, 32)
		if err != nil {
			messages = append(messages, MsgAgeNumeric)
		} else {
			age = int(parsed)
			if err := v.validate.Var(age, ageRule); err != nil {
				messages = append(messages, MsgAgeRange)
			}
		}
	}

	if len(messages) > 0 {
		return domain.Persona{}, pkgerrors.NewValidationError(messages...)
	}

	return domain.New(in.Name, in.Surname, age), nil
}
