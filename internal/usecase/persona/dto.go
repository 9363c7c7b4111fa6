package persona

import (
	"strconv"

	domain "persona-registry/internal/domain/persona"
)

// PersonaInput holds the raw text a shell collected from its form fields.
type PersonaInput struct {
	Name    string `validate:"required"`
	Surname string `validate:"required"`
	Age     string `validate:"required"`
}

// InputFrom converts a stored persona back into raw form fields.
func InputFrom(p domain.Persona) PersonaInput {
	return PersonaInput{
		Name:    p.Name,
		Surname: p.Surname,
		Age:     strconv.Itoa(p.Age),
	}
}
