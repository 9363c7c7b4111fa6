package persona

import (
	"context"

	domain "persona-registry/internal/domain/persona"
)

// Usecase defines the operations a presentation shell can perform on its
// persona registry.
type Usecase interface {
	Validate(ctx context.Context, in PersonaInput) (*domain.Persona, error)
	Create(ctx context.Context, in PersonaInput) (*domain.Persona, error)
	Insert(ctx context.Context, p domain.Persona) error
	Remove(ctx context.Context, p domain.Persona) bool
	Update(ctx context.Context, old domain.Persona, in PersonaInput) (*domain.Persona, error)
	Checkout(ctx context.Context, p domain.Persona) (PersonaInput, bool)
	List(ctx context.Context) []domain.Persona
}

var _ Usecase = (*Service)(nil)
