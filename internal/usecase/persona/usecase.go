package persona

import (
	"context"

	"go.uber.org/zap"

	domain "persona-registry/internal/domain/persona"
	pkgerrors "persona-registry/pkg/errors"
	"persona-registry/pkg/logger"
)

// Repository defines the storage operations for personas.
// Implementations keep insertion order and never hold two equal records.
type Repository interface {
	Insert(p domain.Persona) error       // Append unless an equal record exists
	Remove(p domain.Persona) bool        // Remove the equal record, if any
	Replace(old, p domain.Persona) error // Swap old for p at the same position
	List() []domain.Persona              // Snapshot in insertion order
}

// Service implements the persona registry operations on top of a Repository.
// It is synchronous and must be driven by a single goroutine.
type Service struct {
	repo      Repository      // Repository holding the records
	validator *FieldValidator // Validator for raw form input
	log       *zap.Logger     // Logger for structured logging
}

// New creates a new Service with the provided repository and logger.
func New(r Repository, log *zap.Logger) *Service {
	return &Service{repo: r, validator: NewFieldValidator(), log: log}
}

// Validate checks raw form input and builds a Persona from it.
func (s *Service) Validate(ctx context.Context, in PersonaInput) (*domain.Persona, error) {
	p, err := s.validator.Validate(in)
	if err != nil {
		logger.WithContext(ctx, s.log).Debug("validate failed", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

// Create validates raw form input and stores the resulting persona.
func (s *Service) Create(ctx context.Context, in PersonaInput) (*domain.Persona, error) {
	log := logger.WithContext(ctx, s.log)
	log.Info("creating persona", zap.String("name", in.Name), zap.String("surname", in.Surname), zap.String("age", in.Age))

	p, err := s.Validate(ctx, in)
	if err != nil {
		log.Warn("persona rejected by validation", zap.Strings("messages", pkgerrors.Messages(err)))
		return nil, err
	}

	if err := s.Insert(ctx, *p); err != nil {
		return nil, err
	}
	return p, nil
}

// Insert stores an already validated persona.
func (s *Service) Insert(ctx context.Context, p domain.Persona) error {
	if err := s.repo.Insert(p); err != nil {
		logger.WithContext(ctx, s.log).Warn("persona already exists", zap.Stringer("persona", p))
		return err
	}
	logger.WithContext(ctx, s.log).Info("persona added", zap.Stringer("persona", p))
	return nil
}

// Remove deletes p from the registry. Removing an absent persona is not an error.
func (s *Service) Remove(ctx context.Context, p domain.Persona) bool {
	removed := s.repo.Remove(p)
	logger.WithContext(ctx, s.log).Info("removing persona", zap.Stringer("persona", p), zap.Bool("removed", removed))
	return removed
}

// Update validates the new field values and replaces old with the result in
// one step, keeping its position. The registry is unchanged on any error.
func (s *Service) Update(ctx context.Context, old domain.Persona, in PersonaInput) (*domain.Persona, error) {
	log := logger.WithContext(ctx, s.log)
	log.Info("updating persona", zap.Stringer("old", old), zap.String("name", in.Name), zap.String("surname", in.Surname), zap.String("age", in.Age))

	p, err := s.Validate(ctx, in)
	if err != nil {
		log.Warn("persona update rejected by validation", zap.Strings("messages", pkgerrors.Messages(err)))
		return nil, err
	}

	if err := s.repo.Replace(old, *p); err != nil {
		log.Warn("failed to update persona", zap.Stringer("old", old), zap.Stringer("new", p), zap.Error(err))
		return nil, err
	}
	return p, nil
}

// Checkout removes p and hands its values back as form input, so the caller
// can resubmit them through Create. The record is gone until that happens.
func (s *Service) Checkout(ctx context.Context, p domain.Persona) (PersonaInput, bool) {
	in := InputFrom(p)
	removed := s.repo.Remove(p)
	logger.WithContext(ctx, s.log).Info("persona checked out for editing", zap.Stringer("persona", p), zap.Bool("removed", removed))
	return in, removed
}

// List returns a snapshot of the registry in insertion order.
func (s *Service) List(ctx context.Context) []domain.Persona {
	return s.repo.List()
}
