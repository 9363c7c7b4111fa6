package memory

import (
	"slices"

	"go.uber.org/zap"

	"persona-registry/internal/domain/persona"
	pkgerrors "persona-registry/pkg/errors"
)

// PersonaRepo keeps personas in insertion order and never holds two equal
// records. It is owned by a single shell and is not safe for concurrent use.
type PersonaRepo struct {
	items []persona.Persona
	log   *zap.Logger
}

// NewPersonaRepo creates an empty repository.
func NewPersonaRepo(log *zap.Logger) *PersonaRepo {
	return &PersonaRepo{log: log}
}

// indexOf returns the position of the record equal to p, or -1.
func (r *PersonaRepo) indexOf(p persona.Persona) int {
	return slices.IndexFunc(r.items, p.Equal)
}

// Insert appends p unless an equal record is already stored.
func (r *PersonaRepo) Insert(p persona.Persona) error {
	if r.indexOf(p) >= 0 {
		r.log.Debug("duplicate persona rejected", zap.Stringer("persona", p))
		return pkgerrors.ErrDuplicateRecord
	}

	r.items = append(r.items, p)
	r.log.Debug("persona stored", zap.Stringer("persona", p), zap.Int("count", len(r.items)))
	return nil
}

// Remove deletes the record equal to p. Removing an absent record is a no-op.
func (r *PersonaRepo) Remove(p persona.Persona) bool {
	i := r.indexOf(p)
	if i < 0 {
		r.log.Debug("persona not present, nothing removed", zap.Stringer("persona", p))
		return false
	}

	r.items = slices.Delete(r.items, i, i+1)
	r.log.Debug("persona removed", zap.Stringer("persona", p), zap.Int("count", len(r.items)))
	return true
}

// Replace swaps old for p at the same position.
func (r *PersonaRepo) Replace(old, p persona.Persona) error {
	i := r.indexOf(old)
	if i < 0 {
		return pkgerrors.ErrNotFound
	}
	if old.Equal(p) {
		return nil
	}
	if r.indexOf(p) >= 0 {
		return pkgerrors.ErrDuplicateRecord
	}

	r.items[i] = p
	r.log.Debug("persona replaced", zap.Stringer("old", old), zap.Stringer("new", p), zap.Int("position", i))
	return nil
}

// List returns a copy of the stored records in insertion order.
func (r *PersonaRepo) List() []persona.Persona {
	out := make([]persona.Persona, len(r.items))
	copy(out, r.items)
	return out
}

// Len returns the number of stored records.
func (r *PersonaRepo) Len() int {
	return len(r.items)
}
