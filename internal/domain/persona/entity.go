package persona

import "fmt"

const (
	// MinAge is the lowest accepted age.
	MinAge = 0
	// MaxAge is the highest accepted age.
	MaxAge = 120
)

// Persona represents a person record kept in the registry.
// Two personas are the same record when all three fields match.
type Persona struct {
	Name    string `json:"name"`    // Name is the given name of the person
	Surname string `json:"surname"` // Surname is the family name of the person
	Age     int    `json:"age"`     // Age in years, between MinAge and MaxAge
}

// New creates a Persona from already validated values.
func New(name, surname string, age int) Persona {
	return Persona{Name: name, Surname: surname, Age: age}
}

// Equal reports whether p and other hold the same values.
func (p Persona) Equal(other Persona) bool {
	return p == other
}

func (p Persona) String() string {
	return fmt.Sprintf("%s %s (%d)", p.Name, p.Surname, p.Age)
}
