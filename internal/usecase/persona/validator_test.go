package persona

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "persona-registry/internal/domain/persona"
	pkgerrors "persona-registry/pkg/errors"
)

func TestFieldValidator_Valid(t *testing.T) {
	v := NewFieldValidator()

	tests := []struct {
		name string
		in   PersonaInput
		want domain.Persona
	}{
		{name: "typical", in: PersonaInput{Name: "Ana", Surname: "Lopez", Age: "30"}, want: domain.New("Ana", "Lopez", 30)},
		{name: "lower bound", in: PersonaInput{Name: "Bebe", Surname: "Nuevo", Age: "0"}, want: domain.New("Bebe", "Nuevo", 0)},
		{name: "upper bound", in: PersonaInput{Name: "Old", Surname: "Timer", Age: "120"}, want: domain.New("Old", "Timer", 120)},
		{name: "explicit plus sign", in: PersonaInput{Name: "Ana", Surname: "Lopez", Age: "+45"}, want: domain.New("Ana", "Lopez", 45)},
		{name: "leading zeros", in: PersonaInput{Name: "Ana", Surname: "Lopez", Age: "007"}, want: domain.New("Ana", "Lopez", 7)},
		{name: "whitespace name is kept", in: PersonaInput{Name: " ", Surname: "Lopez", Age: "1"}, want: domain.New(" ", "Lopez", 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.Validate(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFieldValidator_Invalid(t *testing.T) {
	v := NewFieldValidator()

	tests := []struct {
		name string
		in   PersonaInput
		want []string
	}{
		{
			name: "everything empty",
			in:   PersonaInput{},
			want: []string{MsgNameRequired, MsgSurnameRequired, MsgAgeRequired},
		},
		{
			name: "empty names and non numeric age",
			in:   PersonaInput{Age: "abc"},
			want: []string{MsgNameRequired, MsgSurnameRequired, MsgAgeNumeric},
		},
		{
			name: "age out of range",
			in:   PersonaInput{Name: "Ana", Surname: "Lopez", Age: "150"},
			want: []string{MsgAgeRange},
		},
		{
			name: "negative age",
			in:   PersonaInput{Name: "Ana", Surname: "Lopez", Age: "-1"},
			want: []string{MsgAgeRange},
		},
		{
			name: "empty name only",
			in:   PersonaInput{Surname: "Lopez", Age: "30"},
			want: []string{MsgNameRequired},
		},
		{
			name: "empty surname with range error",
			in:   PersonaInput{Name: "Ana", Age: "121"},
			want: []string{MsgSurnameRequired, MsgAgeRange},
		},
		{
			name: "decimal age",
			in:   PersonaInput{Name: "Ana", Surname: "Lopez", Age: "30.5"},
			want: []string{MsgAgeNumeric},
		},
		{
			name: "padded age",
			in:   PersonaInput{Name: "Ana", Surname: "Lopez", Age: " 30"},
			want: []string{MsgAgeNumeric},
		},
		{
			name: "age wider than 32 bits",
			in:   PersonaInput{Name: "Ana", Surname: "Lopez", Age: "99999999999"},
			want: []string{MsgAgeNumeric},
		},
		{
			name: "non ascii digits",
			in:   PersonaInput{Name: "Ana", Surname: "Lopez", Age: "٣٠"},
			want: []string{MsgAgeNumeric},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.Validate(tt.in)
			require.Error(t, err)
			assert.Equal(t, domain.Persona{}, got)

			var ve *pkgerrors.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.want, ve.Messages)
		})
	}
}

func TestFieldValidator_MessagesOnePerLine(t *testing.T) {
	v := NewFieldValidator()

	_, err := v.Validate(PersonaInput{Age: "abc"})

	require.Error(t, err)
	assert.Equal(t, "a name is required.\nsurname is required.\nage must be numeric.", err.Error())
}
