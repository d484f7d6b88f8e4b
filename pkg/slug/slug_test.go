package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/rifa-pro/pkg/slug"
)

func TestMake_RemoveAcentosEEspacos(t *testing.T) {
	assert.Equal(t, "joao-da-silva", slug.Make("João da Silva"))
	assert.Equal(t, "maria-conceicao", slug.Make("Maria Conceição"))
	assert.Equal(t, "andre-luis-123", slug.Make("  André  Luís 123 "))
}

func TestMake_SomenteSimbolos(t *testing.T) {
	assert.Equal(t, "", slug.Make("!!!"))
}

func TestWithSuffix(t *testing.T) {
	assert.Equal(t, "joao-a1b2", slug.WithSuffix("joao", "a1b2"))
	assert.Equal(t, "a1b2", slug.WithSuffix("", "a1b2"))
}
