package textnorm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/belleza-api/pkg/textnorm"
)

func TestName(t *testing.T) {
	assert.Equal(t, "Luna Spa", textnorm.Name("  Luna    Spa "))
	// "i" + U+0301 (tilde combinante) se compone a "í".
	assert.Equal(t, "Peluquer\u00eda", textnorm.Name("Peluqueri\u0301a"))
}

func TestSearchKey(t *testing.T) {
	assert.Equal(t, "peluqueria nandu", textnorm.SearchKey("Peluquería  Ñandú"))
}

func TestContains(t *testing.T) {
	cases := []struct {
		value, pattern string
		want           bool
	}{
		{"Zona Centro", "centro", true},
		{"Spa Ébano", "ebano", true},
		{"Spa Ébano", "luna", false},
		{"Cualquiera", "", true},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, textnorm.Contains(c.value, c.pattern), "%q ~ %q", c.value, c.pattern)
	}
}
