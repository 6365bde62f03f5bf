package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInternIdentity(t *testing.T) {
	a := Intern("x")
	b := Intern("x")
	assert.Same(t, a, b)

	c := Intern("y")
	assert.NotSame(t, a, c)
	assert.Equal(t, "x", a.Name())
}
