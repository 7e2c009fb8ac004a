package densebasis_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ekkprimal/densebasis"
)

func TestDeterministicRandom_ReproducibleAndInRange(t *testing.T) {
	r := require.New(t)
	rnd := densebasis.NewDeterministicRandom(42)

	a := rnd.Float64(7)
	b := rnd.Float64(7)
	r.Equal(a, b, "same variable must reproduce the same draw")
	r.GreaterOrEqual(a, 0.0)
	r.Less(a, 1.0)

	c := rnd.Float64(8)
	r.NotEqual(a, c, "different variables should draw independently")
}
