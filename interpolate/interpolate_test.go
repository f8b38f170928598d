package interpolate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solventlabs/beliefgrid/belief"
	"github.com/solventlabs/beliefgrid/pomdp"
	"github.com/solventlabs/beliefgrid/simplex"
)

func TestValue_ExactOnGridVertex(t *testing.T) {
	t.Parallel()
	M := 6
	verts, err := simplex.Enumerate(0, 3, M)
	require.NoError(t, err)

	v := make(map[belief.Belief]float64, len(verts))
	for i, vx := range verts {
		v[vx] = float64(i)
	}

	for i, vx := range verts {
		got, err := Value(vx, M, v)
		require.NoError(t, err)
		require.InDelta(t, float64(i), got, 1e-9)
	}
}

func TestValue_InterpolatesBetweenVertices(t *testing.T) {
	t.Parallel()
	M := 4
	verts, err := simplex.Enumerate(0, 2, M)
	require.NoError(t, err)

	v := make(map[belief.Belief]float64, len(verts))
	for _, vx := range verts {
		// Linear in the first coordinate: exactly representable by
		// barycentric interpolation regardless of decomposition.
		v[vx] = vx.At(0) * 10
	}

	b := belief.MustNew(0, []float64{0.37, 0.63})
	got, err := Value(b, M, v)
	require.NoError(t, err)
	require.InDelta(t, 3.7, got, 1e-3)
}

func TestValue_MissingVertexIsInternalError(t *testing.T) {
	t.Parallel()
	b := belief.MustNew(0, []float64{0.5, 0.5})
	_, err := Value(b, 4, map[belief.Belief]float64{})
	require.ErrorIs(t, err, pomdp.ErrInternal)
}
