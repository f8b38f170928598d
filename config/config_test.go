package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solventlabs/beliefgrid/pomdp"
	"github.com/solventlabs/beliefgrid/valueiter"
)

func TestLoad_MergesOverDefaults(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("resolution: 16\nobjective: min\n"), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 16, f.Resolution)
	require.Equal(t, "min", f.Objective)
	require.Equal(t, 1000, f.MaxIters) // untouched default
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	t.Parallel()
	f, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), f)
}

func TestResolve_TranslatesEnums(t *testing.T) {
	t.Parallel()
	r, err := Resolve(File{Objective: "min", TermCrit: "relative"})
	require.NoError(t, err)
	require.Equal(t, pomdp.Min, r.Objective)
	require.Equal(t, valueiter.Relative, r.TermCrit)
}

func TestResolve_RejectsBadObjective(t *testing.T) {
	t.Parallel()
	_, err := Resolve(File{Objective: "sideways"})
	require.ErrorIs(t, err, ErrBadObjective)
}

func TestResolve_RejectsBadTermCrit(t *testing.T) {
	t.Parallel()
	_, err := Resolve(File{TermCrit: "sideways"})
	require.ErrorIs(t, err, ErrBadTermCrit)
}
