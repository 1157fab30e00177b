package palette

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop() Action { return Literal("echo") }

func names(cmds []Command) []string {
	out := make([]string, len(cmds))
	for i, c := range cmds {
		out[i] = c.Name
	}
	return out
}

func TestRegistryListBeforeConfigureIsEmpty(t *testing.T) {
	r := NewRegistry()
	list := r.List()
	require.NotNil(t, list)
	assert.Empty(t, list)
	assert.False(t, r.Configured())
	assert.False(t, r.IsOpen())
}

func TestRegistryAddBeforeConfigureFails(t *testing.T) {
	r := NewRegistry()
	err := r.Add(Command{Name: "Save", Action: noop()})
	require.ErrorIs(t, err, ErrNotConfigured)
	assert.Empty(t, r.List())
}

func TestRegistryAddAfterEmptyConfigureAppends(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Configure([]Command{}))
	require.NoError(t, r.Add(Command{Name: "Save", Action: noop()}))
	require.NoError(t, r.Add(Command{Name: "Quit", Action: noop()}))
	assert.Equal(t, []string{"Save", "Quit"}, names(r.List()))
}

func TestRegistryConfigureNilInstallsEmptyList(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Configure(nil))
	assert.True(t, r.Configured())
	require.NoError(t, r.Add(Command{Name: "A", Action: noop()}))
	assert.Equal(t, 1, r.Len())
}

func TestRegistryConfigureReplaces(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Configure([]Command{{Name: "A", Action: noop()}}))
	require.NoError(t, r.Configure([]Command{{Name: "B", Action: noop()}, {Name: "C", Action: noop()}}))
	assert.Equal(t, []string{"B", "C"}, names(r.List()))
}

func TestRegistryConfigureRejectsInvalidAndKeepsState(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Configure([]Command{{Name: "A", Action: noop()}}))

	err := r.Configure([]Command{{Name: "B", Action: noop()}, {Name: "  ", Action: noop()}})
	require.ErrorIs(t, err, ErrInvalidCommand)
	assert.Contains(t, err.Error(), "command 1")
	assert.Equal(t, []string{"A"}, names(r.List()))

	err = r.Configure([]Command{{Name: "NoAction"}})
	require.ErrorIs(t, err, ErrInvalidCommand)
}

func TestRegistryAddRejectsInvalid(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Configure(nil))
	require.ErrorIs(t, r.Add(Command{Name: "", Action: noop()}), ErrInvalidCommand)
	require.ErrorIs(t, r.Add(Command{Name: "x", Action: Invocable(nil)}), ErrInvalidCommand)
	assert.Zero(t, r.Len())
}

func TestRegistryAllowsDuplicateNames(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Configure([]Command{{Name: "A", Action: noop()}}))
	require.NoError(t, r.Add(Command{Name: "A", Action: noop()}))
	assert.Equal(t, 2, r.Len())
}

func TestRegistryRemoveRemovesAllMatches(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Configure([]Command{
		{Name: "A", Action: noop()},
		{Name: "B", Action: noop()},
		{Name: "A", Action: noop()},
	}))
	r.Remove("A")
	assert.Equal(t, []string{"B"}, names(r.List()))
}

func TestRegistryRemovePreservesOrder(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Configure([]Command{
		{Name: "A", Action: noop()},
		{Name: "X", Action: noop()},
		{Name: "B", Action: noop()},
		{Name: "X", Action: noop()},
		{Name: "C", Action: noop()},
	}))
	r.Remove("X")
	assert.Equal(t, []string{"A", "B", "C"}, names(r.List()))
}

func TestRegistryRemoveIsTotal(t *testing.T) {
	r := NewRegistry()
	assert.NotPanics(t, func() { r.Remove("missing") })
	assert.False(t, r.Configured())

	require.NoError(t, r.Configure([]Command{{Name: "A", Action: noop()}}))
	r.Remove("missing")
	r.Remove("")
	assert.Equal(t, []string{"A"}, names(r.List()))
}

func TestRegistryListReturnsCopy(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Configure([]Command{{Name: "A", Category: "File", Action: noop()}}))

	list := r.List()
	list[0].Name = "mutated"
	list[0].Category = "mutated"
	_ = append(list, Command{Name: "extra"})

	again := r.List()
	require.Len(t, again, 1)
	assert.Equal(t, "A", again[0].Name)
	assert.Equal(t, "File", again[0].Category)
}

func TestRegistryConfigureCopiesInput(t *testing.T) {
	r := NewRegistry()
	in := []Command{{Name: "A", Action: noop()}}
	require.NoError(t, r.Configure(in))
	in[0].Name = "mutated"
	assert.Equal(t, "A", r.List()[0].Name)
}

func TestRegistrySetOpen(t *testing.T) {
	r := NewRegistry()
	r.SetOpen(true)
	assert.True(t, r.IsOpen())
	r.SetOpen(false)
	assert.False(t, r.IsOpen())
}

func TestRegistryConcurrentAccess(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Configure(nil))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = r.Add(Command{Name: "A", Action: noop()})
				_ = r.List()
				_ = r.IsOpen()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 400, r.Len())
	r.Remove("A")
	assert.Zero(t, r.Len())
}

func TestDefaultRegistryIsShared(t *testing.T) {
	assert.Same(t, Default(), Default())
}
