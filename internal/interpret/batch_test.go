package interpret

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shrdlite/internal/world"
)

// TestInterpretAll_SuccessesWinOverErrors covers spec.md §7's batch
// semantics: if at least one parse succeeds, every error is dropped.
func TestInterpretAll_SuccessesWinOverErrors(t *testing.T) {
	snap := w1()
	good := Command{Command: "take", Entity: &Entity{Quantifier: QuantifierThe, Object: Object{Color: "white", Form: world.FormBall}}}
	bad := Command{Command: "take"} // no entity -> NoEntity

	results, err := InterpretAll([]Command{bad, good}, snap)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestInterpretAll_FirstErrorSurfacedWhenAllFail(t *testing.T) {
	snap := w1()
	bad1 := Command{Command: "take"}
	bad2 := Command{Command: "put"}

	_, err := InterpretAll([]Command{bad1, bad2}, snap)
	require.Error(t, err)
	assert.Equal(t, KindNoEntity, err.(*Error).Kind)
}

func TestInterpretAll_EmptyInput(t *testing.T) {
	results, err := InterpretAll(nil, w1())
	require.NoError(t, err)
	assert.Nil(t, results)
}
