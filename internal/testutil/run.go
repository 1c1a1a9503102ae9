package testutil

import (
	"bytes"
	"strings"
	"testing"

	"github.com/thruflo/argh/internal/grid"
	"github.com/thruflo/argh/internal/interp"
)

// RunSource loads source into a grid and executes it with the given
// stdin content, returning the program output and the interpreter
// error, if any.
func RunSource(t *testing.T, source, input string) (string, error) {
	t.Helper()

	g := grid.Load(source)
	var out bytes.Buffer
	it := interp.NewWithOptions(g, interp.Options{
		Input:  strings.NewReader(input),
		Output: &out,
	})
	err := it.Run()
	return out.String(), err
}
