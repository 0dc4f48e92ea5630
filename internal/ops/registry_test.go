package ops

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// toyOp is a minimal operation used to exercise the registry.
type toyOp struct {
	base
	marker string
}

func (op *toyOp) Execute(ctx context.Context, log LogFunc) error { return nil }

func toyConstructor(command, marker string) Constructor {
	return func(argument string, content []string) Operation {
		return &toyOp{
			base:   base{command: command, argument: argument, content: content},
			marker: marker,
		}
	}
}

func TestRegistryBuild(t *testing.T) {
	r := NewRegistry()
	r.Register("op_a", toyConstructor("op_a", "a"))
	r.Register("op_b", toyConstructor("op_b", "b"))

	op, ok := r.Build("op_a", "args", []string{"content"})
	require.True(t, ok)
	assert.Equal(t, "op_a", op.Command())
	assert.Equal(t, "args", op.Argument())
	assert.Equal(t, []string{"content"}, op.Content())
	assert.Equal(t, "a", op.(*toyOp).marker)

	op, ok = r.Build("op_b", "args", nil)
	require.True(t, ok)
	assert.Equal(t, "b", op.(*toyOp).marker)
}

func TestRegistryUnknownCommand(t *testing.T) {
	r := NewRegistry()
	r.Register("op_a", toyConstructor("op_a", "a"))

	op, ok := r.Build("op_c", "args", nil)
	assert.False(t, ok)
	assert.Nil(t, op)
}

func TestRegistryFirstRegistrationWins(t *testing.T) {
	r := NewRegistry()
	r.Register("op_a", toyConstructor("op_a", "first"))
	r.Register("op_a", toyConstructor("op_a", "second"))

	op, ok := r.Build("op_a", "", nil)
	require.True(t, ok)
	assert.Equal(t, "first", op.(*toyOp).marker)
}

func TestBuiltinsCompleteness(t *testing.T) {
	r := Builtins(Options{})

	for _, command := range []string{"write", "append", "console", "console_output"} {
		_, ok := r.Build(command, "args", nil)
		assert.True(t, ok, "builtin %q missing", command)
	}
}

func TestBuiltinsExtensible(t *testing.T) {
	r := Builtins(Options{})
	r.Register("op_custom", toyConstructor("op_custom", "custom"))

	// The extension is reachable and the builtins keep precedence on
	// their own keywords.
	_, ok := r.Build("op_custom", "", nil)
	assert.True(t, ok)

	r.Register("write", toyConstructor("write", "usurper"))
	op, ok := r.Build("write", "out.txt", nil)
	require.True(t, ok)
	_, isToy := op.(*toyOp)
	assert.False(t, isToy)
}
