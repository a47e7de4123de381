package termtypes

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstantAndFunc(t *testing.T) {
	c := Constant("whoami", "Display the current user", "guest")
	assert.Equal(t, ConstantCommand, c.Kind)
	assert.Equal(t, "guest", c.Value)
	assert.Nil(t, c.Run)

	f := Func("echo", "Display a line of text", "echo <text>", func(_ context.Context, inv *Invocation) (Result, error) {
		return Text(inv.Arg(0)), nil
	})
	assert.Equal(t, HandlerCommand, f.Kind)
	res, err := f.Run(context.Background(), &Invocation{Args: []string{"hi"}})
	assert.NoError(t, err)
	assert.Equal(t, "hi", res.Text)
}

func TestInvocation_Arg(t *testing.T) {
	inv := &Invocation{Args: []string{"a", "b"}}
	assert.Equal(t, "a", inv.Arg(0))
	assert.Equal(t, "b", inv.Arg(1))
	assert.Equal(t, "", inv.Arg(2))
	assert.Equal(t, "", inv.Arg(-1))
}

func TestResult_IsEmpty(t *testing.T) {
	assert.True(t, Result{}.IsEmpty())
	assert.True(t, Markup(NewFragment()).IsEmpty())
	assert.False(t, Text("x").IsEmpty())
	assert.False(t, Markup(NewFragment("row")).IsEmpty())
}

func TestFragment_ElementsCopy(t *testing.T) {
	f := NewFragment("a", "b")
	els := f.Elements()
	els[0] = "changed"
	assert.Equal(t, []string{"a", "b"}, f.Elements())

	var nilFrag *Fragment
	assert.Equal(t, 0, nilFrag.Len())
	assert.Nil(t, nilFrag.Elements())
}
