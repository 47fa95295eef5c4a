package inspection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathRendering(t *testing.T) {
	assert := assert.New(t)

	p := NewPath()
	assert.Equal("@", p.String())
	assert.Equal(1, p.Depth())

	p.PushProperty("a")
	p.PushProperty("b")
	p.PushProperty("c")
	assert.Equal("@.a.b.c", p.String())
	assert.Equal(4, p.Depth())

	p.Pop()
	p.Pop()
	p.PushIndex(3)
	assert.Equal("@.a[3]", p.String())

	p.PushProperty("a b")
	assert.Equal(`@.a[3]["a b"]`, p.String())
	p.Pop()
	p.PushProperty("$ok_1")
	assert.Equal("@.a[3].$ok_1", p.String())
	p.Pop()
	p.PushProperty("1st")
	assert.Equal(`@.a[3]["1st"]`, p.String())

	p.Pop()
	p.Pop()
	p.Pop()
	p.Pop()
	assert.Equal("@", p.String())
}

func TestPathProperty(t *testing.T) {
	assert := assert.New(t)

	p := NewPath()
	p.PushProperty("x")
	p.PushIndex(0)
	assert.Equal("@.x[0]", p.Property(""))
	assert.Equal("First tag (@.x[0])", p.Property("First tag"))
}

func TestOverridesScope(t *testing.T) {
	assert := assert.New(t)

	var o Overrides
	restore := o.Scope("outer", "bad outer")
	assert.Equal("outer", o.Alias)
	assert.Equal("bad outer", o.Error)

	inner := o.Scope("inner", "")
	assert.Equal("inner", o.Alias)
	assert.Equal("", o.Error)
	inner()

	assert.Equal("outer", o.Alias)
	assert.Equal("bad outer", o.Error)
	restore()
	assert.Equal(Overrides{}, o)
}
