package sentence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppendJoinsWithSingleSpace(t *testing.T) {
	var b Buffer
	b.Append("quiero")
	b.Append("una")
	b.Append("manzana")
	assert.Equal(t, "quiero una manzana", b.Text())
}

func TestAppendTrimsSurroundingWhitespace(t *testing.T) {
	var b Buffer
	b.Append("  quiero ")
	b.Append("\tagua\n")
	assert.Equal(t, "quiero agua", b.Text())
}

func TestAppendIsAssociativeInEffect(t *testing.T) {
	var one, two Buffer
	one.Append("quiero")
	one.Append("agua")
	two.Append("quiero agua")
	assert.Equal(t, two.Text(), one.Text())
}

func TestAppendEmptyWordIsNoOp(t *testing.T) {
	var b Buffer
	b.Append("hola")
	b.Append("   ")
	b.Append("")
	assert.Equal(t, "hola", b.Text())
}

func TestClear(t *testing.T) {
	var b Buffer
	b.Append("hola")
	b.Clear()
	assert.True(t, b.Empty())
	assert.Equal(t, "", b.Text())
}

func TestSetText(t *testing.T) {
	var b Buffer
	b.Append("stale")
	b.SetText("  necesito ayuda ahora ")
	assert.Equal(t, "necesito ayuda ahora", b.Text())
}
