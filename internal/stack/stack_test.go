package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bitlatte/portfolio/internal/palette"
)

func TestValidate(t *testing.T) {
	require.NoError(t, Validate())
}

func TestLookup(t *testing.T) {
	info, ok := Lookup(SpringBoot)
	require.True(t, ok)
	assert.Equal(t, "Spring Boot", info.Label)
	assert.Equal(t, palette.SpringBoot, info.Color)

	// Java has always been drawn with the JavaScript yellow.
	assert.Equal(t, Info{Label: "Java", Color: palette.JavaScript}, Java.Info())
}

func TestLookup_OutOfRange(t *testing.T) {
	_, ok := Lookup(numStacks)
	assert.False(t, ok)
	_, ok = Lookup(Stack(-1))
	assert.False(t, ok)
	assert.Equal(t, Info{}, Stack(99).Info())
}

func TestAll_CoversEveryIdentifier(t *testing.T) {
	all := All()
	require.Len(t, all, int(numStacks))
	for i, s := range all {
		assert.Equal(t, Stack(i), s)
		info, ok := Lookup(s)
		assert.True(t, ok)
		assert.NotEmpty(t, info.Label, "stack %s", s)
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "rabbitMq", RabbitMQ.String())
	assert.Equal(t, "springBoot", SpringBoot.String())
	assert.Equal(t, "Stack(500)", Stack(500).String())
}

func TestWorkStack(t *testing.T) {
	ws := WorkStack()
	require.NotEmpty(t, ws)
	assert.Equal(t, Java, ws[0])
	for _, s := range ws {
		assert.True(t, s.Valid())
	}
}
