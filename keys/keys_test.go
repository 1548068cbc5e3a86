package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	key, err := Lookup("8B")
	require.NoError(t, err)
	assert.Equal(t, "C Major", key.Name)
	assert.Equal(t, "8B", key.Code())

	_, err = Lookup("13A")
	require.Error(t, err)
}

func TestLookupByName(t *testing.T) {
	t.Parallel()

	key, err := LookupByName("A Minor")
	require.NoError(t, err)
	assert.Equal(t, "8A", key.Code())

	_, err = LookupByName("H Minor")
	require.Error(t, err)
}

func TestRelative(t *testing.T) {
	t.Parallel()

	cMajor, err := Lookup("8B")
	require.NoError(t, err)

	rel := cMajor.Relative()
	assert.Equal(t, "A Minor", rel.Name)

	// relative of the relative round-trips
	assert.Equal(t, cMajor, rel.Relative())
}

func TestNeighborsWrapAroundTheWheel(t *testing.T) {
	t.Parallel()

	oneA, err := Lookup("1A")
	require.NoError(t, err)

	n := oneA.Neighbors()
	require.Len(t, n, 2)
	assert.Equal(t, "12A", n[0].Code())
	assert.Equal(t, "2A", n[1].Code())

	twelveB, err := Lookup("12B")
	require.NoError(t, err)

	n = twelveB.Neighbors()
	assert.Equal(t, "11B", n[0].Code())
	assert.Equal(t, "1B", n[1].Code())
}

func TestCompatible(t *testing.T) {
	t.Parallel()

	aMinor, err := Lookup("8A")
	require.NoError(t, err)
	cMajor, err := Lookup("8B")
	require.NoError(t, err)
	eMinor, err := Lookup("9A")
	require.NoError(t, err)
	fSharpMajor, err := Lookup("2B")
	require.NoError(t, err)

	assert.True(t, Compatible(aMinor, aMinor))
	assert.True(t, Compatible(aMinor, cMajor))
	assert.True(t, Compatible(aMinor, eMinor))
	assert.False(t, Compatible(aMinor, fSharpMajor))
}
