package sampling

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyedPRNG(t *testing.T) {

	key := []byte("a 32-byte deterministic test key")

	t.Run("SameKeySameStream", func(t *testing.T) {
		a, err := NewKeyedPRNG(key)
		require.NoError(t, err)
		b, err := NewKeyedPRNG(key)
		require.NoError(t, err)

		pa, pb := make([]byte, 64), make([]byte, 64)
		_, err = a.Read(pa)
		require.NoError(t, err)
		_, err = b.Read(pb)
		require.NoError(t, err)
		assert.Equal(t, pa, pb)
	})

	t.Run("DifferentKeyDifferentStream", func(t *testing.T) {
		a, err := NewKeyedPRNG(key)
		require.NoError(t, err)
		b, err := NewKeyedPRNG([]byte("another key"))
		require.NoError(t, err)

		pa, pb := make([]byte, 64), make([]byte, 64)
		_, err = a.Read(pa)
		require.NoError(t, err)
		_, err = b.Read(pb)
		require.NoError(t, err)
		assert.NotEqual(t, pa, pb)
	})

	t.Run("Reset", func(t *testing.T) {
		prng, err := NewKeyedPRNG(key)
		require.NoError(t, err)

		first, again := make([]byte, 32), make([]byte, 32)
		_, err = prng.Read(first)
		require.NoError(t, err)
		prng.Reset()
		_, err = prng.Read(again)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	})

	t.Run("Key", func(t *testing.T) {
		prng, err := NewKeyedPRNG(key)
		require.NoError(t, err)
		assert.Equal(t, key, prng.Key())

		// The returned key is a copy.
		prng.Key()[0] ^= 0xff
		assert.Equal(t, key, prng.Key())
	})
}

func TestThreadSafePRNG(t *testing.T) {
	prng, err := NewPRNG()
	require.NoError(t, err)

	p := make([]byte, 64)
	n, err := prng.Read(p)
	require.NoError(t, err)
	assert.Equal(t, 64, n)
	assert.NotEqual(t, make([]byte, 64), p)
}

func TestPRNGKey(t *testing.T) {
	a := PRNGKey([]byte("secret"))
	b := PRNGKey([]byte("secret"))
	c := PRNGKey([]byte("other secret"))

	assert.Len(t, a, 32)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)

	prng, err := NewKeyedPRNG(a)
	require.NoError(t, err)
	p := make([]byte, 8)
	_, err = prng.Read(p)
	require.NoError(t, err)
}

func TestRandBigIntLE(t *testing.T) {

	t.Run("LittleEndian", func(t *testing.T) {
		r := bytes.NewReader([]byte{0x01, 0x00, 0x00, 0x02})
		v, err := RandBigIntLE(r, 4)
		require.NoError(t, err)
		assert.Zero(t, v.Cmp(big.NewInt(0x02000001)))
	})

	t.Run("Bounds", func(t *testing.T) {
		prng, err := NewKeyedPRNG(nil)
		require.NoError(t, err)

		bound := new(big.Int).Lsh(big.NewInt(1), 128)
		for i := 0; i < 100; i++ {
			v, err := RandBigIntLE(prng, 16)
			require.NoError(t, err)
			assert.True(t, v.Sign() >= 0)
			assert.True(t, v.Cmp(bound) < 0)
		}
	})

	t.Run("ShortSource", func(t *testing.T) {
		_, err := RandBigIntLE(bytes.NewReader([]byte{1, 2}), 4)
		assert.Error(t, err)
	})
}
