package decimal_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/fixp/decimal"
)

func TestNewValue(t *testing.T) {
	v, err := decimal.NewValue(decimal.Width32, big.NewInt(15000))
	require.NoError(t, err)
	require.Equal(t, decimal.Width32, v.Width())
	require.Equal(t, 1, v.Sign())
	require.False(t, v.IsZero())

	raw, ok := v.Int64()
	require.True(t, ok)
	require.Equal(t, int64(15000), raw)

	// Range is the width's two's complement range.
	_, err = decimal.NewValue(decimal.Width32, big.NewInt(2147483647))
	require.NoError(t, err)

	_, err = decimal.NewValue(decimal.Width32, big.NewInt(-2147483648))
	require.NoError(t, err)

	_, err = decimal.NewValue(decimal.Width32, big.NewInt(2147483648))
	require.Error(t, err)
	require.True(t, decimal.OverflowError.Has(err))

	_, err = decimal.NewValue(decimal.Width(16), big.NewInt(1))
	require.Error(t, err)
}

func TestValueImmutable(t *testing.T) {
	raw := big.NewInt(123)

	v, err := decimal.NewValue(decimal.Width64, raw)
	require.NoError(t, err)

	// Mutating the input or the accessor's result must not reach the
	// value.
	raw.SetInt64(999)
	v.BigInt().SetInt64(777)

	got, ok := v.Int64()
	require.True(t, ok)
	require.Equal(t, int64(123), got)
}

func TestValueZero(t *testing.T) {
	var v decimal.Value

	require.True(t, v.IsZero())
	require.Equal(t, 0, v.Sign())
	require.Equal(t, 0, v.BigInt().Sign())

	raw, ok := v.Int64()
	require.True(t, ok)
	require.Equal(t, int64(0), raw)
}
