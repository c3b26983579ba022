package decimal_test

import (
	"fmt"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/fixp/decimal"
)

func TestNew(t *testing.T) {
	type TC struct {
		name      string
		width     decimal.Width
		precision uint32
		scale     uint32
		err       bool
	}

	tcs := []TC{
		{
			name:      "smallest",
			width:     decimal.Width32,
			precision: 1,
			scale:     0,
		},
		{
			name:      "full 32",
			width:     decimal.Width32,
			precision: 9,
			scale:     9,
		},
		{
			name:      "full 64",
			width:     decimal.Width64,
			precision: 18,
			scale:     18,
		},
		{
			name:      "full 128",
			width:     decimal.Width128,
			precision: 38,
			scale:     38,
		},
		{
			name:      "full 256",
			width:     decimal.Width256,
			precision: 76,
			scale:     76,
		},
		{
			name:      "zero precision",
			width:     decimal.Width32,
			precision: 0,
			scale:     0,
			err:       true,
		},
		{
			name:      "precision beyond width",
			width:     decimal.Width32,
			precision: 10,
			scale:     0,
			err:       true,
		},
		{
			name:      "scale beyond precision",
			width:     decimal.Width64,
			precision: 5,
			scale:     7,
			err:       true,
		},
		{
			name:      "unsupported width",
			width:     decimal.Width(16),
			precision: 4,
			scale:     0,
			err:       true,
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			d, err := decimal.New(tc.width, tc.precision, tc.scale)
			if tc.err {
				require.Error(t, err, spew.Sdump(tc))

				return
			}

			require.NoError(t, err, spew.Sdump(tc))
			require.Equal(t, tc.width, d.Width())
			require.Equal(t, tc.precision, d.Precision())
			require.Equal(t, tc.scale, d.Scale())
		})
	}
}

func TestForPrecision(t *testing.T) {
	type TC struct {
		name      string
		precision uint32
		scale     uint32
		width     decimal.Width
		err       bool
	}

	tcs := []TC{
		{
			name:      "single digit",
			precision: 1,
			width:     decimal.Width32,
		},
		{
			name:      "last 32",
			precision: 9,
			width:     decimal.Width32,
		},
		{
			name:      "first 64",
			precision: 10,
			width:     decimal.Width64,
		},
		{
			name:      "last 64",
			precision: 18,
			width:     decimal.Width64,
		},
		{
			name:      "first 128",
			precision: 19,
			width:     decimal.Width128,
		},
		{
			name:      "last 128",
			precision: 38,
			width:     decimal.Width128,
		},
		{
			name:      "first 256",
			precision: 39,
			width:     decimal.Width256,
		},
		{
			name:      "last 256",
			precision: 76,
			scale:     30,
			width:     decimal.Width256,
		},
		{
			name:      "beyond widest",
			precision: 77,
			err:       true,
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			d, err := decimal.ForPrecision(tc.precision, tc.scale)
			if tc.err {
				require.Error(t, err, spew.Sdump(tc))
				require.True(t, decimal.WidthSelectionError.Has(err))

				return
			}

			require.NoError(t, err, spew.Sdump(tc))
			require.Equal(t, tc.width, d.Width())
			require.Equal(t, tc.precision, d.Precision())
			require.Equal(t, tc.scale, d.Scale())
		})
	}
}

func TestName(t *testing.T) {
	d, err := decimal.New(decimal.Width64, 10, 2)
	require.NoError(t, err)
	require.Equal(t, "Decimal(10, 2)", d.Name())

	d, err = decimal.New(decimal.Width256, 76, 0)
	require.NoError(t, err)
	require.Equal(t, "Decimal(76, 0)", d.Name())
}

func TestSQLCompatibleName(t *testing.T) {
	type TC struct {
		name      string
		precision uint32
		scale     uint32
		expected  string
	}

	tcs := []TC{
		{
			name:      "plain",
			precision: 10,
			scale:     2,
			expected:  "DECIMAL(10, 2)",
		},
		{
			name:      "at the caps",
			precision: 65,
			scale:     30,
			expected:  "DECIMAL(65, 30)",
		},
		{
			name:      "precision beyond cap",
			precision: 66,
			scale:     0,
			expected:  "TEXT",
		},
		{
			name:      "scale beyond cap",
			precision: 40,
			scale:     31,
			expected:  "TEXT",
		},
		{
			name:      "both beyond cap",
			precision: 76,
			scale:     40,
			expected:  "TEXT",
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			d, err := decimal.ForPrecision(tc.precision, tc.scale)
			require.NoError(t, err, spew.Sdump(tc))
			require.Equal(t, tc.expected, d.SQLCompatibleName())
		})
	}
}

func TestEqual(t *testing.T) {
	narrow, err := decimal.New(decimal.Width64, 10, 2)
	require.NoError(t, err)

	wide, err := decimal.New(decimal.Width64, 18, 2)
	require.NoError(t, err)

	otherScale, err := decimal.New(decimal.Width64, 10, 3)
	require.NoError(t, err)

	otherWidth, err := decimal.New(decimal.Width128, 10, 2)
	require.NoError(t, err)

	// Reflexive.
	require.True(t, narrow.Equal(narrow))

	// Precision is not part of equality.
	require.True(t, narrow.Equal(wide))
	require.True(t, wide.Equal(narrow))

	require.False(t, narrow.Equal(otherScale))
	require.False(t, narrow.Equal(otherWidth))
	require.False(t, narrow.Equal(nil))
}

func TestPromote(t *testing.T) {
	type TC struct {
		name  string
		width decimal.Width
		to    decimal.Width
	}

	tcs := []TC{
		{
			name:  "32 to 128",
			width: decimal.Width32,
			to:    decimal.Width128,
		},
		{
			name:  "64 to 128",
			width: decimal.Width64,
			to:    decimal.Width128,
		},
		{
			name:  "128 stays",
			width: decimal.Width128,
			to:    decimal.Width128,
		},
		{
			name:  "256 stays",
			width: decimal.Width256,
			to:    decimal.Width256,
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			d, err := decimal.New(tc.width, tc.width.MaxPrecision(), 3)
			require.NoError(t, err, spew.Sdump(tc))

			p := d.Promote()
			require.Equal(t, tc.to, p.Width())
			require.Equal(t, tc.to.MaxPrecision(), p.Precision())
			require.Equal(t, uint32(3), p.Scale())
		})
	}
}

func TestWidthString(t *testing.T) {
	require.Equal(t, "Decimal32", decimal.Width32.String())
	require.Equal(t, "Decimal64", decimal.Width64.String())
	require.Equal(t, "Decimal128", decimal.Width128.String())
	require.Equal(t, "Decimal256", decimal.Width256.String())
}

func TestMaxPrecision(t *testing.T) {
	require.Equal(t, uint32(9), decimal.Width32.MaxPrecision())
	require.Equal(t, uint32(18), decimal.Width64.MaxPrecision())
	require.Equal(t, uint32(38), decimal.Width128.MaxPrecision())
	require.Equal(t, uint32(76), decimal.Width256.MaxPrecision())
	require.Equal(t, uint32(0), decimal.Width(48).MaxPrecision())
}
