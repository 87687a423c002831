package decimal_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/magnus-ISU/floatconv/decimal"
)

func TestShift(t *testing.T) {
	type TC struct {
		name   string
		input  string
		shift  int32
		digits string
		point  int32
	}

	tcs := []TC{
		{
			name:  "0<<10",
			input: "0",
			shift: 10,
		},
		{
			name:   "3<<2",
			input:  "3",
			shift:  2,
			digits: "12",
			point:  2,
		},
		{
			name:   "12>>2",
			input:  "12",
			shift:  -2,
			digits: "3",
			point:  1,
		},
		{
			name:   "1>>2",
			input:  "1",
			shift:  -2,
			digits: "25",
			point:  0,
		},
		{
			name:   "0.375<<3",
			input:  "0.375",
			shift:  3,
			digits: "3",
			point:  1,
		},
		{
			name:   "1<<60",
			input:  "1",
			shift:  60,
			digits: "1152921504606846976",
			point:  19,
		},
		{
			name:   "chunked 1<<120",
			input:  "1",
			shift:  120,
			digits: "1329227995784915872903807060280344576",
			point:  37,
		},
		{
			name:   "chunked back 2^120>>120",
			input:  "1329227995784915872903807060280344576",
			shift:  -120,
			digits: "1",
			point:  1,
		},
		{
			name:   "9>>1",
			input:  "9",
			shift:  -1,
			digits: "45",
			point:  1,
		},
		{
			name:   "0.1<<4",
			input:  "0.1",
			shift:  4,
			digits: "16",
			point:  1,
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			d := &decimal.Dec{}
			err := d.Parse([]byte(tc.input))
			require.NoError(t, err)

			d.Shift(tc.shift)

			require.Equal(t, tc.digits, digitString(d))
			require.Equal(t, tc.point, d.DecimalPoint)
		})
	}
}
