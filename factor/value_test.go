// SPDX-License-Identifier: MIT

package factor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbayes/factor"
)

// TestValueOf_Conversions covers every supported Go type and the failure path.
func TestValueOf_Conversions(t *testing.T) {
	cases := []struct {
		in   any
		kind factor.Kind
		str  string
	}{
		{3, factor.KindNumber, "3"},
		{int64(-2), factor.KindNumber, "-2"},
		{uint8(7), factor.KindNumber, "7"},
		{float32(0.5), factor.KindNumber, "0.5"},
		{0.25, factor.KindNumber, "0.25"},
		{"heavy", factor.KindText, "heavy"},
		{true, factor.KindToken, "true"},
		{factor.Token("x"), factor.KindToken, "x"},
	}
	for _, tc := range cases {
		v, err := factor.ValueOf(tc.in)
		require.NoError(t, err, "input %v", tc.in)
		assert.Equal(t, tc.kind, v.Kind(), "input %v", tc.in)
		assert.Equal(t, tc.str, v.String(), "input %v", tc.in)
	}

	_, err := factor.ValueOf(struct{}{})
	assert.ErrorIs(t, err, factor.ErrUnsupportedValue)
}

// TestValue_EqualityByKindAndPayload ensures Number(1) and Text("1") never collide.
func TestValue_EqualityByKindAndPayload(t *testing.T) {
	assert.Equal(t, factor.Int(1), factor.Number(1.0))
	assert.NotEqual(t, factor.Int(1), factor.Text("1"))
	assert.NotEqual(t, factor.Text("a"), factor.Token("a"))
	assert.False(t, factor.Value{}.IsValid())
	assert.Equal(t, "<invalid>", factor.Value{}.String())

	x, ok := factor.Number(2.5).Float()
	assert.True(t, ok)
	assert.Equal(t, 2.5, x)
	_, ok = factor.Text("2.5").Float()
	assert.False(t, ok)
}

// TestValues_ReportsElement checks the failing element index is reported.
func TestValues_ReportsElement(t *testing.T) {
	_, err := factor.Values(1, "a", []int{1})
	require.Error(t, err)
	assert.ErrorIs(t, err, factor.ErrUnsupportedValue)
	assert.Contains(t, err.Error(), "element 2")

	assert.Panics(t, func() { factor.MustValues(map[string]int{}) })
}

// TestKind_String covers the labels.
func TestKind_String(t *testing.T) {
	assert.Equal(t, "number", factor.KindNumber.String())
	assert.Equal(t, "text", factor.KindText.String())
	assert.Equal(t, "token", factor.KindToken.String())
	assert.Equal(t, "invalid", factor.KindInvalid.String())
}
