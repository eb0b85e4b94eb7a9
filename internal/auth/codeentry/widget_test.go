package codeentry

import (
	"testing"

	"github.com/shandysiswandi/otpgate/internal/auth/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func values(w *Widget) []string {
	out := make([]string, 0, w.Len())
	for _, s := range w.Slots() {
		out = append(out, s.Value)
	}
	return out
}

func TestWidget_SetDigit(t *testing.T) {
	tests := []struct {
		name      string
		index     int
		raw       string
		wantValue string
		wantFocus int
	}{
		{name: "digit advances", index: 0, raw: "4", wantValue: "4", wantFocus: 1},
		{name: "strips non digits", index: 2, raw: "a7b", wantValue: "7", wantFocus: 3},
		{name: "keeps first digit", index: 1, raw: "98", wantValue: "9", wantFocus: 2},
		{name: "last slot keeps focus", index: 5, raw: "3", wantValue: "3", wantFocus: 5},
		{name: "letters only clears", index: 3, raw: "x", wantValue: "", wantFocus: 3},
		{name: "unicode digit rejected", index: 0, raw: "٣", wantValue: "", wantFocus: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := New(DefaultLength)
			require.NoError(t, w.SetDigit(tt.index, tt.raw))

			assert.Equal(t, tt.wantValue, w.Slots()[tt.index].Value)
			assert.Equal(t, tt.wantValue != "", w.Slots()[tt.index].Filled)
			assert.Equal(t, tt.wantFocus, w.Focus())
		})
	}
}

func TestWidget_SetDigitClearsExisting(t *testing.T) {
	w := New(DefaultLength)
	require.NoError(t, w.SetDigit(2, "5"))
	require.NoError(t, w.SetDigit(2, ""))

	assert.False(t, w.Slots()[2].Filled)
	assert.Equal(t, 2, w.Focus())
}

func TestWidget_OutOfRange(t *testing.T) {
	w := New(DefaultLength)

	assert.ErrorIs(t, w.SetDigit(6, "1"), entity.ErrSlotOutOfRange)
	assert.ErrorIs(t, w.SetDigit(-1, "1"), entity.ErrSlotOutOfRange)
	assert.ErrorIs(t, w.Backspace(6), entity.ErrSlotOutOfRange)
	assert.ErrorIs(t, w.Navigate(DirectionLeft, 9), entity.ErrSlotOutOfRange)
	assert.Equal(t, []string{"", "", "", "", "", ""}, values(w))
}

func TestWidget_TypingSequence(t *testing.T) {
	w := New(DefaultLength)
	for i, d := range "123456" {
		require.NoError(t, w.SetDigit(i, string(d)))
	}

	code, ok := w.Value()
	assert.True(t, ok)
	assert.Equal(t, "123456", code)
	assert.Equal(t, 5, w.Focus())
}

func TestWidget_Backspace(t *testing.T) {
	t.Run("filled slot clears in place", func(t *testing.T) {
		w := New(DefaultLength)
		w.Paste("123")

		require.NoError(t, w.Backspace(1))
		assert.Equal(t, []string{"1", "", "3", "", "", ""}, values(w))
		assert.Equal(t, 1, w.Focus())
	})

	t.Run("empty slot moves back and clears previous", func(t *testing.T) {
		w := New(DefaultLength)
		w.Paste("123")

		require.NoError(t, w.Backspace(3))
		assert.Equal(t, []string{"1", "2", "", "", "", ""}, values(w))
		assert.Equal(t, 2, w.Focus())
	})

	t.Run("empty first slot stays", func(t *testing.T) {
		w := New(DefaultLength)

		require.NoError(t, w.Backspace(0))
		assert.Equal(t, 0, w.Focus())
	})
}

func TestWidget_Navigate(t *testing.T) {
	w := New(DefaultLength)
	w.Paste("12")
	before := values(w)

	require.NoError(t, w.Navigate(DirectionLeft, 0))
	assert.Equal(t, 0, w.Focus())

	require.NoError(t, w.Navigate(DirectionRight, 5))
	assert.Equal(t, 5, w.Focus())

	require.NoError(t, w.Navigate(DirectionRight, 2))
	assert.Equal(t, 3, w.Focus())

	require.NoError(t, w.Navigate(DirectionLeft, 3))
	assert.Equal(t, 2, w.Focus())

	assert.ErrorIs(t, w.Navigate(Direction("up"), 2), entity.ErrUnknownDirection)
	assert.Equal(t, before, values(w))
}

func TestWidget_Paste(t *testing.T) {
	tests := []struct {
		name      string
		prefill   string
		raw       string
		want      []string
		wantFocus int
		wantN     int
	}{
		{name: "full code", raw: "123456", want: []string{"1", "2", "3", "4", "5", "6"}, wantFocus: 5, wantN: 6},
		{name: "formatted", raw: "12-34 56", want: []string{"1", "2", "3", "4", "5", "6"}, wantFocus: 5, wantN: 6},
		{name: "truncates", raw: "12345678", want: []string{"1", "2", "3", "4", "5", "6"}, wantFocus: 5, wantN: 6},
		{name: "short paste", prefill: "999999", raw: "12", want: []string{"1", "2", "", "", "", ""}, wantFocus: 2, wantN: 2},
		{name: "letters ignored", prefill: "99", raw: "abc", want: []string{"9", "9", "", "", "", ""}, wantFocus: 2, wantN: 0},
		{name: "empty ignored", raw: "", want: []string{"", "", "", "", "", ""}, wantFocus: 0, wantN: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := New(DefaultLength)
			if tt.prefill != "" {
				w.Paste(tt.prefill)
			}

			n := w.Paste(tt.raw)

			assert.Equal(t, tt.wantN, n)
			assert.Equal(t, tt.want, values(w))
			assert.Equal(t, tt.wantFocus, w.Focus())
		})
	}
}

func TestWidget_PasteEquivalentToTyping(t *testing.T) {
	pasted := New(DefaultLength)
	pasted.Paste("482913")

	typed := New(DefaultLength)
	for i, d := range "482913" {
		require.NoError(t, typed.SetDigit(i, string(d)))
	}

	assert.Equal(t, typed.Slots(), pasted.Slots())
	assert.Equal(t, typed.Focus(), pasted.Focus())
}

func TestWidget_ValueAndReset(t *testing.T) {
	w := New(DefaultLength)
	w.Paste("12345")

	assert.False(t, w.IsComplete())
	_, ok := w.Value()
	assert.False(t, ok)

	require.NoError(t, w.SetDigit(5, "6"))
	assert.True(t, w.IsComplete())

	w.Reset()
	assert.False(t, w.IsComplete())
	assert.Equal(t, 0, w.Focus())
	assert.Len(t, w.Slots(), DefaultLength)
}

func TestNew_DefaultLength(t *testing.T) {
	assert.Equal(t, DefaultLength, New(0).Len())
	assert.Equal(t, 4, New(4).Len())
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection("ArrowLeft")
	require.NoError(t, err)
	assert.Equal(t, DirectionLeft, d)

	d, err = ParseDirection(" right ")
	require.NoError(t, err)
	assert.Equal(t, DirectionRight, d)

	_, err = ParseDirection("ArrowUp")
	assert.ErrorIs(t, err, entity.ErrUnknownDirection)
}
