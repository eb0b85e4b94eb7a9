// Package codeentry models the segmented one-time-code input: a fixed number
// of single-digit slots with typed entry, paste, backspace and arrow-key focus
// movement.
//
// A Widget is not safe for concurrent use; its owner serializes access.
package codeentry

import (
	"strings"
	"unicode"

	"github.com/samber/lo"
	"github.com/shandysiswandi/otpgate/internal/auth/entity"
)

// DefaultLength is the number of digit slots of a one-time code.
const DefaultLength = 6

// Direction is an arrow-key focus move.
type Direction string

const (
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// ParseDirection accepts "left"/"right" and the browser key names
// "ArrowLeft"/"ArrowRight".
func ParseDirection(raw string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "left", "arrowleft":
		return DirectionLeft, nil
	case "right", "arrowright":
		return DirectionRight, nil
	default:
		return "", entity.ErrUnknownDirection
	}
}

// Widget holds the canonical slot contents and the focused slot.
type Widget struct {
	slots []string
	focus int
}

// New returns an empty widget with length slots. A non-positive length falls
// back to DefaultLength.
func New(length int) *Widget {
	if length < 1 {
		length = DefaultLength
	}

	return &Widget{slots: make([]string, length)}
}

// Len returns the number of slots.
func (w *Widget) Len() int {
	return len(w.slots)
}

// Focus returns the index of the focused slot.
func (w *Widget) Focus() int {
	return w.focus
}

func (w *Widget) checkIndex(index int) error {
	if index < 0 || index >= len(w.slots) {
		return entity.ErrSlotOutOfRange
	}
	return nil
}

// digits keeps only the ASCII decimal digits of raw.
func digits(raw string) []string {
	return lo.FilterMap([]rune(raw), func(r rune, _ int) (string, bool) {
		return string(r), r <= unicode.MaxASCII && unicode.IsDigit(r)
	})
}

// SetDigit applies typed input to the slot at index. Non-digits are dropped and
// only the first remaining digit is kept; nothing left clears the slot. A filled
// slot moves focus to the next slot unless it is the last one.
func (w *Widget) SetDigit(index int, raw string) error {
	if err := w.checkIndex(index); err != nil {
		return err
	}

	w.focus = index

	ds := digits(raw)
	if len(ds) == 0 {
		w.slots[index] = ""
		return nil
	}

	w.slots[index] = ds[0]
	if index < len(w.slots)-1 {
		w.focus = index + 1
	}

	return nil
}

// Backspace clears the slot at index. On an already empty slot other than the
// first, focus moves back one slot and that slot is cleared instead.
func (w *Widget) Backspace(index int) error {
	if err := w.checkIndex(index); err != nil {
		return err
	}

	if w.slots[index] == "" && index > 0 {
		w.focus = index - 1
		w.slots[index-1] = ""
		return nil
	}

	w.focus = index
	w.slots[index] = ""
	return nil
}

// Navigate moves focus one slot left or right of index, clamped to the slot
// range. Contents are never modified.
func (w *Widget) Navigate(dir Direction, index int) error {
	if err := w.checkIndex(index); err != nil {
		return err
	}

	switch dir {
	case DirectionLeft:
		w.focus = max(index-1, 0)
	case DirectionRight:
		w.focus = min(index+1, len(w.slots)-1)
	default:
		return entity.ErrUnknownDirection
	}

	return nil
}

// Paste distributes the digits of raw over the slots from the first one,
// overwriting what was there. Slots past the pasted digits are left empty and
// focus lands after the last pasted digit, or on the last slot. Input without
// digits is ignored. It returns the number of digits placed.
func (w *Widget) Paste(raw string) int {
	ds := digits(raw)
	if len(ds) == 0 {
		return 0
	}

	if len(ds) > len(w.slots) {
		ds = ds[:len(w.slots)]
	}

	for i := range w.slots {
		if i < len(ds) {
			w.slots[i] = ds[i]
		} else {
			w.slots[i] = ""
		}
	}

	w.focus = min(len(ds), len(w.slots)-1)
	return len(ds)
}

// IsComplete reports whether every slot holds a digit.
func (w *Widget) IsComplete() bool {
	return lo.EveryBy(w.slots, func(s string) bool { return s != "" })
}

// Value returns the entered code. ok is false unless the widget is complete.
func (w *Widget) Value() (code string, ok bool) {
	if !w.IsComplete() {
		return "", false
	}
	return strings.Join(w.slots, ""), true
}

// Reset empties every slot and focuses the first one.
func (w *Widget) Reset() {
	for i := range w.slots {
		w.slots[i] = ""
	}
	w.focus = 0
}

// Slots returns a copy of the slot contents.
func (w *Widget) Slots() []entity.CodeSlot {
	return lo.Map(w.slots, func(v string, i int) entity.CodeSlot {
		return entity.CodeSlot{Index: i, Value: v, Filled: v != ""}
	})
}
