package cast

import (
	"strings"

	"hexcast/domain/core"
)

// Line is a single sampled line value.
// 6 = changing yin, 7 = static yang, 8 = static yin, 9 = changing yang.
type Line int

const (
	OldYin    Line = 6
	YoungYang Line = 7
	YoungYin  Line = 8
	OldYang   Line = 9
)

// IsValid reports whether the line carries one of the four sampled values.
func (l Line) IsValid() bool {
	return l >= OldYin && l <= OldYang
}

// IsYang reports the line's polarity. Yang is the 1-bit convention for
// hexagram encoding across the whole engine.
func (l Line) IsYang() bool {
	return l == YoungYang || l == OldYang
}

// IsChanging reports whether the line is in flux and flips polarity in the
// relating hexagram.
func (l Line) IsChanging() bool {
	return l == OldYin || l == OldYang
}

// Flipped returns the line with inverted polarity; the changing flag is
// irrelevant after flipping so the static value is returned.
func (l Line) Flipped() Line {
	if l.IsYang() {
		return YoungYin
	}
	return YoungYang
}

// Hexagram is a 6-bit composite state. Bit i corresponds to position i+1
// (position 1 is the bottom line and least significant bit).
type Hexagram struct {
	Value  int    // 0..63
	Key    string // 6-char binary key, bit 0 emitted first
	Number int    // Value + 1, for 1-based external reference (1..64)
}

// NewHexagram builds a hexagram from its 6-bit value.
func NewHexagram(value int) Hexagram {
	return Hexagram{
		Value:  value,
		Key:    KeyFromValue(value),
		Number: value + 1,
	}
}

// KeyFromValue walks bits 0..5 and emits '1' for yang, '0' for yin.
func KeyFromValue(value int) string {
	var b strings.Builder
	for i := 0; i < 6; i++ {
		if value&(1<<i) != 0 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// ValueFromKey inverts KeyFromValue. Keys must be exactly 6 characters of
// '0' and '1'.
func ValueFromKey(key string) (int, error) {
	if len(key) != 6 {
		return 0, core.ErrInvalidCastLength
	}
	value := 0
	for i := 0; i < 6; i++ {
		switch key[i] {
		case '1':
			value |= 1 << i
		case '0':
		default:
			return 0, core.NewLineValueError(i+1, int(key[i]))
		}
	}
	return value, nil
}

// NumberToKey converts a 1-based hexagram number (1..64) to its binary key.
func NumberToKey(number int) string {
	return KeyFromValue(number - 1)
}

// KeyToNumber converts a binary key to its 1-based hexagram number.
func KeyToNumber(key string) (int, error) {
	value, err := ValueFromKey(key)
	if err != nil {
		return 0, err
	}
	return value + 1, nil
}

// Derivation holds the three hexagrams derived from one cast plus the
// changing-line positions that drive policy selection downstream.
type Derivation struct {
	Primary       Hexagram
	Relating      Hexagram
	Mutual        Hexagram
	ChangingLines []int // ascending 1-based positions
}

// ChangingCount returns the number of changing lines (0..6).
func (d Derivation) ChangingCount() int {
	return len(d.ChangingLines)
}

// Validate checks a raw 6-line sequence against the caller contract.
func Validate(lines []Line) error {
	if len(lines) != 6 {
		return core.NewCastLengthError(len(lines))
	}
	for i, l := range lines {
		if !l.IsValid() {
			return core.NewLineValueError(i+1, int(l))
		}
	}
	return nil
}
