package auth

import (
	"strings"
)

const CodeLength = 4

// Entry is the state of the one digit per field code input.
type Entry struct {
	Digits [CodeLength]string
	// Focus is the index of the field that receives the next key press
	Focus int
}

func NewEntry() *Entry {
	return &Entry{}
}

// EntryFromCode fills the fields as if the code was pasted into the first one.
func EntryFromCode(code string) *Entry {
	entry := NewEntry()
	entry.Type(0, code)

	return entry
}

func onlyDigits(text string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, text)
}

// Type handles a change of the field at index. Longer input is a paste and is
// spread over the following fields.
func (e *Entry) Type(index int, text string) {
	if index < 0 || index >= CodeLength {
		return
	}

	if len(text) > 1 {
		e.paste(index, text)
		return
	}

	// fields hold digits only, other keystrokes leave the field as it was
	if text != "" && onlyDigits(text) == "" {
		return
	}

	e.Digits[index] = text
	e.Focus = index
	if text != "" && index < CodeLength-1 {
		e.Focus = index + 1
	}
}

func (e *Entry) paste(index int, text string) {
	digits := onlyDigits(text)
	if len(digits) > CodeLength {
		digits = digits[:CodeLength]
	}

	for i, digit := range digits {
		if index+i < CodeLength {
			e.Digits[index+i] = string(digit)
		}
	}

	e.Focus = index + len(digits)
	if e.Focus > CodeLength-1 {
		e.Focus = CodeLength - 1
	}
}

// Backspace clears the field at index, or the previous one when it is already empty.
func (e *Entry) Backspace(index int) {
	if index < 0 || index >= CodeLength {
		return
	}

	if e.Digits[index] != "" {
		e.Digits[index] = ""
		e.Focus = index
		return
	}

	if index > 0 {
		e.Digits[index-1] = ""
		e.Focus = index - 1
	}
}

func (e *Entry) Code() string {
	return strings.Join(e.Digits[:], "")
}

func (e *Entry) Filled() bool {
	for _, digit := range e.Digits {
		if digit == "" {
			return false
		}
	}

	return true
}

func (e *Entry) Reset() {
	e.Digits = [CodeLength]string{}
	e.Focus = 0
}
