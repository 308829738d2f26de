package auth_test

import (
	"testing"

	"bitbucket.org/malama/ride-booking/internal/auth"
	"github.com/stretchr/testify/assert"
)

func TestEntry(t *testing.T) {
	t.Run("typing should move focus forward", func(t *testing.T) {
		entry := auth.NewEntry()

		entry.Type(0, "1")
		assert.Equal(t, 1, entry.Focus)
		entry.Type(1, "2")
		entry.Type(2, "3")
		entry.Type(3, "4")

		assert.Equal(t, "1234", entry.Code())
		assert.Equal(t, 3, entry.Focus)
		assert.True(t, entry.Filled())
	})

	t.Run("non digits should be ignored", func(t *testing.T) {
		entry := auth.NewEntry()

		entry.Type(0, "a")
		entry.Type(7, "1")

		assert.Equal(t, "", entry.Code())
		assert.Equal(t, 0, entry.Focus)
	})

	t.Run("non digit should keep the typed digit", func(t *testing.T) {
		entry := auth.NewEntry()

		entry.Type(0, "7")
		entry.Type(0, "x")

		assert.Equal(t, "7", entry.Digits[0])
		assert.Equal(t, 1, entry.Focus)
	})

	t.Run("paste should spread digits from the index", func(t *testing.T) {
		tests := []struct {
			name          string
			index         int
			text          string
			expected      [auth.CodeLength]string
			expectedFocus int
		}{
			{"whole code", 0, "1234", [auth.CodeLength]string{"1", "2", "3", "4"}, 3},
			{"formatted", 0, "12-3 4", [auth.CodeLength]string{"1", "2", "3", "4"}, 3},
			{"too long", 0, "987654", [auth.CodeLength]string{"9", "8", "7", "6"}, 3},
			{"from the middle", 1, "56", [auth.CodeLength]string{"", "5", "6", ""}, 3},
			{"overflowing", 2, "5678", [auth.CodeLength]string{"", "", "5", "6"}, 3},
			{"nothing usable", 0, "ab", [auth.CodeLength]string{"", "", "", ""}, 0},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				entry := auth.NewEntry()
				entry.Type(test.index, test.text)

				assert.Equal(t, test.expected, entry.Digits)
				assert.Equal(t, test.expectedFocus, entry.Focus)
			})
		}
	})

	t.Run("backspace should clear the previous field when empty", func(t *testing.T) {
		entry := auth.EntryFromCode("12")

		entry.Backspace(2)
		assert.Equal(t, [auth.CodeLength]string{"1", "", "", ""}, entry.Digits)
		assert.Equal(t, 1, entry.Focus)

		entry.Backspace(0)
		assert.Equal(t, [auth.CodeLength]string{"", "", "", ""}, entry.Digits)

		entry.Backspace(0)
		assert.Equal(t, 0, entry.Focus)
	})
}
