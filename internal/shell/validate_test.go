package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateText(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		text       string
		limit      int
		constraint Constraint
		wantErr    error
	}{
		{"single char", "A", 1, AnyText, nil},
		{"too long for one", "AB", 1, AnyText, ErrLength},
		{"empty", "", 15, AnyText, ErrLength},
		{"fifteen", "ABCDEFGHIJKLMNO", 15, AnyText, nil},
		{"sixteen", "ABCDEFGHIJKLMNOP", 15, AnyText, ErrLength},
		{"length counts characters", "ééééé", 5, AnyText, nil},
		{"letters", "Hello", 15, Letters, nil},
		{"letters with space", "Hello you", 15, Letters, ErrNotAlpha},
		{"letters with digit", "abc1", 15, Letters, ErrNotAlpha},
		{"digits", "0123456789", 15, Digits, nil},
		{"digits with letter", "12a", 15, Digits, ErrNotDigits},
		{"non-ascii digits", "١٢", 15, Digits, ErrNotDigits},
		{"lowercase", "hello", 15, Lowercase, nil},
		{"lowercase with digits and space", "abc 12", 15, Lowercase, nil},
		{"mixed case", "Hello", 15, Lowercase, ErrNotLowercase},
		{"no letters", "123", 15, Lowercase, ErrNotLowercase},
		{"length checked first", "", 15, Lowercase, ErrLength},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateText(tc.text, tc.limit, tc.constraint)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestExpandRange(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		spec    string
		want    string
		wantErr error
	}{
		{spec: "A-D", want: "ABCD"},
		{spec: "a-d", want: "ABCD"},
		{spec: "  C-C ", want: "C"},
		{spec: "A-O", want: "ABCDEFGHIJKLMNO"},
		{spec: "L-Z", want: "LMNOPQRSTUVWXYZ"},
		{spec: "D-A", wantErr: ErrRangeBounds},
		{spec: "A-P", wantErr: ErrRangeBounds},
		{spec: "A-", wantErr: ErrRangeFormat},
		{spec: "AD", wantErr: ErrRangeFormat},
		{spec: "A_D", wantErr: ErrRangeFormat},
		{spec: "1-4", wantErr: ErrRangeFormat},
		{spec: "AA-D", wantErr: ErrRangeFormat},
		{spec: "", wantErr: ErrRangeFormat},
	}

	for _, tc := range testCases {
		t.Run(tc.spec, func(t *testing.T) {
			t.Parallel()
			got, err := ExpandRange(tc.spec)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Please enter between 1 and 15 characters.", message(ErrLength, 15))
	assert.Equal(t, "Only alphabets allowed.", message(ErrNotAlpha, 15))
	assert.Equal(t, "Only digits allowed.", message(ErrNotDigits, 15))
	assert.Equal(t, "Please enter only lowercase letters.", message(ErrNotLowercase, 15))
	assert.Equal(t, "Invalid format.", message(ErrRangeFormat, 15))
	assert.Equal(t, "Invalid range or too long.", message(ErrRangeBounds, 15))
}
