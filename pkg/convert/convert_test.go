// Copyright (c) 2026 Podhaven. All rights reserved.

package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/podhaven/podhaven/pkg/convert"
)

/*
TestToIntStrict verifies that malformed numeric strings are reported as
invalid rather than silently mapped to zero.
*/
func TestToIntStrict(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
		ok    bool
	}{
		{"plain_number", "3", 3, true},
		{"padded_number", " 12 ", 12, true},
		{"zero", "0", 0, true},
		{"negative", "-1", -1, true},
		{"empty", "", 0, false},
		{"whitespace", "   ", 0, false},
		{"garbage", "S01", 0, false},
		{"decimal", "1.5", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := convert.ToIntStrict(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

/*
TestToIntD verifies default substitution on parse failure.
*/
func TestToIntD(t *testing.T) {
	assert.Equal(t, 7, convert.ToIntD("7", 1))
	assert.Equal(t, 1, convert.ToIntD("", 1))
	assert.Equal(t, 1, convert.ToIntD("x", 1))
}
