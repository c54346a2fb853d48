package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseColumn covers delimiter handling, column selection and the
// row-numbered error context.
func TestParseColumn(t *testing.T) {
	got, err := parseColumn(strings.NewReader("1\n2.5\n-3\n"), ",", 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2.5, -3}, got)

	got, err = parseColumn(strings.NewReader("a;1\nb;2\n"), ";", 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, got)

	_, err = parseColumn(strings.NewReader("1\nx\n"), ",", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2", "errors name the offending row")

	_, err = parseColumn(strings.NewReader("1,2\n3\n"), ",", 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")

	_, err = parseColumn(strings.NewReader("1\n"), ",", 0)
	assert.Error(t, err, "a non-positive field index is rejected")
}
