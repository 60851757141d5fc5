package querygen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadQueries(t *testing.T) {
	input := "# This file contains 3 values, with max vertex id: 9\n" +
		"# Generated on: 10:00:00 01-01-2025\n" +
		"\n" +
		"1 2\n" +
		"  8\t0  \n" +
		"4 5\n"

	queries, err := ReadQueries(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []Pair{{1, 2}, {8, 0}, {4, 5}}, queries)
}

func TestReadQueriesMalformed(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "single field", input: "# header\n1\n", wantErr: "line 2"},
		{name: "three fields", input: "1 2 3\n", wantErr: "line 1"},
		{name: "bad source", input: "1 2\nx 2\n", wantErr: "line 2: invalid source"},
		{name: "bad destination", input: "1 y\n", wantErr: "line 1: invalid destination"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadQueries(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
