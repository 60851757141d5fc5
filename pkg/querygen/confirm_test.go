package querygen

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/lintang-b-s/querygen/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirm(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		want        bool
		wantErr     error
		wantPrompts int
		wantInvalid []string
	}{
		{name: "y", input: "y\n", want: true, wantPrompts: 1},
		{name: "YES", input: "YES\n", want: true, wantPrompts: 1},
		{name: "yeah", input: "yeah\r\n", want: true, wantPrompts: 1},
		{name: "n", input: "n\n", want: false, wantPrompts: 1},
		{name: "No", input: "No\n", want: false, wantPrompts: 1},
		{name: "no trailing newline", input: "y", want: true, wantPrompts: 1},
		{
			name:        "reprompts until valid",
			input:       "\nyess\n y\nn\n",
			want:        false,
			wantPrompts: 4,
			wantInvalid: []string{"``'", "`yess'", "` y'"},
		},
		{name: "empty input", input: "", wantErr: util.ErrNoInput, wantPrompts: 1},
		{
			name:        "invalid last line",
			input:       "sure",
			wantErr:     util.ErrNoInput,
			wantPrompts: 1,
			wantInvalid: []string{"`sure'"},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}

			got, err := Confirm(bufio.NewReader(strings.NewReader(tt.input)), out, "overwrite? ")

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.Equal(t, tt.wantPrompts, strings.Count(out.String(), "overwrite? "))
			for _, v := range tt.wantInvalid {
				assert.Contains(t, out.String(), "ERROR: Invalid value: "+v)
			}
		})
	}
}
