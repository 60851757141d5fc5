package querygen

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/lintang-b-s/querygen/pkg/util"
)

var (
	yesAnswer = regexp.MustCompile(`(?i)^(y|yes|yeah)$`)
	noAnswer  = regexp.MustCompile(`(?i)^(n|no)$`)
)

// Confirm asks prompt on out until a yes or no answer is read from in.
// Unrecognised answers are reported and the prompt is repeated.
func Confirm(in *bufio.Reader, out io.Writer, prompt string) (bool, error) {
	for {
		fmt.Fprint(out, prompt)

		line, err := in.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return false, util.WrapErrorf(err, util.ErrNoInput, "End of file reached while waiting for an answer")
		}
		answer := strings.TrimRight(line, "\r\n")

		switch {
		case yesAnswer.MatchString(answer):
			return true, nil
		case noAnswer.MatchString(answer):
			return false, nil
		}

		fmt.Fprintf(out, "ERROR: Invalid value: `%s'\n", answer)
		if err != nil {
			// last line of the input without a newline
			return false, util.WrapErrorf(err, util.ErrNoInput, "End of file reached while waiting for an answer")
		}
	}
}

func overwritePrompt(path string) string {
	return fmt.Sprintf("The file `%s' already exists. Do you want to overwrite it? (Y/N): ", path)
}
