// Package oracle implements the human decision sources the interactive
// components block on.
package oracle

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sgklab/evoso/internal/errors"
	"github.com/sgklab/evoso/internal/optimization"
)

// Console is a blocking oracle reading answers from an input stream. It
// accepts exactly "0" and "1"; any other input is echoed back to the user
// and the prompt repeats. The only way out without a valid answer is losing
// the input stream.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

var _ optimization.Oracle = (*Console)(nil)

// NewConsole creates a console oracle reading from in and prompting on out.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewScanner(in), out: out}
}

// Choose prints the question and blocks until a valid answer arrives.
func (c *Console) Choose(question string) (optimization.Choice, error) {
	for {
		fmt.Fprintln(c.out, question)
		fmt.Fprint(c.out, "-> ")

		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return 0, errors.Wrap(err, "reading answer").
					WithComponent("oracle").
					WithOperation("Choose")
			}
			return 0, errors.New("input stream closed").
				WithComponent("oracle").
				WithOperation("Choose")
		}

		answer := strings.TrimSpace(c.in.Text())
		switch answer {
		case "0":
			return optimization.ChoiceNo, nil
		case "1":
			return optimization.ChoiceYes, nil
		}

		fmt.Fprintf(c.out, "Please input 1 or 0. You inputted %s.\n", answer)
	}
}
