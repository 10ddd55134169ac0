package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter collects operator input line by line. Numeric prompts re-ask
// until a valid non-negative value is entered; once the input stream is
// exhausted they return zero instead of looping.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
	eof     bool
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{scanner: bufio.NewScanner(in), out: out}
}

func (p *Prompter) EOF() bool {
	return p.eof
}

func (p *Prompter) Line(label string) string {
	fmt.Fprint(p.out, label)
	if !p.scanner.Scan() {
		p.eof = true
		return ""
	}
	return strings.TrimSpace(p.scanner.Text())
}

func (p *Prompter) Int(label string) int {
	for {
		raw := p.Line(label)
		if p.eof {
			return 0
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Fprintln(p.out, "Please enter a number.")
			continue
		}
		if n < 0 {
			fmt.Fprintln(p.out, "Negative values are not allowed.")
			continue
		}
		return n
	}
}

func (p *Prompter) Float(label string) float64 {
	for {
		raw := p.Line(label)
		if p.eof {
			return 0
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			fmt.Fprintln(p.out, "Please enter a number.")
			continue
		}
		if f < 0 {
			fmt.Fprintln(p.out, "Negative values are not allowed.")
			continue
		}
		return f
	}
}
