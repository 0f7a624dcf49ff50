// Package prompt reads validated values from an interactive console.
//
// Every Read method keeps asking until the answer is valid. The only
// errors returned come from the underlying reader, typically io.EOF when
// stdin is closed.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/rustyeddy/bikelog/record"
)

const (
	msgNotNumber   = "Invalid input. Please enter a number."
	msgNotPositive = "Please enter a positive number."
	msgBadDate     = "Invalid date format. Please enter in YYYY-MM-DD format."
)

type Prompter struct {
	in  *bufio.Reader
	out io.Writer

	// Now supplies "today" for empty date answers.
	Now func() time.Time
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
		Now: time.Now,
	}
}

// ReadLine prints msg and returns the next input line without its line
// ending. A final line without a newline is still returned.
func (p *Prompter) ReadLine(msg string) (string, error) {
	fmt.Fprint(p.out, msg)
	line, err := p.in.ReadString('\n')
	if err != nil && !(err == io.EOF && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadPositiveNumber asks until the answer is a finite, non-negative
// number. Zero is rejected unless allowZero is set.
func (p *Prompter) ReadPositiveNumber(msg string, allowZero bool) (float64, error) {
	for {
		line, err := p.ReadLine(msg)
		if err != nil {
			return 0, err
		}

		v, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			fmt.Fprintln(p.out, msgNotNumber)
			continue
		}
		if v < 0 || (!allowZero && v == 0) {
			fmt.Fprintln(p.out, msgNotPositive)
			continue
		}
		return v, nil
	}
}

// ReadDate asks for a YYYY-MM-DD date, matched exactly with no
// surrounding spaces. A blank answer means today in the local calendar.
func (p *Prompter) ReadDate(msg string) (string, error) {
	for {
		line, err := p.ReadLine(msg + " (YYYY-MM-DD) or leave empty for today: ")
		if err != nil {
			return "", err
		}

		if strings.TrimSpace(line) == "" {
			return p.Now().Format(record.DateLayout), nil
		}
		if _, err := time.Parse(record.DateLayout, line); err != nil {
			fmt.Fprintln(p.out, msgBadDate)
			continue
		}
		return line, nil
	}
}
