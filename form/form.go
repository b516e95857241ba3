// Package form is the terminal front end of the converter: it prompts for an amount,
// a source and a target currency, and prints the converted amount or an error message.
package form

import (
	"bufio"
	"context"
	"fmt"
	"github.com/fatih/color"
	"go-currency-converter"
	"go-currency-converter/session"
	"io"
	"strings"
)

// Form reads answers from in and writes prompts and results to out
type Form struct {
	session *session.Session
	in      *bufio.Scanner
	out     io.Writer

	// prompts printed before each question, off when input is piped
	prompts bool

	result *color.Color
	failed *color.Color
}

// Option configures a Form
type Option func(*Form)

// WithColor turns colored output on or off
func WithColor(on bool) Option {
	return func(f *Form) {
		if on {
			f.result.EnableColor()
			f.failed.EnableColor()
		} else {
			f.result.DisableColor()
			f.failed.DisableColor()
		}
	}
}

// WithPrompts turns the question prompts on or off
func WithPrompts(on bool) Option {
	return func(f *Form) { f.prompts = on }
}

// New constructs a Form over s
func New(s *session.Session, in io.Reader, out io.Writer, opts ...Option) *Form {
	f := &Form{
		session: s,
		in:      bufio.NewScanner(in),
		out:     out,
		prompts: true,
		result:  color.New(color.FgGreen, color.Bold),
		failed:  color.New(color.FgRed),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Run loads the rates of the initial base currency and then serves conversions
// until the input ends, the user quits or ctx is done.
func (f *Form) Run(ctx context.Context) error {
	f.printf("Currencies: %v\n", join(f.session.Currencies()))
	if err := f.session.Load(ctx); err != nil {
		f.fail(err)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		done := f.round(ctx)
		if done {
			return f.in.Err()
		}
	}
}

// round asks the three questions once. It returns true when the user is done.
// All three answers are read before any of them is applied so that a rejected
// answer never shifts the following lines onto the wrong question.
func (f *Form) round(ctx context.Context) bool {
	amount, ok := f.ask("Amount: ")
	if !ok || isQuit(amount) {
		return true
	}
	from, ok := f.ask(fmt.Sprintf("From [%v]: ", f.session.Base()))
	if !ok {
		return true
	}
	to, ok := f.ask(fmt.Sprintf("To [%v]: ", f.session.Target()))
	if !ok {
		return true
	}

	// a failed fetch leaves the table empty, the next conversion retries it
	if from != "" && converter.Currency(strings.ToUpper(from)) != f.session.Base() {
		if err := f.session.SetBase(ctx, converter.Currency(from)); err != nil {
			f.fail(err)
			return false
		}
	}
	if to != "" {
		if err := f.session.SetTarget(converter.Currency(to)); err != nil {
			f.fail(err)
			return false
		}
	}

	result, err := f.session.Convert(ctx, amount)
	if err != nil {
		f.fail(err)
		return false
	}
	f.result.Fprintf(f.out, "Result: %v\n", result)
	return false
}

// ask prints a prompt and reads one trimmed line. ok is false at end of input
// or when reading fails.
func (f *Form) ask(prompt string) (answer string, ok bool) {
	if f.prompts {
		fmt.Fprint(f.out, prompt)
	}
	if !f.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(f.in.Text()), true
}

func (f *Form) fail(err error) {
	f.failed.Fprintf(f.out, "Error: %v\n", session.Message(err))
}

func (f *Form) printf(format string, a ...interface{}) {
	if f.prompts {
		fmt.Fprintf(f.out, format, a...)
	}
}

func isQuit(s string) bool {
	s = strings.ToLower(s)
	return s == "q" || s == "quit" || s == "exit"
}

func join(currencies []converter.Currency) string {
	s := make([]string, len(currencies))
	for i, c := range currencies {
		s[i] = string(c)
	}
	return strings.Join(s, ", ")
}
