package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Formatter renders errors for terminal display.
type Formatter struct {
	// UseColor enables ANSI color codes in output.
	UseColor bool
}

// NewFormatter creates a new error formatter.
func NewFormatter(useColor bool) *Formatter {
	return &Formatter{UseColor: useColor}
}

var (
	colorErrorBold = color.New(color.FgHiRed, color.Bold)
	colorCode      = color.New(color.FgHiBlack)
	colorHint      = color.New(color.FgHiYellow)
	colorNote      = color.New(color.FgHiBlue)
)

// FormattedError represents an error ready for display.
type FormattedError struct {
	Code    ErrorCode
	Kind    string
	Message string
	Hint    string
	Note    string
}

// FormattableError is implemented by errors that can be rendered by a
// Formatter.
type FormattableError interface {
	Error() string
	ToFormatted() *FormattedError
}

// Format renders a single error:
//
//	error[E4010]: AttributeError: type object 'A' has no attribute 'nmae'
//	  = hint: Did you mean 'name'?
func (f *Formatter) Format(err *FormattedError) string {
	var b strings.Builder
	b.WriteString(f.paint(colorErrorBold, "error"))
	if err.Code != "" {
		b.WriteString(f.paint(colorCode, fmt.Sprintf("[%s]", err.Code)))
	}
	b.WriteString(": ")
	if err.Kind != "" {
		b.WriteString(err.Kind)
		b.WriteString(": ")
	}
	b.WriteString(err.Message)
	b.WriteString("\n")
	if err.Hint != "" {
		b.WriteString("  = ")
		b.WriteString(f.paint(colorHint, "hint"))
		b.WriteString(": ")
		b.WriteString(err.Hint)
		b.WriteString("\n")
	}
	if err.Note != "" {
		b.WriteString("  = ")
		b.WriteString(f.paint(colorNote, "note"))
		b.WriteString(": ")
		b.WriteString(err.Note)
		b.WriteString("\n")
	}
	return b.String()
}

// FormatError renders any error. Errors that are not formattable are shown
// with their plain message.
func (f *Formatter) FormatError(err error) string {
	var fe FormattableError
	if As(err, &fe) {
		return f.Format(fe.ToFormatted())
	}
	return f.Format(&FormattedError{Message: err.Error()})
}

// FormatMultiple renders several errors separated by blank lines, each
// prefixed with its position.
func (f *Formatter) FormatMultiple(errs []error) string {
	parts := make([]string, 0, len(errs))
	for i, err := range errs {
		s := f.FormatError(err)
		if len(errs) > 1 {
			s = fmt.Sprintf("[%d/%d] %s", i+1, len(errs), s)
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, "\n")
}

func (f *Formatter) paint(c *color.Color, s string) string {
	if !f.UseColor {
		return s
	}
	c.EnableColor()
	return c.Sprint(s)
}
