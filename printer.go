// printer.go: value formatting helpers for the REPL host
package interpreter

// EnableColor switches the Colorize helpers between plain and ANSI output.
// REPL-only; tests leave this false.
var EnableColor = false

const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
	colorBlue  = "\033[34m"
)

func colorize(s, c string) string {
	if !EnableColor {
		return s
	}
	return c + s + colorReset
}

// Red is used for error output, Green for banners, Blue for values.
func Red(s string) string   { return colorize(s, colorRed) }
func Green(s string) string { return colorize(s, colorGreen) }
func Blue(s string) string  { return colorize(s, colorBlue) }

// FormatValue renders v the way the REPL echoes results: the diagnostic
// form, colored when EnableColor is set.
func FormatValue(v Value) string {
	return Blue(v.Repr())
}
