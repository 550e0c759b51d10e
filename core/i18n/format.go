// File: format.go
// Title: Positional Message Formatting
// Description: Parses and renders message patterns with positional
//              arguments ({0}, {1}, ...) and apostrophe quoting.
// Author: bastawesy
// Version: v0.2.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation
// - 2026-10-18 v0.2.0: Locale aware integer grouping through x/text

package i18n

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// segment is either literal text (arg < 0) or a positional argument
type segment struct {
	literal string
	arg     int
	raw     string
}

// pattern is a compiled message pattern
type pattern []segment

// compilePattern parses a message pattern.
//
// Rules:
//   - {n} and {n,anything} reference argument n
//   - '' is a literal apostrophe, inside or outside quotes
//   - text between single apostrophes is literal, braces included
//   - an unterminated or non-numeric {...} is kept as literal text
//   - integer arguments are grouped for the locale (1234 -> "1,234" in en);
//     floating point values are written as fmt prints them, without grouping
//     or rounding
func compilePattern(text string) pattern {
	var (
		segs    pattern
		lit     strings.Builder
		inQuote bool
	)
	flush := func() {
		if lit.Len() > 0 {
			segs = append(segs, segment{literal: lit.String(), arg: -1})
			lit.Reset()
		}
	}

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '\'':
			if i+1 < len(runes) && runes[i+1] == '\'' {
				lit.WriteRune('\'')
				i++
				continue
			}
			inQuote = !inQuote
		case inQuote:
			lit.WriteRune(r)
		case r == '{':
			end := -1
			for j := i + 1; j < len(runes); j++ {
				if runes[j] == '}' {
					end = j
					break
				}
			}
			if end < 0 {
				lit.WriteString(string(runes[i:]))
				i = len(runes)
				continue
			}

			raw := string(runes[i : end+1])
			name, _, _ := strings.Cut(string(runes[i+1:end]), ",")
			n, err := strconv.Atoi(strings.TrimSpace(name))
			if err != nil || n < 0 {
				lit.WriteString(raw)
			} else {
				flush()
				segs = append(segs, segment{arg: n, raw: raw})
			}
			i = end
		default:
			lit.WriteRune(r)
		}
	}
	flush()
	return segs
}

// render substitutes args into the pattern using the number conventions
// of locale. References past the end of args are written verbatim.
func (p pattern) render(locale string, args []any) string {
	printer := printerFor(locale)
	var b strings.Builder
	for _, seg := range p {
		switch {
		case seg.arg < 0:
			b.WriteString(seg.literal)
		case seg.arg < len(args):
			b.WriteString(formatArg(printer, args[seg.arg]))
		default:
			b.WriteString(seg.raw)
		}
	}
	return b.String()
}

func formatArg(printer *message.Printer, v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return printer.Sprintf("%d", v)
	default:
		return fmt.Sprint(v)
	}
}

// printers caches one message.Printer per locale
var printers sync.Map

func printerFor(locale string) *message.Printer {
	if cached, ok := printers.Load(locale); ok {
		return cached.(*message.Printer)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	printer, _ := printers.LoadOrStore(locale, message.NewPrinter(tag))
	return printer.(*message.Printer)
}

// FormatMessage formats text with positional args in the default locale
// without a bundle
func FormatMessage(text string, args ...any) string {
	return FormatMessageIn(DefaultLocale, text, args...)
}

// FormatMessageIn formats text with positional args, grouping integers
// the way locale writes them
func FormatMessageIn(locale, text string, args ...any) string {
	return compilePattern(text).render(locale, args)
}
