// Package reprlib renders strings and string lists as short, escaped,
// single-line literals suitable for logs and debug output.
//
// Long values are abbreviated: strings lose their middle to "...", lists
// lose their tail. The output is for humans and is not meant to be parsed.
package reprlib

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// DefaultMaxString is the rune budget for a quoted string literal,
	// quotes included.
	DefaultMaxString = 30

	// DefaultMaxItems is the number of list elements shown before "...".
	DefaultMaxItems = 6

	ellipsis = "..."
)

// Limits bounds the size of rendered values.
type Limits struct {
	// MaxString is the maximum rune length of a quoted string. Values <= 0
	// disable truncation.
	MaxString int

	// MaxItems is the maximum number of list elements rendered. Values <= 0
	// disable truncation.
	MaxItems int
}

// DefaultLimits returns the default string and list budgets.
func DefaultLimits() Limits {
	return Limits{MaxString: DefaultMaxString, MaxItems: DefaultMaxItems}
}

// Quote renders s with BoundedEscapedQuote using l.MaxString.
func (l Limits) Quote(s string) string {
	return BoundedEscapedQuote(s, l.MaxString)
}

// List renders items with ListRepr using both budgets.
func (l Limits) List(items []string) string {
	return ListRepr(items, l.MaxItems, l.MaxString)
}

// Quote returns s as a single-quoted literal. Double quotes are used
// instead when s contains a single quote but no double quote. Backslashes,
// the chosen quote, \t, \n, \r, control characters and non-printable
// runes are escaped. Invalid UTF-8 bytes are written as \xhh.
func Quote(s string) string {
	quote := '\''
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		quote = '"'
	}

	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteRune(quote)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			fmt.Fprintf(&b, `\x%02x`, s[i])
			i += size
			continue
		}
		i += size

		switch {
		case r == quote || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r < ' ' || r == 0x7f:
			fmt.Fprintf(&b, `\x%02x`, r)
		case r < 0x7f:
			b.WriteRune(r)
		case unicode.IsPrint(r):
			b.WriteRune(r)
		case r <= 0xff:
			fmt.Fprintf(&b, `\x%02x`, r)
		case r <= 0xffff:
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			fmt.Fprintf(&b, `\U%08x`, r)
		}
	}
	b.WriteRune(quote)
	return b.String()
}

// BoundedEscapedQuote returns Quote(s) if it fits in maxLen runes.
// Otherwise it keeps the head and tail of the quoted literal and joins
// them with "...", so the result is exactly maxLen runes long.
// maxLen <= 0 disables truncation. maxLen should be at least 5 so the
// result keeps a character on each side of the ellipsis.
func BoundedEscapedQuote(s string, maxLen int) string {
	if maxLen <= 0 {
		return Quote(s)
	}

	q := Quote(runePrefix(s, maxLen))
	if utf8.RuneCountInString(q) <= maxLen {
		return q
	}

	head := max(0, (maxLen-len(ellipsis))/2)
	tail := max(0, maxLen-len(ellipsis)-head)

	qr := []rune(Quote(runePrefix(s, head) + runeSuffix(s, tail)))
	return string(qr[:head]) + ellipsis + string(qr[len(qr)-tail:])
}

// ListRepr renders items as ['a', 'b', ...]. At most maxItems elements are
// shown, each bounded to maxString runes. Non-positive limits disable the
// corresponding truncation.
func ListRepr(items []string, maxItems, maxString int) string {
	if len(items) == 0 {
		return "[]"
	}

	shown := items
	if maxItems > 0 && len(items) > maxItems {
		shown = items[:maxItems]
	}

	parts := make([]string, 0, len(shown)+1)
	for _, item := range shown {
		parts = append(parts, BoundedEscapedQuote(item, maxString))
	}
	if len(shown) < len(items) {
		parts = append(parts, ellipsis)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// runePrefix returns the first n runes of s.
func runePrefix(s string, n int) string {
	if n <= 0 {
		return ""
	}
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}

// runeSuffix returns the last n runes of s.
func runeSuffix(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := len(s)
	for i > 0 && n > 0 {
		_, size := utf8.DecodeLastRuneInString(s[:i])
		i -= size
		n--
	}
	return s[i:]
}
