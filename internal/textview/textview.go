// Package textview provides TokenizedText, an immutable view over a string
// and the words extracted from it.
//
// The words are computed once at construction. After that the view
// supports indexed access with negative indices, start:stop:step slicing,
// iteration in both directions, and membership tests. It also has two
// renderings. Repr (also String, GoString and LogValue) is the bounded,
// escaped debug form used in logs and containers. Summary is the
// human-readable form.
//
// A TokenizedText is never mutated and is safe for concurrent readers.
package textview

import (
	"fmt"
	"iter"
	"log/slog"
	"slices"
	"strings"

	"github.com/nvandessel/textview/internal/reprlib"
	"github.com/nvandessel/textview/internal/tokenize"
)

// Options controls tokenization and debug rendering.
type Options struct {
	// Mode selects the word-character class. Empty means tokenize.DefaultMode.
	Mode tokenize.Mode

	// Limits bounds the debug rendering. Non-positive fields fall back to
	// the reprlib defaults.
	Limits reprlib.Limits
}

// DefaultOptions returns Unicode tokenization with default repr limits.
func DefaultOptions() Options {
	return Options{
		Mode:   tokenize.DefaultMode,
		Limits: reprlib.DefaultLimits(),
	}
}

func (o Options) normalized() Options {
	if o.Mode == "" {
		o.Mode = tokenize.DefaultMode
	}
	if o.Limits.MaxString <= 0 {
		o.Limits.MaxString = reprlib.DefaultMaxString
	}
	if o.Limits.MaxItems <= 0 {
		o.Limits.MaxItems = reprlib.DefaultMaxItems
	}
	return o
}

// TokenizedText is a string together with its word tokens.
// The zero value is an empty view.
type TokenizedText struct {
	text  string
	words []string
	opts  Options
}

var (
	_ Sequence       = (*TokenizedText)(nil)
	_ fmt.Stringer   = (*TokenizedText)(nil)
	_ fmt.GoStringer = (*TokenizedText)(nil)
	_ slog.LogValuer = (*TokenizedText)(nil)
)

// New tokenizes text with DefaultOptions.
func New(text string) *TokenizedText {
	return NewWithOptions(text, DefaultOptions())
}

// NewWithOptions tokenizes text using opts.
func NewWithOptions(text string, opts Options) *TokenizedText {
	opts = opts.normalized()
	return &TokenizedText{
		text:  text,
		words: tokenize.Words(text, opts.Mode),
		opts:  opts,
	}
}

// Text returns the source text verbatim.
func (t *TokenizedText) Text() string {
	return t.text
}

// Mode returns the word-character class the view was built with.
func (t *TokenizedText) Mode() tokenize.Mode {
	return t.opts.normalized().Mode
}

// Len returns the number of words.
func (t *TokenizedText) Len() int {
	return len(t.words)
}

// Words returns a copy of the words.
func (t *TokenizedText) Words() []string {
	if t.words == nil {
		return []string{}
	}
	return slices.Clone(t.words)
}

// At returns the word at index i. Negative indices count from the end.
// It returns an *IndexError when i is outside [-Len(), Len()-1].
func (t *TokenizedText) At(i int) (string, error) {
	n := len(t.words)
	j := i
	if j < 0 {
		j += n
	}
	if j < 0 || j >= n {
		return "", &IndexError{Index: i, Len: n}
	}
	return t.words[j], nil
}

// Slice returns the words selected by r. Bounds are clamped, so Slice
// never fails. The result is a fresh slice.
func (t *TokenizedText) Slice(r Range) []string {
	start, _, step, count := r.indices(len(t.words))
	out := make([]string, 0, count)
	for k, i := 0, start; k < count; k, i = k+1, i+step {
		out = append(out, t.words[i])
	}
	return out
}

// All yields index/word pairs in order.
func (t *TokenizedText) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i, w := range t.words {
			if !yield(i, w) {
				return
			}
		}
	}
}

// Backward yields index/word pairs from last to first.
func (t *TokenizedText) Backward() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i := len(t.words) - 1; i >= 0; i-- {
			if !yield(i, t.words[i]) {
				return
			}
		}
	}
}

// Contains reports whether word is one of the tokens (exact match).
func (t *TokenizedText) Contains(word string) bool {
	return slices.Contains(t.words, word)
}

// Index returns the position of the first token equal to word, or -1.
func (t *TokenizedText) Index(word string) int {
	return slices.Index(t.words, word)
}

// Repr returns the debug form, e.g. TokenizedText('The quick br...the lazy dog!').
// The embedded text is escaped and bounded by the configured repr limits.
func (t *TokenizedText) Repr() string {
	return "TokenizedText(" + t.opts.normalized().Limits.Quote(t.text) + ")"
}

// WordsRepr returns the words as a bounded list literal.
func (t *TokenizedText) WordsRepr() string {
	return t.opts.normalized().Limits.List(t.words)
}

// String returns Repr, so fmt and containers always show the debug form.
func (t *TokenizedText) String() string {
	return t.Repr()
}

// GoString returns Repr for %#v.
func (t *TokenizedText) GoString() string {
	return t.Repr()
}

// LogValue implements slog.LogValuer.
func (t *TokenizedText) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("repr", t.Repr()),
		slog.Int("words", t.Len()),
	)
}

// Summary returns the human-readable form, e.g. "2 words: Hello world".
func (t *TokenizedText) Summary() string {
	switch n := len(t.words); n {
	case 0:
		return "0 words"
	case 1:
		return "1 word: " + t.words[0]
	default:
		return fmt.Sprintf("%d words: %s", n, strings.Join(t.words, " "))
	}
}
