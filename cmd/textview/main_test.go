package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nvandessel/textview/internal/config"
	"github.com/nvandessel/textview/internal/textview"
)

const fox = "The quick brown fox jumps over the lazy dog!"

// isolateEnv points HOME at a temp directory and clears TEXTVIEW_* overrides
// so a real ~/.textview or shell environment never leaks into a test.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, key := range []string{
		"TEXTVIEW_TOKENIZE_MODE",
		"TEXTVIEW_REPR_MAX_STRING",
		"TEXTVIEW_REPR_MAX_ITEMS",
		"TEXTVIEW_LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

// runCLI executes the root command and returns stdout and stderr.
func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()
	want := []string{"version", "split", "at", "slice", "repr", "summary", "config", "mcp-server"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered (err=%v)", name, err)
		}
	}
}

func TestVersionCmd(t *testing.T) {
	isolateEnv(t)

	out, _, err := runCLI(t, "", "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.HasPrefix(out, "textview version "+version) {
		t.Errorf("unexpected output: %q", out)
	}

	out, _, err = runCLI(t, "", "version", "--json")
	if err != nil {
		t.Fatalf("version --json failed: %v", err)
	}
	var info map[string]string
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if info["version"] != version {
		t.Errorf("version = %q, want %q", info["version"], version)
	}
}

func TestSplitCmd(t *testing.T) {
	isolateEnv(t)

	out, _, err := runCLI(t, "", "split", "Hello,", "world!")
	if err != nil {
		t.Fatalf("split failed: %v", err)
	}
	want := "0\tHello\n1\tworld\n\nTokenizedText('Hello, world!')\n2 words: ['Hello', 'world']\n"
	if out != want {
		t.Errorf("split output = %q, want %q", out, want)
	}
}

func TestSplitCmd_JSON(t *testing.T) {
	isolateEnv(t)

	out, _, err := runCLI(t, "", "split", "--json", fox)
	if err != nil {
		t.Fatalf("split --json failed: %v", err)
	}

	var got splitResult
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if got.Text != fox {
		t.Errorf("Text = %q, want %q", got.Text, fox)
	}
	if got.Count != 9 || len(got.Words) != 9 {
		t.Errorf("Count = %d, len(Words) = %d, want 9", got.Count, len(got.Words))
	}
	if got.Repr != "TokenizedText('The quick br...the lazy dog!')" {
		t.Errorf("Repr = %q", got.Repr)
	}
	if got.WordsRepr != "['The', 'quick', 'brown', 'fox', 'jumps', 'over', ...]" {
		t.Errorf("WordsRepr = %q", got.WordsRepr)
	}
	if got.Summary != "9 words: The quick brown fox jumps over the lazy dog" {
		t.Errorf("Summary = %q", got.Summary)
	}
}

func TestSplitCmd_EmptyText(t *testing.T) {
	isolateEnv(t)

	out, _, err := runCLI(t, "", "split", "--json", "...!?")
	if err != nil {
		t.Fatalf("split failed: %v", err)
	}
	var got splitResult
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if got.Words == nil || len(got.Words) != 0 {
		t.Errorf("Words = %#v, want empty non-nil list", got.Words)
	}
	if got.Summary != "0 words" {
		t.Errorf("Summary = %q, want %q", got.Summary, "0 words")
	}
}

func TestAtCmd(t *testing.T) {
	isolateEnv(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"first", []string{"at", "0", "Hello,", "world!"}, "Hello\n"},
		{"last", []string{"at", "1", "Hello,", "world!"}, "world\n"},
		{"negative", []string{"at", "--", "-1", "Hello,", "world!"}, "world\n"},
		{"negative first", []string{"at", "--", "-2", "Hello,", "world!"}, "Hello\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runCLI(t, "", tt.args...)
			if err != nil {
				t.Fatalf("at failed: %v", err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestAtCmd_Errors(t *testing.T) {
	isolateEnv(t)

	_, _, err := runCLI(t, "", "at", "5", "one", "two")
	if !errors.Is(err, textview.ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if !strings.Contains(err.Error(), "index 5 out of range for 2 words") {
		t.Errorf("unexpected message: %v", err)
	}

	_, _, err = runCLI(t, "", "at", "--", "-3", "one", "two")
	if !errors.Is(err, textview.ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange for -3, got %v", err)
	}

	_, _, err = runCLI(t, "", "at", "first", "one")
	if err == nil || !strings.Contains(err.Error(), "invalid index") {
		t.Errorf("expected invalid index error, got %v", err)
	}

	if _, _, err = runCLI(t, "", "at"); err == nil {
		t.Error("expected error when index is missing")
	}
}

func TestAtCmd_JSON(t *testing.T) {
	isolateEnv(t)

	out, _, err := runCLI(t, "", "at", "--json", "--", "-1", fox)
	if err != nil {
		t.Fatalf("at --json failed: %v", err)
	}
	var got struct {
		Index int    `json:"index"`
		Word  string `json:"word"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if got.Index != -1 || got.Word != "dog" {
		t.Errorf("got %+v, want index -1 word dog", got)
	}
}

func TestSliceCmd(t *testing.T) {
	isolateEnv(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"head", []string{"slice", "0:3", fox}, "The\nquick\nbrown\n"},
		{"tail", []string{"slice", "--", "-3:", fox}, "the\nlazy\ndog\n"},
		{"reverse", []string{"slice", "::-1", "one two three"}, "three\ntwo\none\n"},
		{"step", []string{"slice", "::4", fox}, "The\njumps\ndog\n"},
		{"clamped", []string{"slice", "7:100", fox}, "lazy\ndog\n"},
		{"empty", []string{"slice", "5:2", fox}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runCLI(t, "", tt.args...)
			if err != nil {
				t.Fatalf("slice failed: %v", err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestSliceCmd_JSON(t *testing.T) {
	isolateEnv(t)

	out, _, err := runCLI(t, "", "slice", "--json", "1:3", fox)
	if err != nil {
		t.Fatalf("slice --json failed: %v", err)
	}
	var got struct {
		Range string   `json:"range"`
		Words []string `json:"words"`
		Count int      `json:"count"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if got.Range != "1:3" || got.Count != 2 || strings.Join(got.Words, " ") != "quick brown" {
		t.Errorf("unexpected result: %+v", got)
	}
}

func TestSliceCmd_InvalidRange(t *testing.T) {
	isolateEnv(t)

	for _, expr := range []string{"0:3:0", "abc", "1"} {
		t.Run(expr, func(t *testing.T) {
			_, _, err := runCLI(t, "", "slice", expr, fox)
			if !errors.Is(err, textview.ErrInvalidRange) {
				t.Errorf("slice %q: expected ErrInvalidRange, got %v", expr, err)
			}
		})
	}
}

func TestReprCmd(t *testing.T) {
	isolateEnv(t)

	out, _, err := runCLI(t, "", "repr", fox)
	if err != nil {
		t.Fatalf("repr failed: %v", err)
	}
	if out != "TokenizedText('The quick br...the lazy dog!')\n" {
		t.Errorf("repr output = %q", out)
	}

	out, _, err = runCLI(t, "", "repr", "it's")
	if err != nil {
		t.Fatalf("repr failed: %v", err)
	}
	if out != "TokenizedText(\"it's\")\n" {
		t.Errorf("repr output = %q", out)
	}
}

func TestSummaryCmd(t *testing.T) {
	isolateEnv(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"two words", []string{"summary", "Hello,", "world!"}, "2 words: Hello world\n"},
		{"one word", []string{"summary", "Hello!"}, "1 word: Hello\n"},
		{"no words", []string{"summary", "!!!"}, "0 words\n"},
		{"unicode", []string{"summary", "naïve café"}, "2 words: naïve café\n"},
		{"ascii flag", []string{"summary", "--mode", "ascii", "naïve café"}, "3 words: na ve caf\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runCLI(t, "", tt.args...)
			if err != nil {
				t.Fatalf("summary failed: %v", err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestReadsStdin(t *testing.T) {
	isolateEnv(t)

	out, _, err := runCLI(t, "alpha beta\n", "summary")
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if out != "2 words: alpha beta\n" {
		t.Errorf("output = %q", out)
	}

	out, _, err = runCLI(t, "one two three\r\n", "at", "--", "-1")
	if err != nil {
		t.Fatalf("at failed: %v", err)
	}
	if out != "three\n" {
		t.Errorf("output = %q", out)
	}
}

func TestModeFromEnv(t *testing.T) {
	isolateEnv(t)
	t.Setenv("TEXTVIEW_TOKENIZE_MODE", "ascii")

	out, _, err := runCLI(t, "", "summary", "café")
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if out != "1 word: caf\n" {
		t.Errorf("output = %q", out)
	}

	// Flags win over the environment.
	out, _, err = runCLI(t, "", "summary", "--mode", "unicode", "café")
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if out != "1 word: café\n" {
		t.Errorf("output = %q", out)
	}
}

func TestInvalidMode(t *testing.T) {
	isolateEnv(t)

	_, _, err := runCLI(t, "", "summary", "--mode", "latin1", "hello")
	if err == nil || !strings.Contains(err.Error(), "invalid tokenize mode") {
		t.Errorf("expected invalid mode error, got %v", err)
	}
}

func TestConfigFile(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("repr:\n  max_string: 12\n  max_items: 2\n"), 0600); err != nil {
		t.Fatal(err)
	}

	out, _, err := runCLI(t, "", "repr", "--json", "--config", path, fox)
	if err != nil {
		t.Fatalf("repr failed: %v", err)
	}
	var got map[string]string
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if got["repr"] != "TokenizedText('The...dog!')" {
		t.Errorf("repr = %q", got["repr"])
	}
	if got["words_repr"] != "['The', 'quick', ...]" {
		t.Errorf("words_repr = %q", got["words_repr"])
	}

	if _, _, err := runCLI(t, "", "repr", "--config", filepath.Join(t.TempDir(), "missing.yaml"), fox); err == nil {
		t.Error("expected error for missing --config file")
	}
}

func TestConfigCmd(t *testing.T) {
	isolateEnv(t)

	out, _, err := runCLI(t, "", "config", "--json", "--mode", "ascii")
	if err != nil {
		t.Fatalf("config failed: %v", err)
	}
	var cfg config.Config
	if err := json.Unmarshal([]byte(out), &cfg); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if cfg.Tokenize.Mode != "ascii" {
		t.Errorf("Mode = %q, want ascii", cfg.Tokenize.Mode)
	}
	if cfg.Repr.MaxString != 30 || cfg.Repr.MaxItems != 6 {
		t.Errorf("unexpected repr limits: %+v", cfg.Repr)
	}

	out, _, err = runCLI(t, "", "config")
	if err != nil {
		t.Fatalf("config failed: %v", err)
	}
	if !strings.Contains(out, "max_string: 30") || !strings.Contains(out, "mode: unicode") {
		t.Errorf("unexpected YAML output:\n%s", out)
	}
}

func TestDebugLogging(t *testing.T) {
	isolateEnv(t)

	_, stderr, err := runCLI(t, "", "summary", "--log-level", "debug", "Hello,", "world!")
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if !strings.Contains(stderr, "tokenized text") {
		t.Errorf("expected debug log on stderr, got %q", stderr)
	}

	_, stderr, err = runCLI(t, "", "summary", "Hello,", "world!")
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if stderr != "" {
		t.Errorf("expected no logs at info level, got %q", stderr)
	}
}
