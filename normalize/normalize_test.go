package normalize

import (
	"strings"
	"testing"
)

func TestLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"tokenized sentence", "The cat sat .", "The cat sat."},
		{"punctuation run", "Wait , what ? ! Yes ; no : maybe .", "Wait, what?! Yes; no: maybe."},
		{"whitespace collapse", "a  \t b\u00a0\u00a0c", "a b c"},
		{"trim", "   padded   ", "padded"},
		{"quoted speech", `He said  "hello world"  to her.`, `He said "hello world" to her.`},
		{"space inside quotes", `He said " hello world " to her .`, `He said "hello world" to her.`},
		{"treebank quotes", "He said `` hello '' to her .", `He said "hello" to her.`},
		{"closer followed by word", `"Run"she said.`, `"Run" she said.`},
		{"closer followed by punctuation", `" Run " , she said .`, `"Run", she said.`},
		{"adjacent quotations", `"a""b"`, `"a" "b"`},
		{"empty quotation", `" " x`, `"" x`},
		{"opener at line start", `" Hi ," he said .`, `"Hi," he said.`},
		{"unicode text", "Ол : `` Сәлем ! '' деді .", `Ол: "Сәлем!" деді.`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Line(tc.input)
			if got != tc.want {
				t.Errorf("Line(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

// An odd number of quotes is left as the scan produces it: the trailing
// opener keeps its state until the line ends and nothing is repaired.
func TestLine_OddQuotesNotCorrected(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`He said " hello`, `He said "hello`},
		{`" a " b " c`, `"a" b "c`},
		{`trailing "`, `trailing "`},
	}

	for _, tc := range tests {
		got := Line(tc.input)
		if got != tc.want {
			t.Errorf("Line(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestText_PerLineState(t *testing.T) {
	// The unmatched quote on the first line must not turn the first quote
	// on the second line into a closer.
	input := "He said \" wait\n\" Go \" , she said ."
	want := "He said \"wait\n\"Go\", she said."

	if got := Text(input); got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestText_Lines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"trailing newline dropped", "a .\n", "a."},
		{"blank line kept", "a .\n\nb .", "a.\n\nb."},
		{"crlf", "a .\r\nb .", "a.\nb."},
		{"trailing blank lines dropped", "a .\n\n \n", "a."},
		{"only line breaks", "\n\n", ""},
		{"vertical tab", "a\v.\vb", "a. b"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Text(tc.input); got != tc.want {
				t.Errorf("Text(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestText_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"The cat sat .",
		`He said  "hello world"  to her.`,
		"He said `` hello '' to her .",
		`"a""b" "c"d , e`,
		`" " x " y`,
		"one\ntwo  three ,\n\n\" four",
		`x " . y`,
		`' " '`,
		strings.Repeat(`" word " , `, 20),
		"x\n\n",
		"\n\n",
		"x\n \n\t\n",
		"a\v.\x1c b",
	}

	for _, in := range inputs {
		once := Text(in)
		twice := Text(once)
		if once != twice {
			t.Errorf("not idempotent for %q:\n once:  %q\n twice: %q", in, once, twice)
		}
	}
}

func TestBalanceQuotes_EvenCount(t *testing.T) {
	lines := []string{
		`He said "hello world" to her.`,
		`" a " and " b "`,
		`"x" "y" "z"`,
	}

	for _, line := range lines {
		got := Line(line)
		inside := false
		for i := 0; i < len(got); i++ {
			if got[i] != '"' {
				continue
			}
			if !inside && i+1 < len(got) && got[i+1] == ' ' {
				t.Errorf("%q: space after opening quote at %d", got, i)
			}
			if inside && i > 0 && got[i-1] == ' ' {
				t.Errorf("%q: space before closing quote at %d", got, i)
			}
			inside = !inside
		}
	}
}
