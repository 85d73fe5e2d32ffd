package prompter

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestPromptForConfirmation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "lowercase y confirms", input: "y\n", want: true},
		{name: "uppercase Y confirms", input: "Y\n", want: true},
		{name: "n declines", input: "n\n", want: false},
		{name: "yes is not accepted", input: "yes\n", want: false},
		{name: "empty line declines", input: "\n", want: false},
		{name: "EOF declines", input: "", want: false},
		{name: "whitespace around y confirms", input: "  y  \n", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PromptForConfirmation(strings.NewReader(tt.input), io.Discard, "Delete everything?")
			if got != tt.want {
				t.Errorf("PromptForConfirmation(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPromptWritesToGivenWriter(t *testing.T) {
	var out bytes.Buffer
	PromptForConfirmation(strings.NewReader("n\n"), &out, "Delete everything?")
	if got := out.String(); !strings.Contains(got, "Delete everything? [y/N]") {
		t.Errorf("prompt output = %q, want the question with [y/N]", got)
	}
}
