// Package prompter handles interactive confirmation prompts.
package prompter

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// PromptForConfirmation prompts the user for y/N confirmation.
// Input and output are injected for testability (pass cmd.InOrStdin() and
// cmd.ErrOrStderr()); the prompt goes to the error stream to preserve
// stdout for data output.
// Returns true only for "y" or "Y", false for anything else including errors.
func PromptForConfirmation(in io.Reader, out io.Writer, message string) bool {
	fmt.Fprintf(out, "%s [y/N] ", message)
	reader := bufio.NewReader(in)
	response, err := reader.ReadString('\n')
	if err != nil {
		// Treat read errors (EOF, etc.) as "no"
		fmt.Fprintln(out)
		return false
	}
	response = strings.TrimSpace(response)
	return response == "y" || response == "Y"
}
