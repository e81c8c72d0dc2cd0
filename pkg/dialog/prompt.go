package dialog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// PromptLine writes message to w and reads one line from r. It returns true
// if the answer is 'y' or 'yes' (case-insensitive); anything else, including no input, is no.
func PromptLine(r io.Reader, w io.Writer, message string) (bool, error) {
	fmt.Fprint(w, message)
	reader := bufio.NewReader(r)
	response, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}
