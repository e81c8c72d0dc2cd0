package combine

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

const (
	blockSeparator = "\n\n"
	fenceOpen      = "```bash\n"
	fenceClose     = "\n```"
	headerGap      = "\n\n"
)

var errInvalidUTF8 = errors.New("invalid UTF-8 content")

// formatBlock renders the fenced block for the entry at index i. Every block
// but the first starts with the separator; no block ends with a newline.
func formatBlock(i int, rel, content string, readErr error) string {
	var b strings.Builder
	if i > 0 {
		b.WriteString(blockSeparator)
	}
	b.WriteString(fenceOpen)
	b.WriteString(rel)
	b.WriteString("\n")
	b.WriteString(headerGap)
	if readErr != nil {
		fmt.Fprintf(&b, "[Error reading file: %v]\n", readErr)
	} else {
		b.WriteString(content)
	}
	b.WriteString(fenceClose)
	return b.String()
}

// readText reads a file as UTF-8 text with universal newlines: CRLF and lone
// CR both become LF.
func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", errInvalidUTF8
	}

	text := string(data)
	if strings.IndexByte(text, '\r') >= 0 {
		text = strings.ReplaceAll(text, "\r\n", "\n")
		text = strings.ReplaceAll(text, "\r", "\n")
	}
	return text, nil
}
