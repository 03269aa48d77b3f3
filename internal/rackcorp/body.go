package rackcorp

import (
	"io"
	"strings"
)

func bodyToSingleLine(body io.Reader) (s string) {
	b, err := io.ReadAll(body)
	if err != nil {
		return "reading body: " + err.Error()
	}

	s = string(b)
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
