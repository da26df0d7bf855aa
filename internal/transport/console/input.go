package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Input reads player answers line by line and shows each prompt before reading.
type Input struct {
	reader  *bufio.Reader
	prompts io.Writer
}

func NewInput(r io.Reader, prompts io.Writer) *Input {
	return &Input{
		reader:  bufio.NewReader(r),
		prompts: prompts,
	}
}

// ReadLine blocks until a full line is available. The trailing line break is removed.
// A last line without a line break is still returned; io.EOF is reported on the next call.
func (that *Input) ReadLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("input canceled: %w", err)
	}

	if _, err := io.WriteString(that.prompts, prompt); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	line, err := that.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}

		return "", fmt.Errorf("failed to read line: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}
