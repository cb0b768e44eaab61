package notifier

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// CommandHandler is called when a user command is received.
type CommandHandler func(command string) string

// Console reads commands line by line and writes the handler's replies.
type Console struct {
	In     io.Reader
	Out    io.Writer
	Prompt string
	Log    zerolog.Logger
}

// Run processes commands until EOF, "quit" or ctx cancellation.
func (c *Console) Run(ctx context.Context, handler CommandHandler) error {
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		sc := bufio.NewScanner(c.In)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- sc.Err()
	}()

	for {
		c.prompt()
		select {
		case <-ctx.Done():
			c.Log.Info().Msg("console stopped")
			return ctx.Err()
		case err := <-readErr:
			if err != nil {
				return fmt.Errorf("read command: %w", err)
			}
			return nil
		case line := <-lines:
			text := strings.TrimSpace(line)
			if text == "" {
				continue
			}
			if text == "quit" || text == "exit" {
				return nil
			}
			c.Log.Debug().Str("command", text).Msg("received command")
			if reply := handler(text); reply != "" {
				fmt.Fprintln(c.Out, strings.TrimRight(reply, "\n"))
			}
		}
	}
}

func (c *Console) prompt() {
	if c.Prompt != "" {
		fmt.Fprint(c.Out, c.Prompt)
	}
}
