package infra

import (
	"bufio"
	"io"
	"strings"
	"time"

	"github.com/unexpectedsense/omynix-waybar-manager/internal/domain"
)

// StdinPrompter reads yes/no confirmations from a terminal.
type StdinPrompter struct {
	reader io.Reader
}

// NewPrompter creates a prompter reading from the given source (os.Stdin in
// production, a buffer in tests).
func NewPrompter(reader io.Reader) domain.Prompter {
	return &StdinPrompter{reader: reader}
}

// Confirm reads a line and interprets it as yes/no. An empty line yields def.
func (p *StdinPrompter) Confirm(def bool) (bool, error) {
	line, err := bufio.NewReader(p.reader).ReadString('\n')
	if err != nil && line == "" {
		return def, err
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	if answer == "" {
		return def, nil
	}
	return answer == "y" || answer == "yes", nil
}

// ConfirmWithTimeout races a background line read against the deadline. If
// the user does not answer in time the default "no" wins. The reading
// goroutine may outlive the call; this is a short-lived CLI, so a single
// possibly-leaked blocked read is acceptable.
func (p *StdinPrompter) ConfirmWithTimeout(timeout time.Duration) (bool, error) {
	lines := make(chan string, 1)

	go func() {
		line, err := bufio.NewReader(p.reader).ReadString('\n')
		if err != nil && line == "" {
			return
		}
		lines <- line
	}()

	select {
	case line := <-lines:
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes", nil
	case <-time.After(timeout):
		return false, nil
	}
}

// Ensure StdinPrompter implements domain.Prompter.
var _ domain.Prompter = (*StdinPrompter)(nil)
