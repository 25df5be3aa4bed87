package testutil

import (
	"context"
	"fmt"
	"sync"

	platformemail "github.com/Sp94dev/investdom-website/internal/platform/email"
)

// FakeEmailSender captures emails in memory for tests.
type FakeEmailSender struct {
	mu   sync.Mutex
	Sent []platformemail.Message
	// MessageID is returned on success; a sequential id is used when empty.
	MessageID string
	// Err, when set, is returned instead of recording the message.
	Err error
	// Calls counts every Send invocation, failed ones included.
	Calls int
}

func NewFakeEmailSender() *FakeEmailSender {
	return &FakeEmailSender{Sent: make([]platformemail.Message, 0)}
}

func (f *FakeEmailSender) Send(ctx context.Context, msg platformemail.Message) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls++
	if f.Err != nil {
		return "", f.Err
	}
	f.Sent = append(f.Sent, msg)
	if f.MessageID != "" {
		return f.MessageID, nil
	}
	return fmt.Sprintf("fake-%d", len(f.Sent)), nil
}

func (f *FakeEmailSender) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Calls
}

func (f *FakeEmailSender) LastSent() *platformemail.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Sent) == 0 {
		return nil
	}
	return &f.Sent[len(f.Sent)-1]
}

func (f *FakeEmailSender) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Sent = make([]platformemail.Message, 0)
	f.Calls = 0
	f.Err = nil
}
