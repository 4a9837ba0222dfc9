package relay_test

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/sharemail/pkg/email"
)

// funcSender adapts a function to email.Sender and records every message.
type funcSender struct {
	mu   sync.Mutex
	sent []email.Message
	fn   func(ctx context.Context, msg email.Message) (email.Result, error)
}

func newFuncSender(fn func(ctx context.Context, msg email.Message) (email.Result, error)) *funcSender {
	return &funcSender{fn: fn}
}

func (s *funcSender) Name() string { return "stub" }

func (s *funcSender) Send(ctx context.Context, msg email.Message) (email.Result, error) {
	s.mu.Lock()
	s.sent = append(s.sent, msg)
	s.mu.Unlock()
	return s.fn(ctx, msg)
}

func (s *funcSender) Sent() []email.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]email.Message(nil), s.sent...)
}

func acceptAll(code int) *funcSender {
	return newFuncSender(func(context.Context, email.Message) (email.Result, error) {
		return email.Result{StatusCode: code, MessageID: "msg-1"}, nil
	})
}

type mockSender struct {
	mock.Mock
}

func (m *mockSender) Name() string {
	return m.Called().String(0)
}

func (m *mockSender) Send(ctx context.Context, msg email.Message) (email.Result, error) {
	args := m.Called(ctx, msg)
	return args.Get(0).(email.Result), args.Error(1)
}
