package services

import (
	"context"

	"github.com/Sp94dev/investdom-website/contact/models"
	platformemail "github.com/Sp94dev/investdom-website/internal/platform/email"
	"github.com/stretchr/testify/mock"
)

// MockSender is a test double for the email sender.
type MockSender struct {
	mock.Mock
}

var _ platformemail.Sender = (*MockSender)(nil)

func (m *MockSender) Send(ctx context.Context, msg platformemail.Message) (string, error) {
	args := m.Called(ctx, msg)
	return args.String(0), args.Error(1)
}

// MockService is a test double for the contact service.
type MockService struct {
	mock.Mock
}

var _ Service = (*MockService)(nil)

func (m *MockService) Configured() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockService) Submit(ctx context.Context, sub *models.Submission) (string, error) {
	args := m.Called(ctx, sub)
	return args.String(0), args.Error(1)
}
