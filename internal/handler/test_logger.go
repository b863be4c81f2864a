package handler

import "doc-digest/internal/domain"

// Mock logger used by handler package tests.
type MockHandlerLogger struct {
	Warnings []string
	Errors   []string
}

func NewMockHandlerLogger() *MockHandlerLogger {
	return &MockHandlerLogger{}
}

var _ domain.Logger = (*MockHandlerLogger)(nil)

func (l *MockHandlerLogger) Info(msg string, fields ...interface{})  {}
func (l *MockHandlerLogger) Debug(msg string, fields ...interface{}) {}
func (l *MockHandlerLogger) Warn(msg string, fields ...interface{}) {
	l.Warnings = append(l.Warnings, msg)
}
func (l *MockHandlerLogger) Error(msg string, err error, fields ...interface{}) {
	l.Errors = append(l.Errors, msg)
}
