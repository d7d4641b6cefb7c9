package mocks

import (
	"context"

	"bedtime-server/internal/provider"

	"github.com/stretchr/testify/mock"
)

// MockAIClient is a mock type for the AIClient type
type MockAIClient struct {
	mock.Mock
}

// GenerateStory provides a mock function with given fields: ctx, spec
func (_m *MockAIClient) GenerateStory(ctx context.Context, spec provider.Spec) (*provider.StoryResult, error) {
	ret := _m.Called(ctx, spec)

	var r0 *provider.StoryResult
	if rf, ok := ret.Get(0).(func(context.Context, provider.Spec) *provider.StoryResult); ok {
		r0 = rf(ctx, spec)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*provider.StoryResult)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, provider.Spec) error); ok {
		r1 = rf(ctx, spec)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GenerateIllustration provides a mock function with given fields: ctx, title, characters, setting, age
func (_m *MockAIClient) GenerateIllustration(ctx context.Context, title string, characters []string, setting string, age int) (string, error) {
	ret := _m.Called(ctx, title, characters, setting, age)

	var r0 string
	if rf, ok := ret.Get(0).(func(context.Context, string, []string, string, int) string); ok {
		r0 = rf(ctx, title, characters, setting, age)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(string)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, []string, string, int) error); ok {
		r1 = rf(ctx, title, characters, setting, age)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// SuggestCharacters provides a mock function with given fields: ctx
func (_m *MockAIClient) SuggestCharacters(ctx context.Context) ([]string, error) {
	ret := _m.Called(ctx)

	var r0 []string
	if rf, ok := ret.Get(0).(func(context.Context) []string); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]string)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockAIClient creates a new instance of MockAIClient. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockAIClient(t interface {
	mock.TestingT
	Helper()
}) *MockAIClient {
	m := &MockAIClient{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ provider.AIClient = (*MockAIClient)(nil)
