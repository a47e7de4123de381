package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockService records initialization for tests.
type MockService struct {
	name             string
	initializeCalled bool
	initializeError  error
	order            *[]string
}

func NewMockService(name string) *MockService {
	return &MockService{name: name}
}

func (m *MockService) Name() string {
	return m.name
}

func (m *MockService) Initialize() error {
	m.initializeCalled = true
	if m.order != nil {
		*m.order = append(*m.order, m.name)
	}
	return m.initializeError
}

func TestRegistry_RegisterService(t *testing.T) {
	tests := []struct {
		name     string
		services []string
		wantErr  bool
	}{
		{name: "register new service", services: []string{"a"}},
		{name: "register several", services: []string{"a", "b"}},
		{name: "duplicate", services: []string{"a", "a"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			var err error
			for _, n := range tt.services {
				if err = r.RegisterService(NewMockService(n)); err != nil {
					break
				}
			}
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "already registered")
				return
			}
			assert.NoError(t, err)
			assert.Len(t, r.order, len(tt.services))
			assert.Len(t, r.services, len(tt.services))
		})
	}
}

func TestRegistry_InitializeAllInOrder(t *testing.T) {
	var order []string
	r := NewRegistry()
	for _, n := range []string{"http", "theme", "markdown"} {
		svc := NewMockService(n)
		svc.order = &order
		require.NoError(t, r.RegisterService(svc))
	}

	require.NoError(t, r.InitializeAll())
	assert.Equal(t, []string{"http", "theme", "markdown"}, order)
}

func TestRegistry_InitializeAllError(t *testing.T) {
	r := NewRegistry()
	failing := NewMockService("bad")
	failing.initializeError = errors.New("boom")
	require.NoError(t, r.RegisterService(failing))

	err := r.InitializeAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to initialize service bad")
}
