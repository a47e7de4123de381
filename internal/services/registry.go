// Package services provides the long-lived collaborators the commands use:
// HTTP fetching, contribution lookups, theming, markdown rendering and the
// browser opener.
package services

import (
	"fmt"
	"sync"
)

// Service is implemented by every service held in a Registry.
type Service interface {
	Name() string
	Initialize() error
}

// Registry manages service registration and lifecycle.
type Registry struct {
	mu       sync.RWMutex
	services map[string]Service
	order    []string
}

// NewRegistry creates a new service registry with an empty service map.
func NewRegistry() *Registry {
	return &Registry{
		services: make(map[string]Service),
	}
}

// RegisterService adds a service to the registry, returning an error if already registered.
func (r *Registry) RegisterService(service Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := service.Name()
	if _, exists := r.services[name]; exists {
		return fmt.Errorf("service %s already registered", name)
	}

	r.services[name] = service
	r.order = append(r.order, name)
	return nil
}

// InitializeAll initializes all registered services in registration order.
func (r *Registry) InitializeAll() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, name := range r.order {
		if err := r.services[name].Initialize(); err != nil {
			return fmt.Errorf("failed to initialize service %s: %w", name, err)
		}
	}
	return nil
}
