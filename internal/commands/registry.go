// Package commands provides the command table and the dispatcher that turns
// a submitted line into rendered output.
package commands

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"portfolioterm/pkg/termtypes"
)

// ErrUnknownCommand is returned by Lookup for names that are not registered.
var ErrUnknownCommand = errors.New("command not found")

// Registry maps lower-case command names to commands, preserving
// registration order for help listings.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]termtypes.Command
	order    []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]termtypes.Command),
	}
}

// Register adds a command. Returns an error if the name is empty, already
// registered, or the command's union half is missing.
func (r *Registry) Register(cmd termtypes.Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := strings.ToLower(strings.TrimSpace(cmd.Name))
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if _, exists := r.commands[name]; exists {
		return fmt.Errorf("command %s already registered", name)
	}
	if cmd.Kind == termtypes.HandlerCommand && cmd.Run == nil {
		return fmt.Errorf("command %s has no handler", name)
	}

	cmd.Name = name
	r.commands[name] = cmd
	r.order = append(r.order, name)
	return nil
}

// MustRegister is Register that panics on error, for static tables.
func (r *Registry) MustRegister(cmds ...termtypes.Command) {
	for _, cmd := range cmds {
		if err := r.Register(cmd); err != nil {
			panic(err)
		}
	}
}

// Get retrieves a command by name, case-insensitively.
func (r *Registry) Get(name string) (termtypes.Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, exists := r.commands[strings.ToLower(name)]
	return cmd, exists
}

// Lookup is Get with an error for unknown names.
func (r *Registry) Lookup(name string) (termtypes.Command, error) {
	cmd, ok := r.Get(name)
	if !ok {
		return termtypes.Command{}, fmt.Errorf("%s: %w", name, ErrUnknownCommand)
	}
	return cmd, nil
}

// GetAll returns all commands in registration order.
func (r *Registry) GetAll() []termtypes.Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]termtypes.Command, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.commands[name])
	}
	return out
}

// Visible returns the non-hidden commands in registration order.
func (r *Registry) Visible() []termtypes.Command {
	all := r.GetAll()
	out := all[:0]
	for _, cmd := range all {
		if !cmd.Hidden {
			out = append(out, cmd)
		}
	}
	return out
}

// IsValidCommand reports whether a command exists.
func (r *Registry) IsValidCommand(name string) bool {
	_, exists := r.Get(name)
	return exists
}
