package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"portfolioterm/internal/logger"
	"portfolioterm/pkg/termtypes"
)

// Dispatcher parses submitted lines and runs them against a Registry,
// sending results to an Output.
type Dispatcher struct {
	registry *Registry
	out      termtypes.Output
	ctx      context.Context
	wg       sync.WaitGroup
}

// NewDispatcher creates a dispatcher. ctx bounds deferred handlers; it is
// cancelled when the session ends.
func NewDispatcher(ctx context.Context, registry *Registry, out termtypes.Output) *Dispatcher {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Dispatcher{registry: registry, out: out, ctx: ctx}
}

// Registry returns the dispatcher's command table.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Parse splits a line on whitespace into a lower-cased name and arguments.
func Parse(line string) (name string, args []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

// Dispatch runs one line. Deferred handlers are started in the background
// and Dispatch returns immediately; everything else completes before it
// returns, apart from the typing animation itself.
func (d *Dispatcher) Dispatch(line string) {
	name, args := Parse(line)
	if name == "" {
		return
	}

	cmd, err := d.registry.Lookup(name)
	if err != nil {
		logger.Debug("Unknown command", "name", name)
		d.out.TypeLine(fmt.Sprintf("bash: %s: command not found", name))
		return
	}

	logger.CommandExecution(name, args)
	if cmd.Kind == termtypes.ConstantCommand {
		if cmd.Value != "" {
			d.out.TypeLine(cmd.Value)
		}
		return
	}

	inv := &termtypes.Invocation{Name: name, Args: args, Raw: line, Out: d.out}
	if cmd.Deferred {
		d.wg.Add(1)
		go func() {
			defer d.wg.Done()
			d.run(cmd, inv)
		}()
		return
	}
	d.run(cmd, inv)
}

// Wait blocks until every deferred handler started so far has returned.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) run(cmd termtypes.Command, inv *termtypes.Invocation) {
	res, err := d.invoke(cmd, inv)
	if err != nil {
		logger.Debug("Command failed", "name", inv.Name, "error", err)
		d.out.TypeLine("Error: " + err.Error())
		return
	}
	switch {
	case res.Fragment != nil && res.Fragment.Len() > 0:
		d.out.TypeFragment(res.Fragment)
	case res.Text != "":
		d.out.TypeLine(res.Text)
	}
}

// invoke calls the handler, turning a panic into an error.
func (d *Dispatcher) invoke(cmd termtypes.Command, inv *termtypes.Invocation) (res termtypes.Result, err error) {
	defer func() {
		if p := recover(); p != nil {
			logger.Error("Command panicked", "name", inv.Name, "panic", p)
			res = termtypes.Result{}
			switch v := p.(type) {
			case error:
				err = v
			default:
				err = errors.New(fmt.Sprint(v))
			}
		}
	}()
	return cmd.Run(d.ctx, inv)
}
