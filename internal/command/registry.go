// Package command defines the bot's commands and dispatches requests to
// them. Dispatch is a plain name-to-handler map: every front end (the
// terminal chat, the Discord bot, the CLI) parses its own input format
// into a [Request] and renders the [Response] its own way, so command
// logic lives in exactly one place.
package command

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownCommand indicates a name with no registered handler.
	ErrUnknownCommand = errors.New("command: unknown command")

	// ErrUsage indicates a request that does not match the command's
	// argument shape.
	ErrUsage = errors.New("command: bad arguments")
)

// Request is one parsed invocation.
type Request struct {
	Name string
	Args []string // whitespace-split arguments
	Raw  string   // the argument text verbatim, for free-text commands
}

// Field is a labeled value in a response; Discord renders fields as
// embed fields, the terminal as aligned rows.
type Field struct {
	Name  string
	Value string
}

// Response is a command result for a front end to render.
type Response struct {
	Text   string
	Fields []Field
	Code   bool // Text is preformatted (plots); render in a code block
}

// Handler runs one command.
type Handler func(ctx context.Context, req Request) (*Response, error)

// Command describes a registered command.
type Command struct {
	Name    string
	Group   string // chem, math, phys, util
	Usage   string
	Summary string
	MinArgs int
	Run     Handler
}

// Registry maps command names to handlers, preserving registration
// order for help output.
type Registry struct {
	order []string
	cmds  map[string]*Command
}

func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

func (r *Registry) Register(c *Command) {
	if _, dup := r.cmds[c.Name]; dup {
		panic(fmt.Sprintf("command: duplicate registration of %q", c.Name))
	}
	r.cmds[c.Name] = c
	r.order = append(r.order, c.Name)
}

// Get looks up a command by name.
func (r *Registry) Get(name string) (*Command, bool) {
	c, ok := r.cmds[name]
	return c, ok
}

// Commands returns all commands in registration order.
func (r *Registry) Commands() []*Command {
	out := make([]*Command, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.cmds[name])
	}
	return out
}

// Dispatch parses the argument text and runs the named command.
func (r *Registry) Dispatch(ctx context.Context, name, argText string) (*Response, error) {
	c, ok := r.cmds[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	req := Request{
		Name: name,
		Args: strings.Fields(argText),
		Raw:  strings.TrimSpace(argText),
	}
	if len(req.Args) < c.MinArgs {
		return nil, fmt.Errorf("%w: usage: %s", ErrUsage, c.Usage)
	}
	return c.Run(ctx, req)
}
