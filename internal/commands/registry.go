package commands

import (
	"fmt"
	"sort"
	"strconv"
)

// Registry holds registered commands.
type Registry struct {
	cmds map[string]Command // name, aliases and menu number map to command
	menu map[int]Command
}

// NewRegistry creates a new command registry.
func NewRegistry() *Registry {
	return &Registry{
		cmds: make(map[string]Command),
		menu: make(map[int]Command),
	}
}

// Register adds a command to the registry.
// Returns an error if the name, any alias or the menu number is already registered.
func (r *Registry) Register(c Command) error {
	num := c.MenuNumber()
	if num < 1 {
		return fmt.Errorf("invalid menu number for %s: %d", c.Name(), num)
	}
	if other, exists := r.menu[num]; exists {
		return fmt.Errorf("menu number %d already registered: %s", num, other.Name())
	}

	keys := append([]string{c.Name()}, c.Aliases()...)
	for _, key := range keys {
		if _, exists := r.cmds[key]; exists {
			return fmt.Errorf("command already registered: %s", key)
		}
	}

	for _, key := range keys {
		r.cmds[key] = c
	}
	r.cmds[strconv.Itoa(num)] = c
	r.menu[num] = c
	return nil
}

// Find looks up a command by menu number, name or alias.
func (r *Registry) Find(choice string) (Command, bool) {
	cmd, ok := r.cmds[choice]
	return cmd, ok
}

// Menu returns all commands ordered by menu number.
func (r *Registry) Menu() []Command {
	nums := make([]int, 0, len(r.menu))
	for n := range r.menu {
		nums = append(nums, n)
	}
	sort.Ints(nums)

	result := make([]Command, len(nums))
	for i, n := range nums {
		result[i] = r.menu[n]
	}
	return result
}

// DefaultRegistry is the global command registry.
var DefaultRegistry = NewRegistry()

// Register adds a command to the default registry.
func Register(c Command) {
	if err := DefaultRegistry.Register(c); err != nil {
		panic(err)
	}
}
