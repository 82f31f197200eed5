package cmd

import (
	"sort"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"climastore.GO/core/registry"
)

var mu sync.Mutex

// Register adds a command. Call from init(). Command names are namespaced
// "<namespace>:<action>" (catalog:import, search:reindex); Apply lists them in
// one help group per namespace. Panics when the registry is locked or the
// name is taken.
func Register(c *cobra.Command) {
	mu.Lock()
	defer mu.Unlock()
	if registry.GlobalRegistry.IsLocked(registry.KeyRegistryCmd) {
		panic("cmd/registry: locked (register only during init before Apply)")
	}
	list := registered()
	for _, have := range list {
		if have.Name() == c.Name() {
			panic("cmd/registry: duplicate command " + c.Name())
		}
	}
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryCmd, append(list, c))
}

// Apply adds every registered command to the root command, sorted by name.
// It locks the registry; later calls are no-ops.
func Apply() {
	mu.Lock()
	defer mu.Unlock()
	if registry.GlobalRegistry.IsLocked(registry.KeyRegistryCmd) {
		return
	}
	list := registered()
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	for _, c := range list {
		if ns := namespace(c.Name()); ns != "" {
			if !rootCmd.ContainsGroup(ns) {
				rootCmd.AddGroup(&cobra.Group{ID: ns, Title: strings.ToUpper(ns[:1]) + ns[1:] + " commands:"})
			}
			c.GroupID = ns
		}
		rootCmd.AddCommand(c)
	}
	registry.GlobalRegistry.Lock(registry.KeyRegistryCmd)
}

// Root returns the root command with the registered commands applied.
func Root() *cobra.Command {
	Apply()
	return rootCmd
}

func registered() []*cobra.Command {
	if v, ok := registry.GlobalRegistry.GetGlobal(registry.KeyRegistryCmd); ok && v != nil {
		return v.([]*cobra.Command)
	}
	return nil
}

func namespace(name string) string {
	ns, _, ok := strings.Cut(name, ":")
	if !ok {
		return ""
	}
	return ns
}
