package main

import (
	"fmt"
	"sort"
)

// Run executes the keys command.
func (c *KeysCmd) Run(deps *Dependencies) error {
	sources, err := deps.selectSources(c.Source)
	if err != nil {
		return err
	}

	var keys []string
	for _, source := range sources {
		keys = append(keys, deps.Sources[source].AllKeys()...)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fmt.Fprintln(deps.Stdout, key)
	}

	return nil
}
