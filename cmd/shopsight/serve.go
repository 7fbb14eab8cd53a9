package main

import (
	"fmt"

	shopgin "github.com/fwojciec/shopsight/gin"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	server := &shopgin.Server{
		Addr:          c.Addr,
		APIPrefix:     c.APIPrefix,
		Version:       version,
		Profiles:      deps.Profiles,
		LLMConfigured: deps.LLMConfigured,
		Logger:        deps.Logger,
	}

	fmt.Fprintf(deps.Stdout, "listening on %s\n", c.Addr)
	return server.Open()
}
