package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/shopsight"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx           context.Context
	Stdout        io.Writer
	Stderr        io.Writer
	Logger        *slog.Logger
	Profiles      shopsight.ProfileService
	LLMConfigured bool
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Serve   ServeCmd   `cmd:"" help:"Run the extraction API server"`
	Extract ExtractCmd `cmd:"" help:"Extract a store profile and print it as JSON"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr      string `default:":8000" env:"SHOPSIGHT_ADDR" help:"Listen address"`
	APIPrefix string `default:"/api/v1" env:"SHOPSIGHT_API_PREFIX" help:"API route prefix"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL         string `arg:"" help:"Storefront URL"`
	NoProducts  bool   `help:"Skip the product catalog"`
	NoPolicies  bool   `help:"Skip policy documents"`
	NoFAQs      bool   `name:"no-faqs" help:"Skip FAQ extraction"`
	NoSocial    bool   `help:"Skip social handle extraction"`
	NoContact   bool   `help:"Skip contact information extraction"`
	MaxProducts int    `default:"100" help:"Maximum products to map (1-1000)"`
}
