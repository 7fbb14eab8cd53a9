package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/shopsight"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	opts := shopsight.ExtractOptions{
		IncludeProducts: !c.NoProducts,
		IncludePolicies: !c.NoPolicies,
		IncludeFAQs:     !c.NoFAQs,
		IncludeSocial:   !c.NoSocial,
		IncludeContact:  !c.NoContact,
		MaxProducts:     c.MaxProducts,
	}

	profile, err := deps.Profiles.Extract(deps.Ctx, c.URL, opts)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", shopsight.ErrorMessage(err))
		return err
	}

	out, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(out))
	return nil
}
