package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *cli) notifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "notify",
		Short: "Broadcast an account update to all observers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.resolver.Commands().PrepareAccountUpdateCommand().Execute(); err != nil {
				return err
			}
			_, err := fmt.Fprintln(c.stdout, "account update broadcast")
			return err
		},
	}
}
