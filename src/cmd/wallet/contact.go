package main

import (
	"github.com/spf13/cobra"

	appcontact "github.com/jackyeh168/common_wallet/src/internal/application/contact"
)

func (c *cli) contactCmd() *cobra.Command {
	contact := &cobra.Command{
		Use:   "contact",
		Short: "Manage the contact book of an account",
	}

	add := &cobra.Command{
		Use:   "add <owner-id> <account-id> <name>",
		Short: "Add a contact",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.resolver.AddContact().Execute(appcontact.AddContactCommand{
				OwnerID:   args[0],
				AccountID: args[1],
				Name:      args[2],
			})
			if err != nil {
				return err
			}
			return c.printJSON(result)
		},
	}

	var search string
	list := &cobra.Command{
		Use:   "list <owner-id>",
		Short: "List contacts sorted by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := c.resolver.ListContacts().Execute(appcontact.ListContactsQuery{
				OwnerID: args[0],
				Search:  search,
			})
			if err != nil {
				return err
			}
			return c.printJSON(items)
		},
	}
	list.Flags().StringVarP(&search, "search", "s", "", "filter by name or account ID")

	remove := &cobra.Command{
		Use:   "remove <contact-id>",
		Short: "Remove a contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.resolver.RemoveContact().Execute(args[0])
		},
	}

	contact.AddCommand(add, list, remove)
	return contact
}
