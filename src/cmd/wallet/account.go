package main

import (
	"github.com/spf13/cobra"

	appwallet "github.com/jackyeh168/common_wallet/src/internal/application/wallet"
)

func (c *cli) accountCmd() *cobra.Command {
	account := &cobra.Command{
		Use:   "account",
		Short: "Manage wallet accounts",
	}

	var assets []string
	create := &cobra.Command{
		Use:   "create <account-id>",
		Short: "Create an account (name@domain)",
		Long: `Create an account with zero balances.

Examples:
  wallet account create alice@demo
  wallet account create alice@demo --asset xor#sora --asset val#sora`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := appwallet.NewCreateAccountUseCase(c.resolver).Execute(appwallet.CreateAccountCommand{
				AccountID: args[0],
				Assets:    assets,
			})
			if err != nil {
				return err
			}
			return c.printJSON(result)
		},
	}
	create.Flags().StringSliceVarP(&assets, "asset", "a", nil, "asset to enable (repeatable, default: configured asset)")

	account.AddCommand(create)
	return account
}
