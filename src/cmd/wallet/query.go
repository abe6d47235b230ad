package main

import (
	"github.com/spf13/cobra"

	appwallet "github.com/jackyeh168/common_wallet/src/internal/application/wallet"
)

func (c *cli) balanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance <account-id>",
		Short: "Show all asset balances of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := appwallet.NewGetBalanceUseCase(c.resolver).Execute(appwallet.GetBalanceQuery{AccountID: args[0]})
			if err != nil {
				return err
			}
			return c.printJSON(result)
		},
	}
}

func (c *cli) historyCmd() *cobra.Command {
	var offset, count int
	cmd := &cobra.Command{
		Use:   "history <account-id>",
		Short: "List transaction history, newest first",
		Long: `List transaction history, newest first.

Examples:
  wallet history alice@demo
  wallet history alice@demo --offset 20 --count 20`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := appwallet.NewGetHistoryUseCase(c.resolver).Execute(appwallet.GetHistoryQuery{
				AccountID: args[0],
				Offset:    offset,
				Count:     count,
			})
			if err != nil {
				return err
			}
			return c.printJSON(result)
		},
	}
	cmd.Flags().IntVar(&offset, "offset", 0, "number of newest records to skip")
	cmd.Flags().IntVar(&count, "count", 0, "page size (default: configured page size)")
	return cmd
}
