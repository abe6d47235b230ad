package main

import (
	"github.com/spf13/cobra"

	appwallet "github.com/jackyeh168/common_wallet/src/internal/application/wallet"
)

func (c *cli) depositCmd() *cobra.Command {
	var asset, details string
	cmd := &cobra.Command{
		Use:   "deposit <account-id> <amount>",
		Short: "Credit an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := appwallet.NewDepositUseCase(c.resolver).Execute(appwallet.DepositCommand{
				AccountID: args[0],
				AssetID:   asset,
				Amount:    args[1],
				Details:   details,
			})
			if err != nil {
				return err
			}
			return c.printJSON(result)
		},
	}
	cmd.Flags().StringVar(&asset, "asset", "", "asset ID (default: configured asset)")
	cmd.Flags().StringVar(&details, "details", "", "free-form description stored in history")
	return cmd
}

func (c *cli) transferCmd() *cobra.Command {
	var asset, details string
	cmd := &cobra.Command{
		Use:   "transfer <from> <to> <amount>",
		Short: "Transfer between two accounts (sender pays the fee)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := appwallet.NewTransferUseCase(c.resolver).Execute(appwallet.TransferCommand{
				From:    args[0],
				To:      args[1],
				AssetID: asset,
				Amount:  args[2],
				Details: details,
			})
			if err != nil {
				return err
			}
			return c.printJSON(result)
		},
	}
	cmd.Flags().StringVar(&asset, "asset", "", "asset ID (default: configured asset)")
	cmd.Flags().StringVar(&details, "details", "", "free-form description stored in history")
	return cmd
}

func (c *cli) withdrawCmd() *cobra.Command {
	var asset, option, destination string
	cmd := &cobra.Command{
		Use:   "withdraw <account-id> <amount>",
		Short: "Withdraw to an external destination",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := appwallet.NewWithdrawUseCase(c.resolver).Execute(appwallet.WithdrawCommand{
				AccountID:   args[0],
				AssetID:     asset,
				Amount:      args[1],
				OptionID:    option,
				Destination: destination,
			})
			if err != nil {
				return err
			}
			return c.printJSON(result)
		},
	}
	cmd.Flags().StringVar(&asset, "asset", "", "asset ID (default: configured asset)")
	cmd.Flags().StringVar(&option, "option", "", "withdraw option ID (required)")
	cmd.Flags().StringVar(&destination, "to", "", "external destination address")
	_ = cmd.MarkFlagRequired("option")
	return cmd
}
