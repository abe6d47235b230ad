package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jackyeh168/common_wallet/src/internal/bootstrap"
	"github.com/jackyeh168/common_wallet/src/internal/config"
	walletlog "github.com/jackyeh168/common_wallet/src/internal/log"
)

// cli 保存單次執行的狀態；resolver 在 PersistentPreRunE 建立，execute 結束時關閉
type cli struct {
	cfgFile  string
	stdout   io.Writer
	stderr   io.Writer
	resolver *bootstrap.Resolver
}

// execute 執行一次 CLI；無論命令成功與否都會關閉 resolver
func execute(args []string, stdout, stderr io.Writer) (err error) {
	c := &cli{stdout: stdout, stderr: stderr}
	defer func() {
		if closeErr := c.close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	root := c.rootCmd()
	root.SetArgs(args)
	return root.Execute()
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "wallet",
		Short:         "Local wallet: accounts, transfers, history and contacts",
		SilenceUsage:  true,
		Version:       version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.open()
		},
	}
	root.SetOut(c.stdout)
	root.SetErr(c.stderr)

	root.PersistentFlags().StringVarP(&c.cfgFile, "config", "c", "",
		"config file (YAML); WALLET_* environment variables override it")

	root.AddCommand(
		c.accountCmd(),
		c.depositCmd(),
		c.transferCmd(),
		c.withdrawCmd(),
		c.balanceCmd(),
		c.historyCmd(),
		c.contactCmd(),
		c.notifyCmd(),
	)
	return root
}

func (c *cli) open() error {
	cfg, err := config.Load(c.cfgFile)
	if err != nil {
		return err
	}
	logger := walletlog.New(cfg.Log, c.stderr)

	resolver, err := bootstrap.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("starting wallet: %w", err)
	}
	c.resolver = resolver
	return nil
}

func (c *cli) close() error {
	if c.resolver == nil {
		return nil
	}
	err := c.resolver.Close()
	c.resolver = nil
	return err
}

// printJSON 以縮排 JSON 輸出結果
func (c *cli) printJSON(v interface{}) error {
	enc := json.NewEncoder(c.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
