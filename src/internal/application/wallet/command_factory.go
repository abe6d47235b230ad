package wallet

// CommandFactory 建立錢包命令
//
// 每個 Prepare 方法返回尚未執行的 WalletCommand；參數在 Execute 時才驗證。
type CommandFactory struct {
	resolver Resolver
}

// NewCommandFactory 創建命令工廠
func NewCommandFactory(resolver Resolver) *CommandFactory {
	return &CommandFactory{resolver: resolver}
}

// PrepareAccountUpdateCommand 帳戶更新通知命令
func (f *CommandFactory) PrepareAccountUpdateCommand() WalletCommand {
	return NewAccountUpdateCommand(f.resolver)
}

// PrepareDepositCommand 入金命令
func (f *CommandFactory) PrepareDepositCommand(cmd DepositCommand) WalletCommand {
	return &useCaseCommand[DepositCommand, DepositResult]{
		run: NewDepositUseCase(f.resolver).Execute,
		cmd: cmd,
	}
}

// PrepareTransferCommand 轉帳命令
func (f *CommandFactory) PrepareTransferCommand(cmd TransferCommand) WalletCommand {
	return &useCaseCommand[TransferCommand, TransferResult]{
		run: NewTransferUseCase(f.resolver).Execute,
		cmd: cmd,
	}
}

// PrepareWithdrawCommand 提領命令
func (f *CommandFactory) PrepareWithdrawCommand(cmd WithdrawCommand) WalletCommand {
	return &useCaseCommand[WithdrawCommand, WithdrawResult]{
		run: NewWithdrawUseCase(f.resolver).Execute,
		cmd: cmd,
	}
}

// useCaseCommand 把 Use Case 包裝為 WalletCommand
type useCaseCommand[C any, R any] struct {
	run func(C) (*R, error)
	cmd C
}

func (c *useCaseCommand[C, R]) Execute() error {
	_, err := c.run(c.cmd)
	return err
}
