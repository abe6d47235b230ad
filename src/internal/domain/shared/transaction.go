package shared

// TransactionContext 倉儲呼叫之間傳遞的事務句柄
//
// Use Case 在 TransactionManager.InTransaction 的回呼中拿到 ctx，
// 再原樣交給每個倉儲：轉帳時兩個帳戶的 Update 與兩筆歷史 Append 共用同一個 ctx。
// 只讀查詢（餘額、歷史分頁、聯絡人列表）傳入 nil，不開事務。
//
//   txManager.InTransaction(func(ctx TransactionContext) error {
//       sender, err := accounts.FindByID(ctx, from)
//       if err != nil {
//           return err
//       }
//       if err := sender.SendTransfer(to, assetID, amount, fee, txID); err != nil {
//           return err
//       }
//       return accounts.Update(ctx, sender)
//   })
//
// 介面沒有方法；persistence 以 GORM tx 實作。
type TransactionContext interface{}

// TransactionManager 事務管理器
//
// fn 返回錯誤或 panic 時回滾；否則提交。
type TransactionManager interface {
	InTransaction(fn func(ctx TransactionContext) error) error
}
