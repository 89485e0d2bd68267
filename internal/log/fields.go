package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldOperation = "operation"
	FieldError     = "error"
	FieldBackend   = "backend"
	FieldUserID    = "user_id"
	FieldUsername  = "username"
	FieldTxID      = "transaction_id"
	FieldTxType    = "type"
	FieldAmount    = "amount"
	FieldDate      = "date"
	FieldMonth     = "month"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentAccounts = "accounts"
	ComponentTx       = "transactions"
	ComponentStorage  = "storage"
	ComponentBackend  = "backend"
)
