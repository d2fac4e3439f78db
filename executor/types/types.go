package types

// AccountValue is a point-in-time snapshot of a single account.
type AccountValue struct {
	Name    string
	Balance int64
}

// AccountUpdate is a proposed signed change to one account's balance.
// It is not committed until the ledger validates and applies it.
type AccountUpdate struct {
	Name          string
	BalanceChange int64
}

// AccountState is read access to account balances.
type AccountState interface {
	// GetAccount returns a zero balance if the account does not exist.
	GetAccount(name string) AccountValue
}

// Transaction computes the account updates it wants to make, given read
// access to the current state. The updates are a proposal: the state may
// change before they are applied, and the ledger re-validates them under
// its lock. ok is false when the transaction is not feasible against the
// observed balances, in which case no updates are returned.
type Transaction interface {
	Updates(state AccountState) (updates []AccountUpdate, ok bool)
}

// Block is an ordered batch of transactions submitted together.
// The order is the submission order; it carries no execution guarantee.
type Block struct {
	Transactions []Transaction
}

// BlockExecutor executes a block against the given initial account values
// and returns the resulting values: initial accounts in input order,
// followed by accounts created during execution in creation order.
// The error covers malformed input only; transactions dropped for
// insufficient funds are a normal outcome and are not reported.
type BlockExecutor interface {
	ExecuteBlock(block Block, values []AccountValue) ([]AccountValue, error)
}
