package transactions

import (
	"ledger/executor/types"
)

// Transfer moves Value from one account to another.
type Transfer struct {
	From  string
	To    string
	Value int64
}

var _ types.Transaction = Transfer{}

// Updates reads the source balance and proposes the debit/credit pair.
// The read is advisory only: the balance can change before the updates
// are applied, and the ledger re-validates them under its lock. Negative
// amounts are never feasible.
func (t Transfer) Updates(state types.AccountState) ([]types.AccountUpdate, bool) {
	if t.Value < 0 {
		return nil, false
	}
	from := state.GetAccount(t.From)
	if from.Balance < t.Value {
		return nil, false
	}
	return []types.AccountUpdate{
		{Name: t.From, BalanceChange: -t.Value},
		{Name: t.To, BalanceChange: t.Value},
	}, true
}
