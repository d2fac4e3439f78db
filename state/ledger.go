package state

import (
	"sync"

	"github.com/pkg/errors"

	"ledger/executor/types"
)

// Ledger is the shared account-balance store. A single mutex guards the
// balance map; GetAccount, ValidateAndApply and Values hold it for their
// full duration, so no caller ever observes a batch half-applied.
type Ledger struct {
	mu       sync.Mutex
	balances map[string]int64
	// order records the first insertion of every account name, initial
	// accounts first, so Values can return a stable ordering.
	order []string
}

var _ types.AccountState = (*Ledger)(nil)

// NewLedger builds a ledger from the caller-supplied initial values.
// Duplicate names and negative balances are rejected.
func NewLedger(values []types.AccountValue) (*Ledger, error) {
	l := &Ledger{
		balances: make(map[string]int64, len(values)),
		order:    make([]string, 0, len(values)),
	}
	for _, v := range values {
		if v.Balance < 0 {
			return nil, errors.Errorf("account %q has negative initial balance %d", v.Name, v.Balance)
		}
		if _, ok := l.balances[v.Name]; ok {
			return nil, errors.Errorf("duplicate account %q in initial values", v.Name)
		}
		l.balances[v.Name] = v.Balance
		l.order = append(l.order, v.Name)
	}
	return l, nil
}

// GetAccount returns a snapshot of one account. Absent accounts read as
// balance zero. The snapshot does not reserve the account and may be stale
// by the time the caller acts on it.
func (l *Ledger) GetAccount(name string) types.AccountValue {
	l.mu.Lock()
	defer l.mu.Unlock()
	return types.AccountValue{Name: name, Balance: l.balances[name]}
}

// ValidateAndApply commits a batch of updates atomically. Every update is
// checked against the balance stored at entry; if any would go negative
// the whole batch is dropped and false is returned. Failure carries no
// detail beyond the bool.
func (l *Ledger) ValidateAndApply(updates []types.AccountUpdate) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.validate(updates) {
		return false
	}
	l.apply(updates)
	return true
}

// validate checks each update against the currently stored balance.
// Callers hold mu.
func (l *Ledger) validate(updates []types.AccountUpdate) bool {
	for _, u := range updates {
		if l.balances[u.Name]+u.BalanceChange < 0 {
			return false
		}
	}
	return true
}

// apply commits updates without re-checking them. Creating an account from
// a negative delta clamps the new balance to zero, silently destroying the
// remainder. Callers hold mu.
func (l *Ledger) apply(updates []types.AccountUpdate) {
	for _, u := range updates {
		if _, ok := l.balances[u.Name]; ok {
			l.balances[u.Name] += u.BalanceChange
			continue
		}
		balance := u.BalanceChange
		if balance < 0 {
			balance = 0
		}
		l.balances[u.Name] = balance
		l.order = append(l.order, u.Name)
	}
}

// Values returns every account in the ledger: initial accounts in
// construction order, then created accounts in creation order.
func (l *Ledger) Values() []types.AccountValue {
	l.mu.Lock()
	defer l.mu.Unlock()
	values := make([]types.AccountValue, 0, len(l.order))
	for _, name := range l.order {
		values = append(values, types.AccountValue{Name: name, Balance: l.balances[name]})
	}
	return values
}
