package serial

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"ledger/executor/types"
	"ledger/state"
)

// Executor runs a block's transactions one at a time in block order,
// through the same propose/validate-and-apply path as the parallel
// executor but with no interleaving. It is the deterministic reference
// for order-sensitive blocks.
type Executor struct {
	log zerolog.Logger
}

var _ types.BlockExecutor = (*Executor)(nil)

type Option func(*Executor)

// WithLogger enables debug logging of skipped transactions.
func WithLogger(log zerolog.Logger) Option {
	return func(e *Executor) { e.log = log }
}

func NewExecutor(opts ...Option) *Executor {
	e := &Executor{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Executor) ExecuteBlock(block types.Block, values []types.AccountValue) ([]types.AccountValue, error) {
	ledger, err := state.NewLedger(values)
	if err != nil {
		return nil, errors.Wrap(err, "build ledger")
	}

	for i, tx := range block.Transactions {
		updates, ok := tx.Updates(ledger)
		if !ok {
			e.log.Debug().Int("index", i).Msg("skipping infeasible transaction")
			continue
		}
		if !ledger.ValidateAndApply(updates) {
			e.log.Debug().Int("index", i).Msg("skipping rejected transaction")
		}
	}

	return ledger.Values(), nil
}
