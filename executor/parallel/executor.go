package parallel

import (
	"runtime"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"ledger/executor/types"
	"ledger/state"
)

// Executor runs a block's transactions on a bounded pool of workers. Each
// transaction proposes its updates against a possibly stale snapshot and
// the ledger re-validates them under its lock; a transaction that loses
// that race is dropped without retry.
type Executor struct {
	nWorkers int
	log      zerolog.Logger
}

var _ types.BlockExecutor = (*Executor)(nil)

type Option func(*Executor)

// WithLogger enables debug logging of dropped transactions.
func WithLogger(log zerolog.Logger) Option {
	return func(e *Executor) { e.log = log }
}

// NewExecutor creates an executor with the given worker count.
// A count of zero or less selects runtime.NumCPU().
func NewExecutor(nWorkers int, opts ...Option) *Executor {
	if nWorkers <= 0 {
		nWorkers = runtime.NumCPU()
	}
	e := &Executor{
		nWorkers: nWorkers,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExecuteBlock builds a ledger from the initial values, fans the block's
// transactions out to the worker pool, waits for all of them, and returns
// every account in the ledger. Dropped transactions are not errors; the
// error return covers malformed initial values only.
func (e *Executor) ExecuteBlock(block types.Block, values []types.AccountValue) ([]types.AccountValue, error) {
	start := time.Now()

	ledger, err := state.NewLedger(values)
	if err != nil {
		return nil, errors.Wrap(err, "build ledger")
	}
	blockSize.Observe(float64(len(block.Transactions)))

	var g errgroup.Group
	g.SetLimit(e.nWorkers)
	for i, tx := range block.Transactions {
		i, tx := i, tx
		g.Go(func() error {
			e.process(ledger, i, tx)
			return nil
		})
	}
	// Workers never return errors; Wait is purely the completion barrier.
	_ = g.Wait()

	blockDuration.Observe(time.Since(start).Seconds())
	return ledger.Values(), nil
}

func (e *Executor) process(ledger *state.Ledger, index int, tx types.Transaction) {
	txSubmitted.Inc()

	updates, ok := tx.Updates(ledger)
	if !ok {
		txInfeasible.Inc()
		e.log.Debug().Int("index", index).Msg("transaction infeasible, dropped")
		return
	}
	if !ledger.ValidateAndApply(updates) {
		txRejected.Inc()
		e.log.Debug().Int("index", index).Msg("transaction rejected at apply, dropped")
		return
	}

	txApplied.Inc()
}
