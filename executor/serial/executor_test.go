package serial_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledger/executor/serial"
	"ledger/executor/types"
	"ledger/transactions"
)

func TestWorkedExampleInBlockOrder(t *testing.T) {
	values := []types.AccountValue{
		{Name: "A", Balance: 20},
		{Name: "B", Balance: 30},
		{Name: "C", Balance: 40},
	}
	block := types.Block{
		Transactions: []types.Transaction{
			transactions.Transfer{From: "A", To: "B", Value: 5},
			transactions.Transfer{From: "B", To: "C", Value: 10},
			transactions.Transfer{From: "B", To: "C", Value: 30}, // must fail: B holds 25 by then
		},
	}

	final, err := serial.NewExecutor().ExecuteBlock(block, values)
	require.NoError(t, err)
	assert.Equal(t, []types.AccountValue{
		{Name: "A", Balance: 15},
		{Name: "B", Balance: 25},
		{Name: "C", Balance: 50},
	}, final)
}

// An infeasible transaction is skipped; the rest of the block still runs.
func TestInfeasibleTransactionIsSkipped(t *testing.T) {
	values := []types.AccountValue{{Name: "A", Balance: 5}}
	block := types.Block{
		Transactions: []types.Transaction{
			transactions.Transfer{From: "A", To: "B", Value: 10},
			transactions.Transfer{From: "A", To: "B", Value: 3},
		},
	}

	final, err := serial.NewExecutor().ExecuteBlock(block, values)
	require.NoError(t, err)
	assert.Equal(t, []types.AccountValue{
		{Name: "A", Balance: 2},
		{Name: "B", Balance: 3},
	}, final)
}

func TestMalformedInitialValues(t *testing.T) {
	_, err := serial.NewExecutor().ExecuteBlock(types.Block{}, []types.AccountValue{
		{Name: "A", Balance: 1},
		{Name: "A", Balance: 1},
	})
	assert.Error(t, err)
}

func TestEmptyBlockReturnsInitialValues(t *testing.T) {
	values := []types.AccountValue{
		{Name: "A", Balance: 1},
		{Name: "B", Balance: 2},
	}

	final, err := serial.NewExecutor().ExecuteBlock(types.Block{}, values)
	require.NoError(t, err)
	assert.Equal(t, values, final)
}
