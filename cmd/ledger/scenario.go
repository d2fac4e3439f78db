package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"ledger/executor/types"
	"ledger/transactions"
)

// scenario is the YAML shape consumed by --scenario:
//
//	name: example
//	accounts:
//	  - name: A
//	    balance: 20
//	transfers:
//	  - from: A
//	    to: B
//	    amount: 5
type scenario struct {
	Name      string             `yaml:"name"`
	Accounts  []scenarioAccount  `yaml:"accounts"`
	Transfers []scenarioTransfer `yaml:"transfers"`
}

type scenarioAccount struct {
	Name    string `yaml:"name"`
	Balance int64  `yaml:"balance"`
}

type scenarioTransfer struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Amount int64  `yaml:"amount"`
}

func loadScenario(path string) (*scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read scenario")
	}
	var s scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrapf(err, "parse scenario %s", path)
	}
	if s.Name == "" {
		s.Name = path
	}
	return &s, nil
}

func (s scenario) build() (types.Block, []types.AccountValue) {
	values := make([]types.AccountValue, 0, len(s.Accounts))
	for _, a := range s.Accounts {
		values = append(values, types.AccountValue{Name: a.Name, Balance: a.Balance})
	}

	var block types.Block
	for _, t := range s.Transfers {
		block.Transactions = append(block.Transactions, transactions.Transfer{
			From:  t.From,
			To:    t.To,
			Value: t.Amount,
		})
	}
	return block, values
}

func builtinScenarios() []scenario {
	return []scenario{
		{
			Name: "example-1",
			Accounts: []scenarioAccount{
				{Name: "A", Balance: 20},
				{Name: "B", Balance: 30},
				{Name: "C", Balance: 40},
			},
			Transfers: []scenarioTransfer{
				{From: "A", To: "B", Amount: 5},
				{From: "B", To: "C", Amount: 10},
				{From: "B", To: "C", Amount: 30},
			},
		},
		{
			Name: "example-2",
			Accounts: []scenarioAccount{
				{Name: "A", Balance: 10},
				{Name: "B", Balance: 20},
				{Name: "C", Balance: 30},
				{Name: "D", Balance: 40},
			},
			Transfers: []scenarioTransfer{
				{From: "A", To: "B", Amount: 5},
				{From: "C", To: "D", Amount: 10},
			},
		},
	}
}
