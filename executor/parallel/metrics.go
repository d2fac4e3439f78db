package parallel

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ledger"

var (
	txSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transactions_submitted_total",
		Help:      "Total number of transactions dispatched to the worker pool",
	})
	txApplied = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transactions_applied_total",
		Help:      "Total number of transactions whose updates were committed",
	})
	txInfeasible = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transactions_infeasible_total",
		Help:      "Total number of transactions dropped at propose time",
	})
	txRejected = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transactions_rejected_total",
		Help:      "Total number of transactions that passed propose but were rejected at apply",
	})
	blockSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "block_size_transactions",
		Help:      "Number of transactions per executed block",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
	})
	blockDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "block_execution_seconds",
		Help:      "Wall-clock time spent executing a block",
		Buckets:   prometheus.DefBuckets,
	})
)
