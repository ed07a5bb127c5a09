package worker

import (
	"context"
	"sync"
	"time"
	"wallet-service/internal/metrics"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// StatsCollector takes one snapshot of connection pool usage.
type StatsCollector interface {
	Collect(ctx context.Context) (metrics.PoolSnapshot, error)
}

// PgxPoolCollector reads pool statistics straight from a pgxpool.Pool.
type PgxPoolCollector struct {
	pool *pgxpool.Pool
}

func NewPgxPoolCollector(pool *pgxpool.Pool) *PgxPoolCollector {
	return &PgxPoolCollector{pool: pool}
}

func (c *PgxPoolCollector) Collect(_ context.Context) (metrics.PoolSnapshot, error) {
	stat := c.pool.Stat()
	return metrics.PoolSnapshot{
		Total:        stat.TotalConns(),
		Idle:         stat.IdleConns(),
		Acquired:     stat.AcquiredConns(),
		EmptyAcquire: stat.EmptyAcquireCount(),
	}, nil
}

// PoolStatsWorker periodically publishes connection pool gauges. Row lock
// contention on hot wallets shows up here as acquired connections piling up.
type PoolStatsWorker struct {
	collector StatsCollector
	interval  time.Duration
	logger    zerolog.Logger
	stopChan  chan struct{}
	stopOnce  sync.Once
	wg        *sync.WaitGroup
}

func NewPoolStatsWorker(collector StatsCollector, interval time.Duration, logger zerolog.Logger) *PoolStatsWorker {
	return &PoolStatsWorker{
		collector: collector,
		interval:  interval,
		logger:    logger,
		stopChan:  make(chan struct{}),
		wg:        &sync.WaitGroup{},
	}
}

func (w *PoolStatsWorker) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.logger.Info().Dur("interval", w.interval).Msg("Pool stats worker started")
		w.collect(ctx)

		for {
			select {
			case <-ticker.C:
				w.collect(ctx)
			case <-w.stopChan:
				w.logger.Info().Msg("Pool stats worker stopping")
				return
			case <-ctx.Done():
				w.logger.Info().Msg("Pool stats worker stopping (context done)")
				return
			}
		}
	}()
}

func (w *PoolStatsWorker) collect(ctx context.Context) {
	snapshot, err := w.collector.Collect(ctx)
	if err != nil {
		w.logger.Error().Err(err).Msg("Failed to collect pool stats")
		return
	}
	metrics.ObservePool(snapshot)
	w.logger.Debug().
		Int32("total", snapshot.Total).
		Int32("acquired", snapshot.Acquired).
		Int32("idle", snapshot.Idle).
		Msg("Pool stats collected")
}

// Stop is safe to call more than once.
func (w *PoolStatsWorker) Stop() {
	w.stopOnce.Do(func() { close(w.stopChan) })
	w.wg.Wait()
}
