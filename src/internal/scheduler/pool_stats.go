package scheduler

import (
	"context"
	"database/sql"

	"github.com/investlab/investment-gateway/src/internal/logger"
)

const PoolStatsJobName = "db-pool-stats"

type StatsSource interface {
	Stats() sql.DBStats
}

// PoolStatsTask logs the connection pool counters of db.
func PoolStatsTask(db StatsSource) TaskFn {
	return func(ctx context.Context) error {
		st := db.Stats()
		logger.Info(ctx, "database pool stats", logger.Fields{
			"maxOpen":           st.MaxOpenConnections,
			"open":              st.OpenConnections,
			"inUse":             st.InUse,
			"idle":              st.Idle,
			"waitCount":         st.WaitCount,
			"waitDurationMs":    st.WaitDuration.Milliseconds(),
			"maxIdleClosed":     st.MaxIdleClosed,
			"maxLifetimeClosed": st.MaxLifetimeClosed,
		})
		return nil
	}
}
