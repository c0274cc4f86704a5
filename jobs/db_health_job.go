package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

const pingTimeout = 5 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

// PingDatabase logs when the database stops answering and again once it is back.
func PingDatabase(db Pinger) func() {
	healthy := true
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			log.Printf("🔥 Database health check failed: %v", err)
			healthy = false
			return
		}
		if !healthy {
			log.Println("✅ Database reachable again.")
			healthy = true
		}
	}
}

// jobChain keeps a slow run from overlapping the next tick.
func jobChain() []cron.JobWrapper {
	return []cron.JobWrapper{
		cron.SkipIfStillRunning(cron.DefaultLogger),
	}
}

// Schedule starts the database health check on a cron schedule and returns
// the running scheduler.
func Schedule(schedule string, db Pinger) (*cron.Cron, error) {
	c := cron.New(cron.WithChain(jobChain()...))
	if _, err := c.AddFunc(schedule, PingDatabase(db)); err != nil {
		return nil, err
	}
	c.Start()
	log.Println("✅ Cron job for database health scheduled successfully.")
	return c, nil
}
