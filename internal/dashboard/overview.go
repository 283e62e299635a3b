package dashboard

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	id "approvaldash/pkg/domain"
	"approvaldash/pkg/requestcontext"
)

// Defaults used when the dashboard is loaded as a whole.
const (
	DefaultActivityLimit = 10
	DefaultTrendDays     = 30
	DefaultTodoLimit     = 5
)

// Overview builds every dashboard view for user concurrently. The first
// failing builder cancels the rest and its error is returned.
func (s *Service) Overview(ctx context.Context, user id.UserID) (*Overview, error) {
	start := time.Now()
	defer func() { s.metrics.ObserveOverview(time.Since(start)) }()

	// Every view reads the same instant.
	ctx = requestcontext.WithTime(ctx, s.now(ctx))
	g, ctx := errgroup.WithContext(ctx)
	out := &Overview{}

	g.Go(func() (err error) {
		out.Statistics, err = s.Statistics(ctx, user)
		return err
	})
	g.Go(func() (err error) {
		out.RecentActivities, err = s.RecentActivities(ctx, user, DefaultActivityLimit)
		return err
	})
	g.Go(func() (err error) {
		out.Trend, err = s.Trend(ctx, DefaultTrendDays)
		return err
	})
	g.Go(func() (err error) {
		out.TypeDistribution, err = s.TypeDistribution(ctx)
		return err
	})
	g.Go(func() (err error) {
		out.Efficiency, err = s.Efficiency(ctx)
		return err
	})
	g.Go(func() (err error) {
		out.Todos, err = s.Todos(ctx, user, DefaultTodoLimit)
		return err
	})
	g.Go(func() (err error) {
		out.TypeEfficiency, err = s.TypeEfficiency(ctx, user)
		return err
	})
	g.Go(func() (err error) {
		out.Heatmap, err = s.Heatmap(ctx, user)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "dashboard overview built",
		"user_id", user,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}
