package reportcache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/HSLdevcom/transitlog-ui-sub000/pkg/health"
	"github.com/HSLdevcom/transitlog-ui-sub000/pkg/hfp"
	"github.com/HSLdevcom/transitlog-ui-sub000/pkg/redis_client"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
)

// ReportCache memoizes health evaluations on the journey's content hash and
// the message language. Identical inputs always produce an identical report,
// so the cache is purely a performance concern, never a correctness one.
type ReportCache struct {
	Cache *cache.Cache[string]
}

const cacheKeyFormat = "journeyhealth/%s/%s"

func (r *ReportCache) Setup() {
	redisStore := redisstore.NewRedis(redis_client.Client, store.WithExpiration(90*time.Minute))

	r.Cache = cache.New[string](redisStore)
}

// Evaluate returns the cached report for this exact journey content, or runs
// a fresh evaluation and stores it.
func (r *ReportCache) Evaluate(journey *hfp.Journey, language string, now time.Time) *health.Report {
	key := fmt.Sprintf(cacheKeyFormat, journey.GenerateFunctionalHash(), language)

	reportCacheValue, err := r.Cache.Get(context.Background(), key)
	if err == nil {
		var report *health.Report
		if err := json.Unmarshal([]byte(reportCacheValue), &report); err == nil && report != nil {
			return report
		}
	}

	report := health.EvaluateJourney(journey, language, now)

	reportJSON, _ := json.Marshal(report)
	r.Cache.Set(context.Background(), key, string(reportJSON))

	return report
}
