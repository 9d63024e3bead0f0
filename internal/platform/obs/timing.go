package obs

import (
	"context"
	"time"

	"github.com/master-racoon/hackathon-last-mile/internal/platform/logging"
)

type ctxKey string

// RequestIDKey carries the per-request id assigned by the HTTP middleware.
const RequestIDKey ctxKey = "req_id"

var timingLog = logging.New("obs")

// Time logs the duration of an operation when the returned func runs.
// Pass a pointer to the caller's named error so failures are logged with
// the same entry.
//
//	defer obs.Time(ctx, "track.cache.Find")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()
	reqID, _ := ctx.Value(RequestIDKey).(string)

	return func(errp *error) {
		dur := time.Since(start)

		ev := timingLog.Debug()
		if errp != nil && *errp != nil {
			ev = timingLog.Warn().Err(*errp)
		}
		ev.Str("req_id", reqID).Str("op", name).Int64("dur_ms", dur.Milliseconds()).Msg("op timed")
	}
}
