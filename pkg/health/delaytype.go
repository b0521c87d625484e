package health

import "github.com/HSLdevcom/transitlog-ui-sub000/pkg/hfp"

type DelayType string

const (
	DelayTypeUnsigned DelayType = ""
	DelayTypeEarly              = "early"
	DelayTypeOnTime             = "on-time"
	DelayTypeLate               = "late"
)

const lateThresholdSeconds = 180

// ClassifyDelay maps a signed observed-minus-planned difference in seconds to
// a qualitative delay category. A nil difference means no observation exists,
// which is distinct from a difference of exactly zero.
//
// Departing early from the origin strands waiting passengers, so origin stops
// get no earliness allowance at all; everywhere else up to 10 seconds early
// still counts as on time.
func ClassifyDelay(diffSeconds *int, role hfp.StopRole) DelayType {
	if diffSeconds == nil {
		return DelayTypeUnsigned
	}

	earlyThreshold := -10
	if role == hfp.StopRoleOrigin {
		earlyThreshold = 0
	}

	diff := *diffSeconds

	if diff <= earlyThreshold {
		return DelayTypeEarly
	}

	if diff >= lateThresholdSeconds {
		return DelayTypeLate
	}

	return DelayTypeOnTime
}
