package health

type ChecklistStatus string

const (
	ChecklistStatusPassed      ChecklistStatus = "PASSED"
	ChecklistStatusFailed                      = "FAILED"
	ChecklistStatusUnavailable                 = "UNAVAILABLE"
	ChecklistStatusPending                     = "PENDING"
)

// HealthPending marks a score that cannot be judged until the journey is over.
const HealthPending = -1

// Criterion and checklist item names as the report exposes them.
const (
	CriterionPositions            = "positions"
	CriterionStops                = "stops"
	CriterionFirstStopDeparture   = "firstStopDeparture"
	CriterionLastStopArrival      = "lastStopArrival"
	CriterionTimingStopDepartures = "timingStopDepartures"
	CriterionLocType              = "locType"

	ChecklistGPS   = "GPS"
	ChecklistDoors = "doors"
)

type Thresholds struct {
	OK      int `groups:"basic" json:"ok"`
	Warning int `groups:"basic" json:"warning"`
}

var DefaultThresholds = Thresholds{OK: 97, Warning: 75}

// Odometer-heavy location data degrades every downstream delay figure, so the
// provenance criterion has no warning band below its pass level.
var LocTypeThresholds = Thresholds{OK: 97, Warning: 97}

type ChecklistItem struct {
	Status   ChecklistStatus `groups:"basic" json:"status"`
	Messages []string        `groups:"basic" json:"messages"`
}

type Score struct {
	Health     int        `groups:"basic" json:"health"`
	Messages   []string   `groups:"basic" json:"messages"`
	Thresholds Thresholds `groups:"basic" json:"thresholds"`
}

// Report is the aggregate health evaluation for one journey. It is built
// fresh on every evaluation and carries no persisted identity of its own.
type Report struct {
	Checklist map[string]ChecklistItem `groups:"basic" json:"checklist"`
	Health    map[string]Score         `groups:"basic" json:"health"`

	Total  int  `groups:"basic" json:"total"`
	IsOK   bool `groups:"basic" json:"isOk"`
	IsDone bool `groups:"basic" json:"isDone"`
}

func emptyReport(isDone bool) *Report {
	return &Report{
		Checklist: map[string]ChecklistItem{},
		Health:    map[string]Score{},
		Total:     0,
		IsOK:      false,
		IsDone:    isDone,
	}
}
