package health

import (
	"testing"

	"github.com/HSLdevcom/transitlog-ui-sub000/pkg/hfp"
	"github.com/stretchr/testify/assert"
)

func intPtr(value int) *int {
	return &value
}

func TestClassifyDelay(t *testing.T) {
	t.Run("nil diff means no data for any role", func(t *testing.T) {
		assert.Equal(t, DelayType(DelayTypeUnsigned), ClassifyDelay(nil, hfp.StopRoleOrigin))
		assert.Equal(t, DelayType(DelayTypeUnsigned), ClassifyDelay(nil, hfp.StopRoleIntermediate))
		assert.Equal(t, DelayType(DelayTypeUnsigned), ClassifyDelay(nil, hfp.StopRoleDestination))
	})

	t.Run("origin departures get no earliness allowance", func(t *testing.T) {
		assert.Equal(t, DelayType(DelayTypeEarly), ClassifyDelay(intPtr(0), hfp.StopRoleOrigin))
		assert.Equal(t, DelayType(DelayTypeEarly), ClassifyDelay(intPtr(-1), hfp.StopRoleOrigin))
		assert.Equal(t, DelayType(DelayTypeOnTime), ClassifyDelay(intPtr(1), hfp.StopRoleOrigin))
	})

	t.Run("other stops tolerate up to ten seconds early", func(t *testing.T) {
		assert.Equal(t, DelayType(DelayTypeOnTime), ClassifyDelay(intPtr(-9), hfp.StopRoleIntermediate))
		assert.Equal(t, DelayType(DelayTypeOnTime), ClassifyDelay(intPtr(0), hfp.StopRoleDestination))
		assert.Equal(t, DelayType(DelayTypeEarly), ClassifyDelay(intPtr(-10), hfp.StopRoleIntermediate))
		assert.Equal(t, DelayType(DelayTypeEarly), ClassifyDelay(intPtr(-120), hfp.StopRoleDestination))
	})

	t.Run("three minutes or more is late everywhere", func(t *testing.T) {
		assert.Equal(t, DelayType(DelayTypeLate), ClassifyDelay(intPtr(180), hfp.StopRoleOrigin))
		assert.Equal(t, DelayType(DelayTypeLate), ClassifyDelay(intPtr(600), hfp.StopRoleIntermediate))
		assert.Equal(t, DelayType(DelayTypeOnTime), ClassifyDelay(intPtr(179), hfp.StopRoleDestination))
	})
}

func TestTimelinessColor(t *testing.T) {
	t.Run("fixed lookup per delay type", func(t *testing.T) {
		assert.Equal(t, ColorRed, TimelinessColor(DelayTypeEarly, false, "#fff"))
		assert.Equal(t, ColorGreen, TimelinessColor(DelayTypeOnTime, false, "#fff"))
		assert.Equal(t, ColorYellow, TimelinessColor(DelayTypeLate, false, "#fff"))
		assert.Equal(t, ColorGrey, TimelinessColor(DelayTypeUnsigned, false, "#fff"))
	})

	t.Run("late uses the darker variant on white backgrounds", func(t *testing.T) {
		assert.Equal(t, ColorYellowDark, TimelinessColor(DelayTypeLate, true, "#fff"))
	})

	t.Run("unknown types fall back to the caller's color", func(t *testing.T) {
		assert.Equal(t, "#fff", TimelinessColor(DelayType("planned"), false, "#fff"))
	})
}
