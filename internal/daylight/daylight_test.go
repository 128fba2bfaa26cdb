package daylight

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBucketFor_CoversEveryHourOnce(t *testing.T) {
	counts := map[Bucket]int{}
	for h := 0; h < 24; h++ {
		counts[BucketFor(h)]++
	}
	assert.Equal(t, 3, counts[Morning])
	assert.Equal(t, 9, counts[Day])
	assert.Equal(t, 3, counts[Evening])
	assert.Equal(t, 9, counts[Night])
}

func TestBucketFor_Edges(t *testing.T) {
	expect := map[int]Bucket{
		0: Night, 5: Night, 6: Morning, 8: Morning, 9: Day,
		17: Day, 18: Evening, 20: Evening, 21: Night, 23: Night,
	}
	for h, b := range expect {
		assert.Equal(t, b, BucketFor(h), "hour %d", h)
	}
}

func TestBucketFor_NormalisesOutOfRange(t *testing.T) {
	assert.Equal(t, Morning, BucketFor(31))
	assert.Equal(t, Night, BucketFor(-1))
	assert.Equal(t, Day, BucketFor(-12))
}

func TestResolve_Examples(t *testing.T) {
	morning := Resolve(7)
	assert.Equal(t, Morning, morning.Bucket)
	assert.False(t, morning.LampEnabled)
	assert.Equal(t, 0.0, morning.DarknessAlpha)
	assert.Equal(t, color.NRGBA{R: 255, G: 153, B: 102, A: 255}, morning.SkyColors[0])

	night := Resolve(23)
	assert.Equal(t, Night, night.Bucket)
	assert.True(t, night.LampEnabled)
	assert.Equal(t, 0.6, night.DarknessAlpha)
	assert.Equal(t, uint8(204), night.LampColor.A)

	evening := Resolve(19)
	assert.True(t, evening.LampEnabled)
	assert.Equal(t, 0.3, evening.DarknessAlpha)

	day := Resolve(12)
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, day.LightColor)
}

func TestResolve_DarknessMonotoneIntoNight(t *testing.T) {
	assert.Less(t, Resolve(12).DarknessAlpha, Resolve(19).DarknessAlpha)
	assert.Less(t, Resolve(19).DarknessAlpha, Resolve(2).DarknessAlpha)
}

func TestWatcher_FiresOnlyOnChange(t *testing.T) {
	var w Watcher

	cfg, changed := w.Observe(7)
	assert.True(t, changed)
	assert.Equal(t, Morning, cfg.Bucket)

	_, changed = w.Observe(7)
	assert.False(t, changed)
	_, changed = w.Observe(7)
	assert.False(t, changed)

	cfg, changed = w.Observe(8)
	assert.True(t, changed, "same bucket, new hour still fires")
	assert.Equal(t, Morning, cfg.Bucket)
	assert.Equal(t, 8, w.Hour())

	cfg, changed = w.Observe(18)
	assert.True(t, changed)
	assert.Equal(t, Evening, cfg.Bucket)
}

func TestBucket_String(t *testing.T) {
	assert.Equal(t, "evening", Evening.String())
	assert.Equal(t, "unknown", Bucket(9).String())
}
