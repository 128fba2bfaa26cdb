package settings

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pollUntil(t *testing.T, d *Dialog) (bool, bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for d.IsOpen() {
		if time.Now().After(deadline) {
			t.Fatal("dialog never answered")
		}
		dark, changed := d.Poll()
		if !d.IsOpen() {
			return dark, changed
		}
		time.Sleep(time.Millisecond)
	}
	return false, false
}

func TestDialog_DeliversAnswer(t *testing.T) {
	release := make(chan struct{})
	d := NewDialog(func(current bool) (bool, bool, error) {
		<-release
		return !current, true, nil
	})

	require.True(t, d.Open(false))
	assert.False(t, d.Open(false), "only one prompt at a time")

	dark, changed := d.Poll()
	assert.False(t, changed, "nothing before the user answers")
	assert.False(t, dark)

	close(release)
	dark, changed = pollUntil(t, d)
	assert.True(t, changed)
	assert.True(t, dark)
	assert.False(t, d.IsOpen())
}

func TestDialog_DismissLeavesSettingAlone(t *testing.T) {
	d := NewDialog(func(current bool) (bool, bool, error) {
		return current, false, nil
	})
	d.Open(true)
	_, changed := pollUntil(t, d)
	assert.False(t, changed)
}

func TestDialog_ErrorIsSwallowed(t *testing.T) {
	d := NewDialog(func(bool) (bool, bool, error) {
		return false, false, errors.New("no display")
	})
	d.Open(false)
	_, changed := pollUntil(t, d)
	assert.False(t, changed)
	assert.True(t, d.Open(false), "can reopen after a failure")
}
