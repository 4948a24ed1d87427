package testutil

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestFakeClock_StepsOnEveryRead(t *testing.T) {
	c := NewFakeClock(epoch, time.Millisecond)

	assert.Equal(t, epoch, c.Now())
	assert.Equal(t, epoch.Add(time.Millisecond), c.Now())
	assert.Equal(t, epoch.Add(2*time.Millisecond), c.Now())
}

func TestFakeClock_Advance(t *testing.T) {
	c := NewFakeClock(epoch, time.Millisecond)

	c.Advance(time.Hour)
	assert.Equal(t, epoch.Add(time.Hour), c.Current())
	assert.Equal(t, epoch.Add(time.Hour), c.Now())
}

func TestFakeClock_Current_DoesNotAdvance(t *testing.T) {
	c := NewFakeClock(epoch, time.Second)

	assert.Equal(t, epoch, c.Current())
	assert.Equal(t, epoch, c.Current())
}

func TestFakeClock_ThreadSafe(t *testing.T) {
	c := NewFakeClock(epoch, time.Nanosecond)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Now()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, epoch.Add(5000*time.Nanosecond), c.Current())
}
