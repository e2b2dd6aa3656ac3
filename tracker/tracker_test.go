package tracker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/restaurant-storefront/client"
	"github.com/yeremiapane/restaurant-storefront/models"
	"github.com/yeremiapane/restaurant-storefront/utils"
)

// scriptedFetcher returns one scripted result per call, repeating the last
// one when the script runs out.
type scriptedFetcher struct {
	mu     sync.Mutex
	script []func() (*models.Order, error)
	calls  int
}

func (f *scriptedFetcher) GetOrder(ctx context.Context, orderNumber string) (*models.Order, error) {
	f.mu.Lock()
	idx := f.calls
	if idx >= len(f.script) {
		idx = len(f.script) - 1
	}
	step := f.script[idx]
	f.calls++
	f.mu.Unlock()
	return step()
}

func orderWith(status models.OrderStatus) func() (*models.Order, error) {
	return func() (*models.Order, error) {
		return &models.Order{OrderNumber: "ORD-1001", Status: status}, nil
	}
}

func TestMain(m *testing.M) {
	utils.InitLogger()
	m.Run()
}

func TestStatusProgressionYieldsOrderedStages(t *testing.T) {
	fetcher := &scriptedFetcher{script: []func() (*models.Order, error){
		orderWith(models.StatusPending),
		orderWith(models.StatusPreparing),
		orderWith(models.StatusReady),
		orderWith(models.StatusCompleted),
	}}

	svc := NewService(fetcher, 5*time.Millisecond)
	tr := svc.Track("ORD-1001")
	defer tr.Stop()

	var stages []int
	for u := range tr.Updates() {
		require.NoError(t, u.Err)
		stages = append(stages, u.Stage)
		if len(stages) == 4 {
			break
		}
	}

	assert.Equal(t, []int{1, 2, 3, 4}, stages)
}

func TestCancelledStatusHasNoStage(t *testing.T) {
	fetcher := &scriptedFetcher{script: []func() (*models.Order, error){
		orderWith(models.StatusCancelled),
	}}

	svc := NewService(fetcher, 5*time.Millisecond)
	tr := svc.Track("ORD-1001")
	defer tr.Stop()

	u := <-tr.Updates()
	require.NoError(t, u.Err)
	assert.Equal(t, models.StatusCancelled, u.Order.Status)
	assert.Equal(t, 0, u.Stage)
}

func TestTransientErrorDoesNotEndPolling(t *testing.T) {
	fetcher := &scriptedFetcher{script: []func() (*models.Order, error){
		func() (*models.Order, error) { return nil, errors.New("upstream hiccup") },
		orderWith(models.StatusPreparing),
	}}

	svc := NewService(fetcher, 5*time.Millisecond)
	tr := svc.Track("ORD-1001")
	defer tr.Stop()

	first := <-tr.Updates()
	require.Error(t, first.Err)
	assert.False(t, first.NotFound)

	second := <-tr.Updates()
	require.NoError(t, second.Err)
	assert.Equal(t, 2, second.Stage)
}

func TestNotFoundIsTerminal(t *testing.T) {
	fetcher := &scriptedFetcher{script: []func() (*models.Order, error){
		func() (*models.Order, error) { return nil, client.ErrOrderNotFound },
	}}

	svc := NewService(fetcher, 5*time.Millisecond)
	tr := svc.Track("ORD-9999")

	u := <-tr.Updates()
	assert.True(t, u.NotFound)
	assert.ErrorIs(t, u.Err, client.ErrOrderNotFound)

	// The stream ends without Stop being called.
	_, open := <-tr.Updates()
	assert.False(t, open)
	tr.Stop()
}

func TestNoUpdateAfterStopEvenIfFetchResolves(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	// Ignores cancellation on purpose: the fetch "resolves" after the
	// caller has already stopped the tracker.
	fetcher := &scriptedFetcher{script: []func() (*models.Order, error){
		func() (*models.Order, error) {
			close(started)
			<-release
			return &models.Order{OrderNumber: "ORD-1001", Status: models.StatusReady}, nil
		},
	}}

	svc := NewService(fetcher, time.Hour)
	tr := svc.Track("ORD-1001")

	<-started

	stopped := make(chan struct{})
	go func() {
		tr.Stop()
		close(stopped)
	}()

	close(release)
	<-stopped

	for u := range tr.Updates() {
		assert.Nil(t, u.Order, "snapshot delivered after Stop")
	}
}

func TestStopIsIdempotentAndClosesStream(t *testing.T) {
	fetcher := &scriptedFetcher{script: []func() (*models.Order, error){
		orderWith(models.StatusPending),
	}}

	svc := NewService(fetcher, time.Hour)
	tr := svc.Track("ORD-1001")

	<-tr.Updates()
	tr.Stop()
	tr.Stop()
	_, open := <-tr.Updates()
	assert.False(t, open)
}

func TestRepeatedTrackStopCyclesDoNotBlock(t *testing.T) {
	fetcher := &scriptedFetcher{script: []func() (*models.Order, error){
		orderWith(models.StatusPending),
	}}
	svc := NewService(fetcher, time.Hour)

	for i := 0; i < 20; i++ {
		tr := svc.Track("ORD-1001")
		<-tr.Updates()
		tr.Stop()
	}
}
