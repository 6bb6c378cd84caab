package parse

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubParser struct {
	items []Item
	err   error

	calls   atomic.Int64
	release chan struct{}
}

func (p *stubParser) Parse(ctx context.Context, text string) ([]Item, error) {
	p.calls.Add(1)
	if p.release != nil {
		<-p.release
	}
	return p.items, p.err
}

func TestServiceParse(t *testing.T) {
	stub := &stubParser{items: []Item{{FishNameSuggestion: "dorada"}}}
	svc := NewService(stub, slog.Default())

	items := svc.Parse(context.Background(), "dorada 100kg")
	require.Len(t, items, 1)
	assert.Equal(t, "dorada", items[0].FishNameSuggestion)
}

func TestServiceParseSwallowsErrors(t *testing.T) {
	stub := &stubParser{err: errors.New("upstream down")}
	svc := NewService(stub, slog.Default())

	items := svc.Parse(context.Background(), "dorada")
	assert.Nil(t, items)
}

func TestServiceParseDeduplicatesInFlight(t *testing.T) {
	stub := &stubParser{items: []Item{{FishNameSuggestion: "atun"}}, release: make(chan struct{})}
	svc := NewService(stub, slog.Default())

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			items := svc.Parse(context.Background(), "same text")
			assert.Len(t, items, 1)
		}()
	}

	// Let the calls pile up behind the single in-flight request.
	for stub.calls.Load() == 0 {
		runtime.Gosched()
	}
	time.Sleep(50 * time.Millisecond)
	close(stub.release)
	wg.Wait()

	assert.Equal(t, int64(1), stub.calls.Load())
}
