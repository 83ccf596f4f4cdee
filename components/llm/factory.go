package llm

import (
	"context"
	"sync"
)

type handleKey struct {
	apiKey string
	model  string
}

// Factory memoizes one Transport for the most recent (credential, model) pair.
// A different pair dials a new handle and replaces the cached one; the old
// handle is never mutated, so callers still holding it are unaffected.
type Factory struct {
	dial   Dialer
	mtx    sync.Mutex
	key    handleKey
	handle Transport
	dials  int
}

// NewFactory returns a Factory backed by dial
func NewFactory(dial Dialer) *Factory {
	return &Factory{dial: dial}
}

// Get returns the cached handle for (apiKey, model), dialing a new one on a key change
func (f *Factory) Get(ctx context.Context, apiKey string, model string) (Transport, error) {
	key := handleKey{apiKey: apiKey, model: model}
	f.mtx.Lock()
	defer f.mtx.Unlock()
	if f.handle != nil && f.key == key {
		return f.handle, nil
	}
	handle, err := f.dial(ctx, apiKey, model)
	if err != nil {
		return nil, err
	}
	f.dials++
	f.key = key
	f.handle = handle
	return handle, nil
}

// Invalidate drops the cached handle
func (f *Factory) Invalidate() {
	f.mtx.Lock()
	f.handle = nil
	f.key = handleKey{}
	f.mtx.Unlock()
}

// Dials returns how many handles have been built
func (f *Factory) Dials() int {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	return f.dials
}
