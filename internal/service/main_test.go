package service

import (
	"context"
	"time"

	"emurai-be-svc/internal/gateway"
	"emurai-be-svc/internal/models"
	"emurai-be-svc/internal/store"
	"emurai-be-svc/pkg/logger"
)

// testTime is a Monday; the sample ronda shifts land on it and the two
// days after
var testTime = time.Date(2024, 2, 19, 10, 0, 0, 0, time.UTC)

func testLogger() *logger.Logger {
	return logger.NewLogger("panic", "text")
}

func testStore() *store.Store {
	s := store.NewStore()
	s.Replace(store.SampleDataset(testTime))
	return s
}

func fixedNow() time.Time {
	return testTime
}

// fakeGateway scripts gateway behavior for command tests
type fakeGateway struct {
	configured bool
	envelopes  map[string]*gateway.Envelope
	callErr    error
	dataset    *models.Dataset
	fetchErr   error
	calls      []string
}

func (f *fakeGateway) Configured() bool {
	return f.configured
}

func (f *fakeGateway) Call(_ context.Context, action string, _ map[string]interface{}) (*gateway.Envelope, error) {
	f.calls = append(f.calls, action)
	if f.callErr != nil {
		return nil, f.callErr
	}
	if env, ok := f.envelopes[action]; ok {
		return env, nil
	}
	return &gateway.Envelope{Success: true}, nil
}

func (f *fakeGateway) FetchAll(_ context.Context) (*models.Dataset, error) {
	f.calls = append(f.calls, "getAll")
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	if f.dataset == nil {
		return nil, gateway.ErrUnavailable
	}
	return f.dataset, nil
}

func (f *fakeGateway) InFlight() int64 {
	return 0
}

// fakePrefs is an in-memory preference repository
type fakePrefs struct {
	values map[string]string
	setErr error
}

func newFakePrefs() *fakePrefs {
	return &fakePrefs{values: map[string]string{}}
}

func (f *fakePrefs) Get(key string) (string, error) {
	return f.values[key], nil
}

func (f *fakePrefs) Set(key, value string) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.values[key] = value
	return nil
}
