package address

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jarin-io/api/pkg/apperror"
	"jarin-io/api/pkg/models"
)

// fakeSource serves canned option lists and can hold a fetch open until
// released, to exercise out-of-order responses.
type fakeSource struct {
	mu        sync.Mutex
	districts map[string][]models.SelectOption
	subs      map[string][]SubDistrictOption
	block     map[string]chan struct{}
	started   map[string]chan struct{}
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		districts: map[string][]models.SelectOption{},
		subs:      map[string][]SubDistrictOption{},
		block:     map[string]chan struct{}{},
		started:   map[string]chan struct{}{},
	}
}

func (f *fakeSource) Districts(_ context.Context, provinceID string) ([]models.SelectOption, error) {
	f.mu.Lock()
	gate := f.block[provinceID]
	started := f.started[provinceID]
	f.mu.Unlock()
	if started != nil {
		close(started)
	}
	if gate != nil {
		<-gate
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.districts[provinceID], nil
}

func (f *fakeSource) SubDistricts(_ context.Context, districtID string) ([]SubDistrictOption, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.subs[districtID], nil
}

func TestCascadeFlow(t *testing.T) {
	src := newFakeSource()
	src.districts["bkk"] = []models.SelectOption{{Value: "bangrak", Label: "Bang Rak"}}
	src.subs["bangrak"] = []SubDistrictOption{
		{Value: "silom", Label: "Silom", Zipcode: "10500"},
	}

	c := NewCascade(src)
	ctx := context.Background()

	require.NoError(t, c.SelectProvince(ctx, "bkk"))
	state := c.Snapshot()
	assert.Equal(t, "bkk", state.Province)
	require.Len(t, state.Districts, 1)
	assert.Empty(t, state.Zipcode)

	require.NoError(t, c.SelectDistrict(ctx, "bangrak"))
	require.NoError(t, c.SelectSubDistrict("silom"))

	state = c.Snapshot()
	assert.Equal(t, "silom", state.SubDistrict)
	assert.Equal(t, "10500", state.Zipcode)
}

func TestCascadeSelectionClearsDependents(t *testing.T) {
	src := newFakeSource()
	src.districts["bkk"] = []models.SelectOption{{Value: "bangrak", Label: "Bang Rak"}}
	src.districts["cnx"] = []models.SelectOption{{Value: "muang", Label: "Mueang"}}
	src.subs["bangrak"] = []SubDistrictOption{{Value: "silom", Label: "Silom", Zipcode: "10500"}}

	c := NewCascade(src)
	ctx := context.Background()

	require.NoError(t, c.SelectProvince(ctx, "bkk"))
	require.NoError(t, c.SelectDistrict(ctx, "bangrak"))
	require.NoError(t, c.SelectSubDistrict("silom"))

	// A new province wipes district, sub-district and zipcode together.
	require.NoError(t, c.SelectProvince(ctx, "cnx"))
	state := c.Snapshot()
	assert.Equal(t, "cnx", state.Province)
	assert.Empty(t, state.District)
	assert.Empty(t, state.SubDistrict)
	assert.Empty(t, state.Zipcode)
	assert.Empty(t, state.SubDistricts)
	require.Len(t, state.Districts, 1)
	assert.Equal(t, "muang", state.Districts[0].Value)
}

func TestCascadeDiscardsStaleFetch(t *testing.T) {
	src := newFakeSource()
	src.districts["slow"] = []models.SelectOption{{Value: "stale", Label: "Stale"}}
	src.districts["fast"] = []models.SelectOption{{Value: "fresh", Label: "Fresh"}}
	gate := make(chan struct{})
	started := make(chan struct{})
	src.block["slow"] = gate
	src.started["slow"] = started

	c := NewCascade(src)
	ctx := context.Background()

	done := make(chan error, 1)
	go func() { done <- c.SelectProvince(ctx, "slow") }()
	<-started

	// The second selection lands while the first fetch is still in flight.
	require.NoError(t, c.SelectProvince(ctx, "fast"))

	close(gate)
	require.NoError(t, <-done)

	state := c.Snapshot()
	assert.Equal(t, "fast", state.Province)
	require.Len(t, state.Districts, 1)
	assert.Equal(t, "fresh", state.Districts[0].Value, "stale response must not overwrite the later selection")
}

func TestCascadeRejectsUnknownSubDistrict(t *testing.T) {
	src := newFakeSource()
	src.districts["bkk"] = []models.SelectOption{{Value: "bangrak", Label: "Bang Rak"}}
	src.subs["bangrak"] = []SubDistrictOption{{Value: "silom", Label: "Silom", Zipcode: "10500"}}

	c := NewCascade(src)
	ctx := context.Background()

	require.NoError(t, c.SelectProvince(ctx, "bkk"))
	require.NoError(t, c.SelectDistrict(ctx, "bangrak"))

	err := c.SelectSubDistrict("sathon")
	var vErr *apperror.ValidationError
	require.ErrorAs(t, err, &vErr)

	state := c.Snapshot()
	assert.Empty(t, state.SubDistrict)
	assert.Empty(t, state.Zipcode)
}
