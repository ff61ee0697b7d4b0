package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"jarin-io/api/pkg/models"
)

// fakeEnsurer hands out deterministic ids per (type, name) and counts calls.
type fakeEnsurer struct {
	mu    sync.Mutex
	calls map[string]int
	ids   map[string]primitive.ObjectID
	fail  map[string]error
}

func newFakeEnsurer() *fakeEnsurer {
	return &fakeEnsurer{
		calls: map[string]int{},
		ids:   map[string]primitive.ObjectID{},
		fail:  map[string]error{},
	}
}

func (f *fakeEnsurer) EnsureMaster(_ context.Context, t models.MasterType, name string) (primitive.ObjectID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := string(t) + ":" + name
	f.calls[key]++
	if err, ok := f.fail[key]; ok {
		return primitive.NilObjectID, err
	}
	if _, ok := f.ids[key]; !ok {
		f.ids[key] = primitive.NewObjectID()
	}
	return f.ids[key], nil
}

func (f *fakeEnsurer) callCount(t models.MasterType, name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[string(t)+":"+name]
}

func TestResolveFormPromotesFreeText(t *testing.T) {
	ensurer := newFakeEnsurer()
	resolver := NewReferenceResolver(ensurer)

	form := models.StoneDiamondForm{
		ProductName: "Oval Ruby",
		StoneName:   "Ruby",
		Shape:       "507f1f77bcf86cd799439012",
		Weight:      "2.05",
	}

	resolved, err := resolver.ResolveForm(context.Background(), form)
	require.NoError(t, err)

	stoneForm, ok := resolved.(models.StoneDiamondForm)
	require.True(t, ok)
	assert.True(t, models.IsObjectID(stoneForm.StoneName), "free text promoted to a master id")
	// An already-valid id passes through untouched.
	assert.Equal(t, "507f1f77bcf86cd799439012", stoneForm.Shape)
	// Empty fields stay empty and trigger no creation.
	assert.Equal(t, "", stoneForm.Cutting)
	assert.Equal(t, 1, ensurer.callCount(models.MasterStoneName, "Ruby"))

	// The original form is not mutated.
	assert.Equal(t, "Ruby", form.StoneName)
}

func TestResolveFormIsIdempotent(t *testing.T) {
	ensurer := newFakeEnsurer()
	resolver := NewReferenceResolver(ensurer)

	form := models.AccessoriesForm{ProductName: "Box chain", Metal: "White Gold"}

	first, err := resolver.ResolveForm(context.Background(), form)
	require.NoError(t, err)

	// Resolving the already-resolved copy touches nothing.
	second, err := resolver.ResolveForm(context.Background(), first)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, ensurer.callCount(models.MasterMetal, "White Gold"))
}

func TestResolveFormSharedTermResolvesOnce(t *testing.T) {
	ensurer := newFakeEnsurer()
	resolver := NewReferenceResolver(ensurer)

	form := models.BaseProductForm{
		ProductCategory: models.CategoryProductMaster,
		Metal:           "White Gold",
		Accessories:     models.AccessoriesForm{Metal: "White Gold"},
	}

	resolved, err := resolver.ResolveForm(context.Background(), form)
	require.NoError(t, err)

	baseForm := resolved.(models.BaseProductForm)
	assert.True(t, models.IsObjectID(baseForm.Metal))
	// Both fields share one creation and therefore one id.
	assert.Equal(t, baseForm.Metal, baseForm.Accessories.Metal)
	assert.Equal(t, 1, ensurer.callCount(models.MasterMetal, "White Gold"))
}

func TestResolveFormAllOrNothing(t *testing.T) {
	ensurer := newFakeEnsurer()
	boom := errors.New("master data unavailable")
	ensurer.fail["shape:Pear"] = boom
	resolver := NewReferenceResolver(ensurer)

	form := models.StoneDiamondForm{StoneName: "Ruby", Shape: "Pear"}

	_, err := resolver.ResolveForm(context.Background(), form)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestResolveFormNoPendingReferences(t *testing.T) {
	ensurer := newFakeEnsurer()
	resolver := NewReferenceResolver(ensurer)

	form := models.OthersForm{ProductName: "Gift box"}
	resolved, err := resolver.ResolveForm(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, models.ProductForm(form), resolved)
	assert.Empty(t, ensurer.calls)
}
