package services

import (
	"context"
	"strings"

	slug2 "github.com/gosimple/slug"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"jarin-io/api/pkg/forms"
	"jarin-io/api/pkg/models"
)

// masterEnsurer is the slice of MasterDataService the resolver needs; tests
// substitute a fake.
type masterEnsurer interface {
	EnsureMaster(ctx context.Context, t models.MasterType, name string) (primitive.ObjectID, error)
}

// ReferenceResolver promotes free-text reference values to master-data ids
// before a product save. Independent creations run concurrently and the
// whole group fails together: the product is only mutated after every
// reference resolved, so a partial save cannot happen. Two fields carrying
// the same new term share one creation via singleflight.
type ReferenceResolver struct {
	ensurer masterEnsurer
	group   singleflight.Group
}

func NewReferenceResolver(ensurer masterEnsurer) *ReferenceResolver {
	return &ReferenceResolver{ensurer: ensurer}
}

// ResolveForm resolves every reference field of the form and returns a copy
// with master ids substituted in place of free text. Fields already holding
// a valid id (or empty) pass through untouched: resolving twice creates
// nothing.
func (r *ReferenceResolver) ResolveForm(ctx context.Context, form models.ProductForm) (models.ProductForm, error) {
	fields := forms.ReferenceFields(form)

	pending := make([]forms.RefField, 0, len(fields))
	for _, f := range fields {
		v := strings.TrimSpace(f.Value)
		if v == "" || models.IsObjectID(v) {
			continue
		}
		f.Value = v
		pending = append(pending, f)
	}
	if len(pending) == 0 {
		return form, nil
	}

	resolved := make([]string, len(pending))
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range pending {
		i, f := i, f
		g.Go(func() error {
			key := string(f.Type) + ":" + slug2.Make(strings.ToLower(f.Value))
			id, err, _ := r.group.Do(key, func() (interface{}, error) {
				return r.ensurer.EnsureMaster(gctx, f.Type, f.Value)
			})
			if err != nil {
				return err
			}
			resolved[i] = id.(primitive.ObjectID).Hex()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byPath := make(map[string]string, len(pending))
	for i, f := range pending {
		byPath[f.Path] = resolved[i]
	}

	return forms.ApplyReferences(form, byPath), nil
}
