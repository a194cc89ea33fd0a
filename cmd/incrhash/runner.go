package main

import (
	"context"
	"github.com/pkg/errors"
	"github.com/takakv/incrhash/digest"
	"github.com/takakv/incrhash/incrhash"
	"github.com/takakv/incrhash/store"
)

// runner runs commands for one digest algorithm. The algorithm is picked at
// runtime from the config, while the accumulators need it as a type.
type runner interface {
	hash(ctx context.Context, elements [][]byte, workers int) (string, error)
	apply(backend store.Backend, set string, inserted, removed [][]byte) (string, error)
	show(backend store.Backend, set string) (string, error)
}

type algorithmRunner[D digest.Tag] struct{}

func runnerFor(name string) (runner, error) {
	switch name {
	case digest.SHA512{}.Name():
		return algorithmRunner[digest.SHA512]{}, nil
	case digest.Blake2b512{}.Name():
		return algorithmRunner[digest.Blake2b512]{}, nil
	case digest.SHA3{}.Name():
		return algorithmRunner[digest.SHA3]{}, nil
	case digest.XMDSHA512{}.Name():
		return algorithmRunner[digest.XMDSHA512]{}, nil
	}
	return nil, errors.Wrapf(digest.ErrUnknownAlgorithm, "%q", name)
}

func (algorithmRunner[D]) hash(ctx context.Context, elements [][]byte, workers int) (string, error) {
	h, err := incrhash.SumParallel[D](ctx, elements, workers)
	if err != nil {
		return "", err
	}
	return h.String(), nil
}

func (algorithmRunner[D]) apply(backend store.Backend, set string, inserted, removed [][]byte) (string, error) {
	c, err := store.NewSets[D](backend).Apply(set, inserted, removed)
	if err != nil {
		return "", err
	}
	return c.String(), nil
}

func (algorithmRunner[D]) show(backend store.Backend, set string) (string, error) {
	c, err := store.NewSets[D](backend).Get(set)
	if err != nil {
		return "", err
	}
	return c.String(), nil
}
