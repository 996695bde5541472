package pagebt

import "github.com/pkg/errors"

// TypedTree stores values of T through a fixed-size codec.
type TypedTree[T any] struct {
	tree  *Tree
	codec Codec[T]
}

func NewTypedTree[T any](tree *Tree, codec Codec[T]) (*TypedTree[T], error) {
	if err := checkCodecSize(codec.Size()); err != nil {
		return nil, err
	}
	if tree.IsOpen() && tree.RecordSize() != codec.Size() {
		return nil, errors.Wrapf(ErrInvalidArgument, "codec size(%d) != recSize(%d)", codec.Size(), tree.RecordSize())
	}
	return &TypedTree[T]{tree: tree, codec: codec}, nil
}

func (tt *TypedTree[T]) Tree() *Tree {
	return tt.tree
}

func (tt *TypedTree[T]) Insert(v T) error {
	rec, err := tt.codec.Marshal(&v)
	if err != nil {
		return errors.WithMessage(err, "marshal value")
	}
	return tt.tree.Insert(rec)
}

func (tt *TypedTree[T]) Search(v T) (res T, found bool, err error) {
	var rec []byte
	rec, err = tt.codec.Marshal(&v)
	if err != nil {
		err = errors.WithMessage(err, "marshal value")
		return
	}
	rec, found, err = tt.tree.Search(rec)
	if err != nil || !found {
		return
	}
	err = tt.codec.Unmarshal(rec, &res)
	return
}

func (tt *TypedTree[T]) SearchAll(v T) ([]T, error) {
	rec, err := tt.codec.Marshal(&v)
	if err != nil {
		return nil, errors.WithMessage(err, "marshal value")
	}
	recs, err := tt.tree.SearchAll(rec, nil)
	if err != nil {
		return nil, err
	}
	res := make([]T, len(recs))
	for i, r := range recs {
		if err = tt.codec.Unmarshal(r, &res[i]); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Walk calls fn with every value in ascending order.
func (tt *TypedTree[T]) Walk(fn func(v T) bool) error {
	var uerr error
	err := tt.tree.Walk(func(rec []byte) bool {
		var v T
		if uerr = tt.codec.Unmarshal(rec, &v); uerr != nil {
			return false
		}
		return fn(v)
	})
	if err != nil {
		return err
	}
	return uerr
}
