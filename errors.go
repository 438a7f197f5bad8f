package dendrogram

import "errors"

var (
	// ErrEmptyShape indicates a grid shape with no axes.
	ErrEmptyShape = errors.New("dendrogram: shape must have at least one axis")
	// ErrZeroDimension indicates a shape with an axis of length < 1.
	ErrZeroDimension = errors.New("dendrogram: every axis must have positive length")
	// ErrShapeMismatch indicates data whose length is not the product of the shape.
	ErrShapeMismatch = errors.New("dendrogram: data length does not match shape")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("dendrogram: all rows must have the same length")
	// ErrNoFiniteValues indicates a grid without any finite value, so the
	// top of the level schedule is undefined.
	ErrNoFiniteValues = errors.New("dendrogram: grid has no finite values")
	// ErrInvalidLevels indicates a level count below 1 or a NaN bound.
	ErrInvalidLevels = errors.New("dendrogram: invalid level schedule")
	// ErrLabelCapacity indicates the labeler ran out of provisional labels.
	ErrLabelCapacity = errors.New("dendrogram: provisional label capacity exceeded")
	// ErrUnknownLabel indicates a label that names no node of the tree.
	ErrUnknownLabel = errors.New("dendrogram: unknown node label")
)
