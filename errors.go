package sparse3d

import "errors"

// Sentinel errors for sparse3d operations.
var (
	// ErrInvalidShape indicates one of nx, ny, nz was not > 0.
	ErrInvalidShape = errors.New("sparse3d: shape must be positive in every axis")

	// ErrInvalidBlockSize indicates a block edge length was not > 1.
	ErrInvalidBlockSize = errors.New("sparse3d: block size must be greater than 1")
)
