// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package minipaint

import "errors"

var (
	// ErrInvalidDimensions is returned when a resize asks for a negative
	// width or height.
	ErrInvalidDimensions = errors.New("minipaint: invalid dimensions")

	// ErrBufferTooLarge is returned when a raster buffer of the requested
	// size cannot be allocated. The surface keeps its previous buffer.
	ErrBufferTooLarge = errors.New("minipaint: raster buffer too large")
)
