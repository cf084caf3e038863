// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package minipaint

import "image/draw"

// Renderer is the interface for rendering paths into an image.
// Implementations only ever add ink with source-over blending.
type Renderer interface {
	// Stroke outlines a path with the given paint.
	// Returns an error if the rendering operation fails.
	Stroke(dst draw.Image, path *Path, paint Paint) error

	// Fill fills a path with the given paint.
	// Returns an error if the rendering operation fails.
	Fill(dst draw.Image, path *Path, paint Paint) error
}

// Draw renders the path with the renderer according to paint.Style.
func Draw(r Renderer, dst draw.Image, path *Path, paint Paint) error {
	if paint.Style == StyleFill {
		return r.Fill(dst, path, paint)
	}
	return r.Stroke(dst, path, paint)
}
