// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shadergen

import (
	"errors"
	"fmt"

	"github.com/gogpu/naga"
)

// ErrNotWGSL is returned when SPIR-V is requested for a GLSL source.
var ErrNotWGSL = errors.New("shadergen: SPIR-V requires a WGSL source")

// CompileSPIRV compiles a WGSL source to SPIR-V words with naga.
func CompileSPIRV(src Source) ([]uint32, error) {
	if src.Target != TargetWGSL {
		return nil, fmt.Errorf("%w: %s", ErrNotWGSL, src.Label())
	}
	spirvBytes, err := naga.Compile(src.Module())
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", src.Label(), err)
	}

	// SPIR-V is little-endian 32-bit words
	code := make([]uint32, len(spirvBytes)/4)
	for i := range code {
		code[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return code, nil
}
