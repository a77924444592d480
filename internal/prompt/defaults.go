// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package prompt

import _ "embed"

// defaultDefinitions is the prompts document written out by
// 'buildpost config init' and used until the user customizes it.
//
//go:embed templates/prompts.yaml
var defaultDefinitions []byte

// DefaultDefinitions returns the built-in prompts document.
func DefaultDefinitions() []byte {
	out := make([]byte, len(defaultDefinitions))
	copy(out, defaultDefinitions)
	return out
}
