// SPDX-License-Identifier: EPL-2.0

package synth

import "errors"

var (
	// ErrInvalidParameter is returned when a numeric parameter is out of its
	// domain (non-positive frequency or duration, negative fade, bad duty cycle).
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidPreset is returned when a preset name is not in the table.
	ErrInvalidPreset = errors.New("unknown preset")

	// ErrInvalidInput is returned for structurally invalid input, such as an
	// empty layer list.
	ErrInvalidInput = errors.New("invalid input")
)
