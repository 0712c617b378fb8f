// SPDX-License-Identifier: MIT

package eigen

import "errors"

// ErrAsymmetry signals that the input differs from its transpose by more than
// the configured relative symmetry tolerance.
var ErrAsymmetry = errors.New("eigen: matrix is not symmetric within tolerance")

const opDecompose = "Decompose"
