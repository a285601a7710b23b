// SPDX-License-Identifier: MIT
// Package propagate: sentinel errors. Errors from package sparse are wrapped
// unchanged and still match their sparse sentinels via errors.Is.

package propagate

import "errors"

// ErrNoConvergence is returned, together with the last iterate, when the
// residual is still above the tolerance after MaxIterations steps.
var ErrNoConvergence = errors.New("propagate: no convergence within max iterations")
