// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package snn provides point-neuron units for discrete-time spiking-network
simulation: the LIF leaky integrate-and-fire neuron, the SpikeTrain replay
generator, and the PoissonGen stochastic spike generator.

All units share the Unit contract: they hold a scalar input accumulator I
and a scalar output Out, and advance exactly one discrete time step per
Step call.  An external driver, once per tick, adds input onto I, calls
Step on every unit, and reads Out before the next tick.  Calling Step N
times is equivalent to simulating N ticks -- there is no batching or
reordering.

The core is single-threaded and synchronous: Step is a bounded pure
computation with no I/O or blocking.  Units are mutually independent and
can be advanced in any order, as long as each unit's own Step calls remain
strictly ordered and any erand.Rand source shared across units is accessed
under external mutual exclusion (draw interleaving across units sharing
one source is not defined).
*/
package snn

import (
	"errors"

	"github.com/emer/emergent/v2/erand"
)

// ErrInvalidParameter is returned from construction or configuration when a
// structural invariant cannot hold (e.g., empty spike train, negative noise).
// It is never returned mid-simulation.
var ErrInvalidParameter = errors.New("snn: invalid parameter")

// ErrNumericDegeneracy is returned from Step when a stochastic draw or input
// would be numerically undefined (e.g., a uniform draw at exactly 1 feeding a
// logarithm, or a non-finite rate).  A degenerate value is never silently
// emitted as if it were a valid output.
var ErrNumericDegeneracy = errors.New("snn: numeric degeneracy")

// Unit is the contract shared by all unit types.  Drivers interact with a
// unit through its Neuron state (write / add to I, read Out) and by calling
// Step once per discrete tick.
type Unit interface {
	// AsNeuron returns the generic snn.Neuron state for this unit --
	// all fields common to all unit types are there.
	AsNeuron() *Neuron

	// UnitType returns the type of this unit.
	UnitType() UnitTypes

	// Init restores the unit to its initial, post-construction state.
	Init()

	// Validate checks that the unit's current parameters can support
	// stepping, returning a wrapped ErrInvalidParameter if not.
	Validate() error

	// Step consumes the current input accumulator I, updates internal
	// state and Out, and resets I to the unit-specific baseline.
	// It fails only with ErrNumericDegeneracy, and only for units with
	// stochastic state -- under well-formed construction and finite
	// inputs it never fails.
	Step() error
}

// Stochastic is implemented by units that consume a random source (LIF with
// noise enabled, PoissonGen).  Deterministic units (SpikeTrain) do not
// implement it -- drivers that want to reseed a whole model query this
// capability with a type assertion rather than setting fields blindly.
type Stochastic interface {
	// SetRandSource replaces the unit's random source.  Sources may be
	// shared across units for joint seeding, but concurrent draws from a
	// shared source must be serialized by the caller.
	SetRandSource(rnd erand.Rand)
}

var (
	_ Unit = (*LIF)(nil)
	_ Unit = (*SpikeTrain)(nil)
	_ Unit = (*PoissonGen)(nil)

	_ Stochastic = (*LIF)(nil)
	_ Stochastic = (*PoissonGen)(nil)
)
