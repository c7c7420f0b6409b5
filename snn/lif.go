// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

import (
	"fmt"
	"time"

	"github.com/emer/emergent/v2/erand"
	"github.com/goki/mat32"
)

// snn.LIF is a leaky integrate-and-fire neuron based on the Sandia model.
// Each Step the membrane potential V decays by leak factor M, integrates
// the accumulated input I, optionally receives additive gaussian noise,
// is floored at VRest, and spikes (Out = Amp, V = VReset) when V exceeds
// Thr.  The input accumulator is reinstated to the constant bias Ie after
// every step, so drivers only add transient currents on top.
type LIF struct {
	Neuron

	// leak factor applied to V each step (V decays toward 0 scaled by M).
	// Typically 0 < M < 1 -- values outside that range are accepted and
	// simply alter the dynamics, they are not an error.
	M float32 `desc:"leak factor applied to membrane potential each step"`

	// current membrane potential, updated by every Step.
	V float32 `desc:"current membrane potential"`

	// initial membrane potential, restored by Init.
	VInit float32 `desc:"initial membrane potential"`

	// membrane potential immediately after a spike.
	VReset float32 `desc:"reset potential after a spike"`

	// floor on the membrane potential, applied before the spike test so
	// noise can never push V below rest.  a spike step ends at VReset
	// instead, so V >= VRest only holds between spikes when VReset < VRest.
	VRest float32 `desc:"resting potential: floor on membrane potential"`

	// spiking threshold: a spike is emitted when V > Thr.
	Thr float32 `def:"1" desc:"spiking threshold"`

	// constant bias current reinstated into I after every step.
	Ie float32 `desc:"constant bias input current"`

	// standard deviation of gaussian noise added to V each step.
	// 0 disables noise.  Set via SetNoise, which validates the value.
	Noise float32 `desc:"standard deviation of additive membrane noise (0 = off)"`

	// random source for the noise -- owned (auto-seeded from the clock at
	// construction) unless replaced via SetRandSource.  May be shared with
	// other units for joint seeding.
	Rnd erand.Rand `view:"-" desc:"random source for membrane noise"`
}

// NewLIF returns a new LIF neuron with the given leak factor and all other
// parameters at their defaults (see Defaults).  The noise source is owned
// and seeded from the system clock until replaced via SetRandSource.
func NewLIF(m float32) *LIF {
	lf := &LIF{}
	lf.Defaults()
	lf.M = m
	return lf
}

// Defaults sets default parameter values and installs an owned, clock-seeded
// random source.  V is initialized to VInit.
func (lf *LIF) Defaults() {
	lf.Amp = 1
	lf.Thr = 1
	lf.VInit = 0
	lf.VReset = 0
	lf.VRest = 0
	lf.Ie = 0
	lf.Noise = 0
	lf.Rnd = erand.NewSysRand(time.Now().UnixNano())
	lf.Init()
}

// UnitType returns LIFUnit.
func (lf *LIF) UnitType() UnitTypes { return LIFUnit }

// Init restores membrane potential to VInit and clears I and Out.
// Parameters and the random source are untouched.
func (lf *LIF) Init() {
	lf.InitNeuron()
	lf.V = lf.VInit
}

// SetNoise sets the standard deviation of the additive membrane noise.
// Negative or non-finite values fail with ErrInvalidParameter.
func (lf *LIF) SetNoise(sigma float32) error {
	if sigma < 0 || mat32.IsNaN(sigma) || mat32.IsInf(sigma, 0) {
		return fmt.Errorf("%w: LIF noise sigma must be finite and >= 0, got %v", ErrInvalidParameter, sigma)
	}
	lf.Noise = sigma
	return nil
}

// SetRandSource replaces the noise random source -- implements Stochastic.
func (lf *LIF) SetRandSource(rnd erand.Rand) {
	lf.Rnd = rnd
}

// Validate checks the parameter state -- see SetNoise.
func (lf *LIF) Validate() error {
	if lf.Noise < 0 || mat32.IsNaN(lf.Noise) || mat32.IsInf(lf.Noise, 0) {
		return fmt.Errorf("%w: LIF noise sigma must be finite and >= 0, got %v", ErrInvalidParameter, lf.Noise)
	}
	if lf.Noise > 0 && lf.Rnd == nil {
		return fmt.Errorf("%w: LIF noise enabled with nil random source", ErrInvalidParameter)
	}
	return nil
}

// Step advances the neuron one tick:
// V integrates leak and input, noise is added if enabled, V is floored at
// VRest, I is reset to Ie, and the spike test resets V to VReset and emits
// Out = Amp when V > Thr (else Out = 0).  Never fails.
func (lf *LIF) Step() error {
	lf.V = lf.V*lf.M + lf.I
	if lf.Noise > 0 {
		lf.V += lf.Noise * float32(lf.Rnd.NormFloat64(-1))
	}
	lf.V = mat32.Max(lf.VRest, lf.V)
	lf.I = lf.Ie
	if lf.V > lf.Thr {
		lf.V = lf.VReset
		lf.Out = lf.Amp
	} else {
		lf.Out = 0
	}
	return nil
}
