// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

// snn.Neuron holds the scalar state common to all unit types.  Each unit
// embeds a Neuron by value, so every instance owns independent I / Out / Amp
// storage.  I accumulates only the input received since the last Step was
// consumed, and Out is redefined by every Step -- no unit depends on Out
// values older than the previous step.
type Neuron struct {

	// input accumulated for the current step -- the driver (or upstream
	// units' previous outputs) adds onto this before each Step, and Step
	// resets it to the unit-specific baseline.
	I float32 `desc:"input accumulated for the current step"`

	// output produced by the most recent Step -- 0 when no event occurred.
	Out float32 `desc:"output produced by the most recent step"`

	// scale factor applied to a spike event.
	Amp float32 `def:"1" desc:"amplitude: scale factor applied to a spike event"`
}

// AsNeuron returns the generic neuron state -- implements the Unit accessor.
func (nr *Neuron) AsNeuron() *Neuron { return nr }

// AddInput adds the given current onto the input accumulator for the next
// step.  Equivalent to nr.I += in; provided for driver convenience.
func (nr *Neuron) AddInput(in float32) { nr.I += in }

// InitNeuron resets the shared scalar state to its construction defaults.
func (nr *Neuron) InitNeuron() {
	nr.I = 0
	nr.Out = 0
}
