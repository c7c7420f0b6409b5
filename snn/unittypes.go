// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

import "github.com/goki/ki/kit"

// UnitTypes enumerates the different types of units.  Detectors and other
// external observers key off of these types to decide what state a unit
// exposes (e.g., only LIF units have a membrane potential to record).
type UnitTypes int

//go:generate stringer -type=UnitTypes

var KiT_UnitTypes = kit.Enums.AddEnum(UnitTypesN, kit.NotBitFlag, nil)

func (ev UnitTypes) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *UnitTypes) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The unit types
const (
	// LIFUnit is the leaky integrate-and-fire neuron.
	LIFUnit UnitTypes = iota

	// SpikeTrainUnit is the prerecorded cyclic spike-train generator.
	SpikeTrainUnit

	// PoissonGenUnit is the Poisson-process spike generator.
	PoissonGenUnit

	UnitTypesN
)
