// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package detect

import (
	"fmt"

	"github.com/emer/etable/v2/etable"
	"github.com/emer/etable/v2/etensor"
	"github.com/emer/snn/snn"
)

// Raster records spike occurrence per unit per step into an etable.Table:
// one row per recorded step, with a Step column plus a 0 / 1 column for each
// attached unit (1 when the unit's output that step was nonzero).
type Raster struct {

	// recorded spikes, one row per step -- valid after Config.
	Table *etable.Table `desc:"recorded spike raster, one row per step"`

	// units being recorded, in attachment order.
	Units []snn.Unit `desc:"target units being recorded"`

	// name of each unit, used as the column name.
	Names []string `desc:"name of each target unit"`
}

// NewRaster returns a new, empty Raster.  Attach units with AddUnit, then
// call Config before the first Record.
func NewRaster() *Raster {
	return &Raster{}
}

// AddUnit attaches a unit under the given name.  Names must be non-empty and
// unique per detector; violations fail with ErrInvalidParameter.
// Call before Config.
func (rs *Raster) AddUnit(name string, un snn.Unit) error {
	if name == "" {
		return fmt.Errorf("%w: raster unit name must be non-empty", snn.ErrInvalidParameter)
	}
	for _, nm := range rs.Names {
		if nm == name {
			return fmt.Errorf("%w: raster unit name %q already in use", snn.ErrInvalidParameter, name)
		}
	}
	rs.Units = append(rs.Units, un)
	rs.Names = append(rs.Names, name)
	return nil
}

// Config builds the recording table from the currently attached units.
// Any previously recorded data is dropped.
func (rs *Raster) Config() {
	sch := etable.Schema{
		{"Step", etensor.INT64, nil, nil},
	}
	for _, nm := range rs.Names {
		sch = append(sch, etable.Column{nm, etensor.FLOAT32, nil, nil})
	}
	rs.Table = &etable.Table{}
	rs.Table.SetFromSchema(sch, 0)
}

// Record appends one row marking which attached units spiked (nonzero Out)
// at the given step number.
func (rs *Raster) Record(step int) {
	dt := rs.Table
	row := dt.Rows
	dt.SetNumRows(row + 1)
	dt.SetCellFloat("Step", row, float64(step))
	for i, un := range rs.Units {
		spk := float64(0)
		if un.AsNeuron().Out != 0 {
			spk = 1
		}
		dt.SetCellFloat(rs.Names[i], row, spk)
	}
}

// Reset drops all recorded rows, keeping the attached units.
func (rs *Raster) Reset() {
	rs.Config()
}

// NSpikes returns the number of recorded steps in which the named unit
// spiked, or 0 for unknown names.
func (rs *Raster) NSpikes(name string) int {
	return len(rs.SpikeSteps(name))
}

// SpikeSteps returns the recorded Step numbers at which the named unit
// spiked, in recording order, or nil for unknown names.
func (rs *Raster) SpikeSteps(name string) []int {
	if rs.Table == nil || rs.Table.ColIdx(name) < 0 {
		return nil
	}
	var steps []int
	for row := 0; row < rs.Table.Rows; row++ {
		if rs.Table.CellFloat(name, row) != 0 {
			steps = append(steps, int(rs.Table.CellFloat("Step", row)))
		}
	}
	return steps
}
