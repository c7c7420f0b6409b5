// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package detect provides passive recording detectors for snn units: the
Multimeter samples continuous unit state (output, and membrane potential
for LIF units) into an etable row per step, and the Raster records the
binary spike occurrence per unit per step.

Detectors never mutate unit state: the driver steps its units first, then
calls Record on each detector with the current step number.  Recording is
in-memory only -- plotting and persistence are the caller's business.
*/
package detect

import (
	"fmt"

	"github.com/emer/etable/v2/agg"
	"github.com/emer/etable/v2/etable"
	"github.com/emer/etable/v2/etensor"
	"github.com/emer/etable/v2/minmax"
	"github.com/emer/snn/snn"
	"github.com/goki/mat32"
)

// Multimeter records per-step unit state into an etable.Table: one row per
// recorded step, with a Step column plus, for every attached unit, an Out
// column and (for LIF units) a Vm membrane potential column.  It also tracks
// the observed min / max of every recorded column.
type Multimeter struct {

	// recorded data, one row per step -- valid after Config.
	Table *etable.Table `desc:"recorded data, one row per step"`

	// units being recorded, in attachment order.
	Units []snn.Unit `desc:"target units being recorded"`

	// name of each unit, used as the column name prefix.
	Names []string `desc:"name of each target unit"`

	// observed value range per data column, keyed by column name.
	Ranges map[string]*minmax.F32 `desc:"observed value range per data column"`
}

// NewMultimeter returns a new, empty Multimeter.  Attach units with AddUnit,
// then call Config before the first Record.
func NewMultimeter() *Multimeter {
	return &Multimeter{}
}

// AddUnit attaches a unit under the given name.  Names must be non-empty and
// unique per detector; violations fail with ErrInvalidParameter.
// Call before Config.
func (mm *Multimeter) AddUnit(name string, un snn.Unit) error {
	if name == "" {
		return fmt.Errorf("%w: multimeter unit name must be non-empty", snn.ErrInvalidParameter)
	}
	for _, nm := range mm.Names {
		if nm == name {
			return fmt.Errorf("%w: multimeter unit name %q already in use", snn.ErrInvalidParameter, name)
		}
	}
	mm.Units = append(mm.Units, un)
	mm.Names = append(mm.Names, name)
	return nil
}

// Config builds the recording table from the currently attached units.
// Any previously recorded data is dropped.
func (mm *Multimeter) Config() {
	sch := etable.Schema{
		{"Step", etensor.INT64, nil, nil},
	}
	mm.Ranges = make(map[string]*minmax.F32)
	for i, un := range mm.Units {
		cnm := mm.Names[i] + "_Out"
		sch = append(sch, etable.Column{cnm, etensor.FLOAT32, nil, nil})
		mm.Ranges[cnm] = &minmax.F32{}
		if un.UnitType() == snn.LIFUnit {
			cnm = mm.Names[i] + "_Vm"
			sch = append(sch, etable.Column{cnm, etensor.FLOAT32, nil, nil})
			mm.Ranges[cnm] = &minmax.F32{}
		}
	}
	mm.Table = &etable.Table{}
	mm.Table.SetFromSchema(sch, 0)
}

// Record appends one row with the current state of all attached units,
// labeled with the given step number.
func (mm *Multimeter) Record(step int) {
	dt := mm.Table
	row := dt.Rows
	dt.SetNumRows(row + 1)
	dt.SetCellFloat("Step", row, float64(step))
	for i, un := range mm.Units {
		nrn := un.AsNeuron()
		mm.record(mm.Names[i]+"_Out", row, nrn.Out)
		if lf, ok := un.(*snn.LIF); ok {
			mm.record(mm.Names[i]+"_Vm", row, lf.V)
		}
	}
}

func (mm *Multimeter) record(cnm string, row int, val float32) {
	mm.Table.SetCellFloat(cnm, row, float64(val))
	rng := mm.Ranges[cnm]
	if row == 0 {
		rng.Set(val, val)
		return
	}
	rng.Min = mat32.Min(rng.Min, val)
	rng.Max = mat32.Max(rng.Max, val)
}

// Reset drops all recorded rows and range stats, keeping the attached units.
func (mm *Multimeter) Reset() {
	mm.Config()
}

// MeanOut returns the mean recorded output of the named unit over all
// recorded steps.  Unknown names or an empty record fail with
// ErrInvalidParameter.
func (mm *Multimeter) MeanOut(name string) (float64, error) {
	cnm := name + "_Out"
	if mm.Table == nil || mm.Table.ColIdx(cnm) < 0 {
		return 0, fmt.Errorf("%w: multimeter has no unit named %q", snn.ErrInvalidParameter, name)
	}
	if mm.Table.Rows == 0 {
		return 0, fmt.Errorf("%w: multimeter has no recorded steps", snn.ErrInvalidParameter)
	}
	ix := etable.NewIdxView(mm.Table)
	return agg.Mean(ix, cnm)[0], nil
}

// Range returns the observed value range of the given column
// (e.g., "unit_Out" or "unit_Vm"), and whether that column exists.
func (mm *Multimeter) Range(cnm string) (minmax.F32, bool) {
	rng, ok := mm.Ranges[cnm]
	if !ok {
		return minmax.F32{}, false
	}
	return *rng, true
}
