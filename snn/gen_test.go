// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

import (
	"errors"
	"testing"

	"github.com/emer/emergent/v2/erand"
	"github.com/goki/mat32"
)

func TestSpikeTrainReplay(t *testing.T) {
	st, err := NewSpikeTrain([]float32{0, 1, 0, 2})
	if err != nil {
		t.Fatalf("construction err: %v\n", err)
	}
	corout := []float32{0, 1, 0, 2, 0, 1, 0, 2}
	for i := range corout {
		st.I = float32(i) * 3 // input must be ignored
		if err := st.Step(); err != nil {
			t.Fatalf("step %v err: %v\n", i, err)
		}
		if st.Out != corout[i] {
			t.Errorf("out err: idx: %v, out: %v, corout: %v\n", i, st.Out, corout[i])
		}
	}
	if st.Index != 0 {
		t.Errorf("index: %v, expected wrap to 0 after full cycles\n", st.Index)
	}
}

func TestSpikeTrainAmplitude(t *testing.T) {
	st, _ := NewSpikeTrain([]float32{1, 2})
	st.Amp = 0.5
	corout := []float32{0.5, 1}
	for i := range corout {
		st.Step()
		if st.Out != corout[i] {
			t.Errorf("out err: idx: %v, out: %v, corout: %v\n", i, st.Out, corout[i])
		}
	}
}

func TestSpikeTrainEmpty(t *testing.T) {
	st, err := NewSpikeTrain(nil)
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("construction err: %v, expected ErrInvalidParameter\n", err)
	}
	if st != nil {
		t.Errorf("expected nil unit from failed construction\n")
	}
}

func TestSpikeTrainCopied(t *testing.T) {
	train := []float32{1, 2}
	st, _ := NewSpikeTrain(train)
	train[0] = 99 // caller mutation must not alter playback
	st.Step()
	if st.Out != 1 {
		t.Errorf("out: %v, expected 1 from copied train\n", st.Out)
	}
}

func TestPoissonZeroRate(t *testing.T) {
	pg := NewPoissonGen(0)
	pg.SetRandSource(erand.NewSysRand(5))
	for i := 0; i < 100; i++ {
		if err := pg.Step(); err != nil {
			t.Fatalf("step %v err: %v\n", i, err)
		}
		if pg.Out != 0 {
			t.Errorf("step %v: out: %v, expected 0 at zero rate\n", i, pg.Out)
		}
	}
	pg.I = -3 // negative rate likewise produces nothing
	pg.Step()
	if pg.Out != 0 {
		t.Errorf("out: %v, expected 0 at negative rate\n", pg.Out)
	}
}

func TestPoissonMeanRate(t *testing.T) {
	rate := float32(5)
	pg := NewPoissonGen(rate)
	pg.SetRandSource(erand.NewSysRand(1))
	pg.I = rate // bias only takes effect from the first reset on
	nsteps := 100000
	sum := float64(0)
	for i := 0; i < nsteps; i++ {
		if err := pg.Step(); err != nil {
			t.Fatalf("step %v err: %v\n", i, err)
		}
		sum += float64(pg.Out)
	}
	mean := sum / float64(nsteps)
	if mean < 4.9 || mean > 5.1 { // fixed seed: 2% tolerance is ample
		t.Errorf("mean out: %v, expected rate %v within 2%%\n", mean, rate)
	}
}

func TestPoissonNonFiniteRate(t *testing.T) {
	pg := NewPoissonGen(0)
	pg.I = mat32.NaN()
	if err := pg.Step(); !errors.Is(err, ErrNumericDegeneracy) {
		t.Errorf("step err: %v, expected ErrNumericDegeneracy for NaN rate\n", err)
	}
	if pg.Out != 0 {
		t.Errorf("out: %v, expected 0 after degenerate step\n", pg.Out)
	}
	pg.I = mat32.Inf(1)
	if err := pg.Step(); !errors.Is(err, ErrNumericDegeneracy) {
		t.Errorf("step err: %v, expected ErrNumericDegeneracy for +Inf rate\n", err)
	}
}

func TestPoissonRunawayRate(t *testing.T) {
	pg := NewPoissonGen(0)
	pg.SetRandSource(erand.NewSysRand(2))
	pg.I = 1e12 // expected count far beyond MaxSpikesPerStep
	if err := pg.Step(); !errors.Is(err, ErrNumericDegeneracy) {
		t.Errorf("step err: %v, expected ErrNumericDegeneracy at runaway rate\n", err)
	}
}

// seqRand replays a fixed sequence of uniform draws, for exercising the
// degenerate-draw recovery path.  It satisfies erand.Rand through the
// embedded source, shadowing only Float64.
type seqRand struct {
	*erand.SysRand
	vals []float64
	idx  int
}

func (sr *seqRand) Float64(thr int) float64 {
	v := sr.vals[sr.idx%len(sr.vals)]
	sr.idx++
	return v
}

func TestPoissonDegenerateDraw(t *testing.T) {
	// 1 - 1e-9 is not representable in float32: it rounds to exactly 1,
	// which would make -ln(1-u) infinite.  One resample must recover.
	bad := 1 - 1e-9
	pg := NewPoissonGen(0)
	pg.SetRandSource(&seqRand{SysRand: erand.NewSysRand(0), vals: []float64{bad, 0.5}})
	pg.I = 1
	if err := pg.Step(); err != nil {
		t.Fatalf("step err: %v, expected recovery via single resample\n", err)
	}
	if pg.Out != 1 { // -ln(0.5) = 0.693 < 1, then 1.386 >= 1
		t.Errorf("out: %v, expected 1 event from resampled draws\n", pg.Out)
	}

	// two degenerate draws in a row must fail loudly, not emit NaN
	pg.SetRandSource(&seqRand{SysRand: erand.NewSysRand(0), vals: []float64{bad}})
	pg.I = 1
	if err := pg.Step(); !errors.Is(err, ErrNumericDegeneracy) {
		t.Errorf("step err: %v, expected ErrNumericDegeneracy from repeated degenerate draw\n", err)
	}
	if pg.Out != 0 {
		t.Errorf("out: %v, expected 0 after degenerate step\n", pg.Out)
	}
}

func TestPoissonReproducible(t *testing.T) {
	mk := func() *PoissonGen {
		pg := NewPoissonGen(3)
		pg.SetRandSource(erand.NewSysRand(7))
		pg.I = 3
		return pg
	}
	a, b := mk(), mk()
	for i := 0; i < 1000; i++ {
		a.Step()
		b.Step()
		if a.Out != b.Out {
			t.Fatalf("step %v: diverged: out %v vs %v\n", i, a.Out, b.Out)
		}
	}
}

func TestStochasticCapability(t *testing.T) {
	st, _ := NewSpikeTrain([]float32{1})
	units := []Unit{NewLIF(0.9), st, NewPoissonGen(1)}
	cor := []bool{true, false, true}
	for i, un := range units {
		_, ok := un.(Stochastic)
		if ok != cor[i] {
			t.Errorf("%v: Stochastic capability: %v, expected %v\n", un.UnitType(), ok, cor[i])
		}
	}
}
