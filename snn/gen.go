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

//////////////////////////////////////////////////////////////////////////////////////
//  SpikeTrain

// snn.SpikeTrain is a generator that replays a fixed train of output
// intensities cyclically: each Step emits Train[Index] * Amp and advances
// Index by one, wrapping at the end of the train.  Input I is accepted but
// ignored, kept only for contract uniformity with the other units.
type SpikeTrain struct {
	Neuron

	// the fixed output train, copied at construction -- never empty.
	Train []float32 `desc:"fixed output train replayed cyclically"`

	// current position in the train, 0 <= Index < len(Train),
	// advancing by exactly 1 mod len(Train) every step.
	Index int `desc:"current cyclic position in the train"`
}

// NewSpikeTrain returns a new SpikeTrain replaying the given train, which is
// copied so later mutation by the caller cannot alter the playback.  An empty
// train fails with ErrInvalidParameter.
func NewSpikeTrain(train []float32) (*SpikeTrain, error) {
	if len(train) == 0 {
		return nil, fmt.Errorf("%w: spike train must be non-empty", ErrInvalidParameter)
	}
	st := &SpikeTrain{}
	st.Amp = 1
	st.Train = make([]float32, len(train))
	copy(st.Train, train)
	return st, nil
}

// UnitType returns SpikeTrainUnit.
func (st *SpikeTrain) UnitType() UnitTypes { return SpikeTrainUnit }

// Init rewinds playback to the start of the train and clears I and Out.
func (st *SpikeTrain) Init() {
	st.InitNeuron()
	st.Index = 0
}

// Validate checks that the train is non-empty.
func (st *SpikeTrain) Validate() error {
	if len(st.Train) == 0 {
		return fmt.Errorf("%w: spike train must be non-empty", ErrInvalidParameter)
	}
	return nil
}

// Step emits the next train value scaled by Amp and advances the cyclic
// index.  I is left untouched.  Never fails.
func (st *SpikeTrain) Step() error {
	st.Out = st.Train[st.Index] * st.Amp
	st.Index = (st.Index + 1) % len(st.Train)
	return nil
}

//////////////////////////////////////////////////////////////////////////////////////
//  PoissonGen

// MaxSpikesPerStep bounds the number of events the PoissonGen inter-spike
// interval loop can produce in one step.  The loop is almost-surely finite
// (expected events = rate), so this only trips on pathological rates, and
// trips as an ErrNumericDegeneracy error rather than silently truncating
// the count.
const MaxSpikesPerStep = 1000000

// snn.PoissonGen is a generator that fires with Poisson statistics:
// the accumulated input I is interpreted as an instantaneous rate, and each
// Step counts the events of a Poisson process with that rate observed over
// one unit time window, by accumulating exponentially distributed
// inter-spike intervals -ln(1-u)/rate until the window is exceeded.
// Out is the event count scaled by Amp -- not merely a 0/1 spike.
type PoissonGen struct {
	Neuron

	// constant bias reinstated into I after every step, so a fixed firing
	// rate can be configured once instead of re-injected every tick.
	Ie float32 `desc:"constant bias input current"`

	// random source for the interval draws -- owned (auto-seeded from the
	// clock at construction) unless replaced via SetRandSource.
	Rnd erand.Rand `view:"-" desc:"random source for inter-spike intervals"`
}

// NewPoissonGen returns a new PoissonGen with the given constant bias rate.
// The random source is owned and seeded from the system clock until replaced
// via SetRandSource.
func NewPoissonGen(ie float32) *PoissonGen {
	pg := &PoissonGen{}
	pg.Amp = 1
	pg.Ie = ie
	pg.Rnd = erand.NewSysRand(time.Now().UnixNano())
	return pg
}

// UnitType returns PoissonGenUnit.
func (pg *PoissonGen) UnitType() UnitTypes { return PoissonGenUnit }

// Init clears I and Out.  The generator has no other persistent state.
func (pg *PoissonGen) Init() {
	pg.InitNeuron()
}

// SetRandSource replaces the interval random source -- implements Stochastic.
func (pg *PoissonGen) SetRandSource(rnd erand.Rand) {
	pg.Rnd = rnd
}

// Validate checks that a random source is present.
func (pg *PoissonGen) Validate() error {
	if pg.Rnd == nil {
		return fmt.Errorf("%w: PoissonGen requires a random source", ErrInvalidParameter)
	}
	return nil
}

// Step counts Poisson events over one unit time window at rate I, sets
// Out to count * Amp, and resets I to Ie.  Rates <= 0 produce Out = 0.
// Non-finite rates fail with ErrNumericDegeneracy, as does a uniform draw
// that still lands on 1 after one resample (which would make the interval
// logarithm infinite) or a count exceeding MaxSpikesPerStep.
func (pg *PoissonGen) Step() error {
	rate := pg.I
	pg.I = pg.Ie
	pg.Out = 0
	if rate <= 0 {
		return nil
	}
	if mat32.IsNaN(rate) || mat32.IsInf(rate, 0) {
		return fmt.Errorf("%w: PoissonGen rate is not finite: %v", ErrNumericDegeneracy, rate)
	}
	n := 0
	for t := float32(0); ; {
		u := float32(pg.Rnd.Float64(-1))
		if u >= 1 { // would yield -ln(0): resample once, then fail loudly
			u = float32(pg.Rnd.Float64(-1))
			if u >= 1 {
				return fmt.Errorf("%w: uniform draw at 1 twice in a row", ErrNumericDegeneracy)
			}
		}
		t += -mat32.Log(1-u) / rate
		if t >= 1 {
			break
		}
		n++
		if n > MaxSpikesPerStep {
			return fmt.Errorf("%w: spike count exceeded MaxSpikesPerStep at rate %v", ErrNumericDegeneracy, rate)
		}
	}
	pg.Out = float32(n) * pg.Amp
	return nil
}
