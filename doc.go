// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package snn is the overall repository for a minimal set of point-neuron
units for discrete-time spiking-network simulation, implemented in the
Go language (golang).

This top-level of the repository has no functional code -- everything is
organized into the following sub-packages:

* snn: the core units -- the leaky integrate-and-fire (LIF) neuron, the
SpikeTrain replay generator, and the PoissonGen stochastic generator, all
sharing one per-step state-transition contract (Unit).

* detect: passive recording detectors (Multimeter, Raster) that sample
unit state after each step into etable tables for later analysis.

Network wiring, event scheduling, and simulation-loop driving are the job
of the surrounding simulator: it adds input onto each unit's I accumulator,
calls Step once per tick, and routes Out values onward to other units.
*/
package snn
