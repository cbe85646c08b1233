// Copyright 2024 The Cepgen-sub003 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kinematics implements four-momentum algebra, bounded cut ranges
// and the static PDG particle table shared by every process implementation.
package kinematics

import "math"

// FourVector is a four-momentum (px, py, pz, E). Mass is always derived from
// (E, p); it is never stored, so a caller that knows an on-shell mass (from
// the PDG table) is responsible for enforcing E^2 = |p|^2 + m^2 when it
// builds the vector.
type FourVector struct {
	Px, Py, Pz, E float64
}

// NewFourVector builds a four-momentum from its Cartesian components.
func NewFourVector(px, py, pz, e float64) FourVector {
	return FourVector{Px: px, Py: py, Pz: pz, E: e}
}

// FromPtEtaPhiE builds a four-momentum from transverse momentum, pseudorapidity,
// azimuth and energy.
func FromPtEtaPhiE(pt, eta, phi, e float64) FourVector {
	return FourVector{
		Px: pt * math.Cos(phi),
		Py: pt * math.Sin(phi),
		Pz: pt * math.Sinh(eta),
		E:  e,
	}
}

// FromPThetaPhiE builds a four-momentum from a scalar momentum, polar angle,
// azimuth and energy.
func FromPThetaPhiE(p, theta, phi, e float64) FourVector {
	st := math.Sin(theta)
	return FourVector{
		Px: p * st * math.Cos(phi),
		Py: p * st * math.Sin(phi),
		Pz: p * math.Cos(theta),
		E:  e,
	}
}

// Add returns the sum of two four-momenta.
func (v FourVector) Add(o FourVector) FourVector {
	return FourVector{v.Px + o.Px, v.Py + o.Py, v.Pz + o.Pz, v.E + o.E}
}

// Sub returns the difference of two four-momenta.
func (v FourVector) Sub(o FourVector) FourVector {
	return FourVector{v.Px - o.Px, v.Py - o.Py, v.Pz - o.Pz, v.E - o.E}
}

// Scale returns the four-momentum scaled by a constant factor.
func (v FourVector) Scale(f float64) FourVector {
	return FourVector{v.Px * f, v.Py * f, v.Pz * f, v.E * f}
}

// ThreeProduct computes the scalar product of the spatial parts only.
func (v FourVector) ThreeProduct(o FourVector) float64 {
	return v.Px*o.Px + v.Py*o.Py + v.Pz*o.Pz
}

// FourProduct computes the Minkowski scalar product (+,-,-,-).
func (v FourVector) FourProduct(o FourVector) float64 {
	return v.E*o.E - v.ThreeProduct(o)
}

// P returns the magnitude of the three-momentum.
func (v FourVector) P() float64 {
	return math.Sqrt(v.Px*v.Px + v.Py*v.Py + v.Pz*v.Pz)
}

// P2 returns the squared magnitude of the three-momentum.
func (v FourVector) P2() float64 {
	return v.Px*v.Px + v.Py*v.Py + v.Pz*v.Pz
}

// Pt returns the transverse momentum.
func (v FourVector) Pt() float64 {
	return math.Sqrt(v.Px*v.Px + v.Py*v.Py)
}

// Pt2 returns the squared transverse momentum.
func (v FourVector) Pt2() float64 {
	return v.Px*v.Px + v.Py*v.Py
}

// Mass2 returns the invariant mass squared E^2 - |p|^2. It may be negative
// for off-shell/space-like momenta (e.g. photon propagators).
func (v FourVector) Mass2() float64 {
	return v.E*v.E - v.P2()
}

// Mass returns sqrt(|Mass2|), signed by the sign of Mass2 so callers can
// tell space-like from time-like momenta without a second call.
func (v FourVector) Mass() float64 {
	m2 := v.Mass2()
	if m2 < 0 {
		return -math.Sqrt(-m2)
	}
	return math.Sqrt(m2)
}

// Theta returns the polar angle with respect to the z-axis.
func (v FourVector) Theta() float64 {
	return math.Atan2(v.Pt(), v.Pz)
}

// Phi returns the azimuthal angle.
func (v FourVector) Phi() float64 {
	return math.Atan2(v.Py, v.Px)
}

// Eta returns the pseudorapidity.
func (v FourVector) Eta() float64 {
	p := v.P()
	if p == v.Pz {
		return math.Inf(1)
	}
	if p == -v.Pz {
		return math.Inf(-1)
	}
	return 0.5 * math.Log((p+v.Pz)/(p-v.Pz))
}

// Rapidity returns the longitudinal rapidity y = 0.5 ln((E+pz)/(E-pz)).
func (v FourVector) Rapidity() float64 {
	return 0.5 * math.Log((v.E+v.Pz)/(v.E-v.Pz))
}

// BetaGammaBoost applies a boost along z parametrised by gamma and beta*gamma,
// the same convention GamGamLL uses to move the central system from its own
// rest frame to the overall centre-of-mass frame.
func (v FourVector) BetaGammaBoost(gamma, betaGamma float64) FourVector {
	return FourVector{
		Px: v.Px,
		Py: v.Py,
		Pz: gamma*v.Pz + betaGamma*v.E,
		E:  gamma*v.E + betaGamma*v.Pz,
	}
}

// Boost applies a general Lorentz boost that takes the rest frame of `frame`
// to the lab frame (i.e. boosts v by the velocity of `frame`).
func (v FourVector) Boost(frame FourVector) FourVector {
	m := frame.Mass()
	if m == 0 {
		return v
	}
	betaX, betaY, betaZ := frame.Px/frame.E, frame.Py/frame.E, frame.Pz/frame.E
	beta2 := betaX*betaX + betaY*betaY + betaZ*betaZ
	if beta2 == 0 {
		return v
	}
	gamma := frame.E / m
	bp := betaX*v.Px + betaY*v.Py + betaZ*v.Pz
	coeff := (gamma-1)/beta2*bp + gamma*v.E
	return FourVector{
		Px: v.Px + coeff*betaX,
		Py: v.Py + coeff*betaY,
		Pz: v.Pz + coeff*betaZ,
		E:  gamma * (v.E + bp),
	}
}

// RotatePhi rotates the momentum by `angle` around the z-axis, optionally
// mirroring y first when `sign` is -1 (used for the random azimuthal
// rotation applied in GamGamLL's fillKinematics).
func (v FourVector) RotatePhi(angle float64, sign int) FourVector {
	py := v.Py
	if sign < 0 {
		py = -py
	}
	c, s := math.Cos(angle), math.Sin(angle)
	return FourVector{
		Px: v.Px*c - py*s,
		Py: v.Px*s + py*c,
		Pz: v.Pz,
		E:  v.E,
	}
}

// Rotate applies a general 3D rotation given a polar angle theta and azimuth
// phi, rotating the z-axis onto the (theta, phi) direction.
func (v FourVector) Rotate(theta, phi float64) FourVector {
	ct, st := math.Cos(theta), math.Sin(theta)
	cp, sp := math.Cos(phi), math.Sin(phi)
	x, y, z := v.Px, v.Py, v.Pz
	return FourVector{
		Px: ct*cp*x - sp*y + st*cp*z,
		Py: ct*sp*x + cp*y + st*sp*z,
		Pz: -st*x + ct*z,
		E:  v.E,
	}
}

// MirrorZ reflects the z-component of the momentum, used by the LPAIR
// symmetrisation step.
func (v FourVector) MirrorZ() FourVector {
	return FourVector{v.Px, v.Py, -v.Pz, v.E}
}

// MirrorX reflects the x-component of the momentum.
func (v FourVector) MirrorX() FourVector {
	return FourVector{-v.Px, v.Py, v.Pz, v.E}
}
