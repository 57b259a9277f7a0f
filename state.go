// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tonecurve

// State is the editable curve state for one editing session: one
// PointSet per channel plus lazily derived lookup tables. It is the
// single source of truth for edits; rendering and preview collaborators
// read from it, never mutate behind it.
//
// Every successful mutation bumps Revision, a monotonically increasing
// edit sequence number, and invalidates the derived LUTs of the touched
// channel. A Master edit invalidates all four effective LUTs, since
// every color channel composes after the master curve.
//
// State is not safe for concurrent use. Hand workers an independent
// snapshot via Clone instead of sharing a State across goroutines; the
// snapshot carries the revision it was taken at.
type State struct {
	sets [NumChannels]*PointSet
	rev  uint64

	base      [NumChannels]LUT // per-channel LUT before composition
	baseDirty [NumChannels]bool
	eff       LUTs // composed effective LUTs
	effDirty  [NumChannels]bool
}

// NewState returns a State with identity curves on all four channels.
func NewState() *State {
	st := &State{}
	for c := range st.sets {
		st.sets[c] = NewPointSet()
		st.baseDirty[c] = true
		st.effDirty[c] = true
	}
	return st
}

// Revision returns the edit sequence number: 0 for a fresh State,
// incremented by every successful mutation.
func (st *State) Revision() uint64 { return st.rev }

// touched records a successful mutation of ch.
func (st *State) touched(ch Channel) {
	st.rev++
	st.baseDirty[ch] = true
	if ch == Master {
		for c := range st.effDirty {
			st.effDirty[c] = true
		}
	} else {
		st.effDirty[ch] = true
	}
}

// Insert adds a control point to ch's curve and returns its index. See
// PointSet.Insert for validation. Panics if ch is not a valid Channel,
// as do all State methods taking one.
func (st *State) Insert(ch Channel, x, y int) (int, error) {
	i, err := st.sets[ch].Insert(x, y)
	if err != nil {
		return 0, err
	}
	st.touched(ch)
	return i, nil
}

// Move repositions a control point on ch's curve. See PointSet.Move.
func (st *State) Move(ch Channel, index, newX, newY int) error {
	if err := st.sets[ch].Move(index, newX, newY); err != nil {
		return err
	}
	st.touched(ch)
	return nil
}

// Remove deletes a control point from ch's curve. See PointSet.Remove.
func (st *State) Remove(ch Channel, index int) error {
	if err := st.sets[ch].Remove(index); err != nil {
		return err
	}
	st.touched(ch)
	return nil
}

// HitTest finds the control point on ch's curve nearest to (x, y)
// within threshold. Pure query; see PointSet.HitTest.
func (st *State) HitTest(ch Channel, x, y, threshold int) (int, bool) {
	return st.sets[ch].HitTest(x, y, threshold)
}

// SetPoints replaces ch's curve wholesale. See PointSet.SetPoints.
func (st *State) SetPoints(ch Channel, pts []Point) error {
	if err := st.sets[ch].SetPoints(pts); err != nil {
		return err
	}
	st.touched(ch)
	return nil
}

// Points returns a copy of ch's control points in X order.
func (st *State) Points(ch Channel) []Point { return st.sets[ch].Points() }

// Reset restores ch's curve to the identity pair.
func (st *State) Reset(ch Channel) {
	st.sets[ch].Reset()
	st.touched(ch)
}

// ResetAll restores every channel to the identity pair.
func (st *State) ResetAll() {
	for c := Channel(0); c < NumChannels; c++ {
		st.Reset(c)
	}
}

// IsIdentity reports whether all four curves are the identity pair.
func (st *State) IsIdentity() bool {
	for _, s := range st.sets {
		if !s.IsIdentity() {
			return false
		}
	}
	return true
}

// Spline returns the interpolating spline for ch's current points,
// built fresh on each call. Rendering collaborators sample it to draw
// the curve at device resolution.
func (st *State) Spline(ch Channel) *Spline {
	return NewSpline(st.sets[ch].pts)
}

// LUT returns ch's lookup table before composition, rebuilding it if
// the curve changed since the last call.
func (st *State) LUT(ch Channel) LUT {
	if st.baseDirty[ch] {
		st.base[ch] = BuildLUT(st.sets[ch].pts)
		st.baseDirty[ch] = false
	}
	return st.base[ch]
}

// Effective returns ch's effective LUT: the master LUT itself for
// Master, otherwise the channel LUT composed after the master LUT.
// Rebuilt lazily.
func (st *State) Effective(ch Channel) LUT {
	if st.effDirty[ch] {
		if ch == Master {
			st.eff[ch] = st.LUT(Master)
		} else {
			st.eff[ch] = Compose(st.LUT(Master), st.LUT(ch))
		}
		st.effDirty[ch] = false
	}
	return st.eff[ch]
}

// EffectiveLUTs returns a copy of all four effective LUTs, ready to
// pass to Apply. The copy is independent of the State: later edits do
// not change it, so it can cross goroutine boundaries freely.
func (st *State) EffectiveLUTs() *LUTs {
	for c := Channel(0); c < NumChannels; c++ {
		st.Effective(c)
	}
	out := st.eff
	return &out
}

// Clone returns a deep, independent snapshot of the State, including
// its revision and any LUTs already built. Neither State observes later
// edits of the other.
func (st *State) Clone() *State {
	cp := &State{
		rev:       st.rev,
		base:      st.base,
		baseDirty: st.baseDirty,
		eff:       st.eff,
		effDirty:  st.effDirty,
	}
	for c, s := range st.sets {
		cp.sets[c] = s.clone()
	}
	return cp
}
