// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tonecurve

import "sort"

// PointSet is one channel's ordered control points: strictly increasing
// in X, every coordinate in [0,255], endpoints at X=0 and X=255 always
// present. The zero value is not ready for use; call NewPointSet.
//
// PointSet is not safe for concurrent mutation. The intended owner is a
// single interaction loop; workers receive independent copies (see
// State.Clone).
type PointSet struct {
	pts []Point
}

// NewPointSet returns the identity point set {(0,0), (255,255)}.
func NewPointSet() *PointSet {
	return &PointSet{pts: identityPoints()}
}

func identityPoints() []Point {
	return []Point{{DomainMin, DomainMin}, {DomainMax, DomainMax}}
}

// Len returns the number of control points. Always ≥ 2.
func (s *PointSet) Len() int { return len(s.pts) }

// At returns the i-th point in X order. It panics if i is out of range,
// matching slice semantics; use Len to stay in bounds.
func (s *PointSet) At(i int) Point { return s.pts[i] }

// Points returns a copy of the control points in X order. The caller may
// keep or modify the slice freely.
func (s *PointSet) Points() []Point {
	out := make([]Point, len(s.pts))
	copy(out, s.pts)
	return out
}

// searchX returns the position of the first point with X ≥ x.
func (s *PointSet) searchX(x int) int {
	return sort.Search(len(s.pts), func(i int) bool { return s.pts[i].X >= x })
}

// Insert adds a control point at (x, y) and returns its index, so a
// caller translating a click can immediately begin dragging it.
//
// Insert validates rather than clamps: coordinates outside [0,255]
// return ErrOutOfDomain, and an x that already has a point returns
// ErrDuplicateX. The endpoints at x=0 and x=255 always exist, so those
// two positions are never insertable.
func (s *PointSet) Insert(x, y int) (int, error) {
	p := Point{x, y}
	if !p.InDomain() {
		return 0, ErrOutOfDomain
	}
	i := s.searchX(x)
	if i < len(s.pts) && s.pts[i].X == x {
		return 0, ErrDuplicateX
	}
	s.pts = append(s.pts, Point{})
	copy(s.pts[i+1:], s.pts[i:])
	s.pts[i] = p
	return i, nil
}

// Move repositions the point at index. newY is clamped to [0,255]. For
// the two endpoints newX is ignored; their X stays pinned at 0 and 255.
// For interior points newX is clamped to remain strictly between both
// neighbors' X, so a drag slides along the curve instead of sticking or
// crossing. Returns ErrPointIndex if index is out of range; Move never
// fails for any coordinate values.
func (s *PointSet) Move(index, newX, newY int) error {
	if index < 0 || index >= len(s.pts) {
		return ErrPointIndex
	}
	y := clampDomain(newY)
	if index == 0 || index == len(s.pts)-1 {
		s.pts[index].Y = y
		return nil
	}
	// Neighbors exist and are at least 2 apart in X, so the clamp
	// interval always contains at least the point's current X.
	lo := s.pts[index-1].X + 1
	hi := s.pts[index+1].X - 1
	x := newX
	if x < lo {
		x = lo
	}
	if x > hi {
		x = hi
	}
	s.pts[index] = Point{x, y}
	return nil
}

// Remove deletes the point at index. The endpoints cannot be removed
// (ErrEndpointRemoval), and the set never drops below two points
// (ErrMinimumPoints). Returns ErrPointIndex if index is out of range.
func (s *PointSet) Remove(index int) error {
	if index < 0 || index >= len(s.pts) {
		return ErrPointIndex
	}
	if index == 0 || index == len(s.pts)-1 {
		return ErrEndpointRemoval
	}
	if len(s.pts) <= 2 {
		return ErrMinimumPoints
	}
	s.pts = append(s.pts[:index], s.pts[index+1:]...)
	return nil
}

// HitTest returns the index of the control point nearest to (x, y)
// within threshold (Euclidean distance in curve space), and whether one
// was found. Ties go to the lower index. HitTest never mutates the set;
// gesture policy (click vs. drag vs. delete) belongs to the caller.
func (s *PointSet) HitTest(x, y, threshold int) (int, bool) {
	if threshold < 0 {
		return 0, false
	}
	best, bestD := -1, threshold*threshold+1
	for i, p := range s.pts {
		if d := sqDist(x, y, p.X, p.Y); d < bestD {
			best, bestD = i, d
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

// SetPoints replaces the whole set with pts, validating as Insert would.
// The input may be in any order; it is sorted by X. Requirements: at
// least 2 points (ErrMinimumPoints), all coordinates in [0,255]
// (ErrOutOfDomain), distinct X values (ErrDuplicateX), and endpoints at
// x=0 and x=255 (ErrOutOfDomain if either is missing). On error the set
// is left unchanged.
func (s *PointSet) SetPoints(pts []Point) error {
	if len(pts) < 2 {
		return ErrMinimumPoints
	}
	sorted := make([]Point, len(pts))
	copy(sorted, pts)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })
	for i, p := range sorted {
		if !p.InDomain() {
			return ErrOutOfDomain
		}
		if i > 0 && p.X == sorted[i-1].X {
			return ErrDuplicateX
		}
	}
	if sorted[0].X != DomainMin || sorted[len(sorted)-1].X != DomainMax {
		return ErrOutOfDomain
	}
	s.pts = sorted
	return nil
}

// Reset restores the identity pair {(0,0), (255,255)}.
func (s *PointSet) Reset() {
	s.pts = identityPoints()
}

// IsIdentity reports whether the set is exactly the identity pair.
func (s *PointSet) IsIdentity() bool {
	return len(s.pts) == 2 &&
		s.pts[0] == Point{DomainMin, DomainMin} &&
		s.pts[1] == Point{DomainMax, DomainMax}
}

// clone returns an independent copy.
func (s *PointSet) clone() *PointSet {
	return &PointSet{pts: s.Points()}
}
