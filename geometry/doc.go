// Package geometry provides the integer coordinate primitives shared by
// every grid consumer in lvgrid.
//
// What:
//
//   - Point: a signed 2D integer vector with component-wise arithmetic,
//     bounds checks and toroidal wrapping.
//   - Direction: the four compass directions (North, East, South, West)
//     with unit offsets, clockwise rotation and one-bit masks.
//   - DirectionMap: a fixed four-slot record keyed by Direction.
//   - VisitedSet: one byte per cell recording which directions a walker
//     has already taken through that cell.
//
// Why:
//
//   - Grid engines probe neighbours millions of times; every operation here
//     is allocation-free and O(1).
//   - Direction tables are fixed switches, so bit layouts stay stable for
//     code that stores masks (VisitedSet).
//
// Conventions:
//
//   - Y grows downward: North is (0,-1), South is (0,1).
//   - Sizes are Points whose components are the width and height.
//   - InBounds and Wrap expect a strictly positive size.
//
// Only 4-connectivity is modelled; there are no diagonal directions.
package geometry
