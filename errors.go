// Error taxonomy
//
// Copyright (c) 2022  Philip Kaludercic
//
// This file is part of go-mancala.
//
// go-mancala is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License,
// version 3, as published by the Free Software Foundation.
//
// go-mancala is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public
// License, version 3, along with go-mancala. If not, see
// <http://www.gnu.org/licenses/>

package mancala

import "fmt"

// IllegalMoveError is returned when a side attempts to sow an empty
// pit.  The game is not modified.
type IllegalMoveError struct {
	Side  Side
	Pit   uint
	Board string
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move %d by %s in %s", e.Pit, e.Side, e.Board)
}

// DegenerateDistributionError is returned when a move should be
// sampled from weights that are all zero
type DegenerateDistributionError struct {
	Weights []float64
}

func (e *DegenerateDistributionError) Error() string {
	return fmt.Sprintf("no move to choose from weights %v", e.Weights)
}

// ShapeMismatchError is returned when a vector does not have the
// expected length
type ShapeMismatchError struct {
	What      string
	Want, Got int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("%s has length %d, expected %d", e.What, e.Got, e.Want)
}
