/*
 * errors.go, part of goRIG.
 *
 * Copyright 2021 Raul Mera rauldotmeraatusachdotcl
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package align

import "fmt"

//SizeMismatchError is returned when the two sets of coordinates to be compared
//have different numbers of points.
type SizeMismatchError struct {
	lena, lenb int
	deco       []string
}

func (err SizeMismatchError) Error() string {
	return fmt.Sprintf("goRIG/align: sets of coordinates of different sizes: %d and %d", err.lena, err.lenb)
}

//Lens returns the lengths of the two mismatched sets.
func (err SizeMismatchError) Lens() (int, int) { return err.lena, err.lenb }

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err SizeMismatchError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

func (err SizeMismatchError) Critical() bool { return true }

//CError is the general error for this package.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

func (err CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

func (err CError) Critical() bool { return true }

type decorator interface {
	Decorate(string) []string
}

//errDecorate adds the caller's name to the decoration of err, if err supports it.
func errDecorate(err error, caller string) error {
	if e, ok := err.(decorator); ok {
		e.Decorate(caller)
	}
	return err
}
