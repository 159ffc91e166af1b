/*
 * errors.go, part of goRIG.
 *
 * Copyright 2015 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package rig

import "fmt"

//CError (Common Error) is the general error for this package. It fulfills rig.Error.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err CError) Decorate(dec string) []string {
	//Even thought this method does not use a pointer as a receiver, and tries to alter the received,
	//it should work, since err.deco is a slice, and hence a pointer itself.
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical is always true for CErrors.
func (err CError) Critical() bool { return true }

//InvalidCutoffError is returned when a cutoff is not positive, or is too small
//to be represented with the precision of the grid.
type InvalidCutoffError struct {
	cutoff float64
	deco   []string
}

func (err InvalidCutoffError) Error() string {
	return fmt.Sprintf("goRIG: invalid contact cutoff %g: it must be positive and at least 0.01 A", err.cutoff)
}

//Cutoff returns the offending cutoff.
func (err InvalidCutoffError) Cutoff() float64 { return err.cutoff }

func (err InvalidCutoffError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

func (err InvalidCutoffError) Critical() bool { return true }

//errDecorate is a helper function that asserts that the error
//implements rig.Error and decorates the error with the caller's name before returning it.
//if used with a non-rig.Error error, it will just return the error.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	err2, ok := err.(Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}
