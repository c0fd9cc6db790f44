/*
Package point provides convenience logic for manipulating points in 2-space:
integer grid points for the simulation and float points for everything that
is drawn between tiles.

The Point structure is (coincidentally) cast-compatible with the standard one
in the "image" package.
*/
package point
