/*
 * atomicdata.go, part of gomol.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}usachDOTcl>
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
 *
 * goMol is developed at the Universidad de Santiago de Chile (USACH)
 *
 */

package mol

//A map for assigning mass to elements, keyed by upper-case symbol as found
//in PDB/PQR element columns (e.g. "HG" for mercury).
//Standard atomic weights, conventional/abridged values from the
//IUPAC 2021 revision (DOI:10.1515/pac-2019-0603). For elements with
//no stable isotope, the mass number of the longest-lived isotope.
var symbolMass = map[string]float64{
	"H":  1.008,
	"HE": 4.0026,
	"LI": 6.94,
	"BE": 9.0122,
	"B":  10.81,
	"C":  12.011,
	"N":  14.007,
	"O":  15.999,
	"F":  18.998,
	"NE": 20.180,
	"NA": 22.990,
	"MG": 24.305,
	"AL": 26.982,
	"SI": 28.085,
	"P":  30.974,
	"S":  32.06,
	"CL": 35.45,
	"AR": 39.95,
	"K":  39.098,
	"CA": 40.078,
	"SC": 44.956,
	"TI": 47.867,
	"V":  50.942,
	"CR": 51.996,
	"MN": 54.938,
	"FE": 55.845,
	"CO": 58.933,
	"NI": 58.693,
	"CU": 63.546,
	"ZN": 65.38,
	"GA": 69.723,
	"GE": 72.630,
	"AS": 74.922,
	"SE": 78.971,
	"BR": 79.904,
	"KR": 83.798,
	"RB": 85.468,
	"SR": 87.62,
	"Y":  88.906,
	"ZR": 91.224,
	"NB": 92.906,
	"MO": 95.95,
	"TC": 97,
	"RU": 101.07,
	"RH": 102.91,
	"PD": 106.42,
	"AG": 107.87,
	"CD": 112.41,
	"IN": 114.82,
	"SN": 118.71,
	"SB": 121.76,
	"TE": 127.60,
	"I":  126.90,
	"XE": 131.29,
	"CS": 132.91,
	"BA": 137.33,
	"LA": 138.91,
	"CE": 140.12,
	"PR": 140.91,
	"ND": 144.24,
	"PM": 145,
	"SM": 150.36,
	"EU": 151.96,
	"GD": 157.25,
	"TB": 158.93,
	"DY": 162.50,
	"HO": 164.93,
	"ER": 167.26,
	"TM": 168.93,
	"YB": 173.05,
	"LU": 174.97,
	"HF": 178.49,
	"TA": 180.95,
	"W":  183.84,
	"RE": 186.21,
	"OS": 190.23,
	"IR": 192.22,
	"PT": 195.08,
	"AU": 196.97,
	"HG": 200.59,
	"TL": 204.38,
	"PB": 207.2,
	"BI": 208.98,
	"PO": 209,
	"AT": 210,
	"RN": 222,
	"FR": 223,
	"RA": 226,
	"AC": 227,
	"TH": 232.04,
	"PA": 231.04,
	"U":  238.03,
	"NP": 237,
	"PU": 244,
	"AM": 243,
	"CM": 247,
	"BK": 247,
	"CF": 251,
	"ES": 252,
	"FM": 257,
	"MD": 258,
	"NO": 259,
	"LR": 262,
	"RF": 267,
	"DB": 268,
	"SG": 269,
	"BH": 270,
	"HS": 277,
	"MT": 278,
	"DS": 281,
	"RG": 282,
	"CN": 285,
	"NH": 286,
	"FL": 289,
	"MC": 290,
	"LV": 293,
	"TS": 294,
	"OG": 294,
}

//A map for assigning van der Waals radii to elements
//Values from 10.1021/j100785a001 and 10.1021/jp8111556
//metal radii from 10.1023/A:1011625728803
//Note that just common "bio-elements" are present
var symbolVdwrad = map[string]float64{
	"H":  1.10,
	"C":  1.70,
	"O":  1.52,
	"N":  1.55,
	"P":  1.80,
	"S":  1.80,
	"SE": 1.90,
	"K":  2.75,
	"CA": 2.31,
	"MG": 1.73,
	"CL": 1.75,
	"NA": 2.27,
	"CU": 2.00,
	"ZN": 2.02,
	"CO": 1.95,
	"FE": 1.96,
	"MN": 1.96,
	"CR": 1.97,
	"SI": 2.10,
	"BE": 1.53,
	"F":  1.47,
	"BR": 1.83,
	"I":  1.98,
}

// MassOf returns the standard atomic mass for the given upper-case element
// symbol. The second return value is false if the symbol is not in the
// periodic table (including the empty symbol), in which case the mass
// returned is 0. There is no guessing for unknown symbols.
func MassOf(symbol string) (float64, bool) {
	m, ok := symbolMass[symbol]
	return m, ok
}

// KnownElement returns true if the given upper-case symbol is an element of
// the periodic table.
func KnownElement(symbol string) bool {
	_, ok := symbolMass[symbol]
	return ok
}

// VdwRadOf returns the van der Waals radius, in A, for the given upper-case
// element symbol, or 0 and false if no radius is tabulated for it. Only the
// common "bio-elements" are covered, so a known element can still lack a
// radius here. These radii can serve as defaults for the per-atom radius of
// PQR records.
func VdwRadOf(symbol string) (float64, bool) {
	r, ok := symbolVdwrad[symbol]
	return r, ok
}
