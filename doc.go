// Package xgrid provides a reversible text obfuscation scheme built from binary encoding,
// a row/column transposition over a space padded grid and an additive shift keyed by the
// number of set bits in the plaintext.
// Use the obfuscate package to encrypt and decrypt text or to automate the work over files with
// an Engine fed by one of the taps. The scheme is a toy and offers no security.
package xgrid
