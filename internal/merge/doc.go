// Package merge concatenates one named sheet from several workbooks that share
// an identical ordered header row into a single sheet named Merged.
package merge
