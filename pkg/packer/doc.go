// Package packer chooses, for every package line of an input file, the subset
// of candidate items with the highest total cost that still fits the package
// weight limit. Ties on cost go to the lighter subset.
//
// Input lines look like
//
//	81 : (1,53.38,€45) (2,88.62,€98) (3,78.48,€3)
//
// and the result for a file is one row per line holding the chosen item
// indices, or "-" when no item fits.
package packer
