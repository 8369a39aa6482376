// Package osfile reads files into memory for the rest of the program,
// reporting failures through the logging layer instead of returning
// errors for the caller to format.
package osfile
