package cli

import (
	"fmt"
	"io"

	"parcelsort/internal/classifier"
)

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `Usage: parcelsort [-v] "width,height,length,mass"`)
	fmt.Fprintln(w, `Example: parcelsort "50,30,20,5000"`)
	fmt.Fprintln(w, "Use --help for more information.")
}

func printHelp(w io.Writer) {
	fmt.Fprintf(w, `Package Classification

Classifies a package and prints the stack it is routed to, based on its
dimensions and mass.

USAGE:
  parcelsort [-v|--verbose] "width,height,length,mass"

PARAMETERS:
  width  - package width in centimeters (positive integer)
  height - package height in centimeters (positive integer)
  length - package length in centimeters (positive integer)
  mass   - package mass in grams (positive number)

OUTPUT:
  STANDARD - normal handling (not bulky, not heavy)
  SPECIAL  - special handling (bulky OR heavy, but not both)
  REJECTED - cannot be handled (both bulky AND heavy)

RULES:
  BULKY: any dimension >= %dcm OR volume >= %d cm³
  HEAVY: mass >= %d grams

EXAMPLES:
  "50,30,20,5000"      -> STANDARD
  "150,30,20,5000"     -> SPECIAL  (bulky by dimension)
  "50,30,20,25000"     -> SPECIAL  (heavy)
  "150,30,20,25000"    -> REJECTED (bulky and heavy)
  "100,100,100,15000"  -> SPECIAL  (bulky by volume)
`, classifier.BulkyDimensionLimit, classifier.BulkyVolumeLimit, int(classifier.HeavyMassLimit))
}
