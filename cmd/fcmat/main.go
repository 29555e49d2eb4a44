// Fcmat inspects, edits and formats FreeCAD material cards.
//
// Usage:
//
//	# Create a new card
//	fcmat new "Aluminum 6061" --author "Jane Doe" -o Aluminum6061.FCMat
//
//	# Read and write single properties
//	fcmat get Steel.FCMat Mechanical Density
//	fcmat set Steel.FCMat Mechanical Density "7900 kg/m^3"
//
//	# Canonicalize cards, gofmt-style
//	fcmat fmt -w materials/*.FCMat
//	fcmat fmt -d Steel.FCMat
//
//	# Check a directory of cards
//	fcmat validate materials/*.FCMat
//
//	# Export a card as YAML
//	fcmat convert Steel.FCMat
//
//	# Browse a material library and flatten inheritance
//	fcmat list --dir materials/
//	fcmat resolve --dir materials/ 9003de76-a6ba-4a8e-8d94-2acda7cd40b2
package main

func main() {
	Execute()
}
