// Command crosstab analyzes a two-variable survey export: it builds the
// contingency table, tests independence, runs correspondence analysis and
// writes the report artifacts.
package main

func main() {
	Execute()
}
