// Command lunchr seats people at tables and prints the settled seating.
package main

import "github.com/mrterry/lunchr/internal/cli"

func main() {
	cli.Execute()
}
