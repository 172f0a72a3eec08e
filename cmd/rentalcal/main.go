// Command rentalcal prints date picker grids, bookable slots and derived
// dropoffs from the terminal, using the same rules as the rental search API.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
