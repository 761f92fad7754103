// Command catanboard loads the configured sources once and renders, exports
// or syncs the resulting leaderboard.
package main

import "catanboard/internal/cli"

func main() {
	cli.Execute()
}
