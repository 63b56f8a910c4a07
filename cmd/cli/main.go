// LogTally - Access Log Request and Failed Login Tally
//
// LogTally reads an access log, counts requests per address and endpoint,
// and flags addresses with more failed logins than a threshold.
package main

import (
	"os"

	"github.com/ccollicutt/logtally/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
