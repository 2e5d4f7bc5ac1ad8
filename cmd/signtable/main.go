// Command signtable prints a random signed-integer matrix as an annotated
// table: the minimum positive value and the minimum number of replacements
// that break every long same-sign run, per row.
//
//	signtable                 # 10×10 in [-100, 100]
//	signtable 6 -9 9          # size min max
//	signtable --max-run 4 --seed 42
//	signtable config          # print the effective configuration
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/signtable/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.L.Debugf("%+v", err)
		fmt.Fprintln(os.Stderr, "signtable:", err)
		os.Exit(1)
	}
}
