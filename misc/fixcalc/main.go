// Command fixcalc is a calculator and inspector for the fixnum types.
//
// Usage:
//
//	fixcalc calc 0xFFFFFFFF '*' 3 --bits 32
//	fixcalc conv --bits 64 --signed --to 2,16 -- -1
//	fixcalc dump 0x1_0000_0000
//	fixcalc recip 10 --numer 12345 --bits 64
//	fixcalc verify --iter 10000
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		bad.Fprint(os.Stderr, "error: ")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
