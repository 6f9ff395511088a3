package main

import (
	"fmt"
	"os"
)

func writeInfo(format string, args ...any) {
	fmt.Fprintf(os.Stdout, format+"\n", args...)
}

func writeError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
