package runtimestd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

var stdin = bufio.NewReader(os.Stdin)

// Print implements std.io.print.
func Print(message string) {
	fmt.Print(message)
}

// Println implements std.io.println.
func Println(message string) {
	fmt.Println(message)
}

// ReadLine implements std.io.read_line: reads one line from stdin with its
// trailing newline stripped, reporting ok=false at EOF the way the teacher's
// original_source/src/runtime/stdlib/io.rs's otter_std_io_read_line returns
// a null pointer on Ok(0)/Err.
func ReadLine() (string, bool) {
	line, err := stdin.ReadString('\n')
	if line == "" && err != nil {
		return "", false
	}
	return strings.TrimRight(line, "\r\n"), true
}
