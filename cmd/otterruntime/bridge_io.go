package main

/*
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"

	"github.com/Ottrlang/otterlang/internal/runtimestd"
)

//export otter_std_io_print
func otter_std_io_print(message *C.char) {
	if message == nil {
		return
	}
	runtimestd.Print(C.GoString(message))
}

//export otter_std_io_println
func otter_std_io_println(message *C.char) {
	if message == nil {
		runtimestd.Println("")
		return
	}
	runtimestd.Println(C.GoString(message))
}

//export otter_std_io_read_line
func otter_std_io_read_line() *C.char {
	line, ok := runtimestd.ReadLine()
	if !ok {
		return nil
	}
	return C.CString(line)
}

//export otter_std_io_free_string
func otter_std_io_free_string(ptr *C.char) {
	if ptr != nil {
		C.free(unsafe.Pointer(ptr))
	}
}
