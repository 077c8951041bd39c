package main

/*
#include <stdlib.h>
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// Helper functions
func goStringToC(s string) *C.char {
	return C.CString(s)
}

func cStringToGo(cs *C.char) string {
	if cs == nil {
		return ""
	}
	return C.GoString(cs)
}

func returnJSON(data []byte) *C.char {
	return goStringToC(string(data))
}

// guard turns a panic into an error envelope instead of letting it unwind
// across the C boundary. Exports declare a named result and defer it.
func guard(result **C.char) {
	if r := recover(); r != nil {
		*result = returnJSON(errorResponse(fmt.Sprintf("panic: %v", r)))
	}
}

//export CyanFree
func CyanFree(ptr *C.char) {
	if ptr != nil {
		C.free(unsafe.Pointer(ptr))
	}
}
