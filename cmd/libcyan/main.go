// Package main builds libcyan, the node facade exported as a c-shared
// library. Callers open a data directory, receive an integer handle, and
// exchange JSON over C strings. Build with:
//
//	go build -buildmode=c-shared -o libcyan.so ./cmd/libcyan
package main

import "C"

func main() {}
