package main

import "C"

import (
	"sync"

	"github.com/block-xaero/cyan/internal/node"
)

// Handle management
var (
	handleMu   sync.RWMutex
	handles           = make(map[uint64]*handleEntry)
	nextHandle uint64 = 1
)

type handleEntry struct {
	node *node.Node
	dir  string
}

func registerHandle(n *node.Node, dir string) uint64 {
	handleMu.Lock()
	defer handleMu.Unlock()
	id := nextHandle
	nextHandle++
	handles[id] = &handleEntry{node: n, dir: dir}
	return id
}

func getHandle(id uint64) (*handleEntry, bool) {
	handleMu.RLock()
	defer handleMu.RUnlock()
	entry, ok := handles[id]
	return entry, ok
}

func closeHandle(id uint64) {
	handleMu.Lock()
	defer handleMu.Unlock()
	if entry, ok := handles[id]; ok {
		if entry.node != nil {
			_ = entry.node.Close()
		}
		delete(handles, id)
	}
}

//export CyanOpen
func CyanOpen(dir *C.char) (handle C.ulonglong) {
	defer func() {
		if recover() != nil {
			handle = 0
		}
	}()
	path := cStringToGo(dir)
	if path == "" {
		return 0
	}
	n, err := node.Open(path)
	if err != nil {
		return 0
	}
	return C.ulonglong(registerHandle(n, path))
}

//export CyanClose
func CyanClose(handle C.ulonglong) {
	defer func() { _ = recover() }()
	closeHandle(uint64(handle))
}
