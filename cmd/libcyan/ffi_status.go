package main

import "C"

//export CyanStatus
func CyanStatus(handle C.ulonglong) (result *C.char) {
	defer guard(&result)
	entry, ok := getHandle(uint64(handle))
	if !ok {
		return returnJSON(errorResponse("invalid node handle"))
	}

	counters, err := entry.node.Counters()
	if err != nil {
		return returnJSON(errorResponse(err.Error()))
	}
	unread, err := entry.node.UnreadTotal()
	if err != nil {
		return returnJSON(errorResponse(err.Error()))
	}

	return returnJSON(successResponse(StatusResponse{
		NodeID:      counters.NodeID,
		DisplayName: entry.node.DisplayName(),
		Ready:       counters.Ready,
		Objects:     counters.Objects,
		Peers:       counters.Peers,
		Unread:      unread,
		Dir:         entry.dir,
	}))
}
