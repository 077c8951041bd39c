package main

import "C"

import (
	"encoding/json"
	"strings"

	"github.com/block-xaero/cyan/internal/types"
)

//export CyanPeers
func CyanPeers(handle C.ulonglong) (result *C.char) {
	defer guard(&result)
	entry, ok := getHandle(uint64(handle))
	if !ok {
		return returnJSON(errorResponse("invalid node handle"))
	}

	peers, err := entry.node.Peers()
	if err != nil {
		return returnJSON(errorResponse(err.Error()))
	}
	if peers == nil {
		peers = []types.Peer{}
	}
	return returnJSON(successResponse(peers))
}

//export CyanMessages
func CyanMessages(handle C.ulonglong, peerID *C.char) (result *C.char) {
	defer guard(&result)
	entry, ok := getHandle(uint64(handle))
	if !ok {
		return returnJSON(errorResponse("invalid node handle"))
	}

	id := cStringToGo(peerID)
	if id == "" {
		return returnJSON(errorResponse("peer id required"))
	}

	messages, err := entry.node.Messages(id)
	if err != nil {
		return returnJSON(errorResponse(err.Error()))
	}
	if messages == nil {
		messages = []types.DMMessage{}
	}
	return returnJSON(successResponse(messages))
}

//export CyanSendDM
func CyanSendDM(handle C.ulonglong, request *C.char) (result *C.char) {
	defer guard(&result)
	entry, ok := getHandle(uint64(handle))
	if !ok {
		return returnJSON(errorResponse("invalid node handle"))
	}

	var req struct {
		PeerID string `json:"peer_id"`
		Body   string `json:"body"`
	}
	if err := json.Unmarshal([]byte(cStringToGo(request)), &req); err != nil {
		return returnJSON(errorResponse("invalid request: " + err.Error()))
	}
	if req.PeerID == "" {
		return returnJSON(errorResponse("peer_id required"))
	}
	if strings.TrimSpace(req.Body) == "" {
		return returnJSON(errorResponse("body required"))
	}

	msg, err := entry.node.SendDM(req.PeerID, req.Body)
	if err != nil {
		return returnJSON(errorResponse(err.Error()))
	}
	return returnJSON(successResponse(msg))
}
