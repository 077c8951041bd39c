package main

import "C"

import (
	"encoding/json"
	"fmt"

	"github.com/block-xaero/cyan/internal/types"
)

//export CyanBoards
func CyanBoards(handle C.ulonglong) (result *C.char) {
	defer guard(&result)
	entry, ok := getHandle(uint64(handle))
	if !ok {
		return returnJSON(errorResponse("invalid node handle"))
	}

	boards, err := entry.node.Boards()
	if err != nil {
		return returnJSON(errorResponse(err.Error()))
	}
	if boards == nil {
		boards = []types.BoardCard{}
	}
	return returnJSON(successResponse(boards))
}

//export CyanCreateBoard
func CyanCreateBoard(handle C.ulonglong, request *C.char) (result *C.char) {
	defer guard(&result)
	entry, ok := getHandle(uint64(handle))
	if !ok {
		return returnJSON(errorResponse("invalid node handle"))
	}

	var req struct {
		WorkspaceID string `json:"workspace_id"`
		Name        string `json:"name"`
	}
	if err := json.Unmarshal([]byte(cStringToGo(request)), &req); err != nil {
		return returnJSON(errorResponse("invalid request: " + err.Error()))
	}
	if req.WorkspaceID == "" {
		return returnJSON(errorResponse("workspace_id required"))
	}
	if req.Name == "" {
		return returnJSON(errorResponse("name required"))
	}

	board, err := entry.node.CreateBoard(req.WorkspaceID, req.Name)
	if err != nil {
		return returnJSON(errorResponse(err.Error()))
	}
	return returnJSON(successResponse(board))
}

//export CyanGetFace
func CyanGetFace(handle C.ulonglong, boardID *C.char) (result *C.char) {
	defer guard(&result)
	entry, ok := getHandle(uint64(handle))
	if !ok {
		return returnJSON(errorResponse("invalid node handle"))
	}

	id := cStringToGo(boardID)
	if id == "" {
		return returnJSON(errorResponse("board id required"))
	}

	face, err := entry.node.Face(id)
	if err != nil {
		return returnJSON(errorResponse(err.Error()))
	}
	return returnJSON(successResponse(string(face)))
}

//export CyanSetFace
func CyanSetFace(handle C.ulonglong, boardID, face *C.char) (result *C.char) {
	defer guard(&result)
	entry, ok := getHandle(uint64(handle))
	if !ok {
		return returnJSON(errorResponse("invalid node handle"))
	}

	id := cStringToGo(boardID)
	if id == "" {
		return returnJSON(errorResponse("board id required"))
	}
	faceStr := cStringToGo(face)
	if !types.ValidFace(faceStr) {
		return returnJSON(errorResponse(fmt.Sprintf("unknown face: %s", faceStr)))
	}

	if err := entry.node.SetFace(id, types.Face(faceStr)); err != nil {
		return returnJSON(errorResponse(err.Error()))
	}
	return returnJSON(successResponse(map[string]bool{"set": true}))
}
