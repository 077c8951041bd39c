package main

import "C"

import "encoding/json"

//export CyanGetNote
func CyanGetNote(handle C.ulonglong, boardID *C.char) (result *C.char) {
	defer guard(&result)
	entry, ok := getHandle(uint64(handle))
	if !ok {
		return returnJSON(errorResponse("invalid node handle"))
	}

	id := cStringToGo(boardID)
	if id == "" {
		return returnJSON(errorResponse("board id required"))
	}

	note, err := entry.node.Note(id)
	if err != nil {
		return returnJSON(errorResponse(err.Error()))
	}
	return returnJSON(successResponse(note))
}

//export CyanSaveNote
func CyanSaveNote(handle C.ulonglong, boardID, request *C.char) (result *C.char) {
	defer guard(&result)
	entry, ok := getHandle(uint64(handle))
	if !ok {
		return returnJSON(errorResponse("invalid node handle"))
	}

	id := cStringToGo(boardID)
	if id == "" {
		return returnJSON(errorResponse("board id required"))
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := json.Unmarshal([]byte(cStringToGo(request)), &req); err != nil {
		return returnJSON(errorResponse("invalid request: " + err.Error()))
	}

	note, err := entry.node.SaveNote(id, req.Content)
	if err != nil {
		return returnJSON(errorResponse(err.Error()))
	}
	return returnJSON(successResponse(note))
}
