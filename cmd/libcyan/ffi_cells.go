package main

import "C"

import (
	"encoding/json"

	"github.com/block-xaero/cyan/internal/types"
)

//export CyanGetCells
func CyanGetCells(handle C.ulonglong, boardID *C.char) (result *C.char) {
	defer guard(&result)
	entry, ok := getHandle(uint64(handle))
	if !ok {
		return returnJSON(errorResponse("invalid node handle"))
	}

	id := cStringToGo(boardID)
	if id == "" {
		return returnJSON(errorResponse("board id required"))
	}

	cells, err := entry.node.Cells(id)
	if err != nil {
		return returnJSON(errorResponse(err.Error()))
	}
	if cells == nil {
		cells = []types.Cell{}
	}
	return returnJSON(successResponse(cells))
}

//export CyanSaveCells
func CyanSaveCells(handle C.ulonglong, boardID, cellsJSON *C.char) (result *C.char) {
	defer guard(&result)
	entry, ok := getHandle(uint64(handle))
	if !ok {
		return returnJSON(errorResponse("invalid node handle"))
	}

	id := cStringToGo(boardID)
	if id == "" {
		return returnJSON(errorResponse("board id required"))
	}

	var cells []types.Cell
	if err := json.Unmarshal([]byte(cStringToGo(cellsJSON)), &cells); err != nil {
		return returnJSON(errorResponse("invalid cells: " + err.Error()))
	}

	if err := entry.node.SaveCells(id, cells); err != nil {
		return returnJSON(errorResponse(err.Error()))
	}
	return returnJSON(successResponse(map[string]int{"saved": len(cells)}))
}
