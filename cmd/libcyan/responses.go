package main

import "encoding/json"

// JSON response types
type Response struct {
	OK    bool        `json:"ok"`
	Data  interface{} `json:"data,omitempty"`
	Error *string     `json:"error,omitempty"`
}

type StatusResponse struct {
	NodeID      string `json:"node_id"`
	DisplayName string `json:"display_name"`
	Ready       bool   `json:"ready"`
	Objects     int    `json:"objects"`
	Peers       int    `json:"peers"`
	Unread      int    `json:"unread"`
	Dir         string `json:"dir"`
}

func successResponse(data interface{}) []byte {
	resp := Response{OK: true, Data: data}
	bytes, err := json.Marshal(resp)
	if err != nil {
		return errorResponse("failed to marshal response: " + err.Error())
	}
	return bytes
}

func errorResponse(errMsg string) []byte {
	resp := Response{OK: false, Error: &errMsg}
	bytes, _ := json.Marshal(resp)
	return bytes
}
