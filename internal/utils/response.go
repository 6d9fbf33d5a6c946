package utils

import (
	"net/http"

	"github.com/bytedance/sonic"
)

func SendResponse(w http.ResponseWriter, statusCode int, response any) {
	data, err := sonic.Marshal(response)
	if err != nil {
		http.Error(w, `{"status":false,"message":"failed to encode response"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(data)
}
