package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:8888"

// Pretty print JSON helper
func prettyPrint(body []byte) {
	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		fmt.Println(string(body))
		return
	}
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

func post(path, contentType string, body []byte) {
	resp, err := http.Post(baseURL+path, contentType, bytes.NewBuffer(body))
	if err != nil {
		color.Red("POST %s failed: %v", path, err)
		return
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode == http.StatusOK {
		color.Green("POST %s -> %d", path, resp.StatusCode)
	} else {
		color.Yellow("POST %s -> %d", path, resp.StatusCode)
	}
	prettyPrint(respBody)
}

func main() {
	color.Cyan("== Mode switch ==")
	post("/uploadMode", "text/plain", []byte("1"))
	post("/uploadMode", "text/plain", []byte("0"))
	post("/uploadMode", "text/plain", []byte("2")) // expect 400

	if len(os.Args) > 1 {
		color.Cyan("== Image upload: %s ==", os.Args[1])
		img, err := os.ReadFile(os.Args[1])
		if err != nil {
			color.Red("read image: %v", err)
			os.Exit(1)
		}
		post("/uploadImage", "application/octet-stream", img)
	}

	if len(os.Args) > 2 {
		color.Cyan("== Audio upload: %s ==", os.Args[2])
		audio, err := os.ReadFile(os.Args[2])
		if err != nil {
			color.Red("read audio: %v", err)
			os.Exit(1)
		}
		post("/uploadAudio", "application/octet-stream", audio)
	}
}
