package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"pawns/communication"
	"pawns/game"
	"time"
)

type ClientCommunicator struct {
	serverURL  string
	httpClient *http.Client
}

// NewClientCommunicator initializes and returns a new ClientCommunicator.
func NewClientCommunicator(serverURL string) *ClientCommunicator {
	return &ClientCommunicator{
		serverURL:  serverURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (cc *ClientCommunicator) Setup(setup game.Setup) (communication.BoardResponse, error) {
	var resp communication.BoardResponse
	err := cc.do(http.MethodPost, "/setup", setup, &resp)
	return resp, err
}

func (cc *ClientCommunicator) Move(previous *game.Move) (communication.MoveResponse, error) {
	var resp communication.MoveResponse
	err := cc.do(http.MethodPost, "/move", communication.MoveRequest{Previous: previous}, &resp)
	return resp, err
}

func (cc *ClientCommunicator) Board() (communication.BoardResponse, error) {
	var resp communication.BoardResponse
	err := cc.do(http.MethodGet, "/board", nil, &resp)
	return resp, err
}

func (cc *ClientCommunicator) do(method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", path, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, cc.serverURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s request: %w", path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := cc.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var e communication.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&e); err != nil || e.Error == "" {
			e.Error = http.StatusText(resp.StatusCode)
		}
		return &communication.StatusError{Code: resp.StatusCode, Message: e.Error}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
