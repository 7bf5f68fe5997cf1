// Package jsonrpc implements the JSON-RPC 2.0 envelope.
//
// A Response is built with NewResult or NewError only, so it carries exactly
// one of a result or an error object.
package jsonrpc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

const Version = "2.0"

// Codes in -32768..-32000 are reserved by JSON-RPC 2.0. Application codes
// must be allocated outside that range.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

var (
	errInvalidID       = errors.New("id must be a string, number or null")
	errInvalidResponse = errors.New("response must carry exactly one of result or error")
)

// ID is a request id kept verbatim: a JSON string, number or null.
type ID json.RawMessage

func StringID(s string) ID {
	data, _ := json.Marshal(s)
	return ID(data)
}

func IntID(n int64) ID {
	return ID(strconv.FormatInt(n, 10))
}

func (id ID) IsNull() bool {
	return len(id) == 0 || bytes.Equal(id, []byte("null"))
}

func (id ID) String() string {
	if id.IsNull() {
		return "null"
	}
	return string(id)
}

func (id ID) MarshalJSON() ([]byte, error) {
	if len(id) == 0 {
		return []byte("null"), nil
	}
	return id, nil
}

func (id *ID) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return errInvalidID
	}
	switch c := trimmed[0]; {
	case c == '"', c == '-', c >= '0' && c <= '9', bytes.Equal(trimmed, []byte("null")):
	default:
		return errInvalidID
	}
	*id = append((*id)[:0], trimmed...)
	return nil
}

type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
	ID      ID              `json:"id,omitempty"`
}

func NewRequest(id ID, method string, params any) (Request, error) {
	req := Request{JSONRPC: Version, Method: method, ID: id}
	if params != nil {
		raw, err := json.Marshal(params)
		if err != nil {
			return Request{}, fmt.Errorf("encode params: %w", err)
		}
		req.Params = raw
	}
	return req, nil
}

// Error is the JSON-RPC error object. It doubles as a Go error so business
// code can return it and have it rendered verbatim in the response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("jsonrpc error %d: %s", e.Code, e.Message)
}

func NewParseError() *Error {
	return &Error{Code: CodeParseError, Message: "Parse error"}
}

func NewInvalidRequest(reason string) *Error {
	return &Error{Code: CodeInvalidRequest, Message: "Invalid Request", Data: map[string]string{"reason": reason}}
}

func NewMethodNotFound() *Error {
	return &Error{Code: CodeMethodNotFound, Message: "Method not found"}
}

func NewInvalidParams(reason string) *Error {
	return &Error{Code: CodeInvalidParams, Message: "Invalid params", Data: map[string]string{"reason": reason}}
}

type Response struct {
	id     ID
	result any
	err    *Error
}

func NewResult(id ID, result any) Response {
	return Response{id: id, result: result}
}

func NewError(id ID, err *Error) Response {
	if err == nil {
		err = &Error{Code: CodeInternalError, Message: "Internal error"}
	}
	return Response{id: id, err: err}
}

func (r Response) ID() ID {
	return r.id
}

func (r Response) Result() any {
	return r.result
}

// Err returns the error object, nil for a successful response.
func (r Response) Err() *Error {
	return r.err
}

// DecodeResult unmarshals the result of a decoded response into v.
func (r Response) DecodeResult(v any) error {
	if r.err != nil {
		return r.err
	}
	raw, ok := r.result.(json.RawMessage)
	if !ok {
		data, err := json.Marshal(r.result)
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		raw = data
	}
	return json.Unmarshal(raw, v)
}

type wireResponse struct {
	JSONRPC string `json:"jsonrpc"`
	Result  any    `json:"result"`
	Error   *Error `json:"error,omitempty"`
	ID      ID     `json:"id"`
}

func (r Response) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireResponse{JSONRPC: Version, Result: r.result, Error: r.err, ID: r.id})
}

func (r *Response) UnmarshalJSON(data []byte) error {
	var w struct {
		JSONRPC string          `json:"jsonrpc"`
		Result  json.RawMessage `json:"result"`
		Error   *Error          `json:"error"`
		ID      ID              `json:"id"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	hasResult := len(w.Result) > 0 && !bytes.Equal(bytes.TrimSpace(w.Result), []byte("null"))
	switch {
	case w.Error != nil && hasResult:
		return errInvalidResponse
	case w.Error != nil:
		*r = NewError(w.ID, w.Error)
	default:
		result := w.Result
		if len(result) == 0 {
			result = json.RawMessage("null")
		}
		*r = NewResult(w.ID, result)
	}
	return nil
}
