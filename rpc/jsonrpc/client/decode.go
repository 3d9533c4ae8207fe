package client

import (
	"encoding/json"
	"errors"
	"fmt"

	rpctypes "github.com/blouflashdb/nimiq-rpc/rpc/jsonrpc/types"
)

func unmarshalResponseBytes(responseBytes []byte, expectedID rpctypes.JSONRPCStringID, result interface{}) error {
	response := &rpctypes.RPCResponse{}
	if err := json.Unmarshal(responseBytes, response); err != nil {
		return fmt.Errorf("error unmarshaling response: %w", err)
	}

	if response.Error != nil {
		return response.Error
	}

	if err := validateAndVerifyID(response, expectedID); err != nil {
		return fmt.Errorf("wrong ID: %w", err)
	}

	if result == nil {
		return nil
	}

	return unmarshalResult(response.Result, result)
}

// unmarshalResult decodes a JSON-RPC result, unwrapping the Albatross
// {data, metadata} envelope when present. Results that do not use the
// envelope (plain numbers, strings, arrays) decode directly.
func unmarshalResult(raw json.RawMessage, result interface{}) error {
	var envelope rpctypes.RPCData
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Data != nil {
		raw = envelope.Data
	}

	if err := json.Unmarshal(raw, result); err != nil {
		return fmt.Errorf("error unmarshaling result: %w", err)
	}
	return nil
}

// From the JSON-RPC 2.0 spec:
// id: It MUST be the same as the value of the id member in the Request Object.
func validateAndVerifyID(res *rpctypes.RPCResponse, expectedID rpctypes.JSONRPCStringID) error {
	if err := validateResponseID(res.ID); err != nil {
		return err
	}
	if expectedID != res.ID.(rpctypes.JSONRPCStringID) { // validateResponseID ensured res.ID has the right type
		return fmt.Errorf("response ID (%s) does not match request ID (%s)", res.ID, expectedID)
	}
	return nil
}

func validateResponseID(id interface{}) error {
	if id == nil {
		return errors.New("no ID")
	}
	_, ok := id.(rpctypes.JSONRPCStringID)
	if !ok {
		return fmt.Errorf("expected JSONRPCStringID, but got: %T", id)
	}
	return nil
}
