package request

import "encoding/json"

// PaymentCreateRequest is the payload for charging an estimate.
//
// `gateway_payload` is forwarded as-is (raw JSON) to support varying
// provider schemas; the amount is always computed server-side and any amount
// in the payload is overwritten.
type PaymentCreateRequest struct {
	GatewayPayload json.RawMessage `json:"gateway_payload"`
}
