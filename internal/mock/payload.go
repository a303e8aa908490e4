package mock

// Payload is the synthesized response envelope, mirroring the API
// contract the dashboard expects. Data stays present (null when empty)
// so fallback answers remain success-shaped.
type Payload struct {
	Code    int            `json:"code"`
	Message string         `json:"message"`
	Data    any            `json:"data"`
	Meta    map[string]any `json:"meta,omitempty"`
}

func Ok(data any) Payload {
	return Payload{Code: 0, Message: "ok", Data: data}
}

func OkMeta(data any, meta map[string]any) Payload {
	return Payload{Code: 0, Message: "ok", Data: data, Meta: meta}
}

// Empty answers API-shaped paths no route models.
func Empty() Payload {
	return Payload{Code: 0, Message: "ok", Data: nil}
}

// SimulatedAck acknowledges a mutating call without doing anything.
func SimulatedAck() Payload {
	return Payload{
		Code:    0,
		Message: "ok",
		Data: map[string]any{
			"simulated": true,
			"message":   "action acknowledged in demo mode, nothing was executed",
		},
	}
}

// SettingsAck is the bare success for settings writes. It carries no
// simulated marker.
func SettingsAck() Payload {
	return Payload{Code: 0, Message: "ok", Data: map[string]any{"saved": true}}
}
