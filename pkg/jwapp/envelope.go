package jwapp

import (
	"encoding/json"

	"github.com/cczukit/cczukit-go/pkg/errx"
)

// Envelope is the generic response shape every academic-affairs endpoint
// answers with: {"status": int, "message": [T], "token": string?}. The
// message field is decoded permissively: a missing field or one that does
// not hold an array of T degrades to an empty Items slice rather than an
// error, matching how the upstream actually behaves on edge cases.
type Envelope[T any] struct {
	Status int
	Items  []T
	Token  string
}

func (e *Envelope[T]) UnmarshalJSON(data []byte) error {
	var raw struct {
		Status  int             `json:"status"`
		Message json.RawMessage `json:"message"`
		Token   *string         `json:"token"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return errx.Decoding(err)
	}

	e.Status = raw.Status
	if raw.Token != nil {
		e.Token = *raw.Token
	}

	e.Items = nil
	if len(raw.Message) > 0 {
		var items []T
		if err := json.Unmarshal(raw.Message, &items); err == nil {
			e.Items = items
		}
	}
	return nil
}

// decodeEnvelope parses body into an Envelope of T.
func decodeEnvelope[T any](body []byte) (*Envelope[T], error) {
	var env Envelope[T]
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, errx.Decoding(err)
	}
	return &env, nil
}
