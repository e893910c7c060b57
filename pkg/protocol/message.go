package protocol

import (
	"encoding/json"

	"github.com/vango-dev/vroute/internal/errors"
	"github.com/vango-dev/vroute/pkg/browser"
)

// MaxMessageSize bounds a single client message in bytes.
const MaxMessageSize = 64 << 10

// Type identifies a message.
type Type string

// Client to server.
const (
	TypeHello      Type = "hello"
	TypePopState   Type = "popstate"
	TypeHashChange Type = "hashchange"
	TypeEvent      Type = "event"
)

// Server to client.
const (
	TypeRender      Type = "render"
	TypePush        Type = "push"
	TypeReplace     Type = "replace"
	TypeHash        Type = "hash"
	TypeReplaceHash Type = "replaceHash"
	TypeGo          Type = "go"
	TypeReload      Type = "reload"
	TypeError       Type = "error"
)

// FromClient reports whether t is sent by the client.
func (t Type) FromClient() bool {
	switch t {
	case TypeHello, TypePopState, TypeHashChange, TypeEvent:
		return true
	}
	return false
}

// Message is a single frame in either direction. Fields irrelevant to the
// type are left empty.
type Message struct {
	Type Type `json:"type"`

	// Location fields (hello, popstate, hashchange).
	Path  string `json:"path,omitempty"`
	Query string `json:"query,omitempty"`
	Hash  string `json:"hash,omitempty"`

	// Event fields (event, reload).
	HID  string `json:"hid,omitempty"`
	Name string `json:"name,omitempty"`

	// Command fields.
	HTML  string `json:"html,omitempty"`
	URL   string `json:"url,omitempty"`
	Delta int    `json:"delta,omitempty"`

	// Error fields.
	Code    ErrorCode `json:"code,omitempty"`
	Message string    `json:"message,omitempty"`
}

// Location returns the browser location carried by a location message.
// The hash is percent-decoded.
func (m Message) Location() browser.Location {
	return browser.Location{
		Path:  m.Path,
		Query: browser.TrimQuery(m.Query),
		Hash:  browser.DecodeFragment(browser.TrimHash(m.Hash)),
	}
}

// LocationMessage builds a client location message.
func LocationMessage(t Type, loc browser.Location) Message {
	return Message{Type: t, Path: loc.Path, Query: loc.Query, Hash: loc.Hash}
}

// Encode marshals m.
func Encode(m Message) ([]byte, error) {
	return json.Marshal(m)
}

// Decode parses and validates a client message. Invalid input yields an
// R007 error.
func Decode(data []byte) (Message, error) {
	if len(data) > MaxMessageSize {
		return Message{}, errors.New("R007").WithDetailf("message of %d bytes", len(data))
	}

	var m Message
	if err := json.Unmarshal(data, &m); err != nil {
		return Message{}, errors.New("R007").Wrap(err)
	}
	if err := Validate(m); err != nil {
		return Message{}, err
	}
	return m, nil
}

// Validate checks that a client message carries the fields its type
// requires.
func Validate(m Message) error {
	if !m.Type.FromClient() {
		return errors.New("R007").WithDetailf("unexpected message type %q", m.Type)
	}

	switch m.Type {
	case TypeHello, TypePopState, TypeHashChange:
		if m.Path == "" || m.Path[0] != '/' {
			return errors.New("R007").WithDetailf("%s: path %q must start with /", m.Type, m.Path)
		}
	case TypeEvent:
		if m.HID == "" || m.Name == "" {
			return errors.New("R007").WithDetail("event: hid and name are required")
		}
	}
	return nil
}
