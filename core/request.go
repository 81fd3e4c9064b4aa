package core

import "strings"

const requestMinLines = 4

// Request is one pending client request handed out by the relay.
type Request struct {
	Name       string
	URL        string
	RemoteAddr string
	Header     []string
}

// ParseRequest splits a relay blob of the form name\nurl\nremoteaddr\nheader...
func ParseRequest(blob string) (Request, error) {
	lines := strings.Split(blob, "\n")
	if len(lines) < requestMinLines {
		return Request{}, &MalformedRequestError{Lines: len(lines)}
	}

	return Request{
		Name:       lines[0],
		URL:        lines[1],
		RemoteAddr: lines[2],
		Header:     lines[3:],
	}, nil
}
