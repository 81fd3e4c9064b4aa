package core

import "context"

// Handler turns one relay request into a response page.
type Handler interface {
	Handle(ctx context.Context, req Request) (string, error)
}

// DemoHandler answers every request with the first primes above Seeds,
// computed through Dispatcher. The request URL is not consulted.
type DemoHandler struct {
	Dispatcher Dispatcher
	Renderer   *Renderer
	Seeds      []int
}

func (h *DemoHandler) Handle(ctx context.Context, req Request) (string, error) {
	records, err := h.Dispatcher.Dispatch(ctx, h.Seeds, PrimeRecordFor)
	if err != nil {
		return "", err
	}
	return h.Renderer.Render(records)
}
