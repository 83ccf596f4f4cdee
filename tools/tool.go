package tools

import "context"

type ITool interface {
	SetTitle(string)
	Title() string
	SetDescription(string)
	Description() string
}

// Tool is a deterministic prompt transformation with typed input and output
type Tool[I any, O any] interface {
	ITool
	Run(context.Context, *I) (*O, error)
}
