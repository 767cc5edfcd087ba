package mcp

import (
	"context"
	"log/slog"
	"time"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/nvandessel/textview/internal/ratelimit"
	"github.com/nvandessel/textview/internal/textview"
	"github.com/nvandessel/textview/internal/tokenize"
)

// registerTools registers all textview MCP tools with the server.
func (s *Server) registerTools() {
	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "textview_split",
		Description: "Split text into words (maximal runs of letters, digits and underscore) and describe the result",
	}, s.handleSplit)

	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "textview_at",
		Description: "Return the word at an index; negative indices count from the end",
	}, s.handleAt)

	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "textview_slice",
		Description: "Return the words selected by a start:stop[:step] range; out-of-range bounds are clamped",
	}, s.handleSlice)

	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "textview_find",
		Description: "Report whether a word occurs and the index of its first occurrence",
	}, s.handleFind)
}

// newView returns the view of text under the server defaults, overriding
// the mode when one is given. Views are immutable, so cached ones are shared
// between calls.
func (s *Server) newView(text, mode string) (*textview.TokenizedText, error) {
	opts := s.opts
	if mode != "" {
		m, err := tokenize.ParseMode(mode)
		if err != nil {
			return nil, err
		}
		opts.Mode = m
	}
	if opts.Mode == "" {
		opts.Mode = tokenize.DefaultMode
	}

	key := viewKey{text: text, mode: opts.Mode}
	if view, ok := s.views.Get(key); ok {
		return view, nil
	}
	view := textview.NewWithOptions(text, opts)
	s.views.Add(key, view)
	return view, nil
}

func viewAttr(view *textview.TokenizedText) slog.Attr {
	if view == nil {
		return slog.Attr{}
	}
	return slog.Any("text", view)
}

func (s *Server) handleSplit(ctx context.Context, req *sdk.CallToolRequest, args SplitInput) (_ *sdk.CallToolResult, _ SplitOutput, retErr error) {
	start := time.Now()
	var view *textview.TokenizedText
	defer func() {
		s.auditTool(ctx, "textview_split", start, retErr, viewAttr(view))
	}()

	if err := ratelimit.CheckLimit(s.toolLimiters, "textview_split"); err != nil {
		return nil, SplitOutput{}, err
	}

	view, err := s.newView(args.Text, args.Mode)
	if err != nil {
		return nil, SplitOutput{}, err
	}

	return nil, SplitOutput{
		Words:     view.Words(),
		Count:     view.Len(),
		Repr:      view.Repr(),
		WordsRepr: view.WordsRepr(),
		Summary:   view.Summary(),
	}, nil
}

func (s *Server) handleAt(ctx context.Context, req *sdk.CallToolRequest, args AtInput) (_ *sdk.CallToolResult, _ AtOutput, retErr error) {
	start := time.Now()
	var view *textview.TokenizedText
	defer func() {
		s.auditTool(ctx, "textview_at", start, retErr, viewAttr(view), slog.Int("index", args.Index))
	}()

	if err := ratelimit.CheckLimit(s.toolLimiters, "textview_at"); err != nil {
		return nil, AtOutput{}, err
	}

	view, err := s.newView(args.Text, args.Mode)
	if err != nil {
		return nil, AtOutput{}, err
	}

	word, err := view.At(args.Index)
	if err != nil {
		return nil, AtOutput{}, err
	}

	index := args.Index
	if index < 0 {
		index += view.Len()
	}
	return nil, AtOutput{Word: word, Index: index}, nil
}

func (s *Server) handleSlice(ctx context.Context, req *sdk.CallToolRequest, args SliceInput) (_ *sdk.CallToolResult, _ SliceOutput, retErr error) {
	start := time.Now()
	var view *textview.TokenizedText
	defer func() {
		s.auditTool(ctx, "textview_slice", start, retErr, viewAttr(view), slog.String("range", args.Range))
	}()

	if err := ratelimit.CheckLimit(s.toolLimiters, "textview_slice"); err != nil {
		return nil, SliceOutput{}, err
	}

	r, err := textview.ParseRange(args.Range)
	if err != nil {
		return nil, SliceOutput{}, err
	}

	view, err = s.newView(args.Text, args.Mode)
	if err != nil {
		return nil, SliceOutput{}, err
	}

	words := view.Slice(r)
	return nil, SliceOutput{
		Words: words,
		Count: len(words),
		Range: r.String(),
	}, nil
}

func (s *Server) handleFind(ctx context.Context, req *sdk.CallToolRequest, args FindInput) (_ *sdk.CallToolResult, _ FindOutput, retErr error) {
	start := time.Now()
	var view *textview.TokenizedText
	defer func() {
		s.auditTool(ctx, "textview_find", start, retErr, viewAttr(view), slog.String("word", args.Word))
	}()

	if err := ratelimit.CheckLimit(s.toolLimiters, "textview_find"); err != nil {
		return nil, FindOutput{}, err
	}

	view, err := s.newView(args.Text, args.Mode)
	if err != nil {
		return nil, FindOutput{}, err
	}

	index := view.Index(args.Word)
	return nil, FindOutput{Found: index >= 0, Index: index}, nil
}
