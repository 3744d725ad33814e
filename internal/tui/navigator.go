package tui

import (
	"context"

	"github.com/julianstephens/calgrid/internal/detail"
	"github.com/julianstephens/calgrid/internal/logger"
)

// Navigator performs detail-sheet actions for the TUI. Nil funcs only log
// the request.
type Navigator struct {
	OpenFunc func(ctx context.Context, ref detail.RecordRef) error
	FlowFunc func(ctx context.Context, flow string, ref detail.RecordRef) error
}

func (n *Navigator) OpenRecord(ctx context.Context, ref detail.RecordRef) error {
	logger.Info("Opening record", "id", ref.RecordID, "object", ref.ObjectAPIName, "action", ref.ActionName)
	if n == nil || n.OpenFunc == nil {
		return nil
	}
	return n.OpenFunc(ctx, ref)
}

func (n *Navigator) LaunchFlow(ctx context.Context, flow string, ref detail.RecordRef) error {
	logger.Info("Launching flow", "flow", flow, "id", ref.RecordID)
	if n == nil || n.FlowFunc == nil {
		return nil
	}
	return n.FlowFunc(ctx, flow, ref)
}
