package requirement

import (
	"github.com/imamik/ymir/internal/model"
	"github.com/imamik/ymir/internal/resource"
)

// Confirmation asks a yes/no question. When Option is set and passed, the
// question is skipped. A "no" either cancels the command or yields Declined.
type Confirmation struct {
	Question string
	Default  bool
	Option   string
	Cancel   bool
	Declined any
}

// Fulfill implements resource.Requirement.
func (r Confirmation) Fulfill(ctx *resource.Context, _ resource.Fulfilled) (any, error) {
	if r.Option != "" && ctx.Input().BooleanOption(r.Option) {
		return true, nil
	}

	confirmed, err := ctx.Console().Confirm(ctx, r.Question, r.Default)
	if err != nil {
		return nil, err
	}
	if confirmed {
		return true, nil
	}
	if r.Cancel {
		return nil, resource.ErrCancelled
	}
	return r.Declined, nil
}

// NatGateway makes sure the fulfilled "network" has a NAT gateway, or that
// the user agrees to one being added. Declining cancels the command.
type NatGateway struct {
	Question string
}

// Fulfill implements resource.Requirement.
func (r NatGateway) Fulfill(ctx *resource.Context, fulfilled resource.Fulfilled) (any, error) {
	if err := fulfilled.Require("network"); err != nil {
		return nil, err
	}
	network, err := resource.Value[*model.Network](fulfilled, "network")
	if err != nil {
		return nil, err
	}
	if network.HasNatGateway {
		return true, nil
	}
	return Confirmation{Question: r.Question, Default: true, Cancel: true}.Fulfill(ctx, fulfilled)
}
