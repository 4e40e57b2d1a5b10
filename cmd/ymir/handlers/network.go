package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/ymir/internal/input"
	"github.com/imamik/ymir/internal/model"
	"github.com/imamik/ymir/internal/resource"
	"github.com/imamik/ymir/internal/resource/requirement"
)

// NatAdd adds a NAT gateway to a network after confirmation.
func NatAdd(ctx context.Context, g *Globals, in input.Input) error {
	s, err := newSession(g)
	if err != nil {
		return err
	}
	rctx, err := s.resourceContext(ctx, in)
	if err != nil {
		return err
	}

	network, err := resource.ResolveAs[*model.Network](rctx, resource.KindNetwork, "Which network should get a NAT gateway?", nil)
	if err != nil {
		return err
	}
	if network.HasNatGateway {
		s.console.Info("The %q network already has a NAT gateway", network.Name())
		return nil
	}

	confirm := requirement.NatGateway{
		Question: fmt.Sprintf("A NAT gateway costs roughly $32/month. Do you want to add one to the %q network?", network.Name()),
	}
	if _, err := rctx.Fulfill(confirm, resource.Fulfilled{"network": network}); err != nil {
		return err
	}

	if err := s.client.AddNatGateway(ctx, network); err != nil {
		return fmt.Errorf("failed to add NAT gateway: %w", err)
	}

	s.console.Success("NAT gateway added to the %q network", network.Name())
	return nil
}
