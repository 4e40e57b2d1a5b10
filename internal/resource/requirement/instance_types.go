package requirement

import (
	"fmt"
	"sort"

	"github.com/dustin/go-humanize"

	"github.com/imamik/ymir/internal/api"
	"github.com/imamik/ymir/internal/console"
	"github.com/imamik/ymir/internal/model"
	"github.com/imamik/ymir/internal/resource"
)

// instanceTypeOptions lists instance types sorted by name, labelled with
// their size.
func instanceTypeOptions(types map[string]api.InstanceType) []console.Option {
	names := make([]string, 0, len(types))
	for name := range types {
		names = append(names, name)
	}
	sort.Strings(names)

	options := make([]console.Option, 0, len(names))
	for _, name := range names {
		options = append(options, console.Option{Key: name, Label: instanceTypeLabel(name, types[name])})
	}
	return options
}

func instanceTypeLabel(name string, t api.InstanceType) string {
	if t.CPU == 0 && t.Memory == 0 {
		return name
	}
	return fmt.Sprintf("%s (%d vCPU, %s RAM)", name, t.CPU, humanize.IBytes(uint64(t.Memory)*humanize.MiByte))
}

// chooseInstanceType reads option "type" or asks to choose among types.
func chooseInstanceType(ctx *resource.Context, question string, types map[string]api.InstanceType, preferred string) (string, error) {
	chosen := ctx.Input().StringOption("type")
	if chosen == "" {
		def := preferred
		if _, ok := types[def]; !ok {
			def = ""
		}
		var err error
		chosen, err = ctx.Console().Choice(ctx, question, instanceTypeOptions(types), def)
		if err != nil {
			return "", err
		}
	}

	if _, ok := types[chosen]; !ok {
		return "", resource.NewValidationError("The %q type isn't a valid type", chosen)
	}
	return chosen, nil
}

// providerOf returns the cloud provider owning network, fetching the full
// network when the provider was not embedded.
func providerOf(ctx *resource.Context, network *model.Network) (*model.CloudProvider, error) {
	if network.Provider != nil {
		return network.Provider, nil
	}
	full, err := ctx.Client().GetNetwork(ctx, network.ID())
	if err != nil {
		return nil, err
	}
	if full.Provider == nil {
		return nil, resource.NewFulfillmentError("Unable to determine the cloud provider of the %q network", network.Name())
	}
	return full.Provider, nil
}
