package requirement

import (
	"sort"

	"github.com/imamik/ymir/internal/console"
	"github.com/imamik/ymir/internal/model"
	"github.com/imamik/ymir/internal/resource"
)

// DefaultRegion is offered when nothing better is known.
const DefaultRegion = "us-east-1"

// Region selects a region of the fulfilled "provider". It reads the
// "region" option, otherwise offers the provider regions, defaulting to the
// active project's region.
type Region struct {
	Question string
}

// Fulfill implements resource.Requirement.
func (r Region) Fulfill(ctx *resource.Context, fulfilled resource.Fulfilled) (any, error) {
	if err := fulfilled.Require("provider"); err != nil {
		return nil, err
	}
	provider, err := resource.Value[*model.CloudProvider](fulfilled, "provider")
	if err != nil {
		return nil, err
	}

	regions, err := ctx.Client().GetRegions(ctx, provider)
	if err != nil {
		return nil, err
	}
	if len(regions) == 0 {
		return nil, resource.NewFulfillmentError("No regions found for the %q cloud provider", provider.Name())
	}

	region := ctx.Input().StringOption("region")
	if region == "" {
		region, err = ctx.Console().Choice(ctx, r.Question, regionOptions(regions), defaultRegion(ctx, regions))
		if err != nil {
			return nil, err
		}
	}

	if region == "" {
		return nil, resource.NewValidationError("You must enter a region")
	}
	if _, ok := regions[region]; !ok {
		return nil, resource.NewValidationError("The %q region isn't a valid region", region)
	}
	return region, nil
}

func defaultRegion(ctx *resource.Context, regions map[string]string) string {
	if project := ctx.Project(); project != nil {
		if _, ok := regions[project.Region]; ok {
			return project.Region
		}
	}
	if _, ok := regions[DefaultRegion]; ok {
		return DefaultRegion
	}
	return ""
}

func regionOptions(regions map[string]string) []console.Option {
	codes := make([]string, 0, len(regions))
	for code := range regions {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	options := make([]console.Option, 0, len(codes))
	for _, code := range codes {
		label := code
		if name := regions[code]; name != "" {
			label = name + " (" + code + ")"
		}
		options = append(options, console.Option{Key: code, Label: label})
	}
	return options
}
