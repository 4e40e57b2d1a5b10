package definition_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/imamik/ymir/internal/api"
	"github.com/imamik/ymir/internal/api/mock"
	"github.com/imamik/ymir/internal/console"
	"github.com/imamik/ymir/internal/input"
	"github.com/imamik/ymir/internal/model"
	"github.com/imamik/ymir/internal/resource"
	"github.com/imamik/ymir/internal/resource/requirement"
)

var _ = Describe("Resolving resources", func() {
	var client *mock.Client

	BeforeEach(func() {
		client = &mock.Client{
			GetNetworksFunc: func(context.Context, *model.Team) (model.Collection[*model.Network], error) {
				return model.NewCollection(
					&model.Network{Identifier: 1, Label: "east", Region: "us-east-1"},
					&model.Network{Identifier: 2, Label: "west", Region: "us-west-2"},
				), nil
			},
			GetCertificatesFunc: func(context.Context, *model.Team) (model.Collection[*model.Certificate], error) {
				return model.NewCollection(&model.Certificate{Identifier: 456, Domains: []string{"example.com"}}), nil
			},
		}
	})

	It("offers only the networks of the filtered region", func() {
		scripted := console.NewScripted("2")
		ctx := newContext(client, nil, scripted)

		found, err := ctx.Resolve(resource.KindNetwork, "Which network?", resource.Filters{"region": "us-west-2"})
		Expect(err).NotTo(HaveOccurred())
		Expect(found.Name()).To(Equal("west"))
		Expect(scripted.Offered).To(Equal([][]string{{"2"}}))
	})

	It("reports an unknown certificate ID", func() {
		in := input.Values{Arguments: map[string][]string{"certificate": {"123"}}}
		ctx := newContext(client, in, console.NewScripted())

		_, err := ctx.Resolve(resource.KindCertificate, "Which certificate?", nil)
		var notFound *resource.NotFoundError
		Expect(err).To(BeAssignableToTypeOf(notFound))
		Expect(err).To(MatchError(`Unable to find a SSL certificate with "123" as the ID or name`))
	})
})

var _ = Describe("Provisioning resources", func() {
	var (
		client *mock.Client
		nat    bool
	)

	network := func() *model.Network {
		return &model.Network{Identifier: 5, Label: "main", Region: "us-east-1", HasNatGateway: nat, Provider: provider}
	}

	BeforeEach(func() {
		nat = true
		client = &mock.Client{
			GetNetworksFunc: func(context.Context, *model.Team) (model.Collection[*model.Network], error) {
				return model.NewCollection(network()), nil
			},
			GetCacheTypesFunc: func(context.Context, *model.CloudProvider, api.CacheTypeOptions) (map[string]api.InstanceType, error) {
				return map[string]api.InstanceType{"cache.t3.micro": {CPU: 2, Memory: 512}}, nil
			},
			GetDatabaseServerTypesFunc: func(context.Context, *model.CloudProvider) (map[string]api.InstanceType, error) {
				return map[string]api.InstanceType{"aurora": {}, "db.t3.micro": {CPU: 2, Memory: 1024}}, nil
			},
			CreateCacheClusterFunc: func(_ context.Context, n *model.Network, name, engine, cacheType string) (*model.CacheCluster, error) {
				return &model.CacheCluster{Identifier: 11, Label: name, Engine: engine, Type: cacheType, Network: n}, nil
			},
			CreateDatabaseServerFunc: func(_ context.Context, n *model.Network, name, serverType string, storage int, public bool) (*model.DatabaseServer, error) {
				return &model.DatabaseServer{Identifier: 12, Label: name, Type: serverType, Storage: storage, Public: public, Network: n}, nil
			},
		}
	})

	Context("a cache cluster with a preset engine", func() {
		It("never asks for the engine", func() {
			scripted := console.NewScripted("sessions", "main", "cache.t3.micro")
			ctx := newContext(client, nil, scripted)

			cluster, err := resource.ProvisionAs[*model.CacheCluster](ctx, resource.KindCacheCluster, resource.Fulfilled{"engine": "redis"}, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(cluster.Engine).To(Equal("redis"))
			Expect(cluster.Name()).To(Equal("sessions"))
			Expect(scripted.Asked).To(Equal([]string{
				"What is the name of the cache cluster?",
				"Which network should the cache cluster be created on?",
				"Which type should the cache cluster be?",
			}))
			Expect(client.Mutations).To(Equal([]string{"CreateCacheCluster"}))
		})
	})

	Context("an aurora database server on a network without a NAT gateway", func() {
		BeforeEach(func() {
			nat = false
		})

		It("is cancelled without creating anything when the NAT gateway is declined", func() {
			in := input.Values{
				Arguments: map[string][]string{"name": {"db"}},
				Options:   map[string]any{"network": "main", "type": "aurora"},
			}
			scripted := console.NewScripted(false)
			ctx := newContext(client, in, scripted)

			server, err := ctx.Provision(resource.KindDatabaseServer, nil, nil)
			Expect(err).To(MatchError(resource.ErrCancelled))
			Expect(server).To(BeNil())
			Expect(scripted.Asked).To(Equal([]string{requirement.NatGatewayQuestion}))
			Expect(client.Mutations).To(BeEmpty())
		})

		It("creates a private server once the NAT gateway is accepted", func() {
			in := input.Values{
				Arguments: map[string][]string{"name": {"db"}},
				Options:   map[string]any{"network": "main", "type": "aurora"},
			}
			ctx := newContext(client, in, console.NewScripted(true))

			server, err := resource.ProvisionAs[*model.DatabaseServer](ctx, resource.KindDatabaseServer, nil, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(server.Public).To(BeFalse())
			Expect(server.Storage).To(BeZero())
			Expect(client.Mutations).To(Equal([]string{"CreateDatabaseServer"}))
		})
	})

	Context("a network requirement scoped to a region without networks", func() {
		It("creates the network in that region without asking for one", func() {
			var createdIn string
			client.GetProvidersFunc = func(context.Context, *model.Team) (model.Collection[*model.CloudProvider], error) {
				return model.NewCollection(provider), nil
			}
			client.CreateNetworkFunc = func(_ context.Context, p *model.CloudProvider, name, region string) (*model.Network, error) {
				createdIn = region
				return &model.Network{Identifier: 6, Label: name, Region: region, Provider: p}, nil
			}
			scripted := console.NewScripted("private", "aws")
			ctx := newContext(client, input.Values{}, scripted)

			found, err := requirement.Network("Which network?").Fulfill(ctx, resource.Fulfilled{"region": "eu-west-1"})
			Expect(err).NotTo(HaveOccurred())
			Expect(found.(*model.Network).Region).To(Equal("eu-west-1"))
			Expect(createdIn).To(Equal("eu-west-1"))
			Expect(scripted.Asked).To(Equal([]string{
				"What is the name of the network?",
				"Which cloud provider should the network be created on?",
			}))
			Expect(client.Mutations).To(Equal([]string{"CreateNetwork"}))
		})
	})

	Context("a cache cluster on a network without a NAT gateway", func() {
		BeforeEach(func() {
			nat = false
		})

		It("is cancelled when the NAT gateway is declined", func() {
			in := input.Values{
				Arguments: map[string][]string{"name": {"sessions"}},
				Options:   map[string]any{"network": "main", "engine": "valkey"},
			}
			ctx := newContext(client, in, console.NewScripted(false))

			_, err := ctx.Provision(resource.KindCacheCluster, nil, nil)
			Expect(err).To(MatchError(resource.ErrCancelled))
			Expect(client.Mutations).To(BeEmpty())
		})
	})
})
