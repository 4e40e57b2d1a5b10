package requirement

import (
	"fmt"
	"strconv"

	"github.com/imamik/ymir/internal/console"
	"github.com/imamik/ymir/internal/model"
	"github.com/imamik/ymir/internal/resource"
)

const (
	// DefaultStorage is the default database server storage in GB.
	DefaultStorage = 50

	minStorage = 20
	maxStorage = 65536
)

var storageRule = fmt.Sprintf("min=%d,max=%d", minStorage, maxStorage)

// DatabaseServerType chooses the instance type of a database server. It
// depends on "network".
type DatabaseServerType struct {
	Question string
}

// Fulfill implements resource.Requirement.
func (r DatabaseServerType) Fulfill(ctx *resource.Context, fulfilled resource.Fulfilled) (any, error) {
	if err := fulfilled.Require("network"); err != nil {
		return nil, err
	}
	network, err := resource.Value[*model.Network](fulfilled, "network")
	if err != nil {
		return nil, err
	}
	provider, err := providerOf(ctx, network)
	if err != nil {
		return nil, err
	}

	types, err := ctx.Client().GetDatabaseServerTypes(ctx, provider)
	if err != nil {
		return nil, err
	}
	if len(types) == 0 {
		return nil, resource.NewFulfillmentError("No database server types found")
	}

	return chooseInstanceType(ctx, r.Question, types, "db.t3.micro")
}

// DatabaseServerStorage asks for the storage of a database server in GB. It
// depends on "type"; Aurora servers have no fixed storage and get 0.
type DatabaseServerStorage struct {
	Question string
}

// Fulfill implements resource.Requirement.
func (r DatabaseServerStorage) Fulfill(ctx *resource.Context, fulfilled resource.Fulfilled) (any, error) {
	if err := fulfilled.Require("type"); err != nil {
		return nil, err
	}
	serverType, err := fulfilled.String("type")
	if err != nil {
		return nil, err
	}
	if model.IsAuroraType(serverType) {
		return 0, nil
	}

	if storage, ok := ctx.Input().NumericOption("storage"); ok {
		if err := validateStorage(strconv.Itoa(storage)); err != nil {
			return nil, err
		}
		return storage, nil
	}

	answer, err := ctx.Console().Ask(ctx, r.Question, strconv.Itoa(DefaultStorage), validateStorage)
	if err != nil {
		return nil, err
	}
	if err := validateStorage(answer); err != nil {
		return nil, err
	}
	storage, _ := strconv.Atoi(answer)
	return storage, nil
}

func validateStorage(s string) error {
	storage, err := strconv.Atoi(s)
	if err != nil || validate.Var(storage, storageRule) != nil {
		return resource.NewValidationError("The maximum allocated storage needs to be a number between %d and %d", minStorage, maxStorage)
	}
	return nil
}

// PrivateDatabaseServer decides whether a database server is private. It
// depends on "network" and "type". Aurora servers are always private. A
// private server needs a NAT gateway on its network: when the network has
// none the user must agree to one being added, or the command is cancelled.
type PrivateDatabaseServer struct {
	Question string
}

// NatGatewayQuestion is asked before a private server forces a NAT gateway.
const NatGatewayQuestion = "A private database server requires a NAT gateway on its network, which costs roughly $32/month. Do you want to continue?"

// Fulfill implements resource.Requirement.
func (r PrivateDatabaseServer) Fulfill(ctx *resource.Context, fulfilled resource.Fulfilled) (any, error) {
	if err := fulfilled.Require("network", "type"); err != nil {
		return nil, err
	}
	network, err := resource.Value[*model.Network](fulfilled, "network")
	if err != nil {
		return nil, err
	}
	serverType, err := fulfilled.String("type")
	if err != nil {
		return nil, err
	}

	in := ctx.Input()
	if in.BooleanOption("public") && in.BooleanOption("private") {
		return nil, resource.NewValidationError("You cannot use both the --public and --private options")
	}

	var private bool
	switch {
	case model.IsAuroraType(serverType):
		private = true
	case in.BooleanOption("public"):
		private = false
	case in.BooleanOption("private"):
		private = true
	default:
		public, err := ctx.Console().Confirm(ctx, r.Question, true)
		if err != nil {
			return nil, err
		}
		private = !public
	}

	if private && !network.HasNatGateway {
		if _, err := (Confirmation{Question: NatGatewayQuestion, Default: true, Cancel: true}).Fulfill(ctx, fulfilled); err != nil {
			return nil, err
		}
	}
	return private, nil
}

// DatabaseNames selects the databases a user gets access to. It depends on
// "database_server" and reads the "databases" option before asking.
type DatabaseNames struct {
	Question string
}

// Fulfill implements resource.Requirement.
func (r DatabaseNames) Fulfill(ctx *resource.Context, fulfilled resource.Fulfilled) (any, error) {
	if err := fulfilled.Require("database_server"); err != nil {
		return nil, err
	}
	server, err := resource.Value[*model.DatabaseServer](fulfilled, "database_server")
	if err != nil {
		return nil, err
	}

	if names := ctx.Input().ArrayOption("databases"); len(names) > 0 {
		return names, nil
	}

	databases, err := ctx.Client().GetDatabases(ctx, server)
	if err != nil {
		return nil, err
	}
	if databases.IsEmpty() {
		return []string{}, nil
	}

	names, err := ctx.Console().Multichoice(ctx, r.Question, console.Options(databases.Names()...), nil)
	if err != nil {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}
