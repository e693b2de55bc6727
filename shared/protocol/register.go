package protocol

import (
	"github.com/leap-fish/necs/esync"

	"github.com/automoto/driftline/shared/netcomponents"
)

// Sync ID constants - ID 1 is reserved by necs for NetworkId
const (
	SyncIDNetKart uint = 10
)

// Interpolation IDs (uint8 for WithInterpFn)
const (
	InterpIDNetKart uint8 = 10
)

// RegisterComponents registers all network components with necs for
// serialization. Both the presence server and the client must call this
// before any network operations.
func RegisterComponents() error {
	return esync.RegisterComponent(
		SyncIDNetKart,
		netcomponents.NetKartData{},
		netcomponents.NetKart,
		esync.WithInterpFn(InterpIDNetKart, netcomponents.LerpNetKart),
	)
}
