package systems

import (
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/driftline/archetypes"
	"github.com/automoto/driftline/components"
	"github.com/automoto/driftline/network"
	"github.com/automoto/driftline/shared/messages"
	"github.com/automoto/driftline/shared/netcomponents"
	"github.com/automoto/driftline/shared/netconfig"
	"github.com/automoto/driftline/shared/spatial"
	"github.com/automoto/driftline/tags"
)

// PresenceSystem mirrors remote karts into ghost entities and publishes the
// local kart's transform. Ghosts are display-only; nothing here touches the
// simulation.
type PresenceSystem struct {
	client     *network.Client
	tick       int
	presentIDs map[esync.NetworkId]bool
}

func NewPresenceSystem(client *network.Client) *PresenceSystem {
	return &PresenceSystem{
		client:     client,
		presentIDs: make(map[esync.NetworkId]bool),
	}
}

// Update runs once per fixed tick, after UpdatePhysicsWorld so the published
// transform is the one this tick settled on.
func (ps *PresenceSystem) Update(e *ecs.ECS) {
	if ps.client == nil {
		return
	}

	if ps.client.State() == network.StateJoinedSession {
		ps.tick++
		if ps.tick%netconfig.PublishEvery == 0 {
			ps.publishLocal(e)
		}
	}

	if snap := ps.client.LatestSnapshot(); snap != nil {
		ps.applySnapshot(e, *snap)
	}

	ps.advanceGhosts(e)
}

func (ps *PresenceSystem) publishLocal(e *ecs.ECS) {
	entry, ok := tags.Kart.First(e.World)
	if !ok {
		return
	}
	body := components.Body.Get(entry).Body
	if body == nil {
		return
	}
	vehicle := components.Vehicle.Get(entry)
	pos := body.Translation()

	_ = ps.client.SendMessage(messages.KartTransform{
		X:         pos.X,
		Y:         pos.Y,
		Z:         pos.Z,
		Heading:   vehicle.SteeringAngle,
		DriftLean: vehicle.DriftSteeringAngle,
	})
}

func (ps *PresenceSystem) applySnapshot(e *ecs.ECS, snapshot esync.WorldSnapshot) {
	world := e.World
	myNetID := ps.client.NetworkID()

	clear(ps.presentIDs)

	for _, ent := range snapshot {
		ps.presentIDs[ent.Id] = true
		if ent.Id == myNetID {
			// The local kart renders from its own simulation, never from
			// its echoed presence state.
			continue
		}

		var kart *netcomponents.NetKartData
		for _, componentBytes := range ent.State {
			instance, err := esync.Mapper.Deserialize(componentBytes)
			if err != nil {
				continue
			}
			if v, ok := instance.(netcomponents.NetKartData); ok {
				kart = &v
			}
		}
		if kart == nil {
			continue
		}

		entry := ps.findGhost(e, ent.Id)
		if entry == nil {
			entry = archetypes.Ghost.Spawn(e)
			components.Ghost.SetValue(entry, components.GhostData{NetworkID: ent.Id})
		}
		ghost := components.Ghost.Get(entry)
		ghost.Name = kart.Name

		target := spatial.Vec3{X: kart.X, Y: kart.Y, Z: kart.Z}
		if !ghost.Initialized {
			ghost.PrevPos = target
			ghost.TargetPos = target
			ghost.PrevHeading = kart.Heading
			ghost.TargetHead = kart.Heading
			ghost.Position = target
			ghost.Heading = kart.Heading
			ghost.T = 1
			ghost.Initialized = true
		} else {
			// Restart the lerp from wherever the ghost is displayed now so
			// a late or early snapshot never causes a visible jump.
			ghost.PrevPos = ghost.Position
			ghost.PrevHeading = ghost.Heading
			ghost.TargetPos = target
			ghost.TargetHead = kart.Heading
			ghost.T = 0
		}
		ghost.DriftLean = kart.DriftLean
	}

	// Drop ghosts for karts that left the session.
	var gone []*donburi.Entry
	tags.Ghost.Each(world, func(entry *donburi.Entry) {
		if !ps.presentIDs[components.Ghost.Get(entry).NetworkID] {
			gone = append(gone, entry)
		}
	})
	for _, entry := range gone {
		entry.Remove()
	}
}

func (ps *PresenceSystem) findGhost(e *ecs.ECS, id esync.NetworkId) *donburi.Entry {
	var found *donburi.Entry
	tags.Ghost.Each(e.World, func(entry *donburi.Entry) {
		if components.Ghost.Get(entry).NetworkID == id {
			found = entry
		}
	})
	return found
}

// advanceGhosts steps every ghost's interpolation. T covers one server
// broadcast interval per full unit; with the 60 Hz fixed step and a 20 Hz
// server that is three ticks per snapshot.
func (ps *PresenceSystem) advanceGhosts(e *ecs.ECS) {
	tickRate := ps.client.TickRate()
	if tickRate <= 0 {
		tickRate = netconfig.DefaultTickRate
	}
	step := float64(tickRate) * FixedTimestep

	tags.Ghost.Each(e.World, func(entry *donburi.Entry) {
		ghost := components.Ghost.Get(entry)
		if !ghost.Initialized {
			return
		}
		ghost.T += step
		t := ghost.T
		if t > 1 {
			t = 1
		}
		ghost.Position = ghost.PrevPos.Add(ghost.TargetPos.Sub(ghost.PrevPos).Scale(t))
		ghost.Heading = ghost.PrevHeading + (ghost.TargetHead-ghost.PrevHeading)*t
	})
}
