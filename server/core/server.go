package core

import (
	"log"
	"sync"

	"github.com/leap-fish/necs/esync"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/yohamta/donburi"

	"github.com/automoto/driftline/shared/messages"
	"github.com/automoto/driftline/shared/netcomponents"
	"github.com/automoto/driftline/shared/netconfig"
)

// Server is the presence relay. It holds one NetKart entity per joined
// client, copies each KartTransform verbatim onto that entity and lets
// srvsync broadcast the world. It never simulates anything.
type Server struct {
	world     donburi.World
	loop      *GameLoop
	transport *transports.WsServerTransport

	name     string
	version  string
	tickRate int

	// Track which network client owns which entity
	clientEntities map[*router.NetworkClient]donburi.Entity
	mu             sync.RWMutex
}

// NewServer creates a new presence server. An empty version accepts any
// client.
func NewServer(tickRate int, name, version string) *Server {
	world := donburi.NewWorld()

	s := &Server{
		world:          world,
		name:           name,
		version:        version,
		tickRate:       tickRate,
		clientEntities: make(map[*router.NetworkClient]donburi.Entity),
	}
	s.loop = NewGameLoop(tickRate)

	// Set up the world for esync
	srvsync.UseEsync(world)

	s.setupRouterCallbacks()

	return s
}

// Start begins the server on the given port
func (s *Server) Start(port uint) error {
	go s.loop.Run()

	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	s.loop.Stop()
}

// Router callbacks run on necs goroutines and mutate the world that the
// broadcast loop snapshots; mu guards only the client-entity map.
func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		// Nothing is spawned yet; the client must send a JoinRequest first.
		log.Printf("Client connected: %s", client.Id())
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		s.onDisconnect(client, err)
	})

	router.On(func(client *router.NetworkClient, req messages.JoinRequest) {
		s.onJoinRequest(client, req)
	})

	router.On(func(client *router.NetworkClient, transform messages.KartTransform) {
		s.onKartTransform(client, transform)
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		log.Printf("Client error: %v", err)
	})
}

func (s *Server) onJoinRequest(client *router.NetworkClient, req messages.JoinRequest) {
	if s.version != "" && req.Version != s.version {
		log.Printf("Rejecting client %s: version %q, want %q", client.Id(), req.Version, s.version)
		s.reply(client, messages.JoinRejected{Reason: "version mismatch, server runs " + s.version})
		return
	}

	s.mu.RLock()
	_, joined := s.clientEntities[client]
	s.mu.RUnlock()
	if joined {
		s.reply(client, messages.JoinRejected{Reason: "already joined"})
		return
	}

	entity := s.world.Create(netcomponents.NetKart)
	entry := s.world.Entry(entity)
	netcomponents.NetKart.Set(entry, &netcomponents.NetKartData{
		Name: req.PlayerName,
	})

	if err := srvsync.NetworkSync(s.world, &entity, srvsync.WithInterp(netcomponents.NetKart)); err != nil {
		log.Printf("Failed to set up network sync for %s: %v", client.Id(), err)
		s.world.Remove(entity)
		s.reply(client, messages.JoinRejected{Reason: "internal error"})
		return
	}

	s.mu.Lock()
	s.clientEntities[client] = entity
	s.mu.Unlock()

	netID := esync.NetworkId(0)
	if id := esync.GetNetworkId(entry); id != nil {
		netID = *id
	}

	s.reply(client, messages.JoinAccepted{
		NetworkID:  netID,
		ServerName: s.name,
		TickRate:   s.tickRate,
	})
	log.Printf("Player %q joined as network id %d (track %s)", req.PlayerName, netID, req.Track)
}

func (s *Server) onDisconnect(client *router.NetworkClient, err error) {
	if err != nil {
		log.Printf("Client %s disconnected with error: %v", client.Id(), err)
	} else {
		log.Printf("Client %s disconnected", client.Id())
	}

	s.mu.Lock()
	entity, exists := s.clientEntities[client]
	if exists {
		delete(s.clientEntities, client)
	}
	s.mu.Unlock()

	if exists && s.world.Valid(entity) {
		s.world.Remove(entity)
		log.Printf("Kart entity removed for client %s", client.Id())
	}
}

func (s *Server) onKartTransform(client *router.NetworkClient, transform messages.KartTransform) {
	s.mu.RLock()
	entity, exists := s.clientEntities[client]
	s.mu.RUnlock()

	if !exists || !s.world.Valid(entity) {
		return
	}

	entry := s.world.Entry(entity)
	kart := netcomponents.NetKart.Get(entry)
	kart.X = transform.X
	kart.Y = transform.Y
	kart.Z = transform.Z
	kart.Heading = transform.Heading
	kart.DriftLean = transform.DriftLean
}

func (s *Server) reply(client *router.NetworkClient, msg any) {
	if err := client.SendMessage(msg); err != nil {
		log.Printf("Failed to send to %s: %v", client.Id(), err)
	}
}

// World returns the ECS world
func (s *Server) World() donburi.World {
	return s.world
}

// PlayerCount returns the number of joined players
func (s *Server) PlayerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clientEntities)
}

// DefaultName is used when no display name is configured.
const DefaultName = "Driftline Server"

// DefaultTickRate mirrors the shared protocol default.
const DefaultTickRate = netconfig.DefaultTickRate
