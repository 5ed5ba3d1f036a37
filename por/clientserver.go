package por

import (
	"github.com/tchecker-go/tchecker/model"
	"github.com/tchecker-go/tchecker/ts"
)

// communication is the client/server family's sentinel rank meaning "no
// client is currently selected; any vedge may be explored" (spec.md
// §4.9 cs policy "sentinel communication").
const communication = -1

// ClientServer is spec.md §4.9's "cs" policy: requires one designated
// server process. Memory is a rank, either a client PID or
// communication. From a communication state every vedge is explored;
// from a ranked state only vedges touching that client are explored,
// unless the server and the ranked client have no overlapping reachable
// synchronization to offer (in which case reducing would be unsound, so
// every vedge is explored instead).
type ClientServer struct {
	Server    string
	serverPID int
}

var _ Policy = (*ClientServer)(nil)

// NewClientServer builds a cs policy for the named server process.
func NewClientServer(server string) *ClientServer {
	return &ClientServer{Server: server}
}

func (p *ClientServer) Name() string { return "cs" }

func (p *ClientServer) Validate(sys *model.System) error {
	if p.Server == "" {
		return ErrServerRequired
	}
	if err := sys.ClientServer(p.Server); err != nil {
		return err
	}
	proc, _ := sys.ProcessByName(p.Server)
	p.serverPID = proc.ID
	return nil
}

func (p *ClientServer) InitialMemory(*model.System, ts.Vloc) any { return communication }

func (p *ClientServer) SourceSet(sys *model.System, vloc ts.Vloc, memory any, vedges []ts.Vedge) []ts.Vedge {
	rank := memory.(int)
	if rank == communication {
		return vedges
	}
	if !p.synchronizable(sys, vloc, rank) {
		return vedges
	}
	return filterByProcess(vedges, rank)
}

func (p *ClientServer) NextMemory(sys *model.System, before, after ts.Vloc, memory any, taken ts.Vedge) any {
	participants := taken.Participants()
	if len(participants) >= 2 {
		return communication
	}
	return participants[0]
}

func (p *ClientServer) MemoryCover(n, c any) bool {
	cr := c.(int)
	if cr == communication {
		return true
	}
	return n.(int) == cr
}

// synchronizable implements spec.md §4.9's cs synchronizability filter:
// the server's directly-available synchronizations must overlap the
// ranked client's reachable ones, otherwise restricting to that client
// alone would not be sound.
func (p *ClientServer) synchronizable(sys *model.System, vloc ts.Vloc, rank int) bool {
	serverSyncs := sys.LocationNextSyncs(p.serverPID, vloc[p.serverPID], model.LocationKind)
	clientSyncs := sys.LocationNextSyncs(rank, vloc[rank], model.ReachableKind)
	for id := range serverSyncs {
		if clientSyncs[id] {
			return true
		}
	}
	return false
}
