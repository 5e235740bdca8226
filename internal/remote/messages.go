package remote

import "shapes-demo/internal/scene"

// Message types exchanged over the websocket.
const (
	TypeCommand = "command"
	TypePing    = "ping"
	TypePong    = "pong"
	TypeState   = "state"
	TypeError   = "error"
	TypeWelcome = "welcome"
)

// Message is the single envelope for both directions.
type Message struct {
	Type     string   `json:"type"`
	Command  string   `json:"command,omitempty"`
	Error    string   `json:"error,omitempty"`
	ClientID string   `json:"client_id,omitempty"`
	Commands []string `json:"commands,omitempty"`
	State    *State   `json:"state,omitempty"`
}

// State is the part of the scene a remote UI shows.
type State struct {
	Animation bool       `json:"animation"`
	Camera    [3]float64 `json:"camera"`
	Colors    []string   `json:"colors"`
	Light     [3]float64 `json:"light"`
}

// StateOf snapshots scn. Call it on the render loop goroutine.
func StateOf(scn *scene.Scene) State {
	st := State{
		Animation: scn.AnimationEnabled,
		Camera:    scn.Camera.Position,
		Light:     scn.Lights.Point.Position,
	}
	for _, shape := range scn.Shapes.All() {
		st.Colors = append(st.Colors, scene.HexString(shape.Material.Color))
	}
	return st
}

func (s State) equal(o State) bool {
	if s.Animation != o.Animation || s.Camera != o.Camera || s.Light != o.Light || len(s.Colors) != len(o.Colors) {
		return false
	}
	for i := range s.Colors {
		if s.Colors[i] != o.Colors[i] {
			return false
		}
	}
	return true
}
