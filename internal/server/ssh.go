// Package server serves live terminal views of the noise field over ssh.
// Each session owns its view state (window, dimension, palette); the field
// itself is pure and shared by every session without locking.
package server

import (
	"fmt"
	"io"
	"log"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/gliderlabs/ssh"

	"noisefield/internal/field"
	"noisefield/internal/render"
)

const (
	// FrameRate is how many frames per second each session renders.
	FrameRate = 15

	// slideRate is how far the 3D/4D slice offsets advance per frame,
	// which is what animates the picture.
	slideRate = 0.03
)

// Action is a parsed viewer command.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionZoomIn
	ActionZoomOut
	ActionDim1
	ActionDim2
	ActionDim3
	ActionDim4
	ActionPalette
	ActionPause
	ActionQuit
)

// SSHServer wraps the SSH listener for field viewer sessions.
type SSHServer struct {
	addr    string
	hostKey string
}

// NewSSHServer creates a new SSH server bound to the given address.
func NewSSHServer(addr string, hostKey string) *SSHServer {
	return &SSHServer{
		addr:    addr,
		hostKey: hostKey,
	}
}

// Start begins listening for SSH connections.
func (s *SSHServer) Start() error {
	server := &ssh.Server{
		Addr: s.addr,
		Handler: func(sess ssh.Session) {
			s.handleSession(sess)
		},
	}

	// Set host key
	if err := server.SetOption(ssh.HostKeyFile(s.hostKey)); err != nil {
		return fmt.Errorf("set host key: %w", err)
	}

	log.Printf("SSH server listening on %s", s.addr)
	return server.ListenAndServe()
}

// view is the per-session window into the field.
type view struct {
	plane   field.Plane
	palette render.Palette
	paused  bool
}

func newView() *view {
	return &view{
		plane: field.Plane{
			Dim:     3,
			OriginX: 0,
			OriginY: 0,
			Scale:   0.08,
		},
		palette: render.TerrainPalette{},
	}
}

// apply mutates the view for one action. Pan steps scale with zoom so a
// keypress always moves the window by the same fraction of the screen.
func (v *view) apply(a Action) {
	pan := v.plane.Scale * 4
	switch a {
	case ActionUp:
		v.plane.OriginY -= pan
	case ActionDown:
		v.plane.OriginY += pan
	case ActionLeft:
		v.plane.OriginX -= pan
	case ActionRight:
		v.plane.OriginX += pan
	case ActionZoomIn:
		v.plane.Scale *= 0.8
	case ActionZoomOut:
		v.plane.Scale *= 1.25
	case ActionDim1:
		v.plane.Dim = 1
	case ActionDim2:
		v.plane.Dim = 2
	case ActionDim3:
		v.plane.Dim = 3
	case ActionDim4:
		v.plane.Dim = 4
	case ActionPalette:
		if v.palette.Name() == "terrain" {
			v.palette = render.GrayPalette{}
		} else {
			v.palette = render.TerrainPalette{}
		}
	case ActionPause:
		v.paused = !v.paused
	}
}

func (v *view) status() string {
	return fmt.Sprintf("noisefield  %dD  origin (%.2f, %.2f)  scale %.4f  slice z=%.2f t=%.2f  %s  |  wasd pan  +/- zoom  1-4 dim  p palette  space pause  q quit",
		v.plane.Dim, v.plane.OriginX, v.plane.OriginY, v.plane.Scale, v.plane.Z, v.plane.W, v.palette.Name())
}

func (s *SSHServer) handleSession(sess ssh.Session) {
	// Require PTY
	ptyReq, winCh, ok := sess.Pty()
	if !ok {
		fmt.Fprintln(sess, "Error: PTY required. Use: ssh -t ...")
		return
	}

	username := sess.User()
	if username == "" {
		username = "Anonymous"
	}

	log.Printf("Viewer connected: %s", username)
	defer log.Printf("Viewer disconnected: %s", username)

	// Terminal dimensions
	termW := ptyReq.Window.Width
	termH := ptyReq.Window.Height
	var termMu sync.Mutex

	// Create renderer and view state
	engine := render.NewEngine(termW, termH)
	v := newView()

	// Setup terminal
	io.WriteString(sess, render.EnableAltScreen())
	io.WriteString(sess, render.HideCursor())
	io.WriteString(sess, render.ClearScreen())
	defer func() {
		io.WriteString(sess, render.ShowCursor())
		io.WriteString(sess, render.DisableAltScreen())
	}()

	actionCh := make(chan Action, 64)
	quitCh := make(chan struct{})

	// Goroutine: read input
	go func() {
		buf := make([]byte, 64)
		for {
			n, err := sess.Read(buf)
			if err != nil {
				close(quitCh)
				return
			}
			for _, action := range ParseInput(buf[:n]) {
				if action == ActionQuit {
					close(quitCh)
					return
				}
				select {
				case actionCh <- action:
				default:
				}
			}
		}
	}()

	// Goroutine: handle window resizes
	go func() {
		for win := range winCh {
			termMu.Lock()
			termW = win.Width
			termH = win.Height
			termMu.Unlock()
		}
	}()

	// Main render loop
	ticker := time.NewTicker(time.Second / FrameRate)
	defer ticker.Stop()

	for {
		select {
		case <-quitCh:
			return
		case a := <-actionCh:
			v.apply(a)
		case <-ticker.C:
			if !v.paused {
				v.plane.Z += slideRate
				if v.plane.Dim == 4 {
					v.plane.W += slideRate * 0.7
				}
			}

			termMu.Lock()
			w, h := termW, termH
			termMu.Unlock()

			gw, gh := render.GridSize(w, h)
			grid, err := field.Render(v.plane, gw, gh)
			if err != nil {
				log.Printf("render error for %s: %v", username, err)
				return
			}

			output := engine.Render(grid, v.palette, v.status(), w, h)
			if len(output) > 0 {
				io.WriteString(sess, output)
			}
		}
	}
}

// ParseInput converts raw bytes into viewer actions.
// Handles WASD, arrow key escape sequences, zoom, dimension keys, Q, and Ctrl-C.
func ParseInput(data []byte) []Action {
	var actions []Action
	i := 0
	for i < len(data) {
		// Check for escape sequences (arrow keys)
		if i+2 < len(data) && data[i] == 0x1b && data[i+1] == '[' {
			switch data[i+2] {
			case 'A':
				actions = append(actions, ActionUp)
			case 'B':
				actions = append(actions, ActionDown)
			case 'C':
				actions = append(actions, ActionRight)
			case 'D':
				actions = append(actions, ActionLeft)
			}
			i += 3
			continue
		}

		// Single byte inputs
		r, size := utf8.DecodeRune(data[i:])
		switch r {
		case 'w', 'W':
			actions = append(actions, ActionUp)
		case 's', 'S':
			actions = append(actions, ActionDown)
		case 'a', 'A':
			actions = append(actions, ActionLeft)
		case 'd', 'D':
			actions = append(actions, ActionRight)
		case '+', '=':
			actions = append(actions, ActionZoomIn)
		case '-', '_':
			actions = append(actions, ActionZoomOut)
		case '1':
			actions = append(actions, ActionDim1)
		case '2':
			actions = append(actions, ActionDim2)
		case '3':
			actions = append(actions, ActionDim3)
		case '4':
			actions = append(actions, ActionDim4)
		case 'p', 'P':
			actions = append(actions, ActionPalette)
		case ' ':
			actions = append(actions, ActionPause)
		case 'q', 'Q':
			actions = append(actions, ActionQuit)
		case 3: // Ctrl-C
			actions = append(actions, ActionQuit)
		}
		i += size
	}
	return actions
}
