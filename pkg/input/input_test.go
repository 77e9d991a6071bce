package input

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyDownUp(t *testing.T) {
	s := NewState(nil)

	s.KeyDown(KeyW)
	s.KeyDown(KeyD)
	assert.Equal(t, MoveForward|MoveRight, s.Move())

	s.KeyUp(KeyW)
	assert.Equal(t, MoveRight, s.Move())

	s.KeyUp(KeyD)
	assert.Equal(t, MoveFlags(0), s.Move())
}

func TestKeyDownIsIdempotent(t *testing.T) {
	s := NewState(nil)

	s.KeyDown(KeyA)
	s.KeyDown(KeyA)
	assert.Equal(t, MoveLeft, s.Move())

	s.KeyUp(KeyA)
	s.KeyUp(KeyA)
	assert.Equal(t, MoveFlags(0), s.Move())
}

func TestUnboundKeysAreIgnored(t *testing.T) {
	s := NewState(nil)
	s.KeyDown(KeyS)

	s.KeyDown(KeySpace)
	s.KeyUp(KeyEscape)
	s.KeyDown(Key(12345))

	assert.Equal(t, MoveBack, s.Move())
}

// The mask must always equal the set of keys whose last event was "down".
func TestMoveMaskTracksLastEventPerKey(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	keys := []Key{KeyW, KeyA, KeyS, KeyD, KeySpace, KeyQ}
	bindings := DefaultBindings()

	s := NewState(nil)
	held := map[Key]bool{}

	for i := 0; i < 2000; i++ {
		k := keys[rng.Intn(len(keys))]
		if rng.Intn(2) == 0 {
			s.KeyDown(k)
			held[k] = true
		} else {
			s.KeyUp(k)
			held[k] = false
		}

		var want MoveFlags
		for key, down := range held {
			if down {
				want |= bindings[key]
			}
		}
		require.Equal(t, want, s.Move(), "step %d", i)
	}
}

func TestMouseMoveAccumulatesWhileLocked(t *testing.T) {
	s := NewState(nil)
	s.MouseLock()

	s.MouseMove(3, -1)
	s.MouseMove(2, 4)

	dx, dy := s.MouseDelta()
	assert.Equal(t, float32(5), dx)
	assert.Equal(t, float32(3), dy)
}

func TestMouseMoveIgnoredWhileUnlocked(t *testing.T) {
	s := NewState(nil)

	s.MouseMove(10, 10)

	dx, dy := s.MouseDelta()
	assert.Zero(t, dx)
	assert.Zero(t, dy)
	assert.False(t, s.Locked())
}

func TestMouseLockKeepsDelta(t *testing.T) {
	s := NewState(nil)
	s.MouseLock()
	s.MouseMove(1, 2)

	s.MouseLock()

	dx, dy := s.MouseDelta()
	assert.Equal(t, float32(1), dx)
	assert.Equal(t, float32(2), dy)
}

func TestUnlockThenLockYieldsZeroDelta(t *testing.T) {
	s := NewState(nil)
	s.MouseLock()
	s.MouseMove(400, -250)

	s.MouseUnlock()
	s.MouseLock()

	dx, dy := s.MouseDelta()
	assert.Zero(t, dx)
	assert.Zero(t, dy)
	assert.True(t, s.Locked())
}

func TestConsumeLookClears(t *testing.T) {
	s := NewState(nil)
	s.MouseLock()
	s.MouseMove(7, 8)

	dx, dy := s.ConsumeLook()
	assert.Equal(t, float32(7), dx)
	assert.Equal(t, float32(8), dy)

	dx, dy = s.ConsumeLook()
	assert.Zero(t, dx)
	assert.Zero(t, dy)
}

func TestEndFrame(t *testing.T) {
	s := NewState(nil)
	s.MouseLock()
	s.KeyDown(KeyW)
	s.MouseMove(5, 5)

	s.EndFrame()
	s.EndFrame()

	assert.Equal(t, Frame{Move: MoveForward, Locked: true}, s.Snapshot())
}

func TestCustomBindings(t *testing.T) {
	s := NewState(Bindings{KeyUp: MoveForward, KeyDown: MoveBack})

	s.KeyDown(KeyW)
	assert.Equal(t, MoveFlags(0), s.Move())

	s.KeyDown(KeyUp)
	assert.Equal(t, MoveForward, s.Move())
}

func TestParseBindings(t *testing.T) {
	tests := []struct {
		name    string
		in      map[string]string
		want    Bindings
		wantErr string
	}{
		{
			name: "wasd",
			in:   map[string]string{"forward": "w", "back": "S", "left": "a", "right": "D"},
			want: DefaultBindings(),
		},
		{
			name: "arrows",
			in:   map[string]string{"Forward": "up", "back": "down"},
			want: Bindings{KeyUp: MoveForward, KeyDown: MoveBack},
		},
		{
			name:    "unknown direction",
			in:      map[string]string{"jump": "space"},
			wantErr: "unknown movement direction",
		},
		{
			name:    "unknown key",
			in:      map[string]string{"forward": "F13"},
			wantErr: "unknown key name",
		},
		{
			name:    "duplicate key",
			in:      map[string]string{"forward": "W", "back": "w"},
			wantErr: "bound to both",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBindings(tt.in)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseKey(t *testing.T) {
	for name, want := range map[string]Key{
		"W":      KeyW,
		" d ":    KeyD,
		"space":  KeySpace,
		"Esc":    KeyEscape,
		"escape": KeyEscape,
		"7":      Key('7'),
	} {
		got, err := ParseKey(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseKey("")
	assert.Error(t, err)
}

func TestMoveFlagsString(t *testing.T) {
	assert.Equal(t, "none", MoveFlags(0).String())
	assert.Equal(t, "forward|right", (MoveRight | MoveForward).String())
	assert.True(t, (MoveBack | MoveLeft).Has(MoveLeft))
	assert.False(t, MoveBack.Has(MoveBack|MoveLeft))
	assert.Equal(t, "W", KeyW.String())
	assert.Equal(t, "ESCAPE", KeyEscape.String())
}
